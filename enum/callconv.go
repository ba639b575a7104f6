// Copyright (C) 2024 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

package enum

// CallConv is a function calling convention.
type CallConv uint32

// CallConv members.
const (
	CallConvC             CallConv = 0
	CallConvFast          CallConv = 8
	CallConvCold          CallConv = 9
	CallConvGHC           CallConv = 10
	CallConvHiPE          CallConv = 11
	CallConvAnyReg        CallConv = 13
	CallConvPreserveMost  CallConv = 14
	CallConvPreserveAll   CallConv = 15
	CallConvSwift         CallConv = 16
	CallConvCXXFASTTLS    CallConv = 17
	CallConvX86Stdcall    CallConv = 64
	CallConvX86Fastcall   CallConv = 65
	CallConvARMAPCS       CallConv = 66
	CallConvARMAAPCS      CallConv = 67
	CallConvARMAAPCSVFP   CallConv = 68
	CallConvMSP430INTR    CallConv = 69
	CallConvX86ThisCall   CallConv = 70
	CallConvPTXKernel     CallConv = 71
	CallConvPTXDevice     CallConv = 72
	CallConvSPIRFUNC      CallConv = 75
	CallConvSPIRKERNEL    CallConv = 76
	CallConvIntelOCLBI    CallConv = 77
	CallConvX8664SysV     CallConv = 78
	CallConvWin64         CallConv = 79
	CallConvX86VectorCall CallConv = 80
	CallConvHHVM          CallConv = 81
	CallConvHHVMC         CallConv = 82
	CallConvX86INTR       CallConv = 83
	CallConvAVRINTR       CallConv = 84
	CallConvAVRSIGNAL     CallConv = 85
	CallConvAVRBUILTIN    CallConv = 86
	CallConvAMDGPUVS      CallConv = 87
	CallConvAMDGPUGS      CallConv = 88
	CallConvAMDGPUPS      CallConv = 89
	CallConvAMDGPUCS      CallConv = 90
	CallConvAMDGPUKERNEL  CallConv = 91
	CallConvX86RegCall    CallConv = 92
	CallConvAMDGPUHS      CallConv = 93
	CallConvMSP430BUILTIN CallConv = 94
	CallConvAMDGPULS      CallConv = 95
	CallConvAMDGPUES      CallConv = 96
)

// CallConvTable lists every CallConv member with its native value.
var CallConvTable = newTable("CallConv", []Member{
	{Name: "C", Value: int64(CallConvC)},
	{Name: "Fast", Value: int64(CallConvFast)},
	{Name: "Cold", Value: int64(CallConvCold)},
	{Name: "GHC", Value: int64(CallConvGHC)},
	{Name: "HiPE", Value: int64(CallConvHiPE)},
	{Name: "AnyReg", Value: int64(CallConvAnyReg)},
	{Name: "PreserveMost", Value: int64(CallConvPreserveMost)},
	{Name: "PreserveAll", Value: int64(CallConvPreserveAll)},
	{Name: "Swift", Value: int64(CallConvSwift)},
	{Name: "CXXFASTTLS", Value: int64(CallConvCXXFASTTLS)},
	{Name: "X86Stdcall", Value: int64(CallConvX86Stdcall)},
	{Name: "X86Fastcall", Value: int64(CallConvX86Fastcall)},
	{Name: "ARMAPCS", Value: int64(CallConvARMAPCS)},
	{Name: "ARMAAPCS", Value: int64(CallConvARMAAPCS)},
	{Name: "ARMAAPCSVFP", Value: int64(CallConvARMAAPCSVFP)},
	{Name: "MSP430INTR", Value: int64(CallConvMSP430INTR)},
	{Name: "X86ThisCall", Value: int64(CallConvX86ThisCall)},
	{Name: "PTXKernel", Value: int64(CallConvPTXKernel)},
	{Name: "PTXDevice", Value: int64(CallConvPTXDevice)},
	{Name: "SPIRFUNC", Value: int64(CallConvSPIRFUNC)},
	{Name: "SPIRKERNEL", Value: int64(CallConvSPIRKERNEL)},
	{Name: "IntelOCLBI", Value: int64(CallConvIntelOCLBI)},
	{Name: "X8664SysV", Value: int64(CallConvX8664SysV)},
	{Name: "Win64", Value: int64(CallConvWin64)},
	{Name: "X86VectorCall", Value: int64(CallConvX86VectorCall)},
	{Name: "HHVM", Value: int64(CallConvHHVM)},
	{Name: "HHVMC", Value: int64(CallConvHHVMC)},
	{Name: "X86INTR", Value: int64(CallConvX86INTR)},
	{Name: "AVRINTR", Value: int64(CallConvAVRINTR)},
	{Name: "AVRSIGNAL", Value: int64(CallConvAVRSIGNAL)},
	{Name: "AVRBUILTIN", Value: int64(CallConvAVRBUILTIN)},
	{Name: "AMDGPUVS", Value: int64(CallConvAMDGPUVS)},
	{Name: "AMDGPUGS", Value: int64(CallConvAMDGPUGS)},
	{Name: "AMDGPUPS", Value: int64(CallConvAMDGPUPS)},
	{Name: "AMDGPUCS", Value: int64(CallConvAMDGPUCS)},
	{Name: "AMDGPUKERNEL", Value: int64(CallConvAMDGPUKERNEL)},
	{Name: "X86RegCall", Value: int64(CallConvX86RegCall)},
	{Name: "AMDGPUHS", Value: int64(CallConvAMDGPUHS)},
	{Name: "MSP430BUILTIN", Value: int64(CallConvMSP430BUILTIN)},
	{Name: "AMDGPULS", Value: int64(CallConvAMDGPULS)},
	{Name: "AMDGPUES", Value: int64(CallConvAMDGPUES)},
})

func (v CallConv) String() string { return CallConvTable.name(int64(v)) }

// Doc returns the description of the member from the native header.
func (v CallConv) Doc() string { return CallConvTable.doc(int64(v)) }
