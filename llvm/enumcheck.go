// Copyright (C) 2024 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

package llvm

/*
#include <llvm-c/Analysis.h>
#include <llvm-c/Core.h>
#include <stdlib.h>

static unsigned llvmbindReturnIndex(void) { return LLVMAttributeReturnIndex; }
static unsigned llvmbindFunctionIndex(void) { return LLVMAttributeFunctionIndex; }
*/
import "C"

// NativeEnumValues returns, per enumeration, the value of every member as
// compiled from the native headers. Keys match enum.Table names and member
// names, so the Go mirror can be checked against the library it links.
func NativeEnumValues() map[string]map[string]int64 {
	return map[string]map[string]int64{
		"AtomicOrdering": {
			"NotAtomic":              int64(C.LLVMAtomicOrderingNotAtomic),
			"Unordered":              int64(C.LLVMAtomicOrderingUnordered),
			"Monotonic":              int64(C.LLVMAtomicOrderingMonotonic),
			"Acquire":                int64(C.LLVMAtomicOrderingAcquire),
			"Release":                int64(C.LLVMAtomicOrderingRelease),
			"AcquireRelease":         int64(C.LLVMAtomicOrderingAcquireRelease),
			"SequentiallyConsistent": int64(C.LLVMAtomicOrderingSequentiallyConsistent),
		},
		"AtomicRMWBinOp": {
			"Xchg": int64(C.LLVMAtomicRMWBinOpXchg),
			"Add":  int64(C.LLVMAtomicRMWBinOpAdd),
			"Sub":  int64(C.LLVMAtomicRMWBinOpSub),
			"And":  int64(C.LLVMAtomicRMWBinOpAnd),
			"Nand": int64(C.LLVMAtomicRMWBinOpNand),
			"Or":   int64(C.LLVMAtomicRMWBinOpOr),
			"Xor":  int64(C.LLVMAtomicRMWBinOpXor),
			"Max":  int64(C.LLVMAtomicRMWBinOpMax),
			"Min":  int64(C.LLVMAtomicRMWBinOpMin),
			"UMax": int64(C.LLVMAtomicRMWBinOpUMax),
			"UMin": int64(C.LLVMAtomicRMWBinOpUMin),
			"FAdd": int64(C.LLVMAtomicRMWBinOpFAdd),
			"FSub": int64(C.LLVMAtomicRMWBinOpFSub),
			"FMax": int64(C.LLVMAtomicRMWBinOpFMax),
			"FMin": int64(C.LLVMAtomicRMWBinOpFMin),
		},
		"AttributeIndex": {
			"Return":   int64(C.llvmbindReturnIndex()),
			"Function": int64(C.llvmbindFunctionIndex()),
		},
		"CallConv": {
			"C":             int64(C.LLVMCCallConv),
			"Fast":          int64(C.LLVMFastCallConv),
			"Cold":          int64(C.LLVMColdCallConv),
			"GHC":           int64(C.LLVMGHCCallConv),
			"HiPE":          int64(C.LLVMHiPECallConv),
			"AnyReg":        int64(C.LLVMAnyRegCallConv),
			"PreserveMost":  int64(C.LLVMPreserveMostCallConv),
			"PreserveAll":   int64(C.LLVMPreserveAllCallConv),
			"Swift":         int64(C.LLVMSwiftCallConv),
			"CXXFASTTLS":    int64(C.LLVMCXXFASTTLSCallConv),
			"X86Stdcall":    int64(C.LLVMX86StdcallCallConv),
			"X86Fastcall":   int64(C.LLVMX86FastcallCallConv),
			"ARMAPCS":       int64(C.LLVMARMAPCSCallConv),
			"ARMAAPCS":      int64(C.LLVMARMAAPCSCallConv),
			"ARMAAPCSVFP":   int64(C.LLVMARMAAPCSVFPCallConv),
			"MSP430INTR":    int64(C.LLVMMSP430INTRCallConv),
			"X86ThisCall":   int64(C.LLVMX86ThisCallCallConv),
			"PTXKernel":     int64(C.LLVMPTXKernelCallConv),
			"PTXDevice":     int64(C.LLVMPTXDeviceCallConv),
			"SPIRFUNC":      int64(C.LLVMSPIRFUNCCallConv),
			"SPIRKERNEL":    int64(C.LLVMSPIRKERNELCallConv),
			"IntelOCLBI":    int64(C.LLVMIntelOCLBICallConv),
			"X8664SysV":     int64(C.LLVMX8664SysVCallConv),
			"Win64":         int64(C.LLVMWin64CallConv),
			"X86VectorCall": int64(C.LLVMX86VectorCallCallConv),
			"HHVM":          int64(C.LLVMHHVMCallConv),
			"HHVMC":         int64(C.LLVMHHVMCCallConv),
			"X86INTR":       int64(C.LLVMX86INTRCallConv),
			"AVRINTR":       int64(C.LLVMAVRINTRCallConv),
			"AVRSIGNAL":     int64(C.LLVMAVRSIGNALCallConv),
			"AVRBUILTIN":    int64(C.LLVMAVRBUILTINCallConv),
			"AMDGPUVS":      int64(C.LLVMAMDGPUVSCallConv),
			"AMDGPUGS":      int64(C.LLVMAMDGPUGSCallConv),
			"AMDGPUPS":      int64(C.LLVMAMDGPUPSCallConv),
			"AMDGPUCS":      int64(C.LLVMAMDGPUCSCallConv),
			"AMDGPUKERNEL":  int64(C.LLVMAMDGPUKERNELCallConv),
			"X86RegCall":    int64(C.LLVMX86RegCallCallConv),
			"AMDGPUHS":      int64(C.LLVMAMDGPUHSCallConv),
			"MSP430BUILTIN": int64(C.LLVMMSP430BUILTINCallConv),
			"AMDGPULS":      int64(C.LLVMAMDGPULSCallConv),
			"AMDGPUES":      int64(C.LLVMAMDGPUESCallConv),
		},
		"FastMathFlags": {
			"AllowReassoc":    int64(C.LLVMFastMathAllowReassoc),
			"NoNaNs":          int64(C.LLVMFastMathNoNaNs),
			"NoInfs":          int64(C.LLVMFastMathNoInfs),
			"NoSignedZeros":   int64(C.LLVMFastMathNoSignedZeros),
			"AllowReciprocal": int64(C.LLVMFastMathAllowReciprocal),
			"AllowContract":   int64(C.LLVMFastMathAllowContract),
			"ApproxFunc":      int64(C.LLVMFastMathApproxFunc),
			"None":            int64(C.LLVMFastMathNone),
			"All":             int64(C.LLVMFastMathAll),
		},
		"Linkage": {
			"External":            int64(C.LLVMExternalLinkage),
			"AvailableExternally": int64(C.LLVMAvailableExternallyLinkage),
			"LinkOnceAny":         int64(C.LLVMLinkOnceAnyLinkage),
			"LinkOnceODR":         int64(C.LLVMLinkOnceODRLinkage),
			"LinkOnceODRAutoHide": int64(C.LLVMLinkOnceODRAutoHideLinkage),
			"WeakAny":             int64(C.LLVMWeakAnyLinkage),
			"WeakODR":             int64(C.LLVMWeakODRLinkage),
			"Appending":           int64(C.LLVMAppendingLinkage),
			"Internal":            int64(C.LLVMInternalLinkage),
			"Private":             int64(C.LLVMPrivateLinkage),
			"DLLImport":           int64(C.LLVMDLLImportLinkage),
			"DLLExport":           int64(C.LLVMDLLExportLinkage),
			"ExternalWeak":        int64(C.LLVMExternalWeakLinkage),
			"Ghost":               int64(C.LLVMGhostLinkage),
			"Common":              int64(C.LLVMCommonLinkage),
			"LinkerPrivate":       int64(C.LLVMLinkerPrivateLinkage),
			"LinkerPrivateWeak":   int64(C.LLVMLinkerPrivateWeakLinkage),
		},
		"Visibility": {
			"Default":   int64(C.LLVMDefaultVisibility),
			"Hidden":    int64(C.LLVMHiddenVisibility),
			"Protected": int64(C.LLVMProtectedVisibility),
		},
		"UnnamedAddr": {
			"No":     int64(C.LLVMNoUnnamedAddr),
			"Local":  int64(C.LLVMLocalUnnamedAddr),
			"Global": int64(C.LLVMGlobalUnnamedAddr),
		},
		"DLLStorageClass": {
			"Default":   int64(C.LLVMDefaultStorageClass),
			"DLLImport": int64(C.LLVMDLLImportStorageClass),
			"DLLExport": int64(C.LLVMDLLExportStorageClass),
		},
		"ThreadLocalMode": {
			"NotThreadLocal": int64(C.LLVMNotThreadLocal),
			"GeneralDynamic": int64(C.LLVMGeneralDynamicTLSModel),
			"LocalDynamic":   int64(C.LLVMLocalDynamicTLSModel),
			"InitialExec":    int64(C.LLVMInitialExecTLSModel),
			"LocalExec":      int64(C.LLVMLocalExecTLSModel),
		},
		"LandingPadClauseTy": {
			"Catch":  int64(C.LLVMLandingPadCatch),
			"Filter": int64(C.LLVMLandingPadFilter),
		},
		"DiagnosticSeverity": {
			"Error":   int64(C.LLVMDSError),
			"Warning": int64(C.LLVMDSWarning),
			"Remark":  int64(C.LLVMDSRemark),
			"Note":    int64(C.LLVMDSNote),
		},
		"InlineAsmDialect": {
			"ATT":   int64(C.LLVMInlineAsmDialectATT),
			"Intel": int64(C.LLVMInlineAsmDialectIntel),
		},
		"ModuleFlagBehavior": {
			"Error":        int64(C.LLVMModuleFlagBehaviorError),
			"Warning":      int64(C.LLVMModuleFlagBehaviorWarning),
			"Require":      int64(C.LLVMModuleFlagBehaviorRequire),
			"Override":     int64(C.LLVMModuleFlagBehaviorOverride),
			"Append":       int64(C.LLVMModuleFlagBehaviorAppend),
			"AppendUnique": int64(C.LLVMModuleFlagBehaviorAppendUnique),
		},
		"TailCallKind": {
			"None":     int64(C.LLVMTailCallKindNone),
			"Tail":     int64(C.LLVMTailCallKindTail),
			"MustTail": int64(C.LLVMTailCallKindMustTail),
			"NoTail":   int64(C.LLVMTailCallKindNoTail),
		},
		"VerifierFailureAction": {
			"AbortProcess": int64(C.LLVMAbortProcessAction),
			"PrintMessage": int64(C.LLVMPrintMessageAction),
			"ReturnStatus": int64(C.LLVMReturnStatusAction),
		},
		"Opcode": {
			"Ret":            int64(C.LLVMRet),
			"Br":             int64(C.LLVMBr),
			"Switch":         int64(C.LLVMSwitch),
			"IndirectBr":     int64(C.LLVMIndirectBr),
			"Invoke":         int64(C.LLVMInvoke),
			"Unreachable":    int64(C.LLVMUnreachable),
			"CallBr":         int64(C.LLVMCallBr),
			"FNeg":           int64(C.LLVMFNeg),
			"Add":            int64(C.LLVMAdd),
			"FAdd":           int64(C.LLVMFAdd),
			"Sub":            int64(C.LLVMSub),
			"FSub":           int64(C.LLVMFSub),
			"Mul":            int64(C.LLVMMul),
			"FMul":           int64(C.LLVMFMul),
			"UDiv":           int64(C.LLVMUDiv),
			"SDiv":           int64(C.LLVMSDiv),
			"FDiv":           int64(C.LLVMFDiv),
			"URem":           int64(C.LLVMURem),
			"SRem":           int64(C.LLVMSRem),
			"FRem":           int64(C.LLVMFRem),
			"Shl":            int64(C.LLVMShl),
			"LShr":           int64(C.LLVMLShr),
			"AShr":           int64(C.LLVMAShr),
			"And":            int64(C.LLVMAnd),
			"Or":             int64(C.LLVMOr),
			"Xor":            int64(C.LLVMXor),
			"Alloca":         int64(C.LLVMAlloca),
			"Load":           int64(C.LLVMLoad),
			"Store":          int64(C.LLVMStore),
			"GetElementPtr":  int64(C.LLVMGetElementPtr),
			"Trunc":          int64(C.LLVMTrunc),
			"ZExt":           int64(C.LLVMZExt),
			"SExt":           int64(C.LLVMSExt),
			"FPToUI":         int64(C.LLVMFPToUI),
			"FPToSI":         int64(C.LLVMFPToSI),
			"UIToFP":         int64(C.LLVMUIToFP),
			"SIToFP":         int64(C.LLVMSIToFP),
			"FPTrunc":        int64(C.LLVMFPTrunc),
			"FPExt":          int64(C.LLVMFPExt),
			"PtrToInt":       int64(C.LLVMPtrToInt),
			"IntToPtr":       int64(C.LLVMIntToPtr),
			"BitCast":        int64(C.LLVMBitCast),
			"AddrSpaceCast":  int64(C.LLVMAddrSpaceCast),
			"ICmp":           int64(C.LLVMICmp),
			"FCmp":           int64(C.LLVMFCmp),
			"PHI":            int64(C.LLVMPHI),
			"Call":           int64(C.LLVMCall),
			"Select":         int64(C.LLVMSelect),
			"UserOp1":        int64(C.LLVMUserOp1),
			"UserOp2":        int64(C.LLVMUserOp2),
			"VAArg":          int64(C.LLVMVAArg),
			"ExtractElement": int64(C.LLVMExtractElement),
			"InsertElement":  int64(C.LLVMInsertElement),
			"ShuffleVector":  int64(C.LLVMShuffleVector),
			"ExtractValue":   int64(C.LLVMExtractValue),
			"InsertValue":    int64(C.LLVMInsertValue),
			"Freeze":         int64(C.LLVMFreeze),
			"Fence":          int64(C.LLVMFence),
			"AtomicCmpXchg":  int64(C.LLVMAtomicCmpXchg),
			"AtomicRMW":      int64(C.LLVMAtomicRMW),
			"Resume":         int64(C.LLVMResume),
			"LandingPad":     int64(C.LLVMLandingPad),
			"CleanupRet":     int64(C.LLVMCleanupRet),
			"CatchRet":       int64(C.LLVMCatchRet),
			"CatchPad":       int64(C.LLVMCatchPad),
			"CleanupPad":     int64(C.LLVMCleanupPad),
			"CatchSwitch":    int64(C.LLVMCatchSwitch),
		},
		"IntPredicate": {
			"EQ":  int64(C.LLVMIntEQ),
			"NE":  int64(C.LLVMIntNE),
			"UGT": int64(C.LLVMIntUGT),
			"UGE": int64(C.LLVMIntUGE),
			"ULT": int64(C.LLVMIntULT),
			"ULE": int64(C.LLVMIntULE),
			"SGT": int64(C.LLVMIntSGT),
			"SGE": int64(C.LLVMIntSGE),
			"SLT": int64(C.LLVMIntSLT),
			"SLE": int64(C.LLVMIntSLE),
		},
		"RealPredicate": {
			"False": int64(C.LLVMRealPredicateFalse),
			"OEQ":   int64(C.LLVMRealOEQ),
			"OGT":   int64(C.LLVMRealOGT),
			"OGE":   int64(C.LLVMRealOGE),
			"OLT":   int64(C.LLVMRealOLT),
			"OLE":   int64(C.LLVMRealOLE),
			"ONE":   int64(C.LLVMRealONE),
			"ORD":   int64(C.LLVMRealORD),
			"UNO":   int64(C.LLVMRealUNO),
			"UEQ":   int64(C.LLVMRealUEQ),
			"UGT":   int64(C.LLVMRealUGT),
			"UGE":   int64(C.LLVMRealUGE),
			"ULT":   int64(C.LLVMRealULT),
			"ULE":   int64(C.LLVMRealULE),
			"UNE":   int64(C.LLVMRealUNE),
			"True":  int64(C.LLVMRealPredicateTrue),
		},
		"TypeKind": {
			"Void":           int64(C.LLVMVoidTypeKind),
			"Half":           int64(C.LLVMHalfTypeKind),
			"Float":          int64(C.LLVMFloatTypeKind),
			"Double":         int64(C.LLVMDoubleTypeKind),
			"X86_FP80":       int64(C.LLVMX86_FP80TypeKind),
			"FP128":          int64(C.LLVMFP128TypeKind),
			"PPC_FP128":      int64(C.LLVMPPC_FP128TypeKind),
			"Label":          int64(C.LLVMLabelTypeKind),
			"Integer":        int64(C.LLVMIntegerTypeKind),
			"Function":       int64(C.LLVMFunctionTypeKind),
			"Struct":         int64(C.LLVMStructTypeKind),
			"Array":          int64(C.LLVMArrayTypeKind),
			"Pointer":        int64(C.LLVMPointerTypeKind),
			"Vector":         int64(C.LLVMVectorTypeKind),
			"Metadata":       int64(C.LLVMMetadataTypeKind),
			"X86_MMX":        int64(C.LLVMX86_MMXTypeKind),
			"Token":          int64(C.LLVMTokenTypeKind),
			"ScalableVector": int64(C.LLVMScalableVectorTypeKind),
			"BFloat":         int64(C.LLVMBFloatTypeKind),
			"X86_AMX":        int64(C.LLVMX86_AMXTypeKind),
			"TargetExt":      int64(C.LLVMTargetExtTypeKind),
		},
		"ValueKind": {
			"Argument":              int64(C.LLVMArgumentValueKind),
			"BasicBlock":            int64(C.LLVMBasicBlockValueKind),
			"MemoryUse":             int64(C.LLVMMemoryUseValueKind),
			"MemoryDef":             int64(C.LLVMMemoryDefValueKind),
			"MemoryPhi":             int64(C.LLVMMemoryPhiValueKind),
			"Function":              int64(C.LLVMFunctionValueKind),
			"GlobalAlias":           int64(C.LLVMGlobalAliasValueKind),
			"GlobalIFunc":           int64(C.LLVMGlobalIFuncValueKind),
			"GlobalVariable":        int64(C.LLVMGlobalVariableValueKind),
			"BlockAddress":          int64(C.LLVMBlockAddressValueKind),
			"ConstantExpr":          int64(C.LLVMConstantExprValueKind),
			"ConstantArray":         int64(C.LLVMConstantArrayValueKind),
			"ConstantStruct":        int64(C.LLVMConstantStructValueKind),
			"ConstantVector":        int64(C.LLVMConstantVectorValueKind),
			"UndefValue":            int64(C.LLVMUndefValueValueKind),
			"ConstantAggregateZero": int64(C.LLVMConstantAggregateZeroValueKind),
			"ConstantDataArray":     int64(C.LLVMConstantDataArrayValueKind),
			"ConstantDataVector":    int64(C.LLVMConstantDataVectorValueKind),
			"ConstantInt":           int64(C.LLVMConstantIntValueKind),
			"ConstantFP":            int64(C.LLVMConstantFPValueKind),
			"ConstantPointerNull":   int64(C.LLVMConstantPointerNullValueKind),
			"ConstantTokenNone":     int64(C.LLVMConstantTokenNoneValueKind),
			"MetadataAsValue":       int64(C.LLVMMetadataAsValueValueKind),
			"InlineAsm":             int64(C.LLVMInlineAsmValueKind),
			"Instruction":           int64(C.LLVMInstructionValueKind),
			"PoisonValue":           int64(C.LLVMPoisonValueValueKind),
			"ConstantTargetNone":    int64(C.LLVMConstantTargetNoneValueKind),
		},
	}
}
