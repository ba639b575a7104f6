// Copyright (C) 2024 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

package enum

// Linkage controls how a global symbol is merged when modules are linked.
type Linkage int

// Linkage members.
const (
	LinkageExternal            Linkage = 0
	LinkageAvailableExternally Linkage = 1
	LinkageLinkOnceAny         Linkage = 2
	LinkageLinkOnceODR         Linkage = 3
	LinkageLinkOnceODRAutoHide Linkage = 4
	LinkageWeakAny             Linkage = 5
	LinkageWeakODR             Linkage = 6
	LinkageAppending           Linkage = 7
	LinkageInternal            Linkage = 8
	LinkagePrivate             Linkage = 9
	LinkageDLLImport           Linkage = 10
	LinkageDLLExport           Linkage = 11
	LinkageExternalWeak        Linkage = 12
	LinkageGhost               Linkage = 13
	LinkageCommon              Linkage = 14
	LinkageLinkerPrivate       Linkage = 15
	LinkageLinkerPrivateWeak   Linkage = 16
)

// LinkageTable lists every Linkage member with its native value.
var LinkageTable = newTable("Linkage", []Member{
	{Name: "External", Value: int64(LinkageExternal), Doc: "Externally visible function"},
	{Name: "AvailableExternally", Value: int64(LinkageAvailableExternally)},
	{Name: "LinkOnceAny", Value: int64(LinkageLinkOnceAny), Doc: "Keep one copy of function when linking (inline)"},
	{Name: "LinkOnceODR", Value: int64(LinkageLinkOnceODR), Doc: "Keep one copy of function when linking (inline), but only replaced by something equivalent."},
	{Name: "LinkOnceODRAutoHide", Value: int64(LinkageLinkOnceODRAutoHide), Doc: "Obsolete"},
	{Name: "WeakAny", Value: int64(LinkageWeakAny), Doc: "Keep one copy of function when linking (weak)"},
	{Name: "WeakODR", Value: int64(LinkageWeakODR), Doc: "Same, but only replaced by something equivalent."},
	{Name: "Appending", Value: int64(LinkageAppending), Doc: "Special purpose, only applies to global arrays"},
	{Name: "Internal", Value: int64(LinkageInternal), Doc: "Rename collisions when linking (static functions)"},
	{Name: "Private", Value: int64(LinkagePrivate), Doc: "Like Internal, but omit from symbol table"},
	{Name: "DLLImport", Value: int64(LinkageDLLImport), Doc: "Obsolete"},
	{Name: "DLLExport", Value: int64(LinkageDLLExport), Doc: "Obsolete"},
	{Name: "ExternalWeak", Value: int64(LinkageExternalWeak), Doc: "ExternalWeak linkage description"},
	{Name: "Ghost", Value: int64(LinkageGhost), Doc: "Obsolete"},
	{Name: "Common", Value: int64(LinkageCommon), Doc: "Tentative definitions"},
	{Name: "LinkerPrivate", Value: int64(LinkageLinkerPrivate), Doc: "Like Private, but linker removes."},
	{Name: "LinkerPrivateWeak", Value: int64(LinkageLinkerPrivateWeak), Doc: "Like LinkerPrivate, but is weak."},
})

func (v Linkage) String() string { return LinkageTable.name(int64(v)) }

// Doc returns the description of the member from the native header.
func (v Linkage) Doc() string { return LinkageTable.doc(int64(v)) }

// Visibility is the symbol visibility of a global value.
type Visibility int

// Visibility members.
const (
	VisibilityDefault   Visibility = 0
	VisibilityHidden    Visibility = 1
	VisibilityProtected Visibility = 2
)

// VisibilityTable lists every Visibility member with its native value.
var VisibilityTable = newTable("Visibility", []Member{
	{Name: "Default", Value: int64(VisibilityDefault), Doc: "The GV is visible"},
	{Name: "Hidden", Value: int64(VisibilityHidden), Doc: "The GV is hidden"},
	{Name: "Protected", Value: int64(VisibilityProtected), Doc: "The GV is protected"},
})

func (v Visibility) String() string { return VisibilityTable.name(int64(v)) }

// Doc returns the description of the member from the native header.
func (v Visibility) Doc() string { return VisibilityTable.doc(int64(v)) }

// UnnamedAddr states whether the address of a global value is significant.
type UnnamedAddr int

// UnnamedAddr members.
const (
	UnnamedAddrNo     UnnamedAddr = 0
	UnnamedAddrLocal  UnnamedAddr = 1
	UnnamedAddrGlobal UnnamedAddr = 2
)

// UnnamedAddrTable lists every UnnamedAddr member with its native value.
var UnnamedAddrTable = newTable("UnnamedAddr", []Member{
	{Name: "No", Value: int64(UnnamedAddrNo), Doc: "Address of the GV is significant."},
	{Name: "Local", Value: int64(UnnamedAddrLocal), Doc: "Address of the GV is locally insignificant."},
	{Name: "Global", Value: int64(UnnamedAddrGlobal), Doc: "Address of the GV is globally insignificant."},
})

func (v UnnamedAddr) String() string { return UnnamedAddrTable.name(int64(v)) }

// Doc returns the description of the member from the native header.
func (v UnnamedAddr) Doc() string { return UnnamedAddrTable.doc(int64(v)) }

// DLLStorageClass is the DLL storage class of a global value.
type DLLStorageClass int

// DLLStorageClass members.
const (
	DLLStorageDefault   DLLStorageClass = 0
	DLLStorageDLLImport DLLStorageClass = 1
	DLLStorageDLLExport DLLStorageClass = 2
)

// DLLStorageClassTable lists every DLLStorageClass member with its native value.
var DLLStorageClassTable = newTable("DLLStorageClass", []Member{
	{Name: "Default", Value: int64(DLLStorageDefault)},
	{Name: "DLLImport", Value: int64(DLLStorageDLLImport), Doc: "Function to be imported from DLL."},
	{Name: "DLLExport", Value: int64(DLLStorageDLLExport), Doc: "Function to be accessible from DLL."},
})

func (v DLLStorageClass) String() string { return DLLStorageClassTable.name(int64(v)) }

// Doc returns the description of the member from the native header.
func (v DLLStorageClass) Doc() string { return DLLStorageClassTable.doc(int64(v)) }

// ThreadLocalMode is the thread-local storage model of a global variable.
type ThreadLocalMode int

// ThreadLocalMode members.
const (
	NotThreadLocal ThreadLocalMode = 0
	GeneralDynamic ThreadLocalMode = 1
	LocalDynamic   ThreadLocalMode = 2
	InitialExec    ThreadLocalMode = 3
	LocalExec      ThreadLocalMode = 4
)

// ThreadLocalModeTable lists every ThreadLocalMode member with its native value.
var ThreadLocalModeTable = newTable("ThreadLocalMode", []Member{
	{Name: "NotThreadLocal", Value: int64(NotThreadLocal)},
	{Name: "GeneralDynamic", Value: int64(GeneralDynamic)},
	{Name: "LocalDynamic", Value: int64(LocalDynamic)},
	{Name: "InitialExec", Value: int64(InitialExec)},
	{Name: "LocalExec", Value: int64(LocalExec)},
})

func (v ThreadLocalMode) String() string { return ThreadLocalModeTable.name(int64(v)) }

// Doc returns the description of the member from the native header.
func (v ThreadLocalMode) Doc() string { return ThreadLocalModeTable.doc(int64(v)) }
