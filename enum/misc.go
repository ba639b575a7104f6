// Copyright (C) 2024 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

package enum

// LandingPadClauseTy is the kind of a landingpad clause.
type LandingPadClauseTy int

// LandingPadClauseTy members.
const (
	LandingPadCatch  LandingPadClauseTy = 0
	LandingPadFilter LandingPadClauseTy = 1
)

// LandingPadClauseTyTable lists every LandingPadClauseTy member with its native value.
var LandingPadClauseTyTable = newTable("LandingPadClauseTy", []Member{
	{Name: "Catch", Value: int64(LandingPadCatch), Doc: "A catch clause"},
	{Name: "Filter", Value: int64(LandingPadFilter), Doc: "A filter clause"},
})

func (v LandingPadClauseTy) String() string { return LandingPadClauseTyTable.name(int64(v)) }

// Doc returns the description of the member from the native header.
func (v LandingPadClauseTy) Doc() string { return LandingPadClauseTyTable.doc(int64(v)) }

// DiagnosticSeverity is the severity of a diagnostic reported by the native library.
type DiagnosticSeverity int

// DiagnosticSeverity members.
const (
	DiagnosticError   DiagnosticSeverity = 0
	DiagnosticWarning DiagnosticSeverity = 1
	DiagnosticRemark  DiagnosticSeverity = 2
	DiagnosticNote    DiagnosticSeverity = 3
)

// DiagnosticSeverityTable lists every DiagnosticSeverity member with its native value.
var DiagnosticSeverityTable = newTable("DiagnosticSeverity", []Member{
	{Name: "Error", Value: int64(DiagnosticError)},
	{Name: "Warning", Value: int64(DiagnosticWarning)},
	{Name: "Remark", Value: int64(DiagnosticRemark)},
	{Name: "Note", Value: int64(DiagnosticNote)},
})

func (v DiagnosticSeverity) String() string { return DiagnosticSeverityTable.name(int64(v)) }

// Doc returns the description of the member from the native header.
func (v DiagnosticSeverity) Doc() string { return DiagnosticSeverityTable.doc(int64(v)) }

// InlineAsmDialect is the assembler dialect of an inline asm value.
type InlineAsmDialect int

// InlineAsmDialect members.
const (
	InlineAsmATT   InlineAsmDialect = 0
	InlineAsmIntel InlineAsmDialect = 1
)

// InlineAsmDialectTable lists every InlineAsmDialect member with its native value.
var InlineAsmDialectTable = newTable("InlineAsmDialect", []Member{
	{Name: "ATT", Value: int64(InlineAsmATT)},
	{Name: "Intel", Value: int64(InlineAsmIntel)},
})

func (v InlineAsmDialect) String() string { return InlineAsmDialectTable.name(int64(v)) }

// Doc returns the description of the member from the native header.
func (v InlineAsmDialect) Doc() string { return InlineAsmDialectTable.doc(int64(v)) }

// ModuleFlagBehavior decides how conflicting module flags are merged.
type ModuleFlagBehavior int

// ModuleFlagBehavior members.
const (
	ModuleFlagError        ModuleFlagBehavior = 0
	ModuleFlagWarning      ModuleFlagBehavior = 1
	ModuleFlagRequire      ModuleFlagBehavior = 2
	ModuleFlagOverride     ModuleFlagBehavior = 3
	ModuleFlagAppend       ModuleFlagBehavior = 4
	ModuleFlagAppendUnique ModuleFlagBehavior = 5
)

// ModuleFlagBehaviorTable lists every ModuleFlagBehavior member with its native value.
var ModuleFlagBehaviorTable = newTable("ModuleFlagBehavior", []Member{
	{Name: "Error", Value: int64(ModuleFlagError), Doc: "Adds a requirement that another module flag be present and have a specified value after linking is performed. The value must be a metadata pair, where the first element of the pair is the ID of the module flag to be restricted, and the second element of the pair is the value the module flag should be restricted to. This behavior can be used to restrict the allowable results (via triggering of an error) of linking IDs with the **Override** behavior."},
	{Name: "Warning", Value: int64(ModuleFlagWarning), Doc: "Emits a warning if two values disagree. The result value will be the operand for the flag from the first module being linked."},
	{Name: "Require", Value: int64(ModuleFlagRequire), Doc: "Adds a requirement that another module flag be present and have a specified value after linking is performed. The value must be a metadata pair, where the first element of the pair is the ID of the module flag to be restricted, and the second element of the pair is the value the module flag should be restricted to. This behavior can be used to restrict the allowable results (via triggering of an error) of linking IDs with the **Override** behavior."},
	{Name: "Override", Value: int64(ModuleFlagOverride), Doc: "Uses the specified value, regardless of the behavior or value of the other module. If both modules specify **Override**, but the values differ, an error will be emitted."},
	{Name: "Append", Value: int64(ModuleFlagAppend), Doc: "Appends the two values, which are required to be metadata nodes."},
	{Name: "AppendUnique", Value: int64(ModuleFlagAppendUnique), Doc: "Appends the two values, which are required to be metadata nodes. However, duplicate entries in the second list are dropped during the append operation."},
})

func (v ModuleFlagBehavior) String() string { return ModuleFlagBehaviorTable.name(int64(v)) }

// Doc returns the description of the member from the native header.
func (v ModuleFlagBehavior) Doc() string { return ModuleFlagBehaviorTable.doc(int64(v)) }

// TailCallKind is the tail call marker of a call instruction.
type TailCallKind int

// TailCallKind members.
const (
	TailCallNone     TailCallKind = 0
	TailCallTail     TailCallKind = 1
	TailCallMustTail TailCallKind = 2
	TailCallNoTail   TailCallKind = 3
)

// TailCallKindTable lists every TailCallKind member with its native value.
var TailCallKindTable = newTable("TailCallKind", []Member{
	{Name: "None", Value: int64(TailCallNone)},
	{Name: "Tail", Value: int64(TailCallTail)},
	{Name: "MustTail", Value: int64(TailCallMustTail)},
	{Name: "NoTail", Value: int64(TailCallNoTail)},
})

func (v TailCallKind) String() string { return TailCallKindTable.name(int64(v)) }

// Doc returns the description of the member from the native header.
func (v TailCallKind) Doc() string { return TailCallKindTable.doc(int64(v)) }

// VerifierFailureAction selects what the verifier does when it finds a broken module.
type VerifierFailureAction int

// VerifierFailureAction members.
const (
	AbortProcess VerifierFailureAction = 0
	PrintMessage VerifierFailureAction = 1
	ReturnStatus VerifierFailureAction = 2
)

// VerifierFailureActionTable lists every VerifierFailureAction member with its native value.
var VerifierFailureActionTable = newTable("VerifierFailureAction", []Member{
	{Name: "AbortProcess", Value: int64(AbortProcess), Doc: "verifier will print to stderr and abort()"},
	{Name: "PrintMessage", Value: int64(PrintMessage), Doc: "verifier will print to stderr and return 1"},
	{Name: "ReturnStatus", Value: int64(ReturnStatus), Doc: "verifier will just return 1"},
})

func (v VerifierFailureAction) String() string { return VerifierFailureActionTable.name(int64(v)) }

// Doc returns the description of the member from the native header.
func (v VerifierFailureAction) Doc() string { return VerifierFailureActionTable.doc(int64(v)) }
