// Copyright (C) 2024 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

package enum

// AtomicOrdering is the memory ordering of an atomic operation.
type AtomicOrdering int

// AtomicOrdering members.
const (
	OrderingNotAtomic              AtomicOrdering = 0
	OrderingUnordered              AtomicOrdering = 1
	OrderingMonotonic              AtomicOrdering = 2
	OrderingAcquire                AtomicOrdering = 4
	OrderingRelease                AtomicOrdering = 5
	OrderingAcquireRelease         AtomicOrdering = 6
	OrderingSequentiallyConsistent AtomicOrdering = 7
)

// AtomicOrderingTable lists every AtomicOrdering member with its native value.
var AtomicOrderingTable = newTable("AtomicOrdering", []Member{
	{Name: "NotAtomic", Value: int64(OrderingNotAtomic), Doc: "A load or store which is not atomic"},
	{Name: "Unordered", Value: int64(OrderingUnordered), Doc: "Lowest level of atomicity, guarantees somewhat sane results, lock free."},
	{Name: "Monotonic", Value: int64(OrderingMonotonic), Doc: "guarantees that if you take all the operations affecting a specific address, a consistent ordering exists"},
	{Name: "Acquire", Value: int64(OrderingAcquire), Doc: "Acquire provides a barrier of the sort necessary to acquire a lock to access other memory with normal loads and stores."},
	{Name: "Release", Value: int64(OrderingRelease), Doc: "Release is similar to Acquire, but with a barrier of the sort necessary to release a lock."},
	{Name: "AcquireRelease", Value: int64(OrderingAcquireRelease), Doc: "provides both an Acquire and a Release barrier (for fences and operations which both read and write memory)."},
	{Name: "SequentiallyConsistent", Value: int64(OrderingSequentiallyConsistent), Doc: "provides Acquire semantics for loads and Release semantics for stores. Additionally, it guarantees that a total ordering exists between all SequentiallyConsistent operations."},
})

func (v AtomicOrdering) String() string { return AtomicOrderingTable.name(int64(v)) }

// Doc returns the description of the member from the native header.
func (v AtomicOrdering) Doc() string { return AtomicOrderingTable.doc(int64(v)) }

// AtomicRMWBinOp is the operation performed by an atomicrmw instruction.
type AtomicRMWBinOp int

// AtomicRMWBinOp members.
const (
	RMWXchg AtomicRMWBinOp = 0
	RMWAdd  AtomicRMWBinOp = 1
	RMWSub  AtomicRMWBinOp = 2
	RMWAnd  AtomicRMWBinOp = 3
	RMWNand AtomicRMWBinOp = 4
	RMWOr   AtomicRMWBinOp = 5
	RMWXor  AtomicRMWBinOp = 6
	RMWMax  AtomicRMWBinOp = 7
	RMWMin  AtomicRMWBinOp = 8
	RMWUMax AtomicRMWBinOp = 9
	RMWUMin AtomicRMWBinOp = 10
	RMWFAdd AtomicRMWBinOp = 11
	RMWFSub AtomicRMWBinOp = 12
	RMWFMax AtomicRMWBinOp = 13
	RMWFMin AtomicRMWBinOp = 14
)

// AtomicRMWBinOpTable lists every AtomicRMWBinOp member with its native value.
var AtomicRMWBinOpTable = newTable("AtomicRMWBinOp", []Member{
	{Name: "Xchg", Value: int64(RMWXchg), Doc: "Set the new value and return the one old"},
	{Name: "Add", Value: int64(RMWAdd), Doc: "Add a value and return the old one"},
	{Name: "Sub", Value: int64(RMWSub), Doc: "Subtract a value and return the old one"},
	{Name: "And", Value: int64(RMWAnd), Doc: "And a value and return the old one"},
	{Name: "Nand", Value: int64(RMWNand), Doc: "Not-And a value and return the old one"},
	{Name: "Or", Value: int64(RMWOr), Doc: "OR a value and return the old one"},
	{Name: "Xor", Value: int64(RMWXor), Doc: "Xor a value and return the old one"},
	{Name: "Max", Value: int64(RMWMax), Doc: "Sets the value if it's greater than the original using a signed comparison and return the old one"},
	{Name: "Min", Value: int64(RMWMin), Doc: "Sets the value if it's Smaller than the original using a signed comparison and return the old one"},
	{Name: "UMax", Value: int64(RMWUMax), Doc: "Sets the value if it's greater than the original using an unsigned comparison and return the old one"},
	{Name: "UMin", Value: int64(RMWUMin), Doc: "Sets the value if it's greater than the original using an unsigned comparison and return the old one"},
	{Name: "FAdd", Value: int64(RMWFAdd), Doc: "Add a floating point value and return the old one"},
	{Name: "FSub", Value: int64(RMWFSub), Doc: "Subtract a floating point value and return the old one"},
	{Name: "FMax", Value: int64(RMWFMax), Doc: "Sets the value if it's greater than the original using an floating point comparison and return the old one"},
	{Name: "FMin", Value: int64(RMWFMin), Doc: "Sets the value if it's smaller than the original using an floating point comparison and return the old one"},
})

func (v AtomicRMWBinOp) String() string { return AtomicRMWBinOpTable.name(int64(v)) }

// Doc returns the description of the member from the native header.
func (v AtomicRMWBinOp) Doc() string { return AtomicRMWBinOpTable.doc(int64(v)) }
