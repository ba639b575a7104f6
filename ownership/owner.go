// Copyright (C) 2024 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

// Package ownership tracks who releases a native resource and whether a
// borrowed view of it is still usable.
//
// An Owner wraps one native resource together with the action that releases
// it. The action runs at most once. A Ref is a borrowed view that captures the
// owner's generation at the time it was taken; once the owner is released or
// its resource is transferred to the native library, every Ref taken from it
// fails its Check with a UseAfterFreeError instead of touching freed memory.
//
// Owners are not safe for concurrent use: a resource and every view derived
// from it belong to a single goroutine at a time. The Registry used for
// accounting is the only shared state and is synchronized.
package ownership

import (
	"errors"

	"llvmbind/logger"
)

//go:generate go run golang.org/x/tools/cmd/stringer -type=Kind

// Kind describes how a handle relates to its native resource.
type Kind int

const (
	// Owning handles release their resource exactly once.
	Owning Kind = iota
	// Borrowing handles never release anything.
	Borrowing
	// Shared handles are reference counted through leases.
	Shared
	// Transferred handles gave their resource away to the native library.
	Transferred
)

// ErrReleased is returned by Release and Transfer on an owner that no longer
// holds its resource.
var ErrReleased = errors.New("resource already released")

// ErrNotOwned is returned when releasing or transferring a resource that the
// handle merely borrows.
var ErrNotOwned = errors.New("resource is not owned by this handle")

// Owner holds one native resource.
type Owner struct {
	resource string
	kind     Kind
	gen      uint64
	live     bool
	leases   int
	release  func()
	reg      *Registry
}

// New returns an Owning owner for resource that runs release exactly once.
func New(resource string, release func()) *Owner {
	return Default.New(resource, release)
}

// NewShared returns a Shared owner and the first lease on it.
func NewShared(resource string, release func()) (*Owner, *Lease) {
	return Default.NewShared(resource, release)
}

// Static returns a Borrowing owner for a resource that lives for the whole
// process and is never released by callers.
func Static(resource string) *Owner {
	return &Owner{resource: resource, kind: Borrowing, live: true}
}

// Resource returns the resource name the owner was created with.
func (o *Owner) Resource() string { return o.resource }

// Kind returns the current ownership kind.
func (o *Owner) Kind() Kind { return o.kind }

// Alive reports whether the native resource is still held.
func (o *Owner) Alive() bool { return o != nil && o.live }

// Ref returns a borrowed view bound to the current generation.
func (o *Owner) Ref() Ref {
	return Ref{owner: o, gen: o.gen}
}

// Check fails with a UseAfterFreeError if the owner no longer holds its
// resource.
func (o *Owner) Check() error {
	if o.Alive() {
		return nil
	}
	return &UseAfterFreeError{Resource: o.resource, Transferred: o.kind == Transferred}
}

// Release runs the release action. Calling it again returns ErrReleased and
// does not run the action a second time. Shared owners must be released
// through their leases.
func (o *Owner) Release() error {
	switch {
	case o.kind == Borrowing:
		return ErrNotOwned
	case o.kind == Shared:
		return errors.New("shared resource must be released through its leases")
	case !o.live:
		return ErrReleased
	}
	o.finish(true)
	return nil
}

// Transfer marks the resource as taken over by the native library. The
// release action will never run and every Ref becomes invalid.
func (o *Owner) Transfer() error {
	switch {
	case o.kind == Borrowing:
		return ErrNotOwned
	case o.kind == Shared:
		return errors.New("shared resource cannot be transferred")
	case !o.live:
		return ErrReleased
	}
	o.kind = Transferred
	o.finish(false)
	return nil
}

func (o *Owner) finish(runRelease bool) {
	o.live = false
	o.gen++
	if runRelease && o.release != nil {
		o.release()
	}
	o.release = nil
	if runRelease {
		logger.Debugf("ownership: released %s", o.resource)
	} else {
		logger.Debugf("ownership: transferred %s", o.resource)
	}
	if o.reg != nil {
		o.reg.untrack(o.resource)
	}
}

// Revoke invalidates every Ref taken so far while keeping the resource alive.
// It is used after structural edits that may have freed objects borrowed
// from the resource; callers then take fresh Refs.
func (o *Owner) Revoke() {
	if o.live {
		o.gen++
	}
}
