// Copyright (C) 2024 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

package ownership

// Ref is a borrowed view of a resource held by an Owner. The zero Ref
// borrows from a static resource and is always alive.
type Ref struct {
	owner *Owner
	gen   uint64
}

// Check fails with a UseAfterFreeError if the owner released or transferred
// its resource after the Ref was taken.
func (r Ref) Check() error {
	if r.owner == nil {
		return nil
	}
	if r.owner.live && r.owner.gen == r.gen {
		return nil
	}
	return &UseAfterFreeError{Resource: r.owner.resource, Transferred: r.owner.kind == Transferred}
}

// Alive reports whether Check would succeed.
func (r Ref) Alive() bool { return r.Check() == nil }

// Resource returns the name of the borrowed resource.
func (r Ref) Resource() string {
	if r.owner == nil {
		return "static"
	}
	return r.owner.resource
}

// SameOwner reports whether both views borrow from the same Owner.
func (r Ref) SameOwner(other Ref) bool { return r.owner == other.owner }

// Revoke invalidates every Ref of the same owner, this one included. It
// fails if the view is no longer valid.
func (r Ref) Revoke() error {
	if err := r.Check(); err != nil {
		return err
	}
	if r.owner != nil {
		r.owner.Revoke()
	}
	return nil
}

// Fresh returns a view of the same owner bound to its current generation.
func (r Ref) Fresh() Ref {
	if r.owner == nil {
		return r
	}
	return r.owner.Ref()
}

// OwnerAlive reports whether the owner still holds its resource, regardless
// of revocations since the Ref was taken.
func (r Ref) OwnerAlive() bool { return r.owner == nil || r.owner.live }
