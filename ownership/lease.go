// Copyright (C) 2024 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

package ownership

// Lease is one counted claim on a Shared owner. The owner's release action
// runs when the last outstanding lease is dropped.
type Lease struct {
	owner   *Owner
	dropped bool
}

// Acquire takes an additional lease on a Shared owner.
func (o *Owner) Acquire() (*Lease, error) {
	if o.kind != Shared {
		return nil, ErrNotOwned
	}
	if !o.live {
		return nil, o.Check()
	}
	o.leases++
	return &Lease{owner: o}, nil
}

// Leases returns the number of outstanding leases.
func (o *Owner) Leases() int { return o.leases }

// Owner returns the shared owner the lease was taken on.
func (l *Lease) Owner() *Owner { return l.owner }

// Held reports whether the lease has not been dropped yet.
func (l *Lease) Held() bool { return l != nil && !l.dropped }

// Check fails if the lease was dropped or the owner is gone.
func (l *Lease) Check() error {
	if l.dropped {
		return &UseAfterFreeError{Resource: l.owner.resource, Transferred: false}
	}
	return l.owner.Check()
}

// Drop gives the claim back. Dropping the same lease twice returns
// ErrReleased without touching the count.
func (l *Lease) Drop() error {
	if l.dropped {
		return ErrReleased
	}
	l.dropped = true
	o := l.owner
	o.leases--
	if o.leases == 0 && o.live {
		o.finish(true)
	}
	return nil
}
