// Copyright (C) 2024 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

package ownership

import (
	"sort"
	"sync"

	"llvmbind/logger"
)

// Registry counts the owners that still hold a native resource, per resource
// name. It is safe for concurrent use.
type Registry struct {
	mu   sync.Mutex
	live map[string]int
}

// Default is the process-wide registry used by New and NewShared.
var Default = NewRegistry()

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{live: make(map[string]int)}
}

// New returns an Owning owner tracked by r.
func (r *Registry) New(resource string, release func()) *Owner {
	o := &Owner{resource: resource, kind: Owning, live: true, release: release, reg: r}
	r.track(resource)
	return o
}

// NewShared returns a Shared owner tracked by r together with its first lease.
func (r *Registry) NewShared(resource string, release func()) (*Owner, *Lease) {
	o := &Owner{resource: resource, kind: Shared, live: true, leases: 1, release: release, reg: r}
	r.track(resource)
	return o, &Lease{owner: o}
}

// Live returns the number of owners of resource that were not released yet.
func (r *Registry) Live(resource string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.live[resource]
}

// Snapshot returns a copy of all non-zero live counts.
func (r *Registry) Snapshot() map[string]int {
	r.mu.Lock()
	defer r.mu.Unlock()
	snap := make(map[string]int, len(r.live))
	for k, v := range r.live {
		if v != 0 {
			snap[k] = v
		}
	}
	return snap
}

// ReportLeaks logs every resource that still has live owners and returns
// how many owners are outstanding in total.
func (r *Registry) ReportLeaks() int {
	snap := r.Snapshot()
	names := make([]string, 0, len(snap))
	for k := range snap {
		names = append(names, k)
	}
	sort.Strings(names)
	total := 0
	for _, k := range names {
		logger.Debugf("ownership: %d live %s", snap[k], k)
		total += snap[k]
	}
	return total
}

func (r *Registry) track(resource string) {
	r.mu.Lock()
	r.live[resource]++
	r.mu.Unlock()
	logger.Debugf("ownership: acquired %s", resource)
}

func (r *Registry) untrack(resource string) {
	r.mu.Lock()
	r.live[resource]--
	r.mu.Unlock()
}
