// Copyright 2024 Apigee Ops authors. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package routes

// RouteMap maps hostnames to the basepaths routed to them. Both hostnames
// and the paths under each hostname keep first-insertion order, and a path
// repeated for the same hostname is kept once, so iterating a RouteMap built
// from the same input always yields the same sequence.
type RouteMap struct {
	hostnames []string
	paths     map[string][]string
}

// NewRouteMap returns an empty RouteMap.
func NewRouteMap() *RouteMap {
	return &RouteMap{paths: map[string][]string{}}
}

// Add records path under hostname. First-seen wins: a duplicate path for the
// same hostname is dropped.
func (m *RouteMap) Add(hostname, path string) {
	existing, seen := m.paths[hostname]
	if !seen {
		m.hostnames = append(m.hostnames, hostname)
	}
	for _, p := range existing {
		if p == path {
			return
		}
	}
	m.paths[hostname] = append(existing, path)
}

// Hostnames returns the hostnames in insertion order.
func (m *RouteMap) Hostnames() []string {
	return m.hostnames
}

// Paths returns the basepaths recorded for hostname, in insertion order.
func (m *RouteMap) Paths(hostname string) []string {
	return m.paths[hostname]
}

// Empty reports whether no routes were recorded.
func (m *RouteMap) Empty() bool {
	return len(m.hostnames) == 0
}
