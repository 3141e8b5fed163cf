// Package targets renders Prometheus file-based service discovery target
// groups for Apigee health probes.
// Copyright 2024 Apigee Ops authors. All rights reserved.
// SPDX-License-Identifier: Apache-2.0
package targets

import (
	"fmt"

	"github.com/apigee-ops/apigee-target-generator/internal/pkg/routes"
)

// Job is the job label attached to every generated target group.
const Job = "apigee-health"

// healthzPrefix is prepended to every basepath when building the probe URL.
const healthzPrefix = "/healthz"

// Labels identify the route a probe URL covers. The URL itself carries the
// service address, so apigee_hostname is the only place the routed hostname
// survives; health-check tooling reads it to set the HTTP Host header.
type Labels struct {
	Hostname string `json:"apigee_hostname"`
	Basepath string `json:"apigee_basepath"`
	Job      string `json:"job"`
}

// Group is one entry of a Prometheus file_sd target list.
type Group struct {
	Targets []string `json:"targets"`
	Labels  Labels   `json:"labels"`
}

// Generate produces one target group per (hostname, basepath) pair, in
// RouteMap order. Probe URLs address the service directly and append the
// basepath verbatim, malformed or not, after the /healthz segment.
func Generate(address string, routeMap *routes.RouteMap) []Group {
	var groups []Group
	for _, hostname := range routeMap.Hostnames() {
		for _, path := range routeMap.Paths(hostname) {
			probeURL := fmt.Sprintf("https://%s%s%s", address, healthzPrefix, path)
			groups = append(groups, Group{
				Targets: []string{probeURL},
				Labels: Labels{
					Hostname: hostname,
					Basepath: path,
					Job:      Job,
				},
			})
		}
	}
	return groups
}
