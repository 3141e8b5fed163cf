// Copyright 2024 Apigee Ops authors. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package routes

import (
	"strings"

	"k8s.io/apimachinery/pkg/apis/meta/v1/unstructured"
)

// Basepaths under this prefix are Apigee-internal endpoints and never probed.
const internalPrefix = "/__apigee__/"

// Parse builds a RouteMap from raw ApigeeRoute objects. Objects lacking
// spec.hostnames or spec.rules.http contribute nothing, and neither do
// matches whose URI carries no usable prefix. Hostname and path order
// mirrors the order they are encountered in the input.
func Parse(items []unstructured.Unstructured) *RouteMap {
	routeMap := NewRouteMap()
	for i := range items {
		item := &items[i]
		hostnames, _, _ := unstructured.NestedStringSlice(item.Object, "spec", "hostnames")
		rules, _, _ := unstructured.NestedSlice(item.Object, "spec", "rules", "http")
		if len(hostnames) == 0 || len(rules) == 0 {
			rlog.Debugf("skipping ApigeeRoute %s: no hostnames or http rules", item.GetName())
			continue
		}
		paths := rulePaths(rules)
		if len(paths) == 0 {
			continue
		}
		for _, hostname := range hostnames {
			for _, path := range paths {
				routeMap.Add(hostname, path)
			}
		}
	}
	return routeMap
}

// rulePaths collects the URI prefixes matched by a list of HTTP rules, in
// encounter order. prefixPattern wins over prefix when both carry a value.
func rulePaths(rules []interface{}) []string {
	var paths []string
	for _, r := range rules {
		rule, ok := r.(map[string]interface{})
		if !ok {
			continue
		}
		matches, _, _ := unstructured.NestedSlice(rule, "matches")
		for _, m := range matches {
			match, ok := m.(map[string]interface{})
			if !ok {
				continue
			}
			uri, _, _ := unstructured.NestedMap(match, "uri")
			path, _ := uri["prefixPattern"].(string)
			if path == "" {
				path, _ = uri["prefix"].(string)
			}
			if path == "" || strings.HasPrefix(path, internalPrefix) {
				continue
			}
			paths = append(paths, path)
		}
	}
	return paths
}
