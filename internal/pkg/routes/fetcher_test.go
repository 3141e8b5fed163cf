// Copyright 2024 Apigee Ops authors. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package routes

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"k8s.io/apimachinery/pkg/runtime"
	"k8s.io/apimachinery/pkg/runtime/schema"
	dynamicfake "k8s.io/client-go/dynamic/fake"
	k8stesting "k8s.io/client-go/testing"
)

func newFakeDynamicClient(objects ...runtime.Object) *dynamicfake.FakeDynamicClient {
	return dynamicfake.NewSimpleDynamicClientWithCustomListKinds(
		runtime.NewScheme(),
		map[schema.GroupVersionResource]string{apigeeRouteGVR: "ApigeeRouteList"},
		objects...,
	)
}

func TestFetchReturnsNamespacedRoutes(t *testing.T) {
	t.Parallel()

	inNamespace := apigeeRoute("orders", map[string]interface{}{
		"hostnames": hostnameList("a.example.com"),
		"rules":     httpRules("/v1/orders"),
	})
	elsewhere := apigeeRoute("payments", map[string]interface{}{
		"hostnames": hostnameList("b.example.com"),
		"rules":     httpRules("/v1/payments"),
	})
	elsewhere.SetNamespace("other")

	fetcher := &Fetcher{client: newFakeDynamicClient(&inNamespace, &elsewhere)}

	items, err := fetcher.Fetch(context.Background(), "apigee")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "orders", items[0].GetName())
}

func TestFetchEmptyNamespace(t *testing.T) {
	t.Parallel()

	fetcher := &Fetcher{client: newFakeDynamicClient()}

	items, err := fetcher.Fetch(context.Background(), "apigee")
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestFetchListFailure(t *testing.T) {
	t.Parallel()

	client := newFakeDynamicClient()
	client.PrependReactor("list", "apigeeroutes", func(k8stesting.Action) (bool, runtime.Object, error) {
		return true, nil, errors.New("unauthorized")
	})
	fetcher := &Fetcher{client: client}

	_, err := fetcher.Fetch(context.Background(), "apigee")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unauthorized")
}
