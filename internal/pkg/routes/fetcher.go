// Package routes fetches ApigeeRoute custom resources and extracts the
// hostname to basepath routing table they declare.
// Copyright 2024 Apigee Ops authors. All rights reserved.
// SPDX-License-Identifier: Apache-2.0
package routes

import (
	"context"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/apis/meta/v1/unstructured"
	"k8s.io/apimachinery/pkg/runtime/schema"
	"k8s.io/client-go/dynamic"
	"k8s.io/client-go/rest"
)

var rlog = logrus.WithField("component", "ApigeeRoutes")

// GroupVersionResource of the ApigeeRoute custom resource.
var apigeeRouteGVR = schema.GroupVersionResource{
	Group:    "apigee.cloud.google.com",
	Version:  "v1alpha2",
	Resource: "apigeeroutes",
}

// Fetcher lists ApigeeRoute objects through the dynamic Kubernetes API.
// ApigeeRoutes have no published Go types, so items come back unstructured.
type Fetcher struct {
	client dynamic.Interface
}

// NewFetcher creates a Fetcher talking to the cluster described by config.
func NewFetcher(config *rest.Config) (*Fetcher, error) {
	client, err := dynamic.NewForConfig(config)
	if err != nil {
		return nil, err
	}
	return &Fetcher{client: client}, nil
}

// Fetch returns the raw ApigeeRoute objects present in the namespace. An
// empty namespace is not an error; the caller gets an empty slice.
func (f *Fetcher) Fetch(ctx context.Context, namespace string) ([]unstructured.Unstructured, error) {
	rlog.Infof("fetching ApigeeRoutes from namespace %q", namespace)
	list, err := f.client.Resource(apigeeRouteGVR).Namespace(namespace).List(ctx, metav1.ListOptions{})
	if err != nil {
		return nil, errors.Wrapf(err, "listing %s", apigeeRouteGVR.Resource)
	}
	return list.Items, nil
}
