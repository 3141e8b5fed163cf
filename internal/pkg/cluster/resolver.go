// Package cluster resolves in-cluster addresses through the Kubernetes API.
// Copyright 2024 Apigee Ops authors. All rights reserved.
// SPDX-License-Identifier: Apache-2.0
package cluster

import (
	"context"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	corev1 "k8s.io/api/core/v1"
	apierrors "k8s.io/apimachinery/pkg/api/errors"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/client-go/kubernetes"
	"k8s.io/client-go/rest"
	"k8s.io/client-go/tools/clientcmd"
)

var clog = logrus.WithField("component", "ClusterResolver")

// NewRESTConfig returns the ambient in-cluster client configuration, or one
// built from the given kubeconfig file when set.
func NewRESTConfig(kubeConfigFile string) (*rest.Config, error) {
	if kubeConfigFile != "" {
		config, err := clientcmd.BuildConfigFromFlags("", kubeConfigFile)
		if err != nil {
			return nil, errors.Wrapf(err, "building client config from %s", kubeConfigFile)
		}
		return config, nil
	}
	config, err := rest.InClusterConfig()
	if err != nil {
		return nil, errors.Wrap(err, "loading in-cluster config")
	}
	return config, nil
}

// Resolver looks up Service addresses.
type Resolver struct {
	client kubernetes.Interface
}

// NewResolver creates a Resolver talking to the cluster described by config.
func NewResolver(config *rest.Config) (*Resolver, error) {
	client, err := kubernetes.NewForConfig(config)
	if err != nil {
		return nil, err
	}
	return &Resolver{client: client}, nil
}

// Resolve returns the ClusterIP of the named Service. Services without an
// address, headless ones included, are reported as errors so the caller can
// abort instead of probing a useless target list.
func (r *Resolver) Resolve(ctx context.Context, namespace, name string) (string, error) {
	clog.Infof("fetching address for service %q in namespace %q", name, namespace)
	service, err := r.client.CoreV1().Services(namespace).Get(ctx, name, metav1.GetOptions{})
	if err != nil {
		if apierrors.IsNotFound(err) {
			return "", errors.Errorf("service %q not found in namespace %q", name, namespace)
		}
		return "", errors.Wrapf(err, "fetching service %q", name)
	}
	address := service.Spec.ClusterIP
	if address == "" || address == corev1.ClusterIPNone {
		return "", errors.Errorf("service %q found, but it has no ClusterIP", name)
	}
	return address, nil
}
