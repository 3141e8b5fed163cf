// Copyright 2024 Apigee Ops authors. All rights reserved.
// SPDX-License-Identifier: Apache-2.0
package main

import (
	"context"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"

	"github.com/apigee-ops/apigee-target-generator/internal/pkg/cluster"
	"github.com/apigee-ops/apigee-target-generator/internal/pkg/routes"
	"github.com/apigee-ops/apigee-target-generator/internal/pkg/targets"
)

func main() {
	cfg, err := loadConfig(os.Args[1:])
	if err == pflag.ErrHelp {
		return
	}
	if err != nil {
		logrus.WithError(err).Fatal("while loading configuration")
	}
	if cfg.Verbose {
		logrus.SetLevel(logrus.DebugLevel)
	}

	restConfig, err := cluster.NewRESTConfig(cfg.KubeConfigFile)
	if err != nil {
		logrus.WithError(err).Fatal("while loading Kubernetes client configuration")
	}

	ctx := context.Background()

	resolver, err := cluster.NewResolver(restConfig)
	if err != nil {
		logrus.WithError(err).Fatal("while creating Kubernetes client")
	}
	address, err := resolver.Resolve(ctx, cfg.Namespace, cfg.ServiceName)
	if err != nil {
		logrus.WithError(err).Fatal("while resolving service address")
	}
	logrus.Infof("found service address: %s", address)

	fetcher, err := routes.NewFetcher(restConfig)
	if err != nil {
		logrus.WithError(err).Fatal("while creating dynamic Kubernetes client")
	}
	items, err := fetcher.Fetch(ctx, cfg.Namespace)
	if err != nil {
		logrus.WithError(err).Fatal("while fetching ApigeeRoutes")
	}

	routeMap := routes.Parse(items)
	if routeMap.Empty() {
		logrus.Info("no valid Apigee routes found")
		if err := targets.WriteFile(cfg.OutputFile, nil); err != nil {
			logrus.WithError(err).Fatal("while writing target file")
		}
		return
	}

	groups := targets.Generate(address, routeMap)
	if err := targets.WriteFile(cfg.OutputFile, groups); err != nil {
		logrus.WithError(err).Fatal("while writing target file")
	}
	logrus.Infof("wrote %d targets to %s", len(groups), cfg.OutputFile)
}
