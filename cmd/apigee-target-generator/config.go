// Copyright 2024 Apigee Ops authors. All rights reserved.
// SPDX-License-Identifier: Apache-2.0
package main

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config holds the settings for a single generator run. Every field can be
// set by flag or by environment variable (ATG_ prefix, dashes as
// underscores); flags win.
type Config struct {
	Namespace      string `mapstructure:"namespace"`
	ServiceName    string `mapstructure:"service-name"`
	OutputFile     string `mapstructure:"output-file"`
	KubeConfigFile string `mapstructure:"kubeconfig"`
	Verbose        bool   `mapstructure:"verbose"`
}

func loadConfig(args []string) (*Config, error) {
	flags := pflag.NewFlagSet("apigee-target-generator", pflag.ContinueOnError)
	flags.StringP("namespace", "n", "apigee", "Kubernetes namespace where Apigee is installed")
	flags.StringP("service-name", "s", "", "name of the Apigee ingress service (e.g. apigee-ingressgateway-test1-svc)")
	flags.StringP("output-file", "o", "apigee_targets.json", "output file path for the Prometheus targets")
	flags.String("kubeconfig", "", "kubeconfig file for running outside the cluster; defaults to the in-cluster config")
	flags.Bool("verbose", false, "enable debug logging")
	if err := flags.Parse(args); err != nil {
		return nil, err
	}

	cfg := viper.New()
	cfg.SetEnvPrefix("atg")
	cfg.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	cfg.AutomaticEnv()
	if err := cfg.BindPFlags(flags); err != nil {
		return nil, err
	}

	var c Config
	if err := cfg.Unmarshal(&c); err != nil {
		return nil, err
	}
	if c.ServiceName == "" {
		return nil, errors.New("service-name is required and can't be empty")
	}
	return &c, nil
}
