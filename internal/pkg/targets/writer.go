// Copyright 2024 Apigee Ops authors. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package targets

import (
	"encoding/json"
	"os"

	"github.com/pkg/errors"
)

// WriteFile serializes groups as a pretty-printed JSON array at path. A nil
// or empty slice is written as [], which Prometheus accepts as a valid
// file_sd document with no targets.
func WriteFile(path string, groups []Group) error {
	if groups == nil {
		groups = []Group{}
	}
	data, err := json.MarshalIndent(groups, "", "  ")
	if err != nil {
		return errors.Wrap(err, "encoding target groups")
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrap(err, "writing target file")
	}
	return nil
}
