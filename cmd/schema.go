// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2025-Present Defense Unicorns

package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	configv0 "github.com/defenseunicorns/jsv/config/v0"
)

// SchemaMain prints the config file schema for the jsv-schema CLI.
//
// It returns 0 on success, 1 on failure.
func SchemaMain() int {
	schema := configv0.Schema()

	b, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v", err)
		return 1
	}

	fmt.Fprint(os.Stdout, string(b))
	return 0
}
