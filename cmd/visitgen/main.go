// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Command visitgen generates compile-time checked visitors for closed sets
// of Go types. Run it from a //go:generate directive:
//
//	//go:generate go run code.hybscloud.com/visit/cmd/visitgen generate --name Shape --types Circle,Square
package main

import (
	"fmt"
	"os"

	"code.hybscloud.com/visit/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
