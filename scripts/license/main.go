// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
)

// Run using
//  go run ./scripts/license --dir . [--check]

var (
	dirFlag = cli.StringFlag{
		Name:     "dir",
		Usage:    "directory to start processing files from",
		Required: true,
	}
	checkFlag = cli.BoolFlag{
		Name:  "check",
		Usage: "only verify headers, do not modify files",
	}
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:      "license",
		Usage:     "adds or checks license headers of project files",
		Copyright: "(c) 2025 Sonic Operations Ltd",
		Flags: []cli.Flag{
			&dirFlag,
			&checkFlag,
		},
		Action: run,
	}
}

func run(ctx *cli.Context) error {
	dir := ctx.String(dirFlag.Name)
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		return fmt.Errorf("invalid target directory: '%s'", dir)
	}
	fmt.Fprintf(ctx.App.Writer, "Processing files in directory: %s\n", dir)
	return processTree(dir, licenseHeader, ctx.Bool(checkFlag.Name))
}
