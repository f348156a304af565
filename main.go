// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package main

import (
	"fmt"
	"os"

	"github.com/danielhkuo/pollbooth/cli"
	"github.com/danielhkuo/pollbooth/cliparse"
)

func main() {
	cfg, err := cliparse.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error loading configuration:", err)
		os.Exit(1)
	}

	if err := cli.NewRootCommand(cfg).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
