// SPDX-License-Identifier: MIT

// Command realdual evaluates functions and their exact derivatives with
// dual numbers. Run "realdual --help" for the command list.
package main

import (
	"os"

	"github.com/katalvlaran/realdual/internal/cli"
)

func main() {
	os.Exit(cli.Execute(os.Args[1:], os.Stdout, os.Stderr))
}
