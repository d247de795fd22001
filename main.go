package main

import (
	"fmt"
	"os"

	"github.com/llehouerou/trackersearch/internal/cli"
)

// version is set at build time via ldflags.
var version = "dev"

func main() {
	if err := cli.Execute(version); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
