// mapgen writes the node permutation table used by the map generator.
//
// A successful run creates exactly one file and writes nothing to
// standard output. Any misuse (missing argument, unwritable path)
// prints the usage line
// and exits 0: the tool is a one-shot batch job and never signals
// failure through its exit status.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/voxelmaps/mapgen/utils"
)

const usageLine = "Usage: mapgen output-file"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout))
}

func run(args []string, out io.Writer) int {
	if len(args) != 1 {
		fmt.Fprintln(out, usageLine)
		return 0
	}
	if _, err := utils.GenerateNodes(args[0]); err != nil {
		fmt.Fprintln(out, usageLine)
		return 0
	}
	return 0
}
