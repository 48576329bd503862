// Command cityfab drives a single engine.Context from the shell: one
// process, one in-memory city, one subcommand per engine request. It
// exists to exercise the engine end to end without a network transport;
// a real integration wires the same Context behind whatever RPC layer
// the host application already uses.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var width, height float64
	var seed uint32
	var era int

	root := &cobra.Command{
		Use:   "cityfab",
		Short: "Procedural urban-fabric generator",
		Long:  "cityfab drives the road graph, block finder, parcel subdivider, and massing generator from the command line.",
	}
	root.PersistentFlags().Float64Var(&width, "width", 2000, "planning area width, meters")
	root.PersistentFlags().Float64Var(&height, "height", 2000, "planning area height, meters")
	root.PersistentFlags().Uint32Var(&seed, "seed", 1, "layout seed")
	root.PersistentFlags().IntVar(&era, "era", 1950, "layout era (year)")

	root.AddCommand(
		newBootCmd(&width, &height, &seed, &era),
		newPaintRoadCmd(&width, &height, &seed, &era),
		newPaintZoneCmd(&width, &height, &seed, &era),
		newGenerateBuildingCmd(&width, &height, &seed, &era),
		newDumpCmd(&width, &height, &seed, &era),
	)
	return root
}

func mustPrintln(format string, args ...interface{}) {
	fmt.Fprintf(os.Stdout, format+"\n", args...)
}
