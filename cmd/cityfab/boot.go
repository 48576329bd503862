package main

import (
	"github.com/cityfab/cityfab/engine"
	"github.com/cityfab/cityfab/massing"
	"github.com/spf13/cobra"
)

// newContext boots a fresh engine.Context from the shared persistent
// flags. Each cityfab invocation is single-shot: there is no on-disk
// session, so multi-step scenarios (boot, then paint-road, then dump)
// are driven within one subcommand rather than across separate
// invocations, the same way the boot command below demonstrates a full
// pipeline run in one call.
func newContext(width, height *float64, seed *uint32, era *int) *engine.Context {
	c := engine.NewContext(*width, *height)
	c.Boot(engine.BootRequest{Seed: *seed, Era: massing.Era(*era)})
	return c
}

func newBootCmd(width, height *float64, seed *uint32, era *int) *cobra.Command {
	return &cobra.Command{
		Use:   "boot",
		Short: "Run the layout pipeline and print road/intersection counts",
		RunE: func(cmd *cobra.Command, args []string) error {
			c := newContext(width, height, seed, era)
			reply := c.GetRoads()
			mustPrintln("roads: %d segments, %d intersections", len(reply.Segments), len(reply.Intersections))
			return nil
		},
	}
}
