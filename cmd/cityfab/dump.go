package main

import (
	"github.com/spf13/cobra"
)

func newDumpCmd(width, height *float64, seed *uint32, era *int) *cobra.Command {
	var stats bool

	cmd := &cobra.Command{
		Use:   "dump",
		Short: "Boot and dump summary statistics for the generated fabric",
		RunE: func(cmd *cobra.Command, args []string) error {
			c := newContext(width, height, seed, era)
			roads := c.GetRoads()
			blocks := c.GetBlocks()
			parcels := c.GetParcels()

			if !stats {
				mustPrintln("use --stats to print a summary")
				return nil
			}
			mustPrintln("segments=%d intersections=%d blocks=%d parcels=%d",
				len(roads.Segments), len(roads.Intersections), len(blocks.Blocks), len(parcels.Parcels))
			return nil
		},
	}
	cmd.Flags().BoolVar(&stats, "stats", false, "print counts instead of a usage hint")
	return cmd
}
