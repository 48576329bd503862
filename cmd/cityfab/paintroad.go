package main

import (
	"github.com/cityfab/cityfab/engine"
	"github.com/cityfab/cityfab/geom"
	"github.com/cityfab/cityfab/roadgraph"
	"github.com/spf13/cobra"
)

func newPaintRoadCmd(width, height *float64, seed *uint32, era *int) *cobra.Command {
	var sx, sy, ex, ey float64
	var class string

	cmd := &cobra.Command{
		Use:   "paint-road",
		Short: "Boot, then paint one external road segment and report the result",
		RunE: func(cmd *cobra.Command, args []string) error {
			c := newContext(width, height, seed, era)
			reply := c.PaintRoad(engine.PaintRoadRequest{
				Start: geom.Vec2{X: sx, Y: sy},
				End:   geom.Vec2{X: ex, Y: ey},
				Class: classFromFlag(class),
			})
			if !reply.Success {
				mustPrintln("rejected: %s", reply.Reason)
				return nil
			}
			mustPrintln("painted: %d new segments, %d intersections touched", len(reply.Segments), len(reply.Intersections))
			return nil
		},
	}
	cmd.Flags().Float64Var(&sx, "sx", 0, "start x")
	cmd.Flags().Float64Var(&sy, "sy", 0, "start y")
	cmd.Flags().Float64Var(&ex, "ex", 100, "end x")
	cmd.Flags().Float64Var(&ey, "ey", 0, "end y")
	cmd.Flags().StringVar(&class, "class", "street", "road class: highway|avenue|street|local")
	return cmd
}

func classFromFlag(s string) roadgraph.RoadClass {
	switch s {
	case "highway":
		return roadgraph.ClassHighway
	case "avenue":
		return roadgraph.ClassAvenue
	case "local":
		return roadgraph.ClassLocal
	default:
		return roadgraph.ClassStreet
	}
}
