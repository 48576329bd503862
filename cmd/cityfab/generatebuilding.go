package main

import (
	"github.com/cityfab/cityfab/engine"
	"github.com/cityfab/cityfab/geom"
	"github.com/cityfab/cityfab/parcel"
	"github.com/spf13/cobra"
)

func newGenerateBuildingCmd(width, height *float64, seed *uint32, era *int) *cobra.Command {
	var x, y float64
	var level int
	var event, zone, density string

	cmd := &cobra.Command{
		Use:   "generate-building",
		Short: "Boot, paint a zone around a point, then generate a building there",
		RunE: func(cmd *cobra.Command, args []string) error {
			c := newContext(width, height, seed, era)

			const halfSpan = 60.0
			polygon := geom.Polygon{
				{X: x - halfSpan, Y: y - halfSpan}, {X: x + halfSpan, Y: y - halfSpan},
				{X: x + halfSpan, Y: y + halfSpan}, {X: x - halfSpan, Y: y + halfSpan},
			}
			c.PaintZone(engine.PaintZoneRequest{
				Polygon: polygon, ZoneType: zoneFromFlag(zone), Density: densityFromFlag(density), Method: parcel.MethodSkeleton,
			})

			reply := c.GenerateBuildingForZone(engine.GenerateBuildingForZoneRequest{
				Position: geom.Vec2{X: x, Y: y}, Level: level, Event: event,
			})
			if !reply.Success {
				mustPrintln("rejected: %s", reply.Reason)
				return nil
			}
			mustPrintln("building spawned on parcel %d: %s style, %s roof, %d floors, %.1fm tall",
				reply.ParcelID, reply.Building.Style, reply.Building.Roof, reply.Building.FloorCount, reply.Building.TotalH)
			return nil
		},
	}
	cmd.Flags().Float64Var(&x, "x", 50, "query position x")
	cmd.Flags().Float64Var(&y, "y", 50, "query position y")
	cmd.Flags().IntVar(&level, "level", 1, "upgrade level")
	cmd.Flags().StringVar(&event, "event", "spawn", "event label, logged only")
	cmd.Flags().StringVar(&zone, "zone", "residential", "residential|commercial|industrial")
	cmd.Flags().StringVar(&density, "density", "medium", "low|medium|high")
	return cmd
}
