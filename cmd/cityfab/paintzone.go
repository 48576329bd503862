package main

import (
	"github.com/cityfab/cityfab/engine"
	"github.com/cityfab/cityfab/geom"
	"github.com/cityfab/cityfab/parcel"
	"github.com/spf13/cobra"
)

func newPaintZoneCmd(width, height *float64, seed *uint32, era *int) *cobra.Command {
	var x0, y0, x1, y1 float64
	var zone, density, method string

	cmd := &cobra.Command{
		Use:   "paint-zone",
		Short: "Boot, then subdivide the block(s) under an axis-aligned rectangle into parcels",
		RunE: func(cmd *cobra.Command, args []string) error {
			c := newContext(width, height, seed, era)
			polygon := geom.Polygon{
				{X: x0, Y: y0}, {X: x1, Y: y0}, {X: x1, Y: y1}, {X: x0, Y: y1},
			}
			reply := c.PaintZone(engine.PaintZoneRequest{
				Polygon:  polygon,
				ZoneType: zoneFromFlag(zone),
				Density:  densityFromFlag(density),
				Method:   methodFromFlag(method),
			})
			mustPrintln("painted %d parcels across %d blocks", len(reply.AffectedParcels), len(reply.Blocks))
			return nil
		},
	}
	cmd.Flags().Float64Var(&x0, "x0", 0, "rectangle min x")
	cmd.Flags().Float64Var(&y0, "y0", 0, "rectangle min y")
	cmd.Flags().Float64Var(&x1, "x1", 100, "rectangle max x")
	cmd.Flags().Float64Var(&y1, "y1", 100, "rectangle max y")
	cmd.Flags().StringVar(&zone, "zone", "residential", "residential|commercial|industrial")
	cmd.Flags().StringVar(&density, "density", "medium", "low|medium|high")
	cmd.Flags().StringVar(&method, "method", "skeleton", "skeleton|voronoi")
	return cmd
}

func zoneFromFlag(s string) parcel.ZoneType {
	switch s {
	case "commercial":
		return parcel.ZoneCommercial
	case "industrial":
		return parcel.ZoneIndustrial
	default:
		return parcel.ZoneResidential
	}
}

func densityFromFlag(s string) parcel.Density {
	switch s {
	case "low":
		return parcel.DensityLow
	case "high":
		return parcel.DensityHigh
	default:
		return parcel.DensityMedium
	}
}

func methodFromFlag(s string) parcel.Method {
	if s == "voronoi" {
		return parcel.MethodVoronoi
	}
	return parcel.MethodSkeleton
}
