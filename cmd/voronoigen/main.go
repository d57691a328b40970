package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math/rand/v2"
	"os"

	"github.com/mikenye/voronoi/box"
	"github.com/mikenye/voronoi/fortune"
	"github.com/mikenye/voronoi/vector2"
	"github.com/urfave/cli/v3"
)

func main() {
	cmd := &cli.Command{
		Name:      "voronoigen",
		Usage:     "Generates a random set of sites and outputs their Voronoi diagram to stdout as JSON",
		UsageText: "voronoigen --number <value> --maxx <value> --minx <value> --maxy <value> --miny <value>",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:     "number",
				Usage:    "The number of sites to create",
				Value:    10,
				Aliases:  []string{"n"},
				OnlyOnce: true,
				Validator: func(u int64) error {
					if u <= 0 {
						return fmt.Errorf("number must be greater than zero")
					}
					return nil
				},
			},
			&cli.IntFlag{
				Name:     "maxx",
				Usage:    "The maximum X value of the plane",
				OnlyOnce: true,
				Value:    100,
			},
			&cli.IntFlag{
				Name:     "minx",
				Usage:    "The minimum X value of the plane",
				OnlyOnce: true,
				Value:    0,
			},
			&cli.IntFlag{
				Name:     "maxy",
				Usage:    "The maximum Y value of the plane",
				OnlyOnce: true,
				Value:    100,
			},
			&cli.IntFlag{
				Name:     "miny",
				Usage:    "The minimum Y value of the plane",
				OnlyOnce: true,
				Value:    0,
			},
		},
		HideVersion: true,
		Action:      app,
		Authors:     []any{"https://github.com/mikenye"},
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func randomFloatInRange(min, max int64) float64 {
	return float64(min) + rand.Float64()*float64(max-min)
}

// cellOutput mirrors one Voronoi face for JSON output: its site plus the vertex
// loop of its clipped boundary, in half-edge traversal order.
type cellOutput struct {
	Site     vector2.Vector2   `json:"site"`
	Boundary []vector2.Vector2 `json:"boundary"`
}

func app(_ context.Context, cmd *cli.Command) error {
	minx := cmd.Int("minx")
	maxx := cmd.Int("maxx")
	miny := cmd.Int("miny")
	maxy := cmd.Int("maxy")
	n := cmd.Int("number")

	if minx >= maxx {
		return fmt.Errorf("maxx must be greater than minx")
	}
	if miny >= maxy {
		return fmt.Errorf("maxy must be greater than miny")
	}

	sites := make([]vector2.Vector2, n)
	for i := range sites {
		sites[i] = vector2.New(randomFloatInRange(minx, maxx), randomFloatInRange(miny, maxy))
	}

	b := box.New(float64(minx), float64(miny), float64(maxx), float64(maxy))

	diagram, err := fortune.Build(sites, b)
	if err != nil {
		return err
	}
	if ok, err := diagram.Intersect(b); err != nil {
		return err
	} else if !ok {
		log.Print("warning: diagram clipping encountered a geometric anomaly")
	}

	output := make([]cellOutput, 0, len(diagram.Faces()))
	for _, face := range diagram.Faces() {
		cell := cellOutput{Site: face.Site().Point()}
		for he := range face.HalfEdges() {
			cell.Boundary = append(cell.Boundary, he.Origin().Point())
		}
		output = append(output, cell)
	}

	out, err := json.Marshal(output)
	if err != nil {
		return err
	}
	fmt.Print(string(out))
	return nil
}
