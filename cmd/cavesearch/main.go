// Generates a cave, runs a search from the placed start to the placed end,
// and writes the result as a PNG image.
package main

import (
	"flag"
	"fmt"
	"image/png"
	"os"

	"github.com/joonaspessi/path-finding/astar"
	"github.com/joonaspessi/path-finding/bfs"
	"github.com/joonaspessi/path-finding/cavegen"
	"github.com/joonaspessi/path-finding/dfs"
	"github.com/joonaspessi/path-finding/dijkstra"
	"github.com/joonaspessi/path-finding/grid"
	"github.com/joonaspessi/path-finding/pathfind"
	"github.com/joonaspessi/path-finding/render"
)

func newAlgorithm(name string, start, end grid.Point) (pathfind.Algorithm, error) {
	switch name {
	case "bfs":
		return bfs.New(start, end), nil
	case "dfs":
		return dfs.New(start, end), nil
	case "dijkstra":
		return dijkstra.New(start, end), nil
	case "astar":
		return astar.New(start, end), nil
	}
	return nil, fmt.Errorf("unknown algorithm %q (want bfs, dfs, dijkstra "+
		"or astar)", name)
}

func run() int {
	var width, height, smoothing, cellSize int
	var seed int64
	var wallChance float64
	var algorithm, outFilename string
	flag.IntVar(&width, "width", 80,
		"The width of the cave, in grid cells.")
	flag.IntVar(&height, "height", 50,
		"The height of the cave, in grid cells.")
	flag.Int64Var(&seed, "seed", 0,
		"The random seed for cave generation. 0 uses a fixed default.")
	flag.Float64Var(&wallChance, "wall_chance", cavegen.DefaultWallChance,
		"The probability, 0 to 1, that an interior cell starts as a wall.")
	flag.IntVar(&smoothing, "smoothing", cavegen.DefaultSmoothingPasses,
		"The number of cellular-automata smoothing passes.")
	flag.StringVar(&algorithm, "algorithm", "astar",
		"The search to run: bfs, dfs, dijkstra or astar.")
	flag.IntVar(&cellSize, "cell_size", 8,
		"The width of each cell in output pixels.")
	flag.StringVar(&outFilename, "output_file", "",
		"The name of the .png file to which the cave will be saved.")
	flag.Parse()
	if (width < 1) || (height < 1) || (outFilename == "") {
		fmt.Println("Invalid or missing argument.")
		fmt.Println("Run with -help for more information.")
		return 1
	}
	g, e := grid.New(width, height)
	if e != nil {
		fmt.Printf("Failed creating grid: %s\n", e)
		return 1
	}
	gen, e := cavegen.New(
		cavegen.WithSeed(seed),
		cavegen.WithWallChance(wallChance),
		cavegen.WithSmoothingPasses(smoothing),
	)
	if e != nil {
		fmt.Printf("Failed configuring generator: %s\n", e)
		return 1
	}
	gen.Generate(g)

	start, okStart := g.Find(grid.Start)
	end, okEnd := g.Find(grid.End)
	if !okStart || !okEnd {
		fmt.Println("Generated cave has no open floor; try a lower " +
			"-wall_chance.")
		return 1
	}
	alg, e := newAlgorithm(algorithm, start, end)
	if e != nil {
		fmt.Printf("Failed creating search: %s\n", e)
		return 1
	}
	steps := 0
	for alg.Step(g) {
		steps++
	}
	if alg.Found() {
		fmt.Printf("%s reached %v from %v in %d steps; path length %d.\n",
			alg.Name(), end, start, steps, len(alg.Path()))
	} else {
		fmt.Printf("%s found no path from %v to %v after %d steps.\n",
			alg.Name(), start, end, steps)
	}

	snap, e := render.NewSnapshot(g, alg)
	if e != nil {
		fmt.Printf("Failed preparing image: %s\n", e)
		return 1
	}
	pic, e := snap.Scaled(cellSize)
	if e != nil {
		fmt.Printf("Failed scaling image: %s\n", e)
		return 1
	}
	f, e := os.Create(outFilename)
	if e != nil {
		fmt.Printf("Error creating output file %s: %s\n", outFilename, e)
		return 1
	}
	defer f.Close()
	e = png.Encode(f, pic)
	if e != nil {
		fmt.Printf("Error writing image to %s: %s\n", outFilename, e)
		return 1
	}
	fmt.Printf("Image %s written OK.\n", outFilename)
	return 0
}

func main() {
	os.Exit(run())
}
