package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/lixenwraith/vi-maze/maze"
	"github.com/lixenwraith/vi-maze/navigation"
)

func main() {
	if err := run(os.Stdin, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(in io.Reader, out io.Writer) error {
	reader := bufio.NewReader(in)

	for {
		fmt.Fprintln(out, "\n=== RECURSIVE BACKTRACKER MAZE GENERATOR ===")

		h := getInt(reader, out, "Height [odd, >= 3] (default 21): ", 21)
		w := getInt(reader, out, "Width [odd, >= 3] (default 41): ", 41)
		seed := int64(getInt(reader, out, "Seed [0 = clock] (default 0): ", 0))

		fmt.Fprintln(out, "\nGenerating...")
		startT := time.Now()
		res, err := maze.Generate(h, w, maze.NewRand(seed))
		if err != nil {
			return err
		}
		path := navigation.FindPath(res.Grid, res.Entrance, res.Exit)
		dur := time.Since(startT)

		fmt.Fprintf(out, "Done in %v\n", dur)
		fmt.Fprintf(out, "Grid Dimensions: %dx%d\n", res.Grid.Width, res.Grid.Height)

		report := maze.Inspect(res.Grid, res.Entrance, res.Exit)
		fmt.Fprintf(out, "Open cells: %d, reachable: %d, acyclic: %v\n", report.Carved, report.Reachable, report.Acyclic())

		if path != nil {
			fmt.Fprintf(out, "Solution Path Length: %d steps\n", path.Steps())
		} else {
			fmt.Fprintln(out, "Status: Unsolvable (exit not carved into the tree)")
		}

		fmt.Fprint(out, draw(res, path))

		fmt.Fprint(out, "\nGenerate another? [Y/n]: ")
		cont, err := reader.ReadString('\n')
		if err != nil || strings.ToLower(strings.TrimSpace(cont)) == "n" {
			return nil
		}
	}
}

func draw(res maze.Result, path navigation.Path) string {
	onPath := make(map[maze.Point]bool, len(path))
	for _, p := range path {
		onPath[p] = true
	}

	var sb strings.Builder
	for row := 0; row < res.Grid.Height; row++ {
		for col := 0; col < res.Grid.Width; col++ {
			p := maze.Point{Row: row, Col: col}

			switch {
			case p == res.Entrance:
				sb.WriteString("S")
			case p == res.Exit:
				sb.WriteString("E")
			case res.Grid.At(p) == maze.Wall:
				sb.WriteString("█")
			case onPath[p]:
				sb.WriteString("•")
			default:
				sb.WriteString(" ")
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// --- Input Helpers ---

func getInt(r *bufio.Reader, w io.Writer, prompt string, def int) int {
	fmt.Fprint(w, prompt)
	s, _ := r.ReadString('\n')
	s = strings.TrimSpace(s)
	if s == "" {
		return def
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return v
}
