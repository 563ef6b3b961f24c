package blueprint

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"qfkeys/internal/geometry"
	"qfkeys/internal/grid"
)

// Validation errors.
var (
	// ErrNoAreas indicates a blueprint without any designated areas.
	ErrNoAreas = errors.New("blueprint has no areas")

	// ErrEmptyCommand indicates an area without a command string.
	ErrEmptyCommand = errors.New("area has no command")

	// ErrOutsideGrid indicates an area outside the declared grid extent.
	ErrOutsideGrid = errors.New("area outside grid extent")

	// ErrNoPhase indicates a blueprint without a phase name.
	ErrNoPhase = errors.New("blueprint has no phase")
)

// Blueprint is a loaded blueprint, ready for planning.
type Blueprint struct {
	// Name is the blueprint title; also the default macro title.
	Name string

	// Phase names the build policy the planner should use.
	Phase string

	// Start is the cursor position when conversion begins.
	Start geometry.Point

	// Grid holds the designated cells.
	Grid *grid.Grid

	// Plots are the area entry corners, in file order.
	Plots []geometry.Point
}

// File shapes for YAML decoding.

type pointYAML struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
	Z int `yaml:"z"`
}

func (p pointYAML) point() geometry.Point {
	return geometry.Point{X: p.X, Y: p.Y, Z: p.Z}
}

type sizeYAML struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

type areaYAML struct {
	Command string    `yaml:"command"`
	Corner  pointYAML `yaml:"corner"`
	Size    sizeYAML  `yaml:"size"`
}

type gridYAML struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

type blueprintYAML struct {
	Name  string     `yaml:"name"`
	Phase string     `yaml:"phase"`
	Start pointYAML  `yaml:"start"`
	Grid  *gridYAML  `yaml:"grid"`
	Areas []areaYAML `yaml:"areas"`
}

// Load reads a blueprint from r.
func Load(r io.Reader) (*Blueprint, error) {
	var file blueprintYAML
	if err := yaml.NewDecoder(r).Decode(&file); err != nil {
		return nil, fmt.Errorf("decoding blueprint: %w", err)
	}

	return build(&file)
}

// LoadFile reads the blueprint file at path.
func LoadFile(path string) (*Blueprint, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening blueprint: %w", err)
	}
	defer f.Close()

	bp, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return bp, nil
}

func build(file *blueprintYAML) (*Blueprint, error) {
	if file.Phase == "" {
		return nil, ErrNoPhase
	}
	if len(file.Areas) == 0 {
		return nil, ErrNoAreas
	}

	// Default the grid extent to the areas' bounding box.
	width, height := 0, 0
	for _, a := range file.Areas {
		if x := a.Corner.X + max(a.Size.Width, 1); x > width {
			width = x
		}
		if y := a.Corner.Y + max(a.Size.Height, 1); y > height {
			height = y
		}
	}
	if file.Grid != nil {
		width, height = file.Grid.Width, file.Grid.Height
	}

	g := grid.New(width, height)
	plots := make([]geometry.Point, 0, len(file.Areas))

	for i, a := range file.Areas {
		if a.Command == "" {
			return nil, fmt.Errorf("area %d: %w", i, ErrEmptyCommand)
		}

		corner := a.Corner.point()
		opposite := corner.Add(geometry.Point{
			X: max(a.Size.Width, 1) - 1,
			Y: max(a.Size.Height, 1) - 1,
		})
		if g.IsOutOfBounds(corner) || g.IsOutOfBounds(opposite) {
			return nil, fmt.Errorf("area %d (%s at %v): %w", i, a.Command, corner, ErrOutsideGrid)
		}

		g.SetCell(corner, grid.Cell{
			Command: a.Command,
			Area:    geometry.NewArea(corner, opposite),
		})
		plots = append(plots, corner)
	}

	return &Blueprint{
		Name:  file.Name,
		Phase: file.Phase,
		Start: file.Start.point(),
		Grid:  g,
		Plots: plots,
	}, nil
}
