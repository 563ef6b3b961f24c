// Package blueprint loads the YAML blueprint files the command line
// consumes and turns them into the grid, plot list and phase the
// planner expects.
//
// A blueprint file looks like:
//
//	name: bedroom
//	phase: dig
//	start: {x: 0, y: 0}
//	grid: {width: 30, height: 30}
//	areas:
//	  - command: d
//	    corner: {x: 2, y: 2}
//	    size: {width: 3, height: 4}
//
// Areas are visited in file order. The grid extent is optional and
// defaults to the bounding box of the areas.
package blueprint
