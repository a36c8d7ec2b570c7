// Package nodelink renders the pinned dependency closure of a lock package
// as a node-link diagram.
//
// # Usage
//
// Build the graph from the lock file and the pinned table, then convert it
// to DOT or render it to SVG:
//
//	g := nodelink.FromLock(lock, res.Dependencies, res.Roots, res.ProjectName)
//	dot := nodelink.ToDOT(g, nodelink.Options{Detailed: true})
//	svg, err := nodelink.RenderSVG(dot)
//
// [Export] picks the format from the output file extension.
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process SVG
// rendering; no Graphviz installation is required.
package nodelink
