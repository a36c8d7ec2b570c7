package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/poetry-lock-package/pkg/errors"
)

// Options configures node-link diagram rendering.
type Options struct {
	// Detailed adds versions and markers to node labels.
	// When false, only the package name is shown.
	Detailed bool
}

// ToDOT converts g to Graphviz DOT format.
// Packages installed only under an environment marker are drawn dashed.
func ToDOT(g *Graph, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=14, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  ranksep=0.5;\n")
	buf.WriteString("  nodesep=0.3;\n")
	buf.WriteString("\n")

	for _, n := range g.Nodes {
		fmt.Fprintf(&buf, "  %q [%s];\n", n.ID, strings.Join(fmtAttrs(n, opts.Detailed), ", "))
	}

	buf.WriteString("\n")
	for _, e := range g.Edges {
		fmt.Fprintf(&buf, "  %q -> %q;\n", e.From, e.To)
	}

	buf.WriteString("}\n")
	return buf.String()
}

func fmtLabel(n Node, detailed bool) string {
	if !detailed || n.Project {
		return n.ID
	}
	parts := []string{n.ID}
	if n.Version != "" {
		parts = append(parts, n.Version)
	}
	if n.Markers != "" {
		parts = append(parts, n.Markers)
	}
	return strings.Join(parts, "\n")
}

func fmtAttrs(n Node, detailed bool) []string {
	attrs := []string{fmt.Sprintf("label=%q", fmtLabel(n, detailed))}
	switch {
	case n.Project:
		attrs = append(attrs, "style=\"rounded,filled,bold\"", "fillcolor=lightblue")
	case n.Markers != "":
		attrs = append(attrs, "style=\"rounded,filled,dashed\"", "fillcolor=lightgrey")
	}
	return attrs
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(dot string) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}

// Export writes g to path: DOT source for a ".dot"/".gv" extension, SVG
// otherwise.
func Export(g *Graph, path string, opts Options) error {
	dot := ToDOT(g, opts)
	data := []byte(dot)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".dot", ".gv":
	default:
		svg, err := RenderSVG(dot)
		if err != nil {
			return errors.Wrap(errors.ErrCodeInternal, err, "render %s", path)
		}
		data = svg
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.Wrap(errors.ErrCodeFilesystem, err, "write %s", path)
	}
	return nil
}
