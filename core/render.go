// File: render.go
// Role: Textual (V,E) rendering of the whole graph.

package core

import (
	"bufio"
	"io"
	"strconv"
	"strings"
)

// DefaultLabel is used by Render when label is empty.
const DefaultLabel = "Graph"

// Render writes the graph as
//
//	<label> = (V,E)
//	V = {a, b, c}
//	E = {
//	(a, b, 3),
//	(b, c, 7)
//	}
//
// Vertices are sorted; each logical edge appears once, smaller endpoint
// first, ordered by (U, V). An empty edge set leaves a blank line between
// the braces.
func (g *Graph) Render(w io.Writer, label string) error {
	if label == "" {
		label = DefaultLabel
	}
	bw := bufio.NewWriter(w)
	bw.WriteString(label)
	bw.WriteString(" = (V,E)\n")
	WriteVertexSet(bw, g.Vertices())
	writeEdgeSet(bw, g.Edges())

	return bw.Flush()
}

// String renders the graph with DefaultLabel.
func (g *Graph) String() string {
	var sb strings.Builder
	_ = g.Render(&sb, DefaultLabel)

	return sb.String()
}

// WriteVertexSet writes "V = {a, b, c}\n".
func WriteVertexSet(w *bufio.Writer, names []string) {
	w.WriteString("V = {")
	w.WriteString(strings.Join(names, ", "))
	w.WriteString("}\n")
}

// writeEdgeSet writes the "E = { ... }" block. Edge lines are joined by
// ",\n"; the closing brace always follows a newline, so an empty set leaves
// a blank line.
func writeEdgeSet(w *bufio.Writer, edges []Edge) {
	w.WriteString("E = {\n")
	for i, e := range edges {
		if i > 0 {
			w.WriteString(",\n")
		}
		WriteEdge(w, e)
	}
	w.WriteString("\n}\n")
}

// WriteEdge writes a single "(u, v, w)" tuple.
func WriteEdge(w *bufio.Writer, e Edge) {
	w.WriteByte('(')
	w.WriteString(e.U)
	w.WriteString(", ")
	w.WriteString(e.V)
	w.WriteString(", ")
	w.WriteString(strconv.FormatInt(e.Weight, 10))
	w.WriteByte(')')
}
