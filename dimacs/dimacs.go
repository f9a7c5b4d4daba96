package dimacs

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/katalvlaran/coreset/core"
)

// Sentinel errors; branch with errors.Is.
var (
	// ErrNoHeader indicates arcs before (or without) a "p sp" header line.
	ErrNoHeader = errors.New("dimacs: missing problem header")

	// ErrBadHeader indicates a malformed "p" line.
	ErrBadHeader = errors.New("dimacs: malformed problem header")

	// ErrBadArc indicates a malformed or invalid "a" line.
	ErrBadArc = errors.New("dimacs: malformed arc line")

	// ErrBadLine indicates a line with an unknown leading token.
	ErrBadLine = errors.New("dimacs: unrecognized line")
)

// ReadGraph parses DIMACS-sp input into an undirected weighted graph.
// Reverse duplicate arcs are merged; the first weight wins. Line numbers
// are attached to every parse error.
//
// Complexity: O(lines) time, O(V+E) space.
func ReadGraph(r io.Reader) (*core.Graph, error) {
	g := core.NewGraph(core.WithWeighted())
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	headerSeen := false
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}

		fields := strings.Fields(text)
		switch fields[0] {
		case "c":
			// Comment; ignored.

		case "p":
			if len(fields) != 4 || fields[1] != "sp" {
				return nil, errors.Wrapf(ErrBadHeader, "line %d: %q", line, text)
			}
			n, err := strconv.Atoi(fields[2])
			if err != nil || n < 0 {
				return nil, errors.Wrapf(ErrBadHeader, "line %d: vertex count %q", line, fields[2])
			}
			if _, err = strconv.Atoi(fields[3]); err != nil {
				return nil, errors.Wrapf(ErrBadHeader, "line %d: arc count %q", line, fields[3])
			}
			headerSeen = true

		case "a":
			if !headerSeen {
				return nil, errors.Wrapf(ErrNoHeader, "line %d: arc before header", line)
			}
			if len(fields) != 4 {
				return nil, errors.Wrapf(ErrBadArc, "line %d: %q", line, text)
			}
			from, err := strconv.ParseUint(fields[1], 10, 64)
			if err != nil {
				return nil, errors.Wrapf(ErrBadArc, "line %d: from %q", line, fields[1])
			}
			to, err := strconv.ParseUint(fields[2], 10, 64)
			if err != nil {
				return nil, errors.Wrapf(ErrBadArc, "line %d: to %q", line, fields[2])
			}
			w, err := strconv.ParseFloat(fields[3], 64)
			if err != nil || w < 0 {
				return nil, errors.Wrapf(ErrBadArc, "line %d: weight %q", line, fields[3])
			}

			u, v := strconv.FormatUint(from, 10), strconv.FormatUint(to, 10)
			if g.HasEdge(u, v) {
				// Reverse direction of an arc already ingested.
				continue
			}
			if _, err = g.AddEdge(u, v, w); err != nil {
				return nil, errors.Wrapf(err, "dimacs: line %d: add arc %s->%s", line, u, v)
			}

		default:
			return nil, errors.Wrapf(ErrBadLine, "line %d: %q", line, text)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(err, "dimacs: read input")
	}
	if !headerSeen {
		return nil, ErrNoHeader
	}

	return g, nil
}

// WriteGraph emits g in DIMACS-sp format. Vertices get 1-based indices in
// sorted ID order; the index mapping is written as "c <index> <id>"
// comments, then every undirected edge is written as one arc per
// direction the way road exporters do.
func WriteGraph(w io.Writer, g *core.Graph) error {
	if g == nil {
		return errors.New("dimacs: nil graph")
	}

	vertices := g.Vertices()
	edges := g.Edges()

	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "p sp %d %d\n", len(vertices), 2*len(edges)); err != nil {
		return errors.Wrap(err, "dimacs: write header")
	}

	index := make(map[string]int, len(vertices))
	for i, id := range vertices {
		index[id] = i + 1
		if _, err := fmt.Fprintf(bw, "c %d %s\n", i+1, id); err != nil {
			return errors.Wrap(err, "dimacs: write vertex mapping")
		}
	}

	for _, e := range edges {
		u, v := index[e.From], index[e.To]
		if _, err := fmt.Fprintf(bw, "a %d %d %g\na %d %d %g\n", u, v, e.Weight, v, u, e.Weight); err != nil {
			return errors.Wrapf(err, "dimacs: write arc %s->%s", e.From, e.To)
		}
	}

	return errors.Wrap(bw.Flush(), "dimacs: flush output")
}

// TotalWeight sums each undirected edge weight exactly once.
func TotalWeight(g *core.Graph) float64 {
	var total float64
	for _, e := range g.Edges() {
		total += e.Weight
	}
	return total
}
