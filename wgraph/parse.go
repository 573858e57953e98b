package wgraph

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
)

// FromReader builds a graph from a whitespace-separated edge-list stream:
// the first token is the vertex count N, and every following triple is
// "origin destination weight" with origin and destination in [0, N) and
// weight a real number converted into W.
//
// Parsing stops silently at the first unparsable token or at end of input;
// the graph keeps whatever prefix was successfully applied (no rollback of
// a partially read triple). A triple referencing an out-of-range vertex is
// caller misuse and surfaces the AddEdge error. A failure of the
// underlying reader is returned as-is.
// Complexity: O(N + E) for E parsed triples.
func FromReader[W Weight](r io.Reader) (*Graph[W], error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	// Missing or malformed vertex count yields an empty zero-vertex graph,
	// matching the "keep the parsed prefix" contract.
	n, ok := scanInt(sc)
	if !ok {
		if err := sc.Err(); err != nil {
			return nil, fmt.Errorf("wgraph: reading edge-list source: %w", err)
		}
		return New[W](0)
	}
	g, err := New[W](n)
	if err != nil {
		return nil, err
	}

	for {
		i, ok := scanInt(sc)
		if !ok {
			break
		}
		j, ok := scanInt(sc)
		if !ok {
			break
		}
		w, ok := scanFloat(sc)
		if !ok {
			break
		}
		if err := g.AddEdge(i, j, W(w)); err != nil {
			return nil, err
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("wgraph: reading edge-list source: %w", err)
	}

	return g, nil
}

// FromFile builds a graph from the edge-list file at path.
// Returns ErrOpenSource when the file cannot be opened; otherwise behaves
// exactly like FromReader.
func FromFile[W Weight](path string) (*Graph[W], error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrOpenSource, path, err)
	}
	defer f.Close()

	return FromReader[W](f)
}

// scanInt reads the next token as a base-10 integer.
func scanInt(sc *bufio.Scanner) (int, bool) {
	if !sc.Scan() {
		return 0, false
	}
	v, err := strconv.Atoi(sc.Text())
	if err != nil {
		return 0, false
	}

	return v, true
}

// scanFloat reads the next token as a real number.
func scanFloat(sc *bufio.Scanner) (float64, bool) {
	if !sc.Scan() {
		return 0, false
	}
	v, err := strconv.ParseFloat(sc.Text(), 64)
	if err != nil {
		return 0, false
	}

	return v, true
}
