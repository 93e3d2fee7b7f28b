// SPDX-License-Identifier: MIT

package cityfile

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/citymst/citygraph"
)

// Section keywords.
const (
	KeywordNodes = "NODES"
	KeywordArcs  = "ARCS"
)

// Sentinel errors for malformed input.
var (
	// ErrMissingHeader indicates content before the NODES keyword, or no NODES at all.
	ErrMissingHeader = errors.New("cityfile: missing NODES header")

	// ErrMalformedLine indicates a line with the wrong number of fields.
	ErrMalformedLine = errors.New("cityfile: malformed line")

	// ErrCountMismatch indicates the declared city count differs from the listed cities.
	ErrCountMismatch = errors.New("cityfile: city count mismatch")
)

// ParseError locates a failure in the input.
type ParseError struct {
	Line int
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("cityfile: line %d: %v", e.Line, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// section tracks where the scanner is in the file.
type section int

const (
	secHeader section = iota // before NODES
	secCount                 // expecting the city count
	secNodes                 // reading cities
	secArcs                  // reading roads
)

// parser holds the state of a single Read.
type parser struct {
	b        *citygraph.Builder
	sec      section
	declared int
	line     int
}

// Read parses a city file from r.
// A failed read returns a nil graph and a *ParseError (or the reader's I/O error).
//
// Complexity: O(L) over input lines, plus O(1) amortized per city/road.
func Read(r io.Reader) (*citygraph.Graph, error) {
	p := &parser{b: citygraph.NewBuilder(0)}
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		p.line++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		if err := p.consume(fields); err != nil {
			return nil, &ParseError{Line: p.line, Err: err}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("cityfile: read: %w", err)
	}

	switch p.sec {
	case secHeader:
		return nil, &ParseError{Line: p.line, Err: ErrMissingHeader}
	case secCount:
		return nil, &ParseError{Line: p.line, Err: fmt.Errorf("%w: count line absent", ErrMalformedLine)}
	case secNodes:
		// ARCS may be omitted: a graph of isolated cities.
		if err := p.checkCount(); err != nil {
			return nil, &ParseError{Line: p.line, Err: err}
		}
	}

	return p.b.Build(), nil
}

// Load opens path and delegates to Read.
func Load(path string) (*citygraph.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cityfile: open %q: %w", path, err)
	}
	defer f.Close()

	g, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return g, nil
}

func (p *parser) consume(fields []string) error {
	switch p.sec {
	case secHeader:
		if fields[0] != KeywordNodes || len(fields) != 1 {
			return ErrMissingHeader
		}
		p.sec = secCount

	case secCount:
		if len(fields) != 1 {
			return fmt.Errorf("%w: want <count>, got %d fields", ErrMalformedLine, len(fields))
		}
		n, err := strconv.Atoi(fields[0])
		if err != nil {
			return fmt.Errorf("count: %w", err)
		}
		if n < 0 {
			return fmt.Errorf("%w: negative count %d", ErrMalformedLine, n)
		}
		p.declared = n
		p.sec = secNodes

	case secNodes:
		if fields[0] == KeywordArcs && len(fields) == 1 {
			if err := p.checkCount(); err != nil {
				return err
			}
			p.sec = secArcs

			return nil
		}
		if len(fields) != 3 {
			return fmt.Errorf("%w: want <name> <x> <y>, got %d fields", ErrMalformedLine, len(fields))
		}
		if p.b.Len() == p.declared {
			return fmt.Errorf("%w: more than %d cities", ErrCountMismatch, p.declared)
		}
		x, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return fmt.Errorf("x of %q: %w", fields[0], err)
		}
		y, err := strconv.ParseFloat(fields[2], 64)
		if err != nil {
			return fmt.Errorf("y of %q: %w", fields[0], err)
		}
		if _, err = p.b.AddCity(fields[0], x, y); err != nil {
			return err
		}

	case secArcs:
		if len(fields) != 3 {
			return fmt.Errorf("%w: want <cityA> <cityB> <cost>, got %d fields", ErrMalformedLine, len(fields))
		}
		cost, err := strconv.ParseInt(fields[2], 10, 64)
		if err != nil {
			return fmt.Errorf("cost of %s-%s: %w", fields[0], fields[1], err)
		}

		return p.b.AddRoad(fields[0], fields[1], cost)
	}

	return nil
}

func (p *parser) checkCount() error {
	if p.b.Len() != p.declared {
		return fmt.Errorf("%w: declared %d, listed %d", ErrCountMismatch, p.declared, p.b.Len())
	}

	return nil
}
