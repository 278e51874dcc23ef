// Package pool loads and validates the statement pool that bingo sheets are
// sampled from.
package pool

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

var (
	// ErrMalformedPool indicates a structurally invalid pool file.
	ErrMalformedPool = errors.New("pool: malformed input")

	// ErrEmptyPool indicates a pool file with no statements to sample from.
	ErrEmptyPool = errors.New("pool: no statements")
)

// Pool holds the title, header and candidate statements for one generation
// run. It is built once by Load and not mutated afterwards.
type Pool struct {
	Title      string
	Header     string
	Statements []string
}

// Size returns the number of statements available for sampling.
func (p *Pool) Size() int {
	return len(p.Statements)
}

// poolFile is the on-disk JSON shape. Title and header are pointers so a
// missing key can be told apart from an empty string. "entries" is accepted
// as a legacy alias for "statements".
type poolFile struct {
	Title      *string  `json:"title"`
	Header     *string  `json:"header"`
	Statements []string `json:"statements"`
	Entries    []string `json:"entries"`
}

// Load reads and validates a statement pool from a JSON file.
func Load(path string) (*Pool, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("pool: open %s: %w", path, err)
	}
	defer f.Close()

	p, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}

// Decode reads and validates a statement pool from r.
func Decode(r io.Reader) (*Pool, error) {
	var raw poolFile
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedPool, err)
	}

	if raw.Title == nil {
		return nil, fmt.Errorf("%w: missing \"title\" field", ErrMalformedPool)
	}
	if raw.Header == nil {
		return nil, fmt.Errorf("%w: missing \"header\" field", ErrMalformedPool)
	}

	statements := raw.Statements
	if statements == nil {
		statements = raw.Entries
	}
	if statements == nil {
		return nil, fmt.Errorf("%w: missing \"statements\" field", ErrMalformedPool)
	}
	if len(statements) == 0 {
		return nil, ErrEmptyPool
	}

	// Duplicate or blank statements would corrupt the sampler's
	// set-equality uniqueness check, so they are rejected here.
	seen := make(map[string]struct{}, len(statements))
	for i, s := range statements {
		if strings.TrimSpace(s) == "" {
			return nil, fmt.Errorf("%w: blank statement at index %d", ErrMalformedPool, i)
		}
		if _, dup := seen[s]; dup {
			return nil, fmt.Errorf("%w: duplicate statement %q", ErrMalformedPool, s)
		}
		seen[s] = struct{}{}
	}

	return &Pool{
		Title:      *raw.Title,
		Header:     *raw.Header,
		Statements: statements,
	}, nil
}
