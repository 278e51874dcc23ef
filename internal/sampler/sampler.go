// Package sampler draws unique bingo sheets from a statement pool.
//
// Each sheet is a uniform without-replacement sample of pool statements in a
// uniform random placement order. Sheets are compared as sets: two sheets
// that hold the same statements in different cells count as duplicates, and
// the sampler redraws until every accepted sheet is distinct or the retry
// budget runs out.
package sampler

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"slices"
	"strconv"
	"strings"

	"github.com/eventforge/bingo/internal/pool"
)

var (
	// ErrInvalidConfig indicates cells or count values the pool cannot honour.
	ErrInvalidConfig = errors.New("sampler: invalid configuration")

	// ErrPoolExhausted indicates the pool cannot supply the requested number
	// of distinct sheets within the retry budget.
	ErrPoolExhausted = errors.New("sampler: pool exhausted")
)

// Sheet is one generated bingo sheet: the drawn statements in placement order.
type Sheet []string

// Grid reshapes the sheet into rows x cols for rendering. The sheet must
// hold exactly rows*cols statements.
func (s Sheet) Grid(rows, cols int) [][]string {
	g := make([][]string, rows)
	for r := range g {
		g[r] = s[r*cols : (r+1)*cols]
	}
	return g
}

// SheetSet is the batch of sheets produced by one Generate call, in
// acceptance order.
type SheetSet []Sheet

// Options tunes Generate. The zero value uses an entropy-seeded generator
// and a retry budget of count*count+64 draws.
type Options struct {
	// Rng is the random source for all draws. Nil means a fresh
	// entropy-seeded generator; pass NewRand(seed) for reproducible output.
	Rng *rand.Rand

	// AttemptsCap bounds the total number of draws across the whole run,
	// including accepted ones. Zero or negative means the default budget.
	AttemptsCap int
}

// Generate produces count distinct sheets of cells statements each from p.
//
// It fails with ErrInvalidConfig before any sampling when cells or count are
// out of range, and with ErrPoolExhausted when the retry budget burns down
// before count distinct sheets are found. The notable exhaustion case is
// cells == p.Size() with count > 1: every draw is then the same set, so no
// second distinct sheet exists.
func Generate(p *pool.Pool, cells, count int, opts Options) (SheetSet, error) {
	if p == nil {
		return nil, fmt.Errorf("%w: nil pool", ErrInvalidConfig)
	}
	n := p.Size()
	if cells < 1 || cells > n {
		return nil, fmt.Errorf("%w: %d cells per sheet from a pool of %d", ErrInvalidConfig, cells, n)
	}
	if count < 1 {
		return nil, fmt.Errorf("%w: sheet count %d", ErrInvalidConfig, count)
	}

	rng := opts.Rng
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	budget := opts.AttemptsCap
	if budget <= 0 {
		budget = count*count + 64
	}

	idx := make([]int, n)
	seen := make(map[string]struct{}, count)
	set := make(SheetSet, 0, count)
	for draws := 0; len(set) < count; draws++ {
		if draws >= budget {
			return nil, fmt.Errorf("%w: %d distinct sheets of %d cells from a pool of %d (gave up after %d draws)",
				ErrPoolExhausted, count, cells, n, draws)
		}
		draw(rng, idx, cells)

		// A single sheet cannot collide with anything, so skip the
		// bookkeeping entirely.
		if count > 1 {
			key := subsetKey(idx[:cells])
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
		}

		sheet := make(Sheet, cells)
		for i, j := range idx[:cells] {
			sheet[i] = p.Statements[j]
		}
		set = append(set, sheet)
	}
	return set, nil
}

// draw refills idx with 0..len(idx)-1 and runs a partial Fisher-Yates
// shuffle so that idx[:cells] is simultaneously a uniform
// without-replacement sample of the pool indices and a uniform permutation
// of that sample.
func draw(rng *rand.Rand, idx []int, cells int) {
	for i := range idx {
		idx[i] = i
	}
	for i := 0; i < cells; i++ {
		j := i + rng.IntN(len(idx)-i)
		idx[i], idx[j] = idx[j], idx[i]
	}
}

// subsetKey is an order-insensitive identity for a drawn subset. Sheets that
// differ only in cell placement collapse to the same key.
func subsetKey(drawn []int) string {
	s := slices.Clone(drawn)
	slices.Sort(s)

	var b strings.Builder
	for i, v := range s {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(v))
	}
	return b.String()
}
