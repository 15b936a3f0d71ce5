// Package proto implements the line-oriented stdin/stdout protocol (§6).
// spec.md lists this as an external collaborator, out of core scope — it
// carries no scheduling logic, only parsing and formatting of the wire
// format the judge speaks. All ids on the wire are one-based; every
// function here converts to or from zero-based ids at the boundary, so
// nothing above this package ever sees a one-based index.
package proto

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/hatsuyuki/daymatch/internal/domain"
)

// maxLineBytes accommodates a completion line listing every worker, or a
// difficulty line with many skill dimensions, without bufio.Scanner's
// default 64KB limit ever getting in the way.
const maxLineBytes = 16 << 20

// NewScanner wraps r for line-oriented reads with a generous buffer.
func NewScanner(r io.Reader) *bufio.Scanner {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	return sc
}

// Header is the first input line: task/worker/skill-dimension counts and
// edge count, in that order (§6, §9 — "N M K R" is authoritative).
type Header struct {
	N, M, K, R int
}

// ReadHeader parses the first line of the protocol.
func ReadHeader(sc *bufio.Scanner) (Header, error) {
	fields, err := readFields(sc)
	if err != nil {
		return Header{}, fmt.Errorf("header: %w", err)
	}
	if len(fields) != 4 {
		return Header{}, fmt.Errorf("header has %d fields, want 4: %w", len(fields), domain.ErrMalformedHeader)
	}
	ints, err := atoiAll(fields)
	if err != nil {
		return Header{}, fmt.Errorf("header: %w: %w", domain.ErrMalformedHeader, err)
	}
	return Header{N: ints[0], M: ints[1], K: ints[2], R: ints[3]}, nil
}

// ReadDifficulties parses the N difficulty-vector lines.
func ReadDifficulties(sc *bufio.Scanner, n, k int) ([][]int, error) {
	diffs := make([][]int, n)
	for i := 0; i < n; i++ {
		fields, err := readFields(sc)
		if err != nil {
			return nil, fmt.Errorf("difficulty line %d: %w", i, err)
		}
		if len(fields) != k {
			return nil, fmt.Errorf("task %d has %d dims, want %d: %w", i, len(fields), k, domain.ErrMalformedDifficulty)
		}
		row, err := atoiAll(fields)
		if err != nil {
			return nil, fmt.Errorf("task %d: %w: %w", i, domain.ErrMalformedDifficulty, err)
		}
		diffs[i] = row
	}
	return diffs, nil
}

// ReadEdges parses the R precedence-edge lines, converting to zero-based
// task ids and validating them against n.
func ReadEdges(sc *bufio.Scanner, r, n int) ([][2]int, error) {
	edges := make([][2]int, r)
	for i := 0; i < r; i++ {
		fields, err := readFields(sc)
		if err != nil {
			return nil, fmt.Errorf("edge line %d: %w", i, err)
		}
		if len(fields) != 2 {
			return nil, fmt.Errorf("edge %d has %d fields, want 2: %w", i, len(fields), domain.ErrMalformedEdge)
		}
		pair, err := atoiAll(fields)
		if err != nil {
			return nil, fmt.Errorf("edge %d: %w: %w", i, domain.ErrMalformedEdge, err)
		}
		u, v := pair[0]-1, pair[1]-1
		if u < 0 || u >= n || v < 0 || v >= n {
			return nil, fmt.Errorf("edge %d (%d -> %d): %w", i, u, v, domain.ErrTaskIDOutOfRange)
		}
		edges[i] = [2]int{u, v}
	}
	return edges, nil
}

// Completion is one day's judge reply: either the sentinel (-1, Done=true)
// or the zero-based ids of workers freed on the preceding day.
type Completion struct {
	Done      bool
	WorkerIDs []int
}

// ReadCompletion parses a completion line, validating the declared count
// against the number of ids present and every id against m (§7: a count
// mismatch or an out-of-range id is a protocol violation, fatal).
func ReadCompletion(sc *bufio.Scanner, m int) (Completion, error) {
	fields, err := readFields(sc)
	if err != nil {
		return Completion{}, fmt.Errorf("completion: %w", err)
	}
	if len(fields) == 0 {
		return Completion{}, fmt.Errorf("completion: %w", domain.ErrMalformedCompletion)
	}

	first, err := strconv.Atoi(fields[0])
	if err != nil {
		return Completion{}, fmt.Errorf("completion: %w: %w", domain.ErrMalformedCompletion, err)
	}
	if first == -1 {
		return Completion{Done: true}, nil
	}
	if first < 0 {
		return Completion{}, fmt.Errorf("completion count %d: %w", first, domain.ErrMalformedCompletion)
	}
	if len(fields) != first+1 {
		return Completion{}, fmt.Errorf("completion declares %d, lists %d: %w", first, len(fields)-1, domain.ErrCompletionCountMismatch)
	}

	ids := make([]int, first)
	for i, f := range fields[1:] {
		v, err := strconv.Atoi(f)
		if err != nil {
			return Completion{}, fmt.Errorf("completion worker %d: %w: %w", i, domain.ErrMalformedCompletion, err)
		}
		v--
		if v < 0 || v >= m {
			return Completion{}, fmt.Errorf("completion worker %d: %w", v, domain.ErrWorkerIDOutOfRange)
		}
		ids[i] = v
	}
	return Completion{WorkerIDs: ids}, nil
}

func readFields(sc *bufio.Scanner) ([]string, error) {
	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return nil, err
		}
		return nil, io.ErrUnexpectedEOF
	}
	return strings.Fields(sc.Text()), nil
}

func atoiAll(fields []string) ([]int, error) {
	out := make([]int, len(fields))
	for i, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}
