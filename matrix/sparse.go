// SPDX-License-Identifier: MIT
// Package matrix provides Sparse, an integer matrix that stores only its
// non-zero cells keyed by (row, col).
//
// Storage:
//   - index maps each stored key to its slot; slots keeps entries in
//     insertion order so iteration and encoding are reproducible.
//   - Overwriting a key keeps its slot. Deleting a key frees the slot; a
//     later re-insert appends at the end.
//   - Freed slots are compacted once they outnumber live ones.
//
// Invariants:
//   - No live slot holds 0: Set(r, c, 0) deletes.
//   - rows and cols are fixed at construction.
//   - At and Set never bounds-check (see WithStrictBounds for decode-time checks).
package matrix

// compactMinDead is the number of freed slots below which compaction is skipped.
const compactMinDead = 32

// slot is one position in the insertion-ordered store.
type slot struct {
	key  pairKey
	val  int64
	live bool
}

// Sparse is a rows×cols integer matrix storing only non-zero cells.
// A Sparse is owned by a single goroutine; concurrent mutation of the same
// instance is not supported. Arithmetic never mutates its operands.
type Sparse struct {
	rows, cols int             // declared shape, immutable
	index      map[pairKey]int // key -> position in slots
	slots      []slot          // insertion-ordered storage
	dead       int             // number of freed slots
}

// New returns an empty rows×cols matrix.
// Dimensions are stored as given; negative values are the caller's problem
// and are only rejected by the opt-in validators.
// Complexity: O(1).
func New(rows, cols int) *Sparse {
	return &Sparse{
		rows:  rows,
		cols:  cols,
		index: make(map[pairKey]int),
	}
}

// Rows returns the declared number of rows.
func (m *Sparse) Rows() int { return m.rows }

// Cols returns the declared number of columns.
func (m *Sparse) Cols() int { return m.cols }

// Shape returns the declared shape.
func (m *Sparse) Shape() Shape { return Shape{Rows: m.rows, Cols: m.cols} }

// NNZ returns the number of stored non-zero entries.
// Complexity: O(1).
func (m *Sparse) NNZ() int { return len(m.index) }

// At returns the value stored at (row, col), or 0 if nothing is stored there.
// Any index is accepted; out-of-range positions simply read as 0.
// Complexity: O(1) average.
func (m *Sparse) At(row, col int) int64 {
	i, ok := m.index[pairKey{row: row, col: col}]
	if !ok {
		return 0
	}

	return m.slots[i].val
}

// Has reports whether a non-zero value is stored at (row, col).
func (m *Sparse) Has(row, col int) bool {
	_, ok := m.index[pairKey{row: row, col: col}]
	return ok
}

// Set stores v at (row, col). A zero v removes any stored entry, so the
// store never contains zeros. Set never fails and never bounds-checks.
// Complexity: O(1) amortized.
func (m *Sparse) Set(row, col int, v int64) {
	if m.index == nil {
		m.index = make(map[pairKey]int)
	}
	k := pairKey{row: row, col: col}
	i, ok := m.index[k]

	if v == 0 {
		if ok {
			delete(m.index, k)
			m.slots[i] = slot{}
			m.dead++
			m.maybeCompact()
		}
		return
	}

	if ok {
		m.slots[i].val = v // overwrite keeps insertion position
		return
	}
	m.index[k] = len(m.slots)
	m.slots = append(m.slots, slot{key: k, val: v, live: true})
}

// maybeCompact drops freed slots once they dominate the backing slice.
func (m *Sparse) maybeCompact() {
	if m.dead < compactMinDead || m.dead*2 < len(m.slots) {
		return
	}
	live := m.slots[:0]
	for _, s := range m.slots {
		if !s.live {
			continue
		}
		m.index[s.key] = len(live)
		live = append(live, s)
	}
	// Clear the tail so stale slots do not linger in the backing array.
	clear(m.slots[len(live):])
	m.slots = live
	m.dead = 0
}

// Range calls fn for every stored entry in storage order until fn returns
// false. fn must not mutate m.
func (m *Sparse) Range(fn func(Entry) bool) {
	for _, s := range m.slots {
		if !s.live {
			continue
		}
		if !fn(Entry{Row: s.key.row, Col: s.key.col, Value: s.val}) {
			return
		}
	}
}

// Entries returns a copy of the stored entries in storage order.
// Complexity: O(nnz) time and memory.
func (m *Sparse) Entries() []Entry {
	out := make([]Entry, 0, m.NNZ())
	m.Range(func(e Entry) bool {
		out = append(out, e)
		return true
	})

	return out
}

// Clone returns a deep copy of m with the same storage order.
// Complexity: O(nnz).
func (m *Sparse) Clone() *Sparse {
	out := New(m.rows, m.cols)
	m.Range(func(e Entry) bool {
		out.Set(e.Row, e.Col, e.Value)
		return true
	})

	return out
}

// String implements fmt.Stringer by returning the textual encoding.
func (m *Sparse) String() string {
	return m.Encode()
}

// Equal reports whether a and b have the same shape and the same set of
// stored entries. Storage order is ignored. Two nil matrices are equal.
// Complexity: O(nnz(a)).
func Equal(a, b *Sparse) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.rows != b.rows || a.cols != b.cols || a.NNZ() != b.NNZ() {
		return false
	}
	eq := true
	a.Range(func(e Entry) bool {
		if b.At(e.Row, e.Col) != e.Value {
			eq = false
		}
		return eq
	})

	return eq
}
