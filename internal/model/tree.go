package model

// Row is a node of a Tree. The parent pointer is a lookup back-reference only;
// the Tree owns every row.
type Row[V any] struct {
	Value V

	parent   *Row[V]
	children []*Row[V]
}

func (r *Row[V]) Parent() *Row[V]     { return r.parent }
func (r *Row[V]) Children() []*Row[V] { return r.children }
func (r *Row[V]) IsTopLevel() bool    { return r.parent == nil }

// Path walks the parent chain to rebuild the row's position. The result is
// only meaningful while the row belongs to the tree that created it.
func (r *Row[V]) Path(t *Tree[V]) Path {
	var rev []int
	for cur := r; cur != nil; cur = cur.parent {
		siblings := t.roots
		if cur.parent != nil {
			siblings = cur.parent.children
		}
		rev = append(rev, indexOf(siblings, cur))
	}
	p := make(Path, len(rev))
	for i := range rev {
		p[i] = rev[len(rev)-1-i]
	}
	return p
}

// Tree is an ordered forest of rows sharing one value shape. Insertion order
// is display order at every level.
type Tree[V any] struct {
	roots []*Row[V]
	count int
}

func NewTree[V any]() *Tree[V] {
	return &Tree[V]{}
}

// Insert adds v under parent (nil for top-level) before position. A negative
// position, or one past the end, appends.
func (t *Tree[V]) Insert(parent *Row[V], position int, v V) *Row[V] {
	row := &Row[V]{Value: v, parent: parent}
	if parent == nil {
		t.roots = insertAt(t.roots, position, row)
	} else {
		parent.children = insertAt(parent.children, position, row)
	}
	t.count++
	return row
}

func (t *Tree[V]) Append(parent *Row[V], v V) *Row[V] {
	return t.Insert(parent, -1, v)
}

func (t *Tree[V]) Roots() []*Row[V] { return t.roots }

// Len is the number of top-level rows.
func (t *Tree[V]) Len() int { return len(t.roots) }

// Count is the number of rows at every depth.
func (t *Tree[V]) Count() int { return t.count }

func (t *Tree[V]) Lookup(p Path) (*Row[V], bool) {
	if len(p) == 0 {
		return nil, false
	}
	level := t.roots
	var row *Row[V]
	for _, idx := range p {
		if idx < 0 || idx >= len(level) {
			return nil, false
		}
		row = level[idx]
		level = row.children
	}
	return row, true
}

// Walk visits rows depth-first in display order. Returning true from fn stops
// the walk.
func (t *Tree[V]) Walk(fn func(Path, *Row[V]) bool) {
	walk(t.roots, nil, fn)
}

func walk[V any](rows []*Row[V], prefix Path, fn func(Path, *Row[V]) bool) bool {
	for i, row := range rows {
		p := append(prefix.Clone(), i)
		if fn(p, row) {
			return true
		}
		if walk(row.children, p, fn) {
			return true
		}
	}
	return false
}

func insertAt[V any](rows []*Row[V], position int, row *Row[V]) []*Row[V] {
	if position < 0 || position >= len(rows) {
		return append(rows, row)
	}
	rows = append(rows, nil)
	copy(rows[position+1:], rows[position:])
	rows[position] = row
	return rows
}

func indexOf[V any](rows []*Row[V], row *Row[V]) int {
	for i, r := range rows {
		if r == row {
			return i
		}
	}
	return -1
}
