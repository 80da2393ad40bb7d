package model

import (
	"fmt"
	"strconv"
	"strings"
)

// Path locates a row from the root of a Tree as a sequence of zero-based
// indices. A path of depth 1 identifies a top-level row.
type Path []int

func NewPath(indices ...int) Path {
	return append(Path(nil), indices...)
}

// ParsePath reads the colon separated form produced by String, which is also
// the form GTK uses for tree paths ("6:3").
func ParsePath(s string) (Path, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, fmt.Errorf("empty path")
	}
	parts := strings.Split(s, ":")
	p := make(Path, 0, len(parts))
	for _, part := range parts {
		idx, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("invalid path %q: %w", s, err)
		}
		if idx < 0 {
			return nil, fmt.Errorf("invalid path %q: negative index %d", s, idx)
		}
		p = append(p, idx)
	}
	return p, nil
}

func (p Path) Depth() int { return len(p) }

// Up drops the last index. It reports false when the path is already empty.
func (p *Path) Up() bool {
	if len(*p) == 0 {
		return false
	}
	*p = (*p)[:len(*p)-1]
	return true
}

// TopLevel returns the path of the top-level ancestor. Depth-1 and empty
// paths are returned as they are.
func (p Path) TopLevel() Path {
	top := p.Clone()
	for top.Depth() > 1 {
		top.Up()
	}
	return top
}

func (p Path) Clone() Path {
	if p == nil {
		return nil
	}
	return append(Path(nil), p...)
}

func (p Path) Equal(o Path) bool {
	if len(p) != len(o) {
		return false
	}
	for i := range p {
		if p[i] != o[i] {
			return false
		}
	}
	return true
}

func (p Path) String() string {
	parts := make([]string, len(p))
	for i, idx := range p {
		parts[i] = strconv.Itoa(idx)
	}
	return strings.Join(parts, ":")
}
