package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppendKeepsInsertionOrder(t *testing.T) {
	tree := NewTree[string]()
	a := tree.Append(nil, "a")
	tree.Append(nil, "b")
	tree.Append(a, "a0")
	tree.Append(a, "a1")

	require.Equal(t, 2, tree.Len())
	assert.Equal(t, 4, tree.Count())
	assert.Equal(t, "a", tree.Roots()[0].Value)
	assert.Equal(t, "b", tree.Roots()[1].Value)
	require.Len(t, a.Children(), 2)
	assert.Equal(t, "a1", a.Children()[1].Value)
	assert.Same(t, a, a.Children()[0].Parent())
	assert.True(t, a.IsTopLevel())
	assert.False(t, a.Children()[0].IsTopLevel())
}

func TestInsertAtPosition(t *testing.T) {
	tree := NewTree[string]()
	tree.Append(nil, "a")
	tree.Append(nil, "c")
	tree.Insert(nil, 1, "b")
	tree.Insert(nil, 0, "first")
	tree.Insert(nil, 99, "last")

	var got []string
	for _, r := range tree.Roots() {
		got = append(got, r.Value)
	}
	assert.Equal(t, []string{"first", "a", "b", "c", "last"}, got)
}

func TestLookupAndRowPath(t *testing.T) {
	tree := NewTree[string]()
	for i := 0; i < 3; i++ {
		root := tree.Append(nil, "root")
		for j := 0; j < i; j++ {
			tree.Append(root, "child")
		}
	}

	row, ok := tree.Lookup(NewPath(2, 1))
	require.True(t, ok)
	assert.Equal(t, "child", row.Value)
	assert.Equal(t, "2:1", row.Path(tree).String())

	_, ok = tree.Lookup(NewPath(1, 1))
	assert.False(t, ok)
	_, ok = tree.Lookup(NewPath(3))
	assert.False(t, ok)
	_, ok = tree.Lookup(nil)
	assert.False(t, ok)
}

func TestWalkVisitsDepthFirst(t *testing.T) {
	tree := NewTree[string]()
	a := tree.Append(nil, "a")
	tree.Append(a, "a0")
	tree.Append(nil, "b")

	var paths []string
	tree.Walk(func(p Path, r *Row[string]) bool {
		paths = append(paths, p.String()+"="+r.Value)
		return false
	})
	assert.Equal(t, []string{"0=a", "0:0=a0", "1=b"}, paths)

	visited := 0
	tree.Walk(func(Path, *Row[string]) bool {
		visited++
		return true
	})
	assert.Equal(t, 1, visited)
}
