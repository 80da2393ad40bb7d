package store

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"treeview/internal/resource"
)

func TestBuildTextShape(t *testing.T) {
	tree := BuildText(DefaultRoots)
	require.Equal(t, 10, tree.Len())

	for i, root := range tree.Roots() {
		assert.Equal(t, fmt.Sprintf("Hello %d", i), root.Value.Label)
		require.Len(t, root.Children(), i)
		for _, child := range root.Children() {
			assert.Equal(t, "I'm a child node", child.Value.Label)
			assert.Empty(t, child.Children())
		}
	}
	assert.Equal(t, 10+45, tree.Count())
}

func TestBuildTextZero(t *testing.T) {
	assert.Equal(t, 0, BuildText(0).Len())
}

func TestBuildIconWithImage(t *testing.T) {
	icon := &resource.Image{Name: "eye.png", Width: 24, Height: 24}
	tree := BuildIcon(DefaultRoots, icon)
	require.Equal(t, 10, tree.Len())
	for _, row := range tree.Roots() {
		assert.Equal(t, "I'm a child node with an image", row.Value.Label)
		assert.Same(t, icon, row.Value.Icon)
		assert.Empty(t, row.Children())
	}
}

func TestBuildIconWithoutImage(t *testing.T) {
	tree := BuildIcon(DefaultRoots, nil)
	require.Equal(t, 10, tree.Len())
	for _, row := range tree.Roots() {
		assert.Nil(t, row.Value.Icon)
		assert.Equal(t, IconLabel, row.Value.Label)
	}
}
