package outline

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"treeview/internal/resource"
	"treeview/internal/store"
)

func section(doc, name string) string {
	start := strings.Index(doc, name+":\n")
	if start < 0 {
		return ""
	}
	rest := doc[start+len(name)+2:]
	if end := strings.Index(rest, "\n\n"); end >= 0 {
		return rest[:end]
	}
	return rest
}

func TestDocumentListsBothPanes(t *testing.T) {
	icon := &resource.Image{Name: "eye.png", Width: 24, Height: 24}
	doc := Document(store.BuildText(store.DefaultRoots), store.BuildIcon(store.DefaultRoots, icon))

	left := section(doc, "left")
	for _, want := range []string{"Hello 0", "Hello 5", "Hello 9"} {
		assert.Contains(t, left, want)
	}
	assert.Equal(t, 45, strings.Count(left, store.ChildLabel))

	right := section(doc, "right")
	assert.Equal(t, 10, strings.Count(right, "[eye.png 24x24] "+store.IconLabel))
}

func TestDocumentWithoutIcon(t *testing.T) {
	doc := Document(store.BuildText(2), store.BuildIcon(3, nil))
	assert.Equal(t, 3, strings.Count(section(doc, "right"), "[no image] "))
}

func TestRenderIndentsChildren(t *testing.T) {
	out := Render(store.BuildText(3), TextLabel)
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 6)

	childIndent := strings.Index(lines[2], store.ChildLabel)
	rootIndent := strings.Index(lines[1], "Hello 1")
	assert.Greater(t, childIndent, rootIndent)
}

func TestWrite(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, store.BuildText(1), store.BuildIcon(1, nil)))
	assert.True(t, strings.HasPrefix(buf.String(), "left:\n"))
	assert.True(t, strings.HasSuffix(buf.String(), "\n"))
}

func TestCheckIdentical(t *testing.T) {
	doc := Document(store.BuildText(4), store.BuildIcon(4, nil))
	assert.NoError(t, Check(doc, doc))
}

func TestCheckReportsChangedLines(t *testing.T) {
	expected := Document(store.BuildText(3), store.BuildIcon(2, nil))
	actual := Document(store.BuildText(4), store.BuildIcon(2, nil))

	err := Check(expected, actual)
	require.Error(t, err)

	var mismatch *MismatchError
	require.True(t, errors.As(err, &mismatch))
	assert.Contains(t, mismatch.Diff, "+ ")
	assert.Contains(t, mismatch.Diff, "Hello 3")
	assert.NotContains(t, mismatch.Diff, "Hello 0")
}
