// Package outline prints the pane contents as indented lists and compares
// them against an expected layout.
package outline

import (
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/list"
	"github.com/sergi/go-diff/diffmatchpatch"

	"treeview/internal/model"
	"treeview/internal/store"
)

func TextLabel(r store.TextRow) string { return r.Label }

func IconLabel(r store.IconRow) string {
	if r.Icon == nil {
		return "[no image] " + r.Label
	}
	return fmt.Sprintf("[%s %dx%d] %s", r.Icon.Name, r.Icon.Width, r.Icon.Height, r.Label)
}

// Render lays tree out with one list level per tree depth.
func Render[V any](tree *model.Tree[V], label func(V) string) string {
	l := list.NewWriter()
	l.SetStyle(list.StyleConnectedLight)
	appendRows(l, tree.Roots(), label)
	return l.Render()
}

func appendRows[V any](l list.Writer, rows []*model.Row[V], label func(V) string) {
	for _, row := range rows {
		l.AppendItem(label(row.Value))
		if len(row.Children()) > 0 {
			l.Indent()
			appendRows(l, row.Children(), label)
			l.UnIndent()
		}
	}
}

// Document renders both panes the way the dump command prints them.
func Document(left *model.Tree[store.TextRow], right *model.Tree[store.IconRow]) string {
	var b strings.Builder
	b.WriteString("left:\n")
	b.WriteString(Render(left, TextLabel))
	b.WriteString("\n\nright:\n")
	b.WriteString(Render(right, IconLabel))
	b.WriteString("\n")
	return b.String()
}

func Write(w io.Writer, left *model.Tree[store.TextRow], right *model.Tree[store.IconRow]) error {
	_, err := io.WriteString(w, Document(left, right))
	return err
}

// MismatchError carries a line diff of expected against actual.
type MismatchError struct {
	Diff string
}

func (e *MismatchError) Error() string {
	return "outline does not match expected layout:\n" + e.Diff
}

// Check compares line by line and returns a *MismatchError when they differ.
func Check(expected, actual string) error {
	dmp := diffmatchpatch.New()
	a, b, lines := dmp.DiffLinesToChars(expected, actual)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)

	var out strings.Builder
	changed := false
	for _, d := range diffs {
		prefix := "  "
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			prefix = "- "
			changed = true
		case diffmatchpatch.DiffInsert:
			prefix = "+ "
			changed = true
		case diffmatchpatch.DiffEqual:
			continue
		}
		for _, line := range strings.SplitAfter(d.Text, "\n") {
			if line == "" {
				continue
			}
			out.WriteString(prefix + strings.TrimSuffix(line, "\n") + "\n")
		}
	}
	if !changed {
		return nil
	}
	return &MismatchError{Diff: out.String()}
}
