// Package libdiff computes line diffs between renderings of maps.
package libdiff

import (
	"io"
	"strings"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

type Op int

const (
	Equal Op = iota
	Insert
	Delete
)

func (o Op) prefix() string {
	switch o {
	case Insert:
		return "+ "
	case Delete:
		return "- "
	default:
		return "  "
	}
}

// Edit is one line of a diff.  Text carries no trailing newline.
type Edit struct {
	Op   Op
	Text string
}

// Lines diffs from and to line by line.
func Lines(from, to string) []Edit {
	dmp := diffpatch.New()
	a, b, lines := dmp.DiffLinesToChars(from, to)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)
	var res []Edit
	for _, d := range diffs {
		op := Equal
		switch d.Type {
		case diffpatch.DiffInsert:
			op = Insert
		case diffpatch.DiffDelete:
			op = Delete
		}
		for _, line := range splitLines(d.Text) {
			res = append(res, Edit{Op: op, Text: line})
		}
	}
	return res
}

func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(s, "\n"), "\n")
}

// Same reports whether edits contains no insertions or deletions.
func Same(edits []Edit) bool {
	for i := range edits {
		if edits[i].Op != Equal {
			return false
		}
	}
	return true
}

// Colors optionally decorates inserted and deleted lines.
type Colors struct {
	Insert func(string, ...any) string
	Delete func(string, ...any) string
}

// Write writes edits one per line, prefixed with "+ ", "- " or two spaces.
// colors may be nil.
func Write(w io.Writer, edits []Edit, colors *Colors) error {
	for _, e := range edits {
		line := e.Op.prefix() + e.Text
		if colors != nil {
			switch {
			case e.Op == Insert && colors.Insert != nil:
				line = colors.Insert("%s", line)
			case e.Op == Delete && colors.Delete != nil:
				line = colors.Delete("%s", line)
			}
		}
		if _, err := io.WriteString(w, line+"\n"); err != nil {
			return err
		}
	}
	return nil
}
