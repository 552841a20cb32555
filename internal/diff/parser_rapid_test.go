package diff

import (
	"fmt"
	"reflect"
	"strings"
	"testing"

	"pgregory.net/rapid"
)

// --- Generators ---

type genOp int

const (
	opContext genOp = iota
	opAdd
	opRemove
)

type genHunk struct {
	oldStart int
	newStart int
	ops      []genOp
	texts    []string
}

type genFile struct {
	path  string
	hunks []genHunk
}

func lineText() *rapid.Generator[string] {
	return rapid.StringMatching(`[a-zA-Z0-9_ .]{0,24}`)
}

func hunkGen() *rapid.Generator[genHunk] {
	return rapid.Custom(func(t *rapid.T) genHunk {
		n := rapid.IntRange(1, 12).Draw(t, "lines")
		h := genHunk{
			oldStart: rapid.IntRange(1, 500).Draw(t, "oldStart"),
			newStart: rapid.IntRange(1, 500).Draw(t, "newStart"),
		}
		for i := 0; i < n; i++ {
			h.ops = append(h.ops, genOp(rapid.IntRange(0, 2).Draw(t, "op")))
			h.texts = append(h.texts, lineText().Draw(t, "text"))
		}
		return h
	})
}

func fileGen(id int) *rapid.Generator[genFile] {
	return rapid.Custom(func(t *rapid.T) genFile {
		return genFile{
			path:  fmt.Sprintf("dir/file%d.go", id),
			hunks: rapid.SliceOfN(hunkGen(), 1, 3).Draw(t, "hunks"),
		}
	})
}

func renderDiff(files []genFile) string {
	var b strings.Builder
	for _, f := range files {
		fmt.Fprintf(&b, "diff --git a/%s b/%s\n", f.path, f.path)
		fmt.Fprintf(&b, "--- a/%s\n", f.path)
		fmt.Fprintf(&b, "+++ b/%s\n", f.path)
		for _, h := range f.hunks {
			fmt.Fprintf(&b, "@@ -%d,0 +%d,0 @@\n", h.oldStart, h.newStart)
			for i, op := range h.ops {
				switch op {
				case opAdd:
					b.WriteString("+" + h.texts[i] + "\n")
				case opRemove:
					b.WriteString("-" + h.texts[i] + "\n")
				default:
					b.WriteString(" " + h.texts[i] + "\n")
				}
			}
		}
	}
	return b.String()
}

// referenceChanges re-derives the expected LineChanges purely from hunk
// start values and the op sequence, independent of the parser.
func referenceChanges(f genFile) []LineChange {
	var out []LineChange
	for _, h := range f.hunks {
		oldNo, newNo := h.oldStart, h.newStart
		for i, op := range h.ops {
			switch op {
			case opAdd:
				out = append(out, LineChange{Kind: LineAdded, Number: newNo, Text: h.texts[i]})
				newNo++
			case opRemove:
				out = append(out, LineChange{Kind: LineRemoved, Number: oldNo, Text: h.texts[i]})
				oldNo++
			default:
				oldNo++
				newNo++
			}
		}
	}
	return out
}

// --- Property tests ---

func TestRapidParse_LineNumbersMatchReference(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		nFiles := rapid.IntRange(1, 4).Draw(t, "nFiles")
		files := make([]genFile, nFiles)
		for i := range files {
			files[i] = fileGen(i).Draw(t, "file")
		}

		parsed := Parse(renderDiff(files))

		var want []FileDiff
		for _, f := range files {
			changes := referenceChanges(f)
			if len(changes) == 0 {
				continue
			}
			want = append(want, FileDiff{Path: f.path, Changes: changes})
		}

		if !reflect.DeepEqual(parsed, want) {
			t.Fatalf("parsed = %+v, want %+v", parsed, want)
		}
	})
}

func TestRapidParse_Deterministic(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		files := rapid.SliceOfN(fileGen(0), 1, 3).Draw(t, "files")
		raw := renderDiff(files)

		first := Parse(raw)
		second := Parse(raw)

		if !reflect.DeepEqual(first, second) {
			t.Fatalf("Parse is not deterministic: %+v vs %+v", first, second)
		}
	})
}

func TestRapidParse_NumbersStrictlyPositive(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		files := rapid.SliceOfN(fileGen(0), 1, 3).Draw(t, "files")

		for _, fd := range Parse(renderDiff(files)) {
			if fd.Path == "" {
				t.Fatalf("empty path in FileDiff")
			}
			if len(fd.Changes) == 0 {
				t.Fatalf("empty FileDiff emitted for %q", fd.Path)
			}
			for _, c := range fd.Changes {
				if c.Number < 1 {
					t.Fatalf("non-positive line number %d in %q", c.Number, fd.Path)
				}
			}
		}
	})
}
