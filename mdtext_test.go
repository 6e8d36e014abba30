package resumeats

import (
	"reflect"
	"testing"

	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// parseBlocks returns the top-level blocks of a markdown snippet.
func parseBlocks(t *testing.T, markdown string) ([]ast.Node, []byte) {
	t.Helper()

	src := []byte(markdown)
	doc := resumeParser.Parser().Parse(text.NewReader(src))
	var blocks []ast.Node
	for b := doc.FirstChild(); b != nil; b = b.NextSibling() {
		blocks = append(blocks, b)
	}
	return blocks, src
}

func TestNodeText_ResolvesInlineMarkup(t *testing.T) {
	t.Parallel()

	blocks, src := parseBlocks(t, "Built **fast** pipelines with [Go](https://go.dev) and `sqlc`.")
	if len(blocks) != 1 {
		t.Fatalf("blocks = %d", len(blocks))
	}

	want := "Built fast pipelines with Go and sqlc."
	if got := nodeText(blocks[0], src); got != want {
		t.Errorf("nodeText() = %q, want %q", got, want)
	}
}

func TestParagraphLines(t *testing.T) {
	t.Parallel()

	blocks, src := parseBlocks(t, "first line\nsecond line\nthird line")
	got := paragraphLines(blocks[0], src)
	want := []string{"first line", "second line", "third line"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("paragraphLines() = %v, want %v", got, want)
	}
}

func TestListItemText_FlattensNestedLists(t *testing.T) {
	t.Parallel()

	blocks, src := parseBlocks(t, "- Parent item\n  - child one\n  - child two\n")
	list, ok := blocks[0].(*ast.List)
	if !ok {
		t.Fatalf("block is %T, want *ast.List", blocks[0])
	}

	got := listItemText(list.FirstChild(), src)
	want := "Parent item; child one; child two"
	if got != want {
		t.Errorf("listItemText() = %q, want %q", got, want)
	}
}

func TestReconstructMarkdown(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		markdown string
		want     string
	}{
		{
			name:     "heading",
			markdown: "### Side Work\n",
			want:     "### Side Work",
		},
		{
			name:     "unordered list",
			markdown: "- one\n- two\n",
			want:     "- one\n- two",
		},
		{
			name:     "ordered list keeps numbering",
			markdown: "3. third\n4. fourth\n",
			want:     "3. third\n4. fourth",
		},
		{
			name:     "fenced code keeps language",
			markdown: "```go\nfunc main() {}\n```\n",
			want:     "```go\nfunc main() {}\n```",
		},
		{
			name:     "blockquote",
			markdown: "> quoted line\n",
			want:     "> quoted line",
		},
		{
			name:     "thematic break",
			markdown: "---\n",
			want:     "---",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			blocks, src := parseBlocks(t, tt.markdown)
			if len(blocks) == 0 {
				t.Fatal("no blocks parsed")
			}
			if got := reconstructMarkdown(blocks[0], src); got != tt.want {
				t.Errorf("reconstructMarkdown() = %q, want %q", got, tt.want)
			}
		})
	}
}
