package resumeats

import (
	"fmt"
	"strings"

	"github.com/yuin/goldmark/ast"
)

// nodeText extracts the plain text of a node, resolving inline markup
// (emphasis, links, code spans) to its visible content. Soft and hard
// line breaks become newlines so callers can recover the source lines of
// a paragraph.
func nodeText(n ast.Node, src []byte) string {
	var sb strings.Builder
	writeNodeText(&sb, n, src)
	return sb.String()
}

func writeNodeText(sb *strings.Builder, n ast.Node, src []byte) {
	switch t := n.(type) {
	case *ast.Text:
		sb.Write(t.Segment.Value(src))
		if t.SoftLineBreak() || t.HardLineBreak() {
			sb.WriteByte('\n')
		}
		return
	case *ast.String:
		sb.Write(t.Value)
		return
	case *ast.AutoLink:
		sb.Write(t.URL(src))
		return
	}
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		writeNodeText(sb, c, src)
	}
}

// paragraphLines returns the source lines of a paragraph as trimmed
// strings, dropping blank lines.
func paragraphLines(p ast.Node, src []byte) []string {
	var lines []string
	for _, line := range strings.Split(nodeText(p, src), "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// listItemText flattens one list item to a single line. Text from nested
// sub-items is appended with "; " separators rather than modeled as
// structure.
func listItemText(item ast.Node, src []byte) string {
	var parts []string
	for c := item.FirstChild(); c != nil; c = c.NextSibling() {
		if nested, ok := c.(*ast.List); ok {
			for sub := nested.FirstChild(); sub != nil; sub = sub.NextSibling() {
				if t := strings.TrimSpace(listItemText(sub, src)); t != "" {
					parts = append(parts, t)
				}
			}
			continue
		}
		text := strings.Join(strings.Fields(nodeText(c, src)), " ")
		if text != "" {
			parts = append(parts, text)
		}
	}
	return strings.Join(parts, "; ")
}

// reconstructMarkdown rebuilds approximate markdown source for a block
// node. Inline markup is lost, but block structure (headings, lists,
// code fences, block quotes) survives, which is what additional-section
// rendering needs.
func reconstructMarkdown(n ast.Node, src []byte) string {
	var sb strings.Builder
	writeBlockMarkdown(&sb, n, src, "")
	return strings.TrimRight(sb.String(), "\n")
}

func writeBlockMarkdown(sb *strings.Builder, n ast.Node, src []byte, indent string) {
	switch b := n.(type) {
	case *ast.Heading:
		fmt.Fprintf(sb, "%s%s %s\n", indent, strings.Repeat("#", b.Level), strings.TrimSpace(nodeText(b, src)))

	case *ast.Paragraph, *ast.TextBlock:
		for _, line := range strings.Split(nodeText(n, src), "\n") {
			if line = strings.TrimSpace(line); line != "" {
				sb.WriteString(indent + line + "\n")
			}
		}

	case *ast.FencedCodeBlock:
		lang := string(b.Language(src))
		sb.WriteString(indent + "```" + lang + "\n")
		writeRawLines(sb, b, src, indent)
		sb.WriteString(indent + "```\n")

	case *ast.CodeBlock:
		sb.WriteString(indent + "```\n")
		writeRawLines(sb, b, src, indent)
		sb.WriteString(indent + "```\n")

	case *ast.List:
		ordinal := b.Start
		for item := b.FirstChild(); item != nil; item = item.NextSibling() {
			marker := "- "
			if b.IsOrdered() {
				marker = fmt.Sprintf("%d. ", ordinal)
				ordinal++
			}
			writeListItemMarkdown(sb, item, src, indent, marker)
		}

	case *ast.Blockquote:
		var inner strings.Builder
		for c := b.FirstChild(); c != nil; c = c.NextSibling() {
			writeBlockMarkdown(&inner, c, src, "")
		}
		for _, line := range strings.Split(strings.TrimRight(inner.String(), "\n"), "\n") {
			sb.WriteString(indent + "> " + line + "\n")
		}

	case *ast.ThematicBreak:
		sb.WriteString(indent + "---\n")

	default:
		writeRawLines(sb, n, src, indent)
	}
}

func writeListItemMarkdown(sb *strings.Builder, item ast.Node, src []byte, indent, marker string) {
	first := true
	for c := item.FirstChild(); c != nil; c = c.NextSibling() {
		if nested, ok := c.(*ast.List); ok {
			writeBlockMarkdown(sb, nested, src, indent+"  ")
			continue
		}
		text := strings.Join(strings.Fields(nodeText(c, src)), " ")
		if text == "" {
			continue
		}
		if first {
			sb.WriteString(indent + marker + text + "\n")
			first = false
		} else {
			sb.WriteString(indent + strings.Repeat(" ", len(marker)) + text + "\n")
		}
	}
	if first {
		sb.WriteString(indent + marker + "\n")
	}
}

// writeRawLines copies the node's raw source lines, one per output line.
func writeRawLines(sb *strings.Builder, n ast.Node, src []byte, indent string) {
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		sb.WriteString(indent + strings.TrimRight(string(seg.Value(src)), "\n") + "\n")
	}
}
