package markdown

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"github.com/hnasir/askbook"
)

type renderer struct {
	heading   lipgloss.Style
	gutter    lipgloss.Style
	bold      lipgloss.Style
	italic    lipgloss.Style
	underline lipgloss.Style
	muted     lipgloss.Style
}

func newRenderer(theme askbook.Theme) *renderer {
	return &renderer{
		heading:   lipgloss.NewStyle().Foreground(ansiColor(theme.Accent)).Bold(true),
		gutter:    lipgloss.NewStyle().Foreground(ansiColor(theme.Code)).Faint(true),
		bold:      lipgloss.NewStyle().Bold(true),
		italic:    lipgloss.NewStyle().Italic(true),
		underline: lipgloss.NewStyle().Underline(true),
		muted:     lipgloss.NewStyle().Foreground(ansiColor(theme.Muted)).Faint(true),
	}
}

func ansiColor(index int) lipgloss.TerminalColor {
	if index < 0 {
		return lipgloss.NoColor{}
	}
	return lipgloss.Color(strconv.Itoa(index))
}

func (r *renderer) render(source []byte, width int) string {
	doc := goldmark.DefaultParser().Parse(text.NewReader(source))

	var buf bytes.Buffer
	for c := doc.FirstChild(); c != nil; c = c.NextSibling() {
		r.block(c, source, width, &buf)
		if c.NextSibling() != nil {
			buf.WriteString("\n")
		}
	}
	return strings.TrimRight(buf.String(), "\n")
}

func (r *renderer) block(node ast.Node, source []byte, width int, buf *bytes.Buffer) {
	switch n := node.(type) {
	case *ast.Paragraph, *ast.TextBlock:
		inline := r.inlines(node, source)
		buf.WriteString(wrap(inline, width))
		buf.WriteString("\n")

	case *ast.Heading:
		buf.WriteString(wrap(r.heading.Render(r.inlines(n, source)), width))
		buf.WriteString("\n")

	case *ast.FencedCodeBlock:
		if lang := string(n.Language(source)); lang != "" {
			buf.WriteString(r.muted.Render(lang))
			buf.WriteString("\n")
		}
		r.codeLines(n, source, buf)

	case *ast.CodeBlock:
		r.codeLines(n, source, buf)

	case *ast.List:
		r.list(n, source, width, buf, 0)

	case *ast.ThematicBreak:
		buf.WriteString(r.muted.Render(strings.Repeat("-", min(width, 3))))
		buf.WriteString("\n")

	default:
		// Blockquotes and anything unrecognized: render the children plainly.
		for c := node.FirstChild(); c != nil; c = c.NextSibling() {
			r.block(c, source, width, buf)
		}
	}
}

// codeLines writes a code block with a gutter prefix, preserving line breaks.
func (r *renderer) codeLines(node ast.Node, source []byte, buf *bytes.Buffer) {
	gutter := r.gutter.Render("│") + " "
	lines := node.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		buf.WriteString(gutter)
		buf.WriteString(strings.TrimRight(string(seg.Value(source)), "\n"))
		buf.WriteString("\n")
	}
}

func (r *renderer) list(node *ast.List, source []byte, width int, buf *bytes.Buffer, depth int) {
	num := int(node.Start)
	for c := node.FirstChild(); c != nil; c = c.NextSibling() {
		item, ok := c.(*ast.ListItem)
		if !ok {
			continue
		}
		marker := "- "
		if node.IsOrdered() {
			marker = fmt.Sprintf("%d. ", num)
			num++
		}
		prefix := strings.Repeat("  ", depth) + marker

		for ic := item.FirstChild(); ic != nil; ic = ic.NextSibling() {
			if nested, ok := ic.(*ast.List); ok {
				r.list(nested, source, width, buf, depth+1)
				continue
			}
			r.listItemText(r.inlines(ic, source), prefix, width, buf)
			// Only the first line of an item carries the marker.
			prefix = strings.Repeat(" ", len(prefix))
		}
	}
}

// listItemText writes one list item, indenting wrapped continuation lines to
// align under the text rather than the marker.
func (r *renderer) listItemText(content, prefix string, width int, buf *bytes.Buffer) {
	itemWidth := width - len(prefix)
	if itemWidth < 10 {
		itemWidth = 10
	}
	hang := strings.Repeat(" ", len(prefix))
	for i, line := range strings.Split(wrap(content, itemWidth), "\n") {
		if i == 0 {
			buf.WriteString(prefix)
		} else {
			buf.WriteString(hang)
		}
		buf.WriteString(line)
		buf.WriteString("\n")
	}
}

// inlines collects the styled inline text of a node's children.
func (r *renderer) inlines(node ast.Node, source []byte) string {
	var buf bytes.Buffer
	for c := node.FirstChild(); c != nil; c = c.NextSibling() {
		r.inline(c, source, &buf)
	}
	return buf.String()
}

func (r *renderer) inline(node ast.Node, source []byte, buf *bytes.Buffer) {
	switch n := node.(type) {
	case *ast.Text:
		buf.Write(n.Segment.Value(source))
		if n.SoftLineBreak() {
			buf.WriteByte(' ')
		}
		if n.HardLineBreak() {
			buf.WriteByte('\n')
		}

	case *ast.String:
		buf.Write(n.Value)

	case *ast.Emphasis:
		inner := r.inlines(n, source)
		if n.Level == 1 {
			buf.WriteString(r.italic.Render(inner))
		} else {
			buf.WriteString(r.bold.Render(inner))
		}

	case *ast.CodeSpan:
		buf.WriteString(r.bold.Render(r.inlines(n, source)))

	case *ast.Link:
		buf.WriteString(r.underline.Render(r.inlines(n, source)))
		buf.WriteString(" ")
		buf.WriteString(r.muted.Render("(" + string(n.Destination) + ")"))

	case *ast.AutoLink:
		buf.WriteString(r.underline.Render(string(n.URL(source))))

	default:
		for c := node.FirstChild(); c != nil; c = c.NextSibling() {
			r.inline(c, source, buf)
		}
	}
}

func wrap(s string, width int) string {
	return lipgloss.NewStyle().Width(width).Render(s)
}
