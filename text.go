package mdp

import (
	"fmt"
	"io"
	"strings"

	"github.com/muesli/reflow/wordwrap"
)

// WriteText renders doc as wrapped plain text. Resolved links render as
// "text (url)"; unresolved references render as their literal source form.
func WriteText(w io.Writer, doc Document, width int) error {
	if width < 1 {
		width = 80
	}
	tw := textWriter{w: w, width: width}
	return tw.blocks(doc, "")
}

type textWriter struct {
	w     io.Writer
	width int
}

func (t *textWriter) blocks(blocks []Block, prefix string) error {
	for i, b := range blocks {
		if i > 0 {
			if err := t.line(prefix, ""); err != nil {
				return err
			}
		}
		if err := t.block(b, prefix); err != nil {
			return err
		}
	}
	return nil
}

func (t *textWriter) block(b Block, prefix string) error {
	switch b.Kind {
	case BlockHeading:
		return t.wrapped(prefix, strings.Repeat("#", b.Level)+" "+inlinePlain(b.Inlines))
	case BlockParagraph:
		return t.wrapped(prefix, inlinePlain(b.Inlines))
	case BlockRule:
		return t.line(prefix, "---")
	case BlockCode:
		body := strings.TrimSuffix(string(b.Literal), "\n")
		for _, l := range strings.Split(body, "\n") {
			if err := t.line(prefix+"    ", l); err != nil {
				return err
			}
		}
		return nil
	case BlockQuote:
		return t.blocks(b.Children, prefix+"> ")
	case BlockListItem:
		marker := "- "
		if b.Ordered {
			marker = fmt.Sprintf("%d. ", b.Index)
		}
		var sb strings.Builder
		sub := textWriter{w: &sb, width: t.width}
		if err := sub.blocks(b.Children, prefix+strings.Repeat(" ", len(marker))); err != nil {
			return err
		}
		out := sb.String()
		lead := prefix + strings.Repeat(" ", len(marker))
		if strings.HasPrefix(out, lead) {
			out = prefix + marker + out[len(lead):]
		}
		_, err := io.WriteString(t.w, out)
		return err
	}
	return nil
}

func (t *textWriter) wrapped(prefix, text string) error {
	width := t.width - len(prefix)
	if width < 1 {
		width = 1
	}
	for _, l := range strings.Split(wordwrap.String(text, width), "\n") {
		if err := t.line(prefix, l); err != nil {
			return err
		}
	}
	return nil
}

func (t *textWriter) line(prefix, s string) error {
	_, err := fmt.Fprintln(t.w, strings.TrimRight(prefix+s, " "))
	return err
}

func inlinePlain(inlines []Inline) string {
	var sb strings.Builder
	writeInlinePlain(&sb, inlines)
	return sb.String()
}

func writeInlinePlain(sb *strings.Builder, inlines []Inline) {
	for _, in := range inlines {
		switch in.Kind {
		case InlineText:
			sb.Write(in.Text)
		case InlineCode:
			sb.WriteByte('`')
			sb.Write(in.Text)
			sb.WriteByte('`')
		case InlineEmphasis, InlineStrong:
			writeInlinePlain(sb, in.Children)
		case InlineLink, InlineImage:
			inner := inlinePlain(in.Children)
			sb.WriteString(inner)
			if in.URL != "" && in.URL != inner {
				fmt.Fprintf(sb, " (%s)", in.URL)
			}
		case InlineRefLink, InlineRefImage:
			sb.Write(in.Text)
		case InlineBreak:
			sb.WriteByte('\n')
		}
	}
}
