// Package markdown provides a small line-oriented Markdown-to-HTML
// renderer as a templ component. It covers the subset review bodies use:
// headings, unordered lists, blockquotes, fenced code blocks, and inline
// bold/italic/code. No tables, link syntax, images, or raw HTML.
package markdown

import (
	"context"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/a-h/templ"
)

var (
	reHeading          = regexp.MustCompile(`^(#{1,6})\s+(.*)$`)
	reListItem         = regexp.MustCompile(`^[-*+]\s+(.*)$`)
	reBold             = regexp.MustCompile(`\*\*(.+?)\*\*`)
	reBoldUnderscore   = regexp.MustCompile(`__(.+?)__`)
	reItalic           = regexp.MustCompile(`\*(.+?)\*`)
	reItalicUnderscore = regexp.MustCompile(`_(.+?)_`)
	reInlineCode       = regexp.MustCompile("`(.+?)`")
)

// htmlEscaper escapes the three characters that matter for emitted
// markup. Escaping runs before inline substitution so the tags the
// substitutions emit are never re-escaped.
var htmlEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

// Markdown returns a templ.Component that renders md as HTML.
func Markdown(md string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, Render(md))
		return err
	})
}

// Render converts body text into HTML, one block element per emitted
// line. Malformed constructs never fail: an unclosed fence still emits
// its buffered code, a stray delimiter stays literal text.
func Render(md string) string {
	var blocks []string
	var codeBuf []string
	var listBuf []string
	inCode := false

	flushList := func() {
		if len(listBuf) == 0 {
			return
		}
		var b strings.Builder
		b.WriteString("<ul>")
		for _, item := range listBuf {
			b.WriteString("<li>" + item + "</li>")
		}
		b.WriteString("</ul>")
		blocks = append(blocks, b.String())
		listBuf = nil
	}
	flushCode := func() {
		if !inCode {
			return
		}
		escaped := htmlEscaper.Replace(strings.Join(codeBuf, "\n"))
		blocks = append(blocks, "<pre><code>"+escaped+"</code></pre>")
		codeBuf = nil
		inCode = false
	}

	for _, raw := range strings.Split(md, "\n") {
		line := strings.TrimRight(raw, "\r")

		// A fence line toggles code mode; trailing text on the fence
		// line (a language tag) is ignored.
		if strings.HasPrefix(line, "```") {
			if inCode {
				flushCode()
			} else {
				flushList()
				inCode = true
			}
			continue
		}
		if inCode {
			codeBuf = append(codeBuf, line)
			continue
		}

		if m := reHeading.FindStringSubmatch(line); m != nil {
			flushList()
			blocks = append(blocks, fmt.Sprintf("<h%d>%s</h%d>", len(m[1]), formatInline(m[2]), len(m[1])))
			continue
		}
		if m := reListItem.FindStringSubmatch(line); m != nil {
			listBuf = append(listBuf, formatInline(m[1]))
			continue
		}

		flushList()

		if strings.TrimSpace(line) == "" {
			continue
		}
		if strings.HasPrefix(line, ">") {
			quoted := strings.TrimPrefix(strings.TrimPrefix(line, ">"), " ")
			blocks = append(blocks, "<blockquote>"+formatInline(quoted)+"</blockquote>")
			continue
		}
		blocks = append(blocks, "<p>"+formatInline(line)+"</p>")
	}

	flushList()
	flushCode()
	return strings.Join(blocks, "\n")
}

// formatInline escapes the text and then applies bold, italic, and
// inline-code substitutions in that order, shortest span first. A stray
// unpaired delimiter is left as literal text.
func formatInline(s string) string {
	s = htmlEscaper.Replace(s)
	s = reBold.ReplaceAllString(s, "<strong>$1</strong>")
	s = reBoldUnderscore.ReplaceAllString(s, "<strong>$1</strong>")
	s = reItalic.ReplaceAllString(s, "<em>$1</em>")
	s = reItalicUnderscore.ReplaceAllString(s, "<em>$1</em>")
	s = reInlineCode.ReplaceAllString(s, "<code>$1</code>")
	return s
}
