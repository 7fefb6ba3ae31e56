package publish

import (
	"bufio"
	"bytes"
	"path/filepath"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
)

func newMarkdown() goldmark.Markdown {
	return goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			extension.Footnote,
			extension.Typographer,
			extension.Linkify,
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
		goldmark.WithRendererOptions(
			html.WithXHTML(),
			// raw HTML is kept here and cleaned by the policy
			html.WithUnsafe(),
		),
	)
}

func newPolicy() *bluemonday.Policy {
	p := bluemonday.UGCPolicy()
	// code highlighting classes
	p.AllowAttrs("class").Matching(bluemonday.SpaceSeparatedTokens).OnElements("code", "span", "pre")
	p.AllowElements("table", "thead", "tbody", "tr", "th", "td")
	// heading anchors
	p.AllowAttrs("id").OnElements("h1", "h2", "h3", "h4", "h5", "h6")
	return p
}

// Render converts Markdown to sanitised HTML.
func (s *Service) Render(src []byte) (string, error) {
	var buf bytes.Buffer
	if err := s.md.Convert(src, &buf); err != nil {
		return "", err
	}
	return s.policy.Sanitize(buf.String()), nil
}

// splitTitle returns the text of the first "# " heading outside fenced code
// and the source with that line removed. ok is false when there is none.
func splitTitle(src []byte) (title string, body []byte, ok bool) {
	var out bytes.Buffer
	inFence := false
	sc := bufio.NewScanner(bytes.NewReader(src))
	sc.Buffer(make([]byte, 0, 64*1024), len(src)+1)
	for sc.Scan() {
		line := sc.Text()
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "```") || strings.HasPrefix(trimmed, "~~~") {
			inFence = !inFence
		}
		if !ok && !inFence && strings.HasPrefix(line, "# ") {
			title = strings.TrimSpace(strings.TrimRight(strings.TrimSpace(line[2:]), "#"))
			ok = true
			continue
		}
		out.WriteString(line)
		out.WriteByte('\n')
	}
	if !ok {
		return "", src, false
	}
	return title, bytes.TrimLeft(out.Bytes(), "\n"), true
}

// nameTitle derives a title from a file name.
func nameTitle(name string) string {
	base := filepath.Base(name)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
