package view

import (
	"bytes"
	"html/template"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/util"
)

// TextProcessor renders user-written text to safe HTML. Only a small
// markdown subset is enabled (emphasis, code spans, strikethrough);
// everything else stays literal, and the sanitizer has the last word.
type TextProcessor struct {
	md     goldmark.Markdown
	policy *bluemonday.Policy
}

func NewTextProcessor() *TextProcessor {
	p := parser.NewParser(
		parser.WithBlockParsers(
			util.Prioritized(parser.NewParagraphParser(), 1000),
		),
		parser.WithInlineParsers(
			util.Prioritized(parser.NewCodeSpanParser(), 100),
			util.Prioritized(parser.NewEmphasisParser(), 500),
		),
	)

	md := goldmark.New(
		goldmark.WithParser(p),
		goldmark.WithExtensions(extension.Strikethrough),
	)

	return &TextProcessor{md: md, policy: bluemonday.UGCPolicy()}
}

// Render converts text to sanitized HTML. On a conversion error the raw
// text comes back escaped, so a bad input degrades to plain text rather
// than failing the render.
func (tp *TextProcessor) Render(text string) template.HTML {
	var buf bytes.Buffer
	if err := tp.md.Convert([]byte(text), &buf); err != nil {
		return template.HTML(template.HTMLEscapeString(text))
	}
	safe := tp.policy.Sanitize(strings.TrimSpace(buf.String()))
	return template.HTML(safe)
}
