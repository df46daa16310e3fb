package service

import (
	"bytes"
	stdhtml "html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

var (
	markdownEngine = goldmark.New(
		goldmark.WithExtensions(extension.GFM, extension.Linkify),
		goldmark.WithRendererOptions(html.WithHardWraps(), html.WithXHTML()),
	)
	htmlSanitizer = bluemonday.UGCPolicy()
	plainText     = bluemonday.StrictPolicy()
)

// RenderMarkdown 将描述类字段渲染为经过清洗的 HTML，渲染失败时返回转义后的原文。
func RenderMarkdown(source string) string {
	trimmed := strings.TrimSpace(source)
	if trimmed == "" {
		return ""
	}

	var buf bytes.Buffer
	if err := markdownEngine.Convert([]byte(trimmed), &buf); err != nil {
		return plainText.Sanitize(trimmed)
	}
	return htmlSanitizer.Sanitize(buf.String())
}

// StripHTML 去掉访客输入中的全部标签，保留原始字符（不做实体转义）。
func StripHTML(input string) string {
	return strings.TrimSpace(stdhtml.UnescapeString(plainText.Sanitize(input)))
}
