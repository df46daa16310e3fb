package handler

import (
	"bytes"
	"fmt"
	"log"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/gin-gonic/gin"
)

const maxLogLineLength = 80

// maxCapturedBody 只需要足够拼出一行日志的响应体。
const maxCapturedBody = 512

type capturingWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (w *capturingWriter) Write(data []byte) (int, error) {
	w.capture(data)
	return w.ResponseWriter.Write(data)
}

func (w *capturingWriter) WriteString(s string) (int, error) {
	w.capture([]byte(s))
	return w.ResponseWriter.WriteString(s)
}

func (w *capturingWriter) capture(data []byte) {
	if room := maxCapturedBody - w.body.Len(); room > 0 {
		if len(data) > room {
			data = data[:room]
		}
		w.body.Write(data)
	}
}

// RequestLogger 记录 /api 请求的一行摘要：方法、路径、状态码、耗时和响应体。
func RequestLogger() gin.HandlerFunc {
	return RequestLoggerWithOutput(log.Printf)
}

// RequestLoggerWithOutput 与 RequestLogger 相同，但把日志交给 logf。
func RequestLoggerWithOutput(logf func(format string, args ...interface{})) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		if !strings.HasPrefix(path, "/api") {
			c.Next()
			return
		}

		start := time.Now()
		writer := &capturingWriter{ResponseWriter: c.Writer, body: &bytes.Buffer{}}
		c.Writer = writer

		c.Next()

		line := fmt.Sprintf("%s %s %d in %dms", c.Request.Method, path, writer.Status(), time.Since(start).Milliseconds())
		if body := strings.TrimSpace(writer.body.String()); body != "" && strings.Contains(writer.Header().Get("Content-Type"), "json") {
			line += " :: " + body
		}
		logf("%s", truncateLogLine(line))
	}
}

func truncateLogLine(line string) string {
	if utf8.RuneCountInString(line) <= maxLogLineLength {
		return line
	}
	runes := []rune(line)
	return string(runes[:maxLogLineLength-1]) + "…"
}
