package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/gin-gonic/gin"
)

// respondCached 写出 JSON 并附带基于内容哈希的 ETag，命中 If-None-Match 时返回 304。
func respondCached(c *gin.Context, payload interface{}) {
	body, err := json.Marshal(payload)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to encode response")
		return
	}

	etag := fmt.Sprintf(`"%016x"`, xxhash.Sum64(body))
	c.Header("ETag", etag)
	c.Header("Cache-Control", "no-cache")

	if etagMatches(c.GetHeader("If-None-Match"), etag) {
		c.Status(http.StatusNotModified)
		return
	}
	c.Data(http.StatusOK, "application/json; charset=utf-8", body)
}

func etagMatches(header, etag string) bool {
	header = strings.TrimSpace(header)
	if header == "" {
		return false
	}
	if header == "*" {
		return true
	}
	for _, candidate := range strings.Split(header, ",") {
		candidate = strings.TrimPrefix(strings.TrimSpace(candidate), "W/")
		if candidate == etag {
			return true
		}
	}
	return false
}
