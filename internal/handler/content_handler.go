package handler

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
)

// maxContentBody 分区文档的请求体上限。
const maxContentBody = 1 << 20

// ListContent 返回全部分区。
func (a *API) ListContent(c *gin.Context) {
	items, err := a.content.List(c.Request.Context())
	if err != nil {
		respondServiceError(c, err, "Failed to fetch content")
		return
	}
	respondCached(c, items)
}

// GetContent 返回单个分区。
func (a *API) GetContent(c *gin.Context) {
	item, err := a.content.Get(c.Request.Context(), c.Param("section"))
	if err != nil {
		respondServiceError(c, err, "Failed to fetch content section")
		return
	}
	respondCached(c, item)
}

// UpdateContent 用请求体整体替换分区文档。
func (a *API) UpdateContent(c *gin.Context) {
	raw, err := io.ReadAll(io.LimitReader(c.Request.Body, maxContentBody+1))
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if len(raw) > maxContentBody {
		respondError(c, http.StatusRequestEntityTooLarge, "request body too large")
		return
	}

	item, err := a.content.Save(c.Request.Context(), c.Param("section"), raw)
	if err != nil {
		respondServiceError(c, err, "Failed to update content")
		return
	}
	c.JSON(http.StatusOK, item)
}
