package handler

import (
	"net/http"

	"github.com/devfolio/internal/service"
	"github.com/gin-gonic/gin"
)

// SubmitContact 接收联系表单。
func (a *API) SubmitContact(c *gin.Context) {
	var input service.ContactInput
	if !bindJSON(c, &input) {
		return
	}

	message, err := a.messages.Submit(c.Request.Context(), input)
	if err != nil {
		respondServiceError(c, err, "Failed to send message")
		return
	}
	c.JSON(http.StatusCreated, message)
}

// ListContactMessages 返回全部留言，最新的在前。
func (a *API) ListContactMessages(c *gin.Context) {
	items, err := a.messages.List(c.Request.Context())
	if err != nil {
		respondServiceError(c, err, "Failed to fetch messages")
		return
	}
	c.JSON(http.StatusOK, items)
}

// MarkContactMessageRead 标记留言为已读。
func (a *API) MarkContactMessageRead(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	if err := a.messages.MarkRead(c.Request.Context(), id); err != nil {
		respondServiceError(c, err, "Failed to update message")
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id, "isRead": true})
}

// DeleteContactMessage 删除留言。
func (a *API) DeleteContactMessage(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	if err := a.messages.Delete(c.Request.Context(), id); err != nil {
		respondServiceError(c, err, "Failed to delete message")
		return
	}
	c.Status(http.StatusNoContent)
}
