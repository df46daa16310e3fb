package handler

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"

	"github.com/devfolio/internal/service"
	"github.com/gin-gonic/gin"
)

func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"message": message})
}

func respondValidation(c *gin.Context, verr *service.ValidationError) {
	c.JSON(http.StatusBadRequest, gin.H{
		"message": "validation failed",
		"errors":  verr.Fields,
	})
}

// respondServiceError 把服务层错误映射为状态码，未知错误只返回通用描述。
func respondServiceError(c *gin.Context, err error, fallback string) {
	var verr *service.ValidationError
	switch {
	case errors.As(err, &verr):
		respondValidation(c, verr)
	case errors.Is(err, service.ErrSectionNotFound):
		respondError(c, http.StatusNotFound, "Content section not found")
	case errors.Is(err, service.ErrSkillNotFound),
		errors.Is(err, service.ErrExperienceNotFound),
		errors.Is(err, service.ErrProjectNotFound),
		errors.Is(err, service.ErrMessageNotFound):
		respondError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrInvalidFileType),
		errors.Is(err, service.ErrFileTooLarge),
		errors.Is(err, service.ErrEmptyUpload):
		respondError(c, http.StatusBadRequest, err.Error())
	default:
		log.Printf("[api] %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		respondError(c, http.StatusInternalServerError, fallback)
	}
}

func bindJSON(c *gin.Context, dst interface{}) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body")
		return false
	}
	return true
}

func parseUintParam(c *gin.Context, key string) (uint, error) {
	raw := c.Param(key)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("invalid %s", key)
	}
	return uint(id), nil
}

// idParam 解析路径中的 id，失败时直接写回 400。
func idParam(c *gin.Context) (uint, bool) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return 0, false
	}
	return id, true
}
