package handler

import (
	"errors"
	"net/http"

	"github.com/devfolio/internal/service"
	"github.com/gin-gonic/gin"
)

// UploadFile 处理后台的图片或 PDF 上传，表单字段为 file。
func (a *API) UploadFile(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, service.MaxUploadSize+(1<<20))

	file, err := c.FormFile("file")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			respondError(c, http.StatusBadRequest, service.ErrFileTooLarge.Error())
			return
		}
		respondError(c, http.StatusBadRequest, "no file uploaded")
		return
	}

	src, err := file.Open()
	if err != nil {
		respondError(c, http.StatusBadRequest, "failed to read upload")
		return
	}
	defer src.Close()

	result, err := a.uploads.Save(file.Filename, file.Header.Get("Content-Type"), file.Size, src)
	if err != nil {
		respondServiceError(c, err, "Failed to upload file")
		return
	}
	c.JSON(http.StatusOK, result)
}
