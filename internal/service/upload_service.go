package service

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"mime"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	_ "golang.org/x/image/webp"
)

// MaxUploadSize 上传文件的大小上限（5MB）。
const MaxUploadSize int64 = 5 << 20

var (
	// ErrInvalidFileType 只允许图片和 PDF。
	ErrInvalidFileType = errors.New("invalid file type")
	// ErrFileTooLarge 文件超过 MaxUploadSize。
	ErrFileTooLarge = errors.New("file too large")
	// ErrEmptyUpload 上传内容为空。
	ErrEmptyUpload = errors.New("empty file")
)

// UploadResult 描述保存后的文件。
type UploadResult struct {
	FilePath    string `json:"filePath"`
	ContentType string `json:"contentType"`
	Size        int64  `json:"size"`
	Width       int    `json:"width,omitempty"`
	Height      int    `json:"height,omitempty"`
}

// UploadService 把管理员上传的图片和 PDF 写入本地目录。
type UploadService struct {
	dir     string
	urlPath string
	now     func() time.Time
}

// NewUploadService 构造 UploadService，urlPath 为空时使用 /uploads。
func NewUploadService(dir, urlPath string) *UploadService {
	urlPath = strings.TrimRight(strings.TrimSpace(urlPath), "/")
	if urlPath == "" {
		urlPath = "/uploads"
	}
	if !strings.HasPrefix(urlPath, "/") {
		urlPath = "/" + urlPath
	}
	return &UploadService{dir: strings.TrimSpace(dir), urlPath: urlPath, now: time.Now}
}

// Dir 返回上传目录。
func (s *UploadService) Dir() string {
	return s.dir
}

// URLPath 返回上传文件对外的 URL 前缀。
func (s *UploadService) URLPath() string {
	return s.urlPath
}

// Save 校验大小与类型后保存文件。声明的 Content-Type 与嗅探结果都必须是图片或 PDF。
func (s *UploadService) Save(filename, declaredType string, size int64, src io.Reader) (*UploadResult, error) {
	if size > MaxUploadSize {
		return nil, ErrFileTooLarge
	}
	if !allowedUploadType(declaredType) {
		return nil, ErrInvalidFileType
	}

	data, err := io.ReadAll(io.LimitReader(src, MaxUploadSize+1))
	if err != nil {
		return nil, fmt.Errorf("read upload: %w", err)
	}
	if int64(len(data)) > MaxUploadSize {
		return nil, ErrFileTooLarge
	}
	if len(data) == 0 {
		return nil, ErrEmptyUpload
	}

	detected := mimetype.Detect(data)
	if !allowedUploadType(detected.String()) {
		return nil, ErrInvalidFileType
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}

	name := fmt.Sprintf("%s-%s%s", s.now().Format("20060102"), uuid.New().String(), uploadExtension(filename, detected))
	if err := os.WriteFile(filepath.Join(s.dir, name), data, 0o644); err != nil {
		return nil, fmt.Errorf("write upload: %w", err)
	}

	result := &UploadResult{
		FilePath:    path.Join(s.urlPath, name),
		ContentType: detected.String(),
		Size:        int64(len(data)),
	}
	if strings.HasPrefix(detected.String(), "image/") {
		if cfg, _, err := image.DecodeConfig(bytes.NewReader(data)); err == nil {
			result.Width = cfg.Width
			result.Height = cfg.Height
		}
	}
	return result, nil
}

func allowedUploadType(contentType string) bool {
	mediaType, _, err := mime.ParseMediaType(strings.TrimSpace(contentType))
	if err != nil {
		return false
	}
	return strings.HasPrefix(mediaType, "image/") || mediaType == "application/pdf"
}

// uploadExtension 优先使用原文件名的扩展名，缺失时用嗅探结果推断。
func uploadExtension(filename string, detected *mimetype.MIME) string {
	ext := strings.ToLower(filepath.Ext(filepath.Base(filename)))
	if ext != "" && len(ext) <= 6 && !strings.ContainsAny(ext, `/\`) {
		return ext
	}
	return detected.Extension()
}
