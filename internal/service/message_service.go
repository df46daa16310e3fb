package service

import (
	"context"
	"errors"

	"github.com/devfolio/internal/db"
	"github.com/devfolio/internal/store"
)

// ErrMessageNotFound 表示留言不存在。
var ErrMessageNotFound = errors.New("contact message not found")

// MessageService 处理访客留言。
type MessageService struct {
	store store.MessageStore
}

// ContactInput 是联系表单提交的内容。
type ContactInput struct {
	Name    string `json:"name" validate:"required,min=2,max=100"`
	Email   string `json:"email" validate:"required,email,max=200"`
	Subject string `json:"subject" validate:"required,min=5,max=200"`
	Message string `json:"message" validate:"required,min=10,max=5000"`
}

// NewMessageService 构造 MessageService。
func NewMessageService(s store.MessageStore) *MessageService {
	return &MessageService{store: s}
}

// Submit 去除 HTML 标签后校验，校验失败的留言不会写入存储。
func (s *MessageService) Submit(ctx context.Context, input ContactInput) (*db.ContactMessage, error) {
	input.Name = StripHTML(input.Name)
	input.Email = StripHTML(input.Email)
	input.Subject = StripHTML(input.Subject)
	input.Message = StripHTML(input.Message)
	if err := validateStruct(input); err != nil {
		return nil, err
	}

	message := db.ContactMessage{
		Name:    input.Name,
		Email:   input.Email,
		Subject: input.Subject,
		Message: input.Message,
	}
	if err := s.store.CreateMessage(ctx, &message); err != nil {
		return nil, err
	}
	return &message, nil
}

// List 返回全部留言，最新的在前。
func (s *MessageService) List(ctx context.Context) ([]db.ContactMessage, error) {
	return s.store.ListMessages(ctx)
}

// MarkRead 标记留言为已读，重复调用不会报错。
func (s *MessageService) MarkRead(ctx context.Context, id uint) error {
	return s.mapNotFound(s.store.MarkMessageRead(ctx, id))
}

// Delete 删除留言。
func (s *MessageService) Delete(ctx context.Context, id uint) error {
	return s.mapNotFound(s.store.DeleteMessage(ctx, id))
}

func (s *MessageService) mapNotFound(err error) error {
	if errors.Is(err, store.ErrNotFound) {
		return ErrMessageNotFound
	}
	return err
}
