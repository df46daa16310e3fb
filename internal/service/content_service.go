package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/devfolio/internal/db"
	"github.com/devfolio/internal/store"
)

// ErrSectionNotFound 表示分区不存在或不在可编辑分区之列。
var ErrSectionNotFound = errors.New("content section not found")

// ContentService 负责页面分区文档的读取与整体替换。
type ContentService struct {
	store store.ContentStore
}

// NewContentService 构造 ContentService。
func NewContentService(s store.ContentStore) *ContentService {
	return &ContentService{store: s}
}

// List 返回全部已保存的分区。
func (s *ContentService) List(ctx context.Context) ([]db.PortfolioContent, error) {
	return s.store.ListContent(ctx)
}

// Get 返回单个分区。
func (s *ContentService) Get(ctx context.Context, section string) (*db.PortfolioContent, error) {
	item, err := s.store.GetContent(ctx, section)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrSectionNotFound
		}
		return nil, fmt.Errorf("get content %s: %w", section, err)
	}
	return item, nil
}

// Save 校验文档后整体替换分区内容。
// 不做并发控制：两个管理员同时编辑同一分区时后写入者覆盖先写入者。
func (s *ContentService) Save(ctx context.Context, section string, raw []byte) (*db.PortfolioContent, error) {
	name, ok := ParseSection(section)
	if !ok {
		return nil, ErrSectionNotFound
	}

	doc, err := DecodeSectionDocument(name, raw)
	if err != nil {
		return nil, err
	}

	return s.SaveDocument(ctx, doc)
}

// SaveDocument 持久化已校验的文档，供种子数据直接使用。
func (s *ContentService) SaveDocument(ctx context.Context, doc SectionDocument) (*db.PortfolioContent, error) {
	encoded, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("encode %s content: %w", doc.Section(), err)
	}

	item, err := s.store.UpsertContent(ctx, string(doc.Section()), encoded)
	if err != nil {
		return nil, err
	}
	return item, nil
}
