package service

import (
	"context"
	"errors"
	"strings"

	"github.com/devfolio/internal/db"
	"github.com/devfolio/internal/store"
)

// ErrSkillNotFound 表示技能不存在。
var ErrSkillNotFound = errors.New("skill not found")

// SkillService wraps skill related operations.
type SkillService struct {
	store store.SkillStore
}

// SkillInput 描述创建技能时的请求体
type SkillInput struct {
	Name        string `json:"name" validate:"required,max=100"`
	Category    string `json:"category" validate:"required,max=100"`
	Proficiency *int   `json:"proficiency" validate:"required,min=0,max=100"`
	IsVisible   *bool  `json:"isVisible"`
}

// SkillUpdateInput 描述部分更新，未出现的字段保持原值
type SkillUpdateInput struct {
	Name        *string `json:"name" validate:"omitnil,min=1,max=100"`
	Category    *string `json:"category" validate:"omitnil,min=1,max=100"`
	Proficiency *int    `json:"proficiency" validate:"omitnil,min=0,max=100"`
	IsVisible   *bool   `json:"isVisible"`
}

// NewSkillService creates a SkillService instance.
func NewSkillService(s store.SkillStore) *SkillService {
	return &SkillService{store: s}
}

// ListAll returns every skill, hidden ones included.
func (s *SkillService) ListAll(ctx context.Context) ([]db.Skill, error) {
	return s.store.ListSkills(ctx)
}

// ListVisible returns visible skills, optionally restricted to one category
// (case-insensitive).
func (s *SkillService) ListVisible(ctx context.Context, category string) ([]db.Skill, error) {
	items, err := s.store.ListSkills(ctx)
	if err != nil {
		return nil, err
	}

	category = strings.TrimSpace(category)
	visible := make([]db.Skill, 0, len(items))
	for _, item := range items {
		if !item.IsVisible {
			continue
		}
		if category != "" && !strings.EqualFold(item.Category, category) {
			continue
		}
		visible = append(visible, item)
	}
	return visible, nil
}

// Create validates input and stores a new skill; visibility defaults to true.
func (s *SkillService) Create(ctx context.Context, input SkillInput) (*db.Skill, error) {
	input.Name = strings.TrimSpace(input.Name)
	input.Category = strings.TrimSpace(input.Category)
	if err := validateStruct(input); err != nil {
		return nil, err
	}

	skill := db.Skill{
		Name:        input.Name,
		Category:    input.Category,
		Proficiency: *input.Proficiency,
		IsVisible:   true,
	}
	if input.IsVisible != nil {
		skill.IsVisible = *input.IsVisible
	}

	if err := s.store.CreateSkill(ctx, &skill); err != nil {
		return nil, err
	}
	return &skill, nil
}

// Update applies a partial update.
func (s *SkillService) Update(ctx context.Context, id uint, input SkillUpdateInput) (*db.Skill, error) {
	input.Name = trimPtr(input.Name)
	input.Category = trimPtr(input.Category)
	if err := validateStruct(input); err != nil {
		return nil, err
	}

	skill, err := s.store.UpdateSkill(ctx, id, store.SkillPatch{
		Name:        input.Name,
		Category:    input.Category,
		Proficiency: input.Proficiency,
		IsVisible:   input.IsVisible,
	})
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrSkillNotFound
		}
		return nil, err
	}
	return skill, nil
}

// Delete removes a skill.
func (s *SkillService) Delete(ctx context.Context, id uint) error {
	if err := s.store.DeleteSkill(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrSkillNotFound
		}
		return err
	}
	return nil
}
