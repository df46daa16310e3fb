package service

import (
	"context"
	"errors"
	"strings"

	"github.com/devfolio/internal/db"
	"github.com/devfolio/internal/store"
)

// ErrExperienceNotFound 表示工作经历不存在。
var ErrExperienceNotFound = errors.New("experience not found")

// ExperienceService 负责维护工作经历，列表始终按 Order 升序返回。
type ExperienceService struct {
	store store.ExperienceStore
}

// ExperienceInput 描述创建工作经历的请求体，EndDate 为空表示至今。
type ExperienceInput struct {
	Position    string  `json:"position" validate:"required,max=200"`
	Company     string  `json:"company" validate:"required,max=200"`
	Description string  `json:"description" validate:"required"`
	StartDate   string  `json:"startDate" validate:"required,max=32"`
	EndDate     *string `json:"endDate" validate:"omitnil,max=32"`
	IsVisible   *bool   `json:"isVisible"`
	Order       *int    `json:"order" validate:"required"`
}

// ExperienceUpdateInput 描述部分更新。endDate 传 null 或空字符串表示改为至今。
type ExperienceUpdateInput struct {
	Position    *string  `json:"position" validate:"omitnil,min=1,max=200"`
	Company     *string  `json:"company" validate:"omitnil,min=1,max=200"`
	Description *string  `json:"description" validate:"omitnil,min=1"`
	StartDate   *string  `json:"startDate" validate:"omitnil,min=1,max=32"`
	EndDate     Nullable `json:"endDate"`
	IsVisible   *bool    `json:"isVisible"`
	Order       *int     `json:"order"`
}

// ExperienceView 是公开接口返回的工作经历，附带渲染后的描述。
type ExperienceView struct {
	db.Experience
	DescriptionHTML string `json:"descriptionHtml"`
}

// NewExperienceViews 为每条经历渲染 Markdown 描述。
func NewExperienceViews(items []db.Experience) []ExperienceView {
	views := make([]ExperienceView, 0, len(items))
	for _, item := range items {
		views = append(views, ExperienceView{Experience: item, DescriptionHTML: RenderMarkdown(item.Description)})
	}
	return views
}

// NewExperienceService 构造 ExperienceService。
func NewExperienceService(s store.ExperienceStore) *ExperienceService {
	return &ExperienceService{store: s}
}

// ListAll 返回全部工作经历（含隐藏条目），供后台使用。
func (s *ExperienceService) ListAll(ctx context.Context) ([]db.Experience, error) {
	return s.store.ListExperiences(ctx)
}

// ListVisible 返回前台可见的工作经历。
func (s *ExperienceService) ListVisible(ctx context.Context) ([]db.Experience, error) {
	items, err := s.store.ListExperiences(ctx)
	if err != nil {
		return nil, err
	}

	visible := make([]db.Experience, 0, len(items))
	for _, item := range items {
		if item.IsVisible {
			visible = append(visible, item)
		}
	}
	return visible, nil
}

// Create 校验并新建工作经历，默认可见。
func (s *ExperienceService) Create(ctx context.Context, input ExperienceInput) (*db.Experience, error) {
	input.Position = strings.TrimSpace(input.Position)
	input.Company = strings.TrimSpace(input.Company)
	input.Description = strings.TrimSpace(input.Description)
	input.StartDate = strings.TrimSpace(input.StartDate)
	input.EndDate = optionalString(input.EndDate)
	if err := validateStruct(input); err != nil {
		return nil, err
	}

	experience := db.Experience{
		Position:    input.Position,
		Company:     input.Company,
		Description: input.Description,
		StartDate:   input.StartDate,
		EndDate:     input.EndDate,
		IsVisible:   true,
		Order:       *input.Order,
	}
	if input.IsVisible != nil {
		experience.IsVisible = *input.IsVisible
	}

	if err := s.store.CreateExperience(ctx, &experience); err != nil {
		return nil, err
	}
	return &experience, nil
}

// Update 部分更新工作经历，Order 重复不会报错。
func (s *ExperienceService) Update(ctx context.Context, id uint, input ExperienceUpdateInput) (*db.Experience, error) {
	input.Position = trimPtr(input.Position)
	input.Company = trimPtr(input.Company)
	input.Description = trimPtr(input.Description)
	input.StartDate = trimPtr(input.StartDate)
	if err := validateStruct(input); err != nil {
		return nil, err
	}

	endDate := input.EndDate.trimmed()
	if endDate != nil {
		verr := &ValidationError{}
		validateValue(verr, "endDate", *endDate, "max=32")
		if err := verr.orNil(); err != nil {
			return nil, err
		}
	}

	experience, err := s.store.UpdateExperience(ctx, id, store.ExperiencePatch{
		Position:     input.Position,
		Company:      input.Company,
		Description:  input.Description,
		StartDate:    input.StartDate,
		EndDate:      endDate,
		ClearEndDate: input.EndDate.clearing(),
		IsVisible:    input.IsVisible,
		Order:        input.Order,
	})
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrExperienceNotFound
		}
		return nil, err
	}
	return experience, nil
}

// Delete 删除工作经历。
func (s *ExperienceService) Delete(ctx context.Context, id uint) error {
	if err := s.store.DeleteExperience(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrExperienceNotFound
		}
		return err
	}
	return nil
}
