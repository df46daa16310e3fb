package service

import (
	"context"
	"errors"
	"strings"

	"github.com/devfolio/internal/db"
	"github.com/devfolio/internal/store"
)

// ErrProjectNotFound 表示项目不存在。
var ErrProjectNotFound = errors.New("project not found")

// MaxProjectTags 单个项目最多展示的标签数。
const MaxProjectTags = 5

// ProjectService 管理作品集项目。
type ProjectService struct {
	store store.ProjectStore
}

// ProjectInput 描述创建项目的请求体。
type ProjectInput struct {
	Title       string   `json:"title" validate:"required,max=200"`
	Description string   `json:"description" validate:"required"`
	Tags        []string `json:"tags" validate:"max=5,dive,required,max=50"`
	RepoURL     *string  `json:"repoUrl" validate:"omitnil,url"`
	DemoURL     *string  `json:"demoUrl" validate:"omitnil,url"`
	IsVisible   *bool    `json:"isVisible"`
	IsFeatured  *bool    `json:"isFeatured"`
}

// ProjectUpdateInput 描述部分更新；repoUrl/demoUrl 传 null 或空字符串表示清空。
type ProjectUpdateInput struct {
	Title       *string   `json:"title" validate:"omitnil,min=1,max=200"`
	Description *string   `json:"description" validate:"omitnil,min=1"`
	Tags        *[]string `json:"tags" validate:"omitnil,max=5,dive,required,max=50"`
	RepoURL     Nullable  `json:"repoUrl"`
	DemoURL     Nullable  `json:"demoUrl"`
	IsVisible   *bool     `json:"isVisible"`
	IsFeatured  *bool     `json:"isFeatured"`
}

// ProjectView 是公开接口返回的项目，附带渲染后的描述。
type ProjectView struct {
	db.Project
	DescriptionHTML string `json:"descriptionHtml"`
}

// NewProjectViews 为每个项目渲染 Markdown 描述。
func NewProjectViews(items []db.Project) []ProjectView {
	views := make([]ProjectView, 0, len(items))
	for _, item := range items {
		views = append(views, ProjectView{Project: item, DescriptionHTML: RenderMarkdown(item.Description)})
	}
	return views
}

// NewProjectService 构造 ProjectService。
func NewProjectService(s store.ProjectStore) *ProjectService {
	return &ProjectService{store: s}
}

// ListAll 返回全部项目，供后台使用。
func (s *ProjectService) ListAll(ctx context.Context) ([]db.Project, error) {
	return s.store.ListProjects(ctx)
}

// ListVisible 返回前台可见的项目。
func (s *ProjectService) ListVisible(ctx context.Context) ([]db.Project, error) {
	return s.filter(ctx, func(p db.Project) bool { return p.IsVisible })
}

// ListFeatured 返回精选项目，与是否可见无关。
func (s *ProjectService) ListFeatured(ctx context.Context) ([]db.Project, error) {
	return s.filter(ctx, func(p db.Project) bool { return p.IsFeatured })
}

func (s *ProjectService) filter(ctx context.Context, keep func(db.Project) bool) ([]db.Project, error) {
	items, err := s.store.ListProjects(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]db.Project, 0, len(items))
	for _, item := range items {
		if keep(item) {
			result = append(result, item)
		}
	}
	return result, nil
}

// Create 校验并新建项目，默认可见、非精选。
func (s *ProjectService) Create(ctx context.Context, input ProjectInput) (*db.Project, error) {
	input.Title = strings.TrimSpace(input.Title)
	input.Description = strings.TrimSpace(input.Description)
	input.Tags = normalizeTags(input.Tags)
	input.RepoURL = optionalString(input.RepoURL)
	input.DemoURL = optionalString(input.DemoURL)
	if err := validateStruct(input); err != nil {
		return nil, err
	}

	project := db.Project{
		Title:       input.Title,
		Description: input.Description,
		Tags:        input.Tags,
		RepoURL:     input.RepoURL,
		DemoURL:     input.DemoURL,
		IsVisible:   true,
	}
	if input.IsVisible != nil {
		project.IsVisible = *input.IsVisible
	}
	if input.IsFeatured != nil {
		project.IsFeatured = *input.IsFeatured
	}

	if err := s.store.CreateProject(ctx, &project); err != nil {
		return nil, err
	}
	return &project, nil
}

// Update 部分更新项目。
func (s *ProjectService) Update(ctx context.Context, id uint, input ProjectUpdateInput) (*db.Project, error) {
	input.Title = trimPtr(input.Title)
	input.Description = trimPtr(input.Description)
	if input.Tags != nil {
		tags := normalizeTags(*input.Tags)
		input.Tags = &tags
	}
	if err := validateStruct(input); err != nil {
		return nil, err
	}

	repoURL := input.RepoURL.trimmed()
	demoURL := input.DemoURL.trimmed()
	verr := &ValidationError{}
	if repoURL != nil {
		validateValue(verr, "repoUrl", *repoURL, "url")
	}
	if demoURL != nil {
		validateValue(verr, "demoUrl", *demoURL, "url")
	}
	if err := verr.orNil(); err != nil {
		return nil, err
	}

	patch := store.ProjectPatch{
		Title:        input.Title,
		Description:  input.Description,
		RepoURL:      repoURL,
		ClearRepoURL: input.RepoURL.clearing(),
		DemoURL:      demoURL,
		ClearDemoURL: input.DemoURL.clearing(),
		IsVisible:    input.IsVisible,
		IsFeatured:   input.IsFeatured,
	}
	if input.Tags != nil {
		patch.Tags = *input.Tags
	}

	project, err := s.store.UpdateProject(ctx, id, patch)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, err
	}
	return project, nil
}

// Delete 删除项目。
func (s *ProjectService) Delete(ctx context.Context, id uint) error {
	if err := s.store.DeleteProject(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrProjectNotFound
		}
		return err
	}
	return nil
}

// normalizeTags 去掉空白标签，保持原有顺序；总是返回非 nil 切片。
func normalizeTags(tags []string) []string {
	result := make([]string, 0, len(tags))
	for _, tag := range tags {
		if trimmed := strings.TrimSpace(tag); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
