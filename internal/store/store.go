// Package store persists portfolio content behind small per-entity
// interfaces so services never depend on a concrete database.
package store

import (
	"context"
	"errors"
	"strings"

	"github.com/devfolio/internal/db"
)

var (
	// ErrNotFound is returned for unknown ids and sections.
	ErrNotFound = errors.New("record not found")
	// ErrConflict is returned when a unique key is already taken.
	ErrConflict = errors.New("record already exists")
)

// ContentStore keeps one JSON document per page section.
type ContentStore interface {
	GetContent(ctx context.Context, section string) (*db.PortfolioContent, error)
	ListContent(ctx context.Context) ([]db.PortfolioContent, error)
	// UpsertContent replaces the whole document and stamps LastUpdated.
	// Concurrent writers are not detected; the last write wins.
	UpsertContent(ctx context.Context, section string, document []byte) (*db.PortfolioContent, error)
}

// SkillStore persists skills.
type SkillStore interface {
	ListSkills(ctx context.Context) ([]db.Skill, error)
	CreateSkill(ctx context.Context, skill *db.Skill) error
	UpdateSkill(ctx context.Context, id uint, patch SkillPatch) (*db.Skill, error)
	DeleteSkill(ctx context.Context, id uint) error
	CountSkills(ctx context.Context) (int64, error)
}

// ExperienceStore persists experiences. Lists are sorted by Order, then id.
type ExperienceStore interface {
	ListExperiences(ctx context.Context) ([]db.Experience, error)
	CreateExperience(ctx context.Context, experience *db.Experience) error
	UpdateExperience(ctx context.Context, id uint, patch ExperiencePatch) (*db.Experience, error)
	DeleteExperience(ctx context.Context, id uint) error
	CountExperiences(ctx context.Context) (int64, error)
}

// ProjectStore persists projects.
type ProjectStore interface {
	ListProjects(ctx context.Context) ([]db.Project, error)
	CreateProject(ctx context.Context, project *db.Project) error
	UpdateProject(ctx context.Context, id uint, patch ProjectPatch) (*db.Project, error)
	DeleteProject(ctx context.Context, id uint) error
	CountProjects(ctx context.Context) (int64, error)
}

// MessageStore persists contact messages. Lists are newest first.
type MessageStore interface {
	ListMessages(ctx context.Context) ([]db.ContactMessage, error)
	CreateMessage(ctx context.Context, message *db.ContactMessage) error
	MarkMessageRead(ctx context.Context, id uint) error
	DeleteMessage(ctx context.Context, id uint) error
}

// UserStore persists admin identities.
type UserStore interface {
	GetUser(ctx context.Context, id uint) (*db.User, error)
	GetUserByUsername(ctx context.Context, username string) (*db.User, error)
	CreateUser(ctx context.Context, user *db.User) error
	CountUsers(ctx context.Context) (int64, error)
}

// Store aggregates every entity store.
type Store interface {
	ContentStore
	SkillStore
	ExperienceStore
	ProjectStore
	MessageStore
	UserStore
}

// SkillPatch carries a partial skill update; nil fields are left untouched.
type SkillPatch struct {
	Name        *string
	Category    *string
	Proficiency *int
	IsVisible   *bool
}

// Apply copies the set fields onto skill.
func (p SkillPatch) Apply(skill *db.Skill) {
	if p.Name != nil {
		skill.Name = *p.Name
	}
	if p.Category != nil {
		skill.Category = *p.Category
	}
	if p.Proficiency != nil {
		skill.Proficiency = *p.Proficiency
	}
	if p.IsVisible != nil {
		skill.IsVisible = *p.IsVisible
	}
}

// ExperiencePatch carries a partial experience update.
// ClearEndDate marks the experience as current and wins over EndDate.
type ExperiencePatch struct {
	Position     *string
	Company      *string
	Description  *string
	StartDate    *string
	EndDate      *string
	ClearEndDate bool
	IsVisible    *bool
	Order        *int
}

// Apply copies the set fields onto experience.
func (p ExperiencePatch) Apply(experience *db.Experience) {
	if p.Position != nil {
		experience.Position = *p.Position
	}
	if p.Company != nil {
		experience.Company = *p.Company
	}
	if p.Description != nil {
		experience.Description = *p.Description
	}
	if p.StartDate != nil {
		experience.StartDate = *p.StartDate
	}
	switch {
	case p.ClearEndDate:
		experience.EndDate = nil
	case p.EndDate != nil:
		experience.EndDate = cloneString(p.EndDate)
	}
	if p.IsVisible != nil {
		experience.IsVisible = *p.IsVisible
	}
	if p.Order != nil {
		experience.Order = *p.Order
	}
}

// ProjectPatch carries a partial project update. A nil Tags slice keeps the
// current tags; an empty non-nil slice clears them.
type ProjectPatch struct {
	Title        *string
	Description  *string
	Tags         []string
	RepoURL      *string
	ClearRepoURL bool
	DemoURL      *string
	ClearDemoURL bool
	IsVisible    *bool
	IsFeatured   *bool
}

// Apply copies the set fields onto project.
func (p ProjectPatch) Apply(project *db.Project) {
	if p.Title != nil {
		project.Title = *p.Title
	}
	if p.Description != nil {
		project.Description = *p.Description
	}
	if p.Tags != nil {
		project.Tags = append([]string{}, p.Tags...)
	}
	switch {
	case p.ClearRepoURL:
		project.RepoURL = nil
	case p.RepoURL != nil:
		project.RepoURL = cloneString(p.RepoURL)
	}
	switch {
	case p.ClearDemoURL:
		project.DemoURL = nil
	case p.DemoURL != nil:
		project.DemoURL = cloneString(p.DemoURL)
	}
	if p.IsVisible != nil {
		project.IsVisible = *p.IsVisible
	}
	if p.IsFeatured != nil {
		project.IsFeatured = *p.IsFeatured
	}
}

func cloneString(value *string) *string {
	if value == nil {
		return nil
	}
	copied := *value
	return &copied
}

func normalizeSection(section string) string {
	return strings.ToLower(strings.TrimSpace(section))
}
