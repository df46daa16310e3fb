package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/devfolio/internal/db"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// GormStore implements Store on top of a relational database.
type GormStore struct {
	db  *gorm.DB
	now func() time.Time
}

// NewGormStore wraps an opened and migrated gorm connection.
func NewGormStore(gdb *gorm.DB) *GormStore {
	return &GormStore{db: gdb, now: time.Now}
}

// DB exposes the underlying gorm instance for the seeder and tests.
func (s *GormStore) DB() *gorm.DB {
	return s.db
}

func (s *GormStore) withContext(ctx context.Context) *gorm.DB {
	return s.db.WithContext(ctx)
}

func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

// GetContent returns the document for section.
func (s *GormStore) GetContent(ctx context.Context, section string) (*db.PortfolioContent, error) {
	var item db.PortfolioContent
	if err := s.withContext(ctx).Where("section = ?", normalizeSection(section)).First(&item).Error; err != nil {
		return nil, notFound(err)
	}
	return &item, nil
}

// ListContent returns every stored section ordered by id.
func (s *GormStore) ListContent(ctx context.Context) ([]db.PortfolioContent, error) {
	var items []db.PortfolioContent
	if err := s.withContext(ctx).Order("id asc").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("list content: %w", err)
	}
	return items, nil
}

// UpsertContent creates the section row or replaces its document.
func (s *GormStore) UpsertContent(ctx context.Context, section string, document []byte) (*db.PortfolioContent, error) {
	key := normalizeSection(section)
	var item db.PortfolioContent

	err := s.withContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Where("section = ?", key).First(&item).Error
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		stamp := s.now()
		if stamp.Before(item.LastUpdated) {
			stamp = item.LastUpdated
		}

		item.Section = key
		item.Content = datatypes.JSON(append([]byte(nil), document...))
		item.LastUpdated = stamp

		if errors.Is(err, gorm.ErrRecordNotFound) {
			return tx.Create(&item).Error
		}
		return tx.Save(&item).Error
	})
	if err != nil {
		return nil, fmt.Errorf("upsert content %s: %w", key, err)
	}
	return &item, nil
}

// ListSkills returns all skills in insertion order.
func (s *GormStore) ListSkills(ctx context.Context) ([]db.Skill, error) {
	var items []db.Skill
	if err := s.withContext(ctx).Order("id asc").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("list skills: %w", err)
	}
	return items, nil
}

// CreateSkill inserts skill and fills its id.
func (s *GormStore) CreateSkill(ctx context.Context, skill *db.Skill) error {
	if err := s.withContext(ctx).Create(skill).Error; err != nil {
		return fmt.Errorf("create skill: %w", err)
	}
	return nil
}

// UpdateSkill applies patch to the skill with id.
func (s *GormStore) UpdateSkill(ctx context.Context, id uint, patch SkillPatch) (*db.Skill, error) {
	var item db.Skill
	if err := s.withContext(ctx).First(&item, id).Error; err != nil {
		return nil, notFound(err)
	}
	patch.Apply(&item)
	if err := s.withContext(ctx).Save(&item).Error; err != nil {
		return nil, fmt.Errorf("update skill: %w", err)
	}
	return &item, nil
}

// DeleteSkill removes the skill with id.
func (s *GormStore) DeleteSkill(ctx context.Context, id uint) error {
	return s.deleteByID(ctx, &db.Skill{}, id)
}

// CountSkills returns the number of stored skills.
func (s *GormStore) CountSkills(ctx context.Context) (int64, error) {
	return s.count(ctx, &db.Skill{})
}

// ListExperiences returns all experiences sorted by display order.
func (s *GormStore) ListExperiences(ctx context.Context) ([]db.Experience, error) {
	var items []db.Experience
	if err := s.withContext(ctx).Order("sort_order asc").Order("id asc").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("list experiences: %w", err)
	}
	return items, nil
}

// CreateExperience inserts experience and fills its id.
func (s *GormStore) CreateExperience(ctx context.Context, experience *db.Experience) error {
	if err := s.withContext(ctx).Create(experience).Error; err != nil {
		return fmt.Errorf("create experience: %w", err)
	}
	return nil
}

// UpdateExperience applies patch to the experience with id.
func (s *GormStore) UpdateExperience(ctx context.Context, id uint, patch ExperiencePatch) (*db.Experience, error) {
	var item db.Experience
	if err := s.withContext(ctx).First(&item, id).Error; err != nil {
		return nil, notFound(err)
	}
	patch.Apply(&item)
	if err := s.withContext(ctx).Save(&item).Error; err != nil {
		return nil, fmt.Errorf("update experience: %w", err)
	}
	return &item, nil
}

// DeleteExperience removes the experience with id.
func (s *GormStore) DeleteExperience(ctx context.Context, id uint) error {
	return s.deleteByID(ctx, &db.Experience{}, id)
}

// CountExperiences returns the number of stored experiences.
func (s *GormStore) CountExperiences(ctx context.Context) (int64, error) {
	return s.count(ctx, &db.Experience{})
}

// ListProjects returns all projects in insertion order.
func (s *GormStore) ListProjects(ctx context.Context) ([]db.Project, error) {
	var items []db.Project
	if err := s.withContext(ctx).Order("id asc").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	return items, nil
}

// CreateProject inserts project and fills its id.
func (s *GormStore) CreateProject(ctx context.Context, project *db.Project) error {
	if err := s.withContext(ctx).Create(project).Error; err != nil {
		return fmt.Errorf("create project: %w", err)
	}
	return nil
}

// UpdateProject applies patch to the project with id.
func (s *GormStore) UpdateProject(ctx context.Context, id uint, patch ProjectPatch) (*db.Project, error) {
	var item db.Project
	if err := s.withContext(ctx).First(&item, id).Error; err != nil {
		return nil, notFound(err)
	}
	patch.Apply(&item)
	if err := s.withContext(ctx).Save(&item).Error; err != nil {
		return nil, fmt.Errorf("update project: %w", err)
	}
	return &item, nil
}

// DeleteProject removes the project with id.
func (s *GormStore) DeleteProject(ctx context.Context, id uint) error {
	return s.deleteByID(ctx, &db.Project{}, id)
}

// CountProjects returns the number of stored projects.
func (s *GormStore) CountProjects(ctx context.Context) (int64, error) {
	return s.count(ctx, &db.Project{})
}

// ListMessages returns contact messages, newest first.
func (s *GormStore) ListMessages(ctx context.Context) ([]db.ContactMessage, error) {
	var items []db.ContactMessage
	if err := s.withContext(ctx).Order("created_at desc").Order("id desc").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("list contact messages: %w", err)
	}
	return items, nil
}

// CreateMessage stores a new unread message.
func (s *GormStore) CreateMessage(ctx context.Context, message *db.ContactMessage) error {
	message.IsRead = false
	if message.CreatedAt.IsZero() {
		message.CreatedAt = s.now()
	}
	if err := s.withContext(ctx).Create(message).Error; err != nil {
		return fmt.Errorf("create contact message: %w", err)
	}
	return nil
}

// MarkMessageRead flags the message with id as read.
func (s *GormStore) MarkMessageRead(ctx context.Context, id uint) error {
	var item db.ContactMessage
	if err := s.withContext(ctx).First(&item, id).Error; err != nil {
		return notFound(err)
	}
	if err := s.withContext(ctx).Model(&item).Update("is_read", true).Error; err != nil {
		return fmt.Errorf("mark contact message read: %w", err)
	}
	return nil
}

// DeleteMessage removes the message with id.
func (s *GormStore) DeleteMessage(ctx context.Context, id uint) error {
	return s.deleteByID(ctx, &db.ContactMessage{}, id)
}

// GetUser returns the user with id.
func (s *GormStore) GetUser(ctx context.Context, id uint) (*db.User, error) {
	var user db.User
	if err := s.withContext(ctx).First(&user, id).Error; err != nil {
		return nil, notFound(err)
	}
	return &user, nil
}

// GetUserByUsername returns the user with the given username.
func (s *GormStore) GetUserByUsername(ctx context.Context, username string) (*db.User, error) {
	var user db.User
	if err := s.withContext(ctx).Where("username = ?", username).First(&user).Error; err != nil {
		return nil, notFound(err)
	}
	return &user, nil
}

// CreateUser inserts user and fills its id.
func (s *GormStore) CreateUser(ctx context.Context, user *db.User) error {
	if err := s.withContext(ctx).Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrConflict
		}
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}

// CountUsers returns the number of stored users.
func (s *GormStore) CountUsers(ctx context.Context) (int64, error) {
	return s.count(ctx, &db.User{})
}

func (s *GormStore) deleteByID(ctx context.Context, model interface{}, id uint) error {
	result := s.withContext(ctx).Delete(model, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *GormStore) count(ctx context.Context, model interface{}) (int64, error) {
	var total int64
	if err := s.withContext(ctx).Model(model).Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}
