// Package seed fills an empty store with the default portfolio content.
//
// Seeding is not transactional: each step commits on its own, so an
// interrupted run can leave a partial seed. Running it again fills in
// whatever is still missing.
package seed

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/devfolio/internal/service"
	"github.com/devfolio/internal/store"
)

// Report 记录本次写入了哪些数据。
type Report struct {
	AdminCreated bool
	Sections     []string
	Skills       int
	Experiences  int
	Projects     int
}

// Seeder 只在对应数据为空时写入默认值，重复运行是安全的。
type Seeder struct {
	store   store.Store
	content *service.ContentService
	auth    *service.AuthService
	logf    func(format string, args ...interface{})
}

// New 构造 Seeder。auth 为 nil 时跳过管理员账号。
func New(s store.Store, auth *service.AuthService) *Seeder {
	return &Seeder{
		store:   s,
		content: service.NewContentService(s),
		auth:    auth,
		logf:    log.Printf,
	}
}

// SetLogger 替换日志输出。
func (s *Seeder) SetLogger(logf func(format string, args ...interface{})) {
	if logf != nil {
		s.logf = logf
	}
}

// Run 依次写入管理员、分区文档、技能、工作经历和项目。
func (s *Seeder) Run(ctx context.Context) (*Report, error) {
	report := &Report{}

	if s.auth != nil {
		created, err := s.auth.EnsureAdmin(ctx)
		if err != nil {
			return report, fmt.Errorf("seed admin: %w", err)
		}
		report.AdminCreated = created
		if created {
			s.logf("[seed] created admin user")
		}
	}

	for _, doc := range DefaultDocuments() {
		section := string(doc.Section())
		if _, err := s.content.Get(ctx, section); err == nil {
			continue
		} else if !errors.Is(err, service.ErrSectionNotFound) {
			return report, err
		}

		if _, err := s.content.SaveDocument(ctx, doc); err != nil {
			return report, fmt.Errorf("seed %s section: %w", section, err)
		}
		report.Sections = append(report.Sections, section)
		s.logf("[seed] created %s section content", section)
	}

	if count, err := s.store.CountSkills(ctx); err != nil {
		return report, fmt.Errorf("count skills: %w", err)
	} else if count == 0 {
		for _, skill := range DefaultSkills() {
			if err := s.store.CreateSkill(ctx, &skill); err != nil {
				return report, fmt.Errorf("seed skill %s: %w", skill.Name, err)
			}
			report.Skills++
		}
		s.logf("[seed] added %d default skills", report.Skills)
	}

	if count, err := s.store.CountExperiences(ctx); err != nil {
		return report, fmt.Errorf("count experiences: %w", err)
	} else if count == 0 {
		for _, experience := range DefaultExperiences() {
			if err := s.store.CreateExperience(ctx, &experience); err != nil {
				return report, fmt.Errorf("seed experience %s: %w", experience.Position, err)
			}
			report.Experiences++
		}
		s.logf("[seed] added %d default experiences", report.Experiences)
	}

	if count, err := s.store.CountProjects(ctx); err != nil {
		return report, fmt.Errorf("count projects: %w", err)
	} else if count == 0 {
		for _, project := range DefaultProjects() {
			if err := s.store.CreateProject(ctx, &project); err != nil {
				return report, fmt.Errorf("seed project %s: %w", project.Title, err)
			}
			report.Projects++
		}
		s.logf("[seed] added %d default projects", report.Projects)
	}

	return report, nil
}
