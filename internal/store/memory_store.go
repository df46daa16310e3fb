package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/devfolio/internal/db"
	"gorm.io/datatypes"
)

// MemoryStore keeps everything in process memory. Every operation holds
// the lock for its whole read/replace, so single calls are atomic.
type MemoryStore struct {
	mu  sync.RWMutex
	now func() time.Time

	nextID      uint
	contents    map[string]db.PortfolioContent
	skills      map[uint]db.Skill
	experiences map[uint]db.Experience
	projects    map[uint]db.Project
	messages    map[uint]db.ContactMessage
	users       map[uint]db.User
}

// NewMemoryStore returns an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		now:         time.Now,
		contents:    make(map[string]db.PortfolioContent),
		skills:      make(map[uint]db.Skill),
		experiences: make(map[uint]db.Experience),
		projects:    make(map[uint]db.Project),
		messages:    make(map[uint]db.ContactMessage),
		users:       make(map[uint]db.User),
	}
}

func (s *MemoryStore) allocateID() uint {
	s.nextID++
	return s.nextID
}

// GetContent returns the document for section.
func (s *MemoryStore) GetContent(_ context.Context, section string) (*db.PortfolioContent, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	item, ok := s.contents[normalizeSection(section)]
	if !ok {
		return nil, ErrNotFound
	}
	copied := cloneContent(item)
	return &copied, nil
}

// ListContent returns every stored section ordered by id.
func (s *MemoryStore) ListContent(_ context.Context) ([]db.PortfolioContent, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]db.PortfolioContent, 0, len(s.contents))
	for _, item := range s.contents {
		items = append(items, cloneContent(item))
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	return items, nil
}

// UpsertContent creates the section or replaces its document.
func (s *MemoryStore) UpsertContent(_ context.Context, section string, document []byte) (*db.PortfolioContent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := normalizeSection(section)
	item, ok := s.contents[key]
	if !ok {
		item = db.PortfolioContent{ID: s.allocateID(), Section: key}
	}

	stamp := s.now()
	if stamp.Before(item.LastUpdated) {
		stamp = item.LastUpdated
	}
	item.Content = datatypes.JSON(append([]byte(nil), document...))
	item.LastUpdated = stamp
	s.contents[key] = item

	copied := cloneContent(item)
	return &copied, nil
}

// ListSkills returns all skills in insertion order.
func (s *MemoryStore) ListSkills(_ context.Context) ([]db.Skill, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]db.Skill, 0, len(s.skills))
	for _, item := range s.skills {
		items = append(items, item)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	return items, nil
}

// CreateSkill stores skill and assigns its id.
func (s *MemoryStore) CreateSkill(_ context.Context, skill *db.Skill) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	skill.ID = s.allocateID()
	s.skills[skill.ID] = *skill
	return nil
}

// UpdateSkill applies patch to the skill with id.
func (s *MemoryStore) UpdateSkill(_ context.Context, id uint, patch SkillPatch) (*db.Skill, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, ok := s.skills[id]
	if !ok {
		return nil, ErrNotFound
	}
	patch.Apply(&item)
	s.skills[id] = item
	return &item, nil
}

// DeleteSkill removes the skill with id.
func (s *MemoryStore) DeleteSkill(_ context.Context, id uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.skills[id]; !ok {
		return ErrNotFound
	}
	delete(s.skills, id)
	return nil
}

// CountSkills returns the number of stored skills.
func (s *MemoryStore) CountSkills(_ context.Context) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return int64(len(s.skills)), nil
}

// ListExperiences returns all experiences sorted by display order.
func (s *MemoryStore) ListExperiences(_ context.Context) ([]db.Experience, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]db.Experience, 0, len(s.experiences))
	for _, item := range s.experiences {
		item.EndDate = cloneString(item.EndDate)
		items = append(items, item)
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].Order != items[j].Order {
			return items[i].Order < items[j].Order
		}
		return items[i].ID < items[j].ID
	})
	return items, nil
}

// CreateExperience stores experience and assigns its id.
func (s *MemoryStore) CreateExperience(_ context.Context, experience *db.Experience) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	experience.ID = s.allocateID()
	stored := *experience
	stored.EndDate = cloneString(experience.EndDate)
	s.experiences[experience.ID] = stored
	return nil
}

// UpdateExperience applies patch to the experience with id.
func (s *MemoryStore) UpdateExperience(_ context.Context, id uint, patch ExperiencePatch) (*db.Experience, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, ok := s.experiences[id]
	if !ok {
		return nil, ErrNotFound
	}
	patch.Apply(&item)
	s.experiences[id] = item

	result := item
	result.EndDate = cloneString(item.EndDate)
	return &result, nil
}

// DeleteExperience removes the experience with id.
func (s *MemoryStore) DeleteExperience(_ context.Context, id uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.experiences[id]; !ok {
		return ErrNotFound
	}
	delete(s.experiences, id)
	return nil
}

// CountExperiences returns the number of stored experiences.
func (s *MemoryStore) CountExperiences(_ context.Context) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return int64(len(s.experiences)), nil
}

// ListProjects returns all projects in insertion order.
func (s *MemoryStore) ListProjects(_ context.Context) ([]db.Project, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]db.Project, 0, len(s.projects))
	for _, item := range s.projects {
		items = append(items, cloneProject(item))
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	return items, nil
}

// CreateProject stores project and assigns its id.
func (s *MemoryStore) CreateProject(_ context.Context, project *db.Project) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	project.ID = s.allocateID()
	s.projects[project.ID] = cloneProject(*project)
	return nil
}

// UpdateProject applies patch to the project with id.
func (s *MemoryStore) UpdateProject(_ context.Context, id uint, patch ProjectPatch) (*db.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, ok := s.projects[id]
	if !ok {
		return nil, ErrNotFound
	}
	patch.Apply(&item)
	s.projects[id] = item

	result := cloneProject(item)
	return &result, nil
}

// DeleteProject removes the project with id.
func (s *MemoryStore) DeleteProject(_ context.Context, id uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.projects[id]; !ok {
		return ErrNotFound
	}
	delete(s.projects, id)
	return nil
}

// CountProjects returns the number of stored projects.
func (s *MemoryStore) CountProjects(_ context.Context) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return int64(len(s.projects)), nil
}

// ListMessages returns contact messages, newest first.
func (s *MemoryStore) ListMessages(_ context.Context) ([]db.ContactMessage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]db.ContactMessage, 0, len(s.messages))
	for _, item := range s.messages {
		items = append(items, item)
	}
	sort.Slice(items, func(i, j int) bool {
		if !items[i].CreatedAt.Equal(items[j].CreatedAt) {
			return items[i].CreatedAt.After(items[j].CreatedAt)
		}
		return items[i].ID > items[j].ID
	})
	return items, nil
}

// CreateMessage stores a new unread message.
func (s *MemoryStore) CreateMessage(_ context.Context, message *db.ContactMessage) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	message.ID = s.allocateID()
	message.IsRead = false
	if message.CreatedAt.IsZero() {
		message.CreatedAt = s.now()
	}
	s.messages[message.ID] = *message
	return nil
}

// MarkMessageRead flags the message with id as read.
func (s *MemoryStore) MarkMessageRead(_ context.Context, id uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, ok := s.messages[id]
	if !ok {
		return ErrNotFound
	}
	item.IsRead = true
	s.messages[id] = item
	return nil
}

// DeleteMessage removes the message with id.
func (s *MemoryStore) DeleteMessage(_ context.Context, id uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.messages[id]; !ok {
		return ErrNotFound
	}
	delete(s.messages, id)
	return nil
}

// GetUser returns the user with id.
func (s *MemoryStore) GetUser(_ context.Context, id uint) (*db.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &user, nil
}

// GetUserByUsername returns the user with the given username.
func (s *MemoryStore) GetUserByUsername(_ context.Context, username string) (*db.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, user := range s.users {
		if user.Username == username {
			found := user
			return &found, nil
		}
	}
	return nil, ErrNotFound
}

// CreateUser stores user and assigns its id.
func (s *MemoryStore) CreateUser(_ context.Context, user *db.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.users {
		if existing.Username == user.Username {
			return ErrConflict
		}
	}
	user.ID = s.allocateID()
	s.users[user.ID] = *user
	return nil
}

// CountUsers returns the number of stored users.
func (s *MemoryStore) CountUsers(_ context.Context) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return int64(len(s.users)), nil
}

func cloneContent(item db.PortfolioContent) db.PortfolioContent {
	item.Content = datatypes.JSON(append([]byte(nil), item.Content...))
	return item
}

func cloneProject(item db.Project) db.Project {
	if item.Tags != nil {
		item.Tags = append([]string{}, item.Tags...)
	}
	item.RepoURL = cloneString(item.RepoURL)
	item.DemoURL = cloneString(item.DemoURL)
	return item
}
