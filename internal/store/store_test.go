package store

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/devfolio/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupGormStore(t *testing.T) *GormStore {
	t.Helper()

	dsn := fmt.Sprintf("file:store-%d?mode=memory&cache=shared", time.Now().UnixNano())
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, db.Migrate(gdb))

	t.Cleanup(func() { db.Close(gdb) })
	return NewGormStore(gdb)
}

// forEachStore runs fn against both implementations so they stay in lockstep.
func forEachStore(t *testing.T, fn func(t *testing.T, s Store)) {
	t.Run("gorm", func(t *testing.T) { fn(t, setupGormStore(t)) })
	t.Run("memory", func(t *testing.T) { fn(t, NewMemoryStore()) })
}

func strPtr(v string) *string { return &v }
func intPtr(v int) *int       { return &v }
func boolPtr(v bool) *bool    { return &v }

func TestUpsertContentRoundTrip(t *testing.T) {
	forEachStore(t, func(t *testing.T, s Store) {
		ctx := context.Background()

		first, err := s.UpsertContent(ctx, "hero", []byte(`{"title":"A","subtitle":"B"}`))
		require.NoError(t, err)

		got, err := s.GetContent(ctx, "hero")
		require.NoError(t, err)
		assert.JSONEq(t, `{"title":"A","subtitle":"B"}`, string(got.Content))

		second, err := s.UpsertContent(ctx, "hero", []byte(`{"title":"C","nested":{"list":[1,2,3]}}`))
		require.NoError(t, err)
		assert.Equal(t, first.ID, second.ID, "upsert must keep the section row")
		assert.False(t, second.LastUpdated.Before(first.LastUpdated))

		got, err = s.GetContent(ctx, "hero")
		require.NoError(t, err)
		assert.JSONEq(t, `{"title":"C","nested":{"list":[1,2,3]}}`, string(got.Content))

		all, err := s.ListContent(ctx)
		require.NoError(t, err)
		assert.Len(t, all, 1)
	})
}

func TestGetContentUnknownSection(t *testing.T) {
	forEachStore(t, func(t *testing.T, s Store) {
		_, err := s.GetContent(context.Background(), "missing")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestSkillCRUD(t *testing.T) {
	forEachStore(t, func(t *testing.T, s Store) {
		ctx := context.Background()

		goSkill := &db.Skill{Name: "Go", Category: "Programming", Proficiency: 70, IsVisible: true}
		bash := &db.Skill{Name: "Bash", Category: "Programming", Proficiency: 85, IsVisible: false}
		require.NoError(t, s.CreateSkill(ctx, goSkill))
		require.NoError(t, s.CreateSkill(ctx, bash))
		require.NotZero(t, goSkill.ID)

		updated, err := s.UpdateSkill(ctx, goSkill.ID, SkillPatch{Proficiency: intPtr(90)})
		require.NoError(t, err)
		assert.Equal(t, 90, updated.Proficiency)
		assert.Equal(t, "Go", updated.Name, "unset fields must be kept")

		_, err = s.UpdateSkill(ctx, 9999, SkillPatch{Name: strPtr("x")})
		assert.ErrorIs(t, err, ErrNotFound)

		assert.ErrorIs(t, s.DeleteSkill(ctx, 9999), ErrNotFound)
		skills, err := s.ListSkills(ctx)
		require.NoError(t, err)
		assert.Len(t, skills, 2, "failed delete must not touch other rows")

		require.NoError(t, s.DeleteSkill(ctx, bash.ID))
		skills, err = s.ListSkills(ctx)
		require.NoError(t, err)
		require.Len(t, skills, 1)
		assert.Equal(t, goSkill.ID, skills[0].ID)

		total, err := s.CountSkills(ctx)
		require.NoError(t, err)
		assert.EqualValues(t, 1, total)
	})
}

func TestListExperiencesSortedByOrder(t *testing.T) {
	forEachStore(t, func(t *testing.T, s Store) {
		ctx := context.Background()

		for _, item := range []*db.Experience{
			{Position: "C", Company: "c", Description: "c", StartDate: "2014", Order: 3, IsVisible: true},
			{Position: "A", Company: "a", Description: "a", StartDate: "2020", Order: 1, IsVisible: true},
			{Position: "B", Company: "b", Description: "b", StartDate: "2017", Order: 1, IsVisible: false},
		} {
			require.NoError(t, s.CreateExperience(ctx, item))
		}

		items, err := s.ListExperiences(ctx)
		require.NoError(t, err)
		require.Len(t, items, 3)
		assert.Equal(t, []string{"A", "B", "C"}, []string{items[0].Position, items[1].Position, items[2].Position})
	})
}

func TestUpdateExperienceClearsEndDate(t *testing.T) {
	forEachStore(t, func(t *testing.T, s Store) {
		ctx := context.Background()

		item := &db.Experience{Position: "Dev", Company: "Co", Description: "d", StartDate: "2019", EndDate: strPtr("2020")}
		require.NoError(t, s.CreateExperience(ctx, item))

		updated, err := s.UpdateExperience(ctx, item.ID, ExperiencePatch{Order: intPtr(4)})
		require.NoError(t, err)
		require.NotNil(t, updated.EndDate)
		assert.Equal(t, "2020", *updated.EndDate)

		updated, err = s.UpdateExperience(ctx, item.ID, ExperiencePatch{ClearEndDate: true})
		require.NoError(t, err)
		assert.Nil(t, updated.EndDate)
		assert.Equal(t, 4, updated.Order)
	})
}

func TestProjectTagsPersistInOrder(t *testing.T) {
	forEachStore(t, func(t *testing.T, s Store) {
		ctx := context.Background()

		project := &db.Project{Title: "Operator", Description: "k8s", Tags: []string{"Kubernetes", "Go", "Databases"}, RepoURL: strPtr("https://github.com/x/y"), IsVisible: true}
		require.NoError(t, s.CreateProject(ctx, project))

		items, err := s.ListProjects(ctx)
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, []string{"Kubernetes", "Go", "Databases"}, items[0].Tags)

		updated, err := s.UpdateProject(ctx, project.ID, ProjectPatch{IsFeatured: boolPtr(true), ClearRepoURL: true})
		require.NoError(t, err)
		assert.True(t, updated.IsFeatured)
		assert.Nil(t, updated.RepoURL)
		assert.Equal(t, []string{"Kubernetes", "Go", "Databases"}, updated.Tags)
	})
}

func TestMessagesLifecycle(t *testing.T) {
	forEachStore(t, func(t *testing.T, s Store) {
		ctx := context.Background()

		older := &db.ContactMessage{Name: "Jo", Email: "a@b.com", Subject: "Hello there", Message: "first message body", CreatedAt: time.Now().Add(-time.Hour)}
		newer := &db.ContactMessage{Name: "Al", Email: "c@d.com", Subject: "Second one", Message: "second message body"}
		require.NoError(t, s.CreateMessage(ctx, older))
		require.NoError(t, s.CreateMessage(ctx, newer))

		items, err := s.ListMessages(ctx)
		require.NoError(t, err)
		require.Len(t, items, 2)
		assert.Equal(t, newer.ID, items[0].ID)
		assert.False(t, items[0].IsRead)

		require.NoError(t, s.MarkMessageRead(ctx, older.ID))
		require.NoError(t, s.MarkMessageRead(ctx, older.ID), "marking twice stays successful")
		assert.ErrorIs(t, s.MarkMessageRead(ctx, 9999), ErrNotFound)

		items, err = s.ListMessages(ctx)
		require.NoError(t, err)
		assert.True(t, items[1].IsRead)

		require.NoError(t, s.DeleteMessage(ctx, newer.ID))
		assert.ErrorIs(t, s.DeleteMessage(ctx, newer.ID), ErrNotFound)
	})
}

func TestUsers(t *testing.T) {
	forEachStore(t, func(t *testing.T, s Store) {
		ctx := context.Background()

		user := &db.User{Username: "admin", Password: "hash", IsAdmin: true}
		require.NoError(t, s.CreateUser(ctx, user))
		assert.ErrorIs(t, s.CreateUser(ctx, &db.User{Username: "admin", Password: "other"}), ErrConflict)

		found, err := s.GetUserByUsername(ctx, "admin")
		require.NoError(t, err)
		assert.Equal(t, user.ID, found.ID)

		byID, err := s.GetUser(ctx, user.ID)
		require.NoError(t, err)
		assert.True(t, byID.IsAdmin)

		_, err = s.GetUserByUsername(ctx, "nobody")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}
