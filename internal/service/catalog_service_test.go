package service

import (
	"context"
	"testing"

	"github.com/devfolio/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(v string) *string { return &v }
func intPtr(v int) *int       { return &v }
func boolPtr(v bool) *bool    { return &v }

func TestSkillServiceListVisibleFiltersCategory(t *testing.T) {
	svc := NewSkillService(store.NewMemoryStore())
	ctx := context.Background()

	_, err := svc.Create(ctx, SkillInput{Name: "Docker", Category: "DevOps", Proficiency: intPtr(85)})
	require.NoError(t, err)
	_, err = svc.Create(ctx, SkillInput{Name: "Go", Category: "Programming", Proficiency: intPtr(70)})
	require.NoError(t, err)
	_, err = svc.Create(ctx, SkillInput{Name: "Jenkins", Category: "DevOps", Proficiency: intPtr(40), IsVisible: boolPtr(false)})
	require.NoError(t, err)

	devops, err := svc.ListVisible(ctx, "devops")
	require.NoError(t, err)
	require.Len(t, devops, 1)
	assert.Equal(t, "Docker", devops[0].Name)

	all, err := svc.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestSkillServiceValidation(t *testing.T) {
	svc := NewSkillService(store.NewMemoryStore())
	ctx := context.Background()

	_, err := svc.Create(ctx, SkillInput{Name: "Docker", Category: "DevOps", Proficiency: intPtr(120)})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "must be at most 100", verr.Fields["proficiency"])

	_, err = svc.Create(ctx, SkillInput{Name: " ", Category: "DevOps"})
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "is required", verr.Fields["name"])
	assert.Equal(t, "is required", verr.Fields["proficiency"])

	created, err := svc.Create(ctx, SkillInput{Name: "Zero", Category: "Misc", Proficiency: intPtr(0)})
	require.NoError(t, err)
	assert.Equal(t, 0, created.Proficiency)

	_, err = svc.Update(ctx, created.ID, SkillUpdateInput{Name: strPtr("")})
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "name")
}

func TestSkillServiceUpdateAndDeleteMissing(t *testing.T) {
	svc := NewSkillService(store.NewMemoryStore())
	ctx := context.Background()

	skill, err := svc.Create(ctx, SkillInput{Name: "Docker", Category: "DevOps", Proficiency: intPtr(80)})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, skill.ID, SkillUpdateInput{Proficiency: intPtr(90)})
	require.NoError(t, err)
	assert.Equal(t, 90, updated.Proficiency)
	assert.Equal(t, "Docker", updated.Name)

	_, err = svc.Update(ctx, 999, SkillUpdateInput{Proficiency: intPtr(10)})
	assert.ErrorIs(t, err, ErrSkillNotFound)
	assert.ErrorIs(t, svc.Delete(ctx, 999), ErrSkillNotFound)

	all, err := svc.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestExperienceServiceOrderingAndVisibility(t *testing.T) {
	svc := NewExperienceService(store.NewMemoryStore())
	ctx := context.Background()

	for _, input := range []ExperienceInput{
		{Position: "Third", Company: "C", Description: "c", StartDate: "2020", Order: intPtr(3)},
		{Position: "First", Company: "A", Description: "a", StartDate: "2023", Order: intPtr(1)},
		{Position: "Hidden", Company: "B", Description: "b", StartDate: "2022", Order: intPtr(2), IsVisible: boolPtr(false)},
	} {
		_, err := svc.Create(ctx, input)
		require.NoError(t, err)
	}

	visible, err := svc.ListVisible(ctx)
	require.NoError(t, err)
	require.Len(t, visible, 2)
	assert.Equal(t, "First", visible[0].Position)
	assert.Equal(t, "Third", visible[1].Position)

	all, err := svc.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, []string{"First", "Hidden", "Third"}, []string{all[0].Position, all[1].Position, all[2].Position})
}

func TestExperienceServiceEndDate(t *testing.T) {
	svc := NewExperienceService(store.NewMemoryStore())
	ctx := context.Background()

	created, err := svc.Create(ctx, ExperienceInput{
		Position: "DevOps", Company: "Acme", Description: "Pipelines",
		StartDate: "2022-01", EndDate: strPtr(" "), Order: intPtr(1),
	})
	require.NoError(t, err)
	assert.Nil(t, created.EndDate)

	updated, err := svc.Update(ctx, created.ID, ExperienceUpdateInput{EndDate: Nullable{Set: true, Value: strPtr("2024-06")}})
	require.NoError(t, err)
	require.NotNil(t, updated.EndDate)
	assert.Equal(t, "2024-06", *updated.EndDate)

	updated, err = svc.Update(ctx, created.ID, ExperienceUpdateInput{Order: intPtr(1)})
	require.NoError(t, err)
	require.NotNil(t, updated.EndDate)

	updated, err = svc.Update(ctx, created.ID, ExperienceUpdateInput{EndDate: Nullable{Set: true}})
	require.NoError(t, err)
	assert.Nil(t, updated.EndDate)

	_, err = svc.Create(ctx, ExperienceInput{Position: "x"})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "is required", verr.Fields["order"])

	assert.ErrorIs(t, svc.Delete(ctx, 404), ErrExperienceNotFound)
}

func TestExperienceViewsRenderMarkdown(t *testing.T) {
	svc := NewExperienceService(store.NewMemoryStore())
	ctx := context.Background()

	_, err := svc.Create(ctx, ExperienceInput{
		Position: "SRE", Company: "Acme", Description: "**Kubernetes** <script>alert(1)</script>",
		StartDate: "2021", Order: intPtr(1),
	})
	require.NoError(t, err)

	items, err := svc.ListVisible(ctx)
	require.NoError(t, err)
	views := NewExperienceViews(items)
	require.Len(t, views, 1)
	assert.Contains(t, views[0].DescriptionHTML, "<strong>Kubernetes</strong>")
	assert.NotContains(t, views[0].DescriptionHTML, "<script")
}

func TestProjectServiceFeaturedIgnoresVisibility(t *testing.T) {
	svc := NewProjectService(store.NewMemoryStore())
	ctx := context.Background()

	_, err := svc.Create(ctx, ProjectInput{Title: "Public", Description: "p", Tags: []string{"go"}})
	require.NoError(t, err)
	_, err = svc.Create(ctx, ProjectInput{Title: "Hidden star", Description: "h", IsVisible: boolPtr(false), IsFeatured: boolPtr(true)})
	require.NoError(t, err)

	visible, err := svc.ListVisible(ctx)
	require.NoError(t, err)
	require.Len(t, visible, 1)
	assert.Equal(t, "Public", visible[0].Title)

	featured, err := svc.ListFeatured(ctx)
	require.NoError(t, err)
	require.Len(t, featured, 1)
	assert.Equal(t, "Hidden star", featured[0].Title)
}

func TestProjectServiceTagsAndURLs(t *testing.T) {
	svc := NewProjectService(store.NewMemoryStore())
	ctx := context.Background()

	_, err := svc.Create(ctx, ProjectInput{
		Title: "Too many", Description: "d",
		Tags: []string{"a", "b", "c", "d", "e", "f"},
	})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "must contain at most 5 items", verr.Fields["tags"])

	_, err = svc.Create(ctx, ProjectInput{Title: "Bad url", Description: "d", RepoURL: strPtr("not a url")})
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "must be a valid URL", verr.Fields["repoUrl"])

	project, err := svc.Create(ctx, ProjectInput{
		Title: "Infra", Description: "d",
		Tags:    []string{"terraform", " ", "azure"},
		RepoURL: strPtr("https://github.com/acme/infra"),
		DemoURL: strPtr(""),
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"terraform", "azure"}, project.Tags)
	assert.Nil(t, project.DemoURL)

	updated, err := svc.Update(ctx, project.ID, ProjectUpdateInput{RepoURL: Nullable{Set: true, Value: strPtr("")}})
	require.NoError(t, err)
	assert.Nil(t, updated.RepoURL)
	assert.Equal(t, []string{"terraform", "azure"}, updated.Tags)

	_, err = svc.Update(ctx, project.ID, ProjectUpdateInput{DemoURL: Nullable{Set: true, Value: strPtr("ftp//broken")}})
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "demoUrl")

	_, err = svc.Update(ctx, 12345, ProjectUpdateInput{Title: strPtr("x")})
	assert.ErrorIs(t, err, ErrProjectNotFound)
}

func TestMessageServiceSubmit(t *testing.T) {
	st := store.NewMemoryStore()
	svc := NewMessageService(st)
	ctx := context.Background()

	msg, err := svc.Submit(ctx, ContactInput{
		Name:    "Jo",
		Email:   "a@b.com",
		Subject: "Hello there",
		Message: "This is a long <b>enough</b> message.",
	})
	require.NoError(t, err)
	assert.False(t, msg.IsRead)
	assert.Equal(t, "This is a long enough message.", msg.Message)

	_, err = svc.Submit(ctx, ContactInput{Name: "Jo", Email: "a@b.com", Subject: "Hello there", Message: "short"})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "must be at least 10 characters", verr.Fields["message"])

	_, err = svc.Submit(ctx, ContactInput{Name: "<i></i>J", Email: "a@b.com", Subject: "Hello there", Message: "long enough body"})
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "name")

	items, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, items, 1)
}

func TestMessageServiceMarkReadAndDelete(t *testing.T) {
	svc := NewMessageService(store.NewMemoryStore())
	ctx := context.Background()

	msg, err := svc.Submit(ctx, ContactInput{Name: "Ana", Email: "ana@example.com", Subject: "Vaga DevOps", Message: "Gostaria de conversar."})
	require.NoError(t, err)

	require.NoError(t, svc.MarkRead(ctx, msg.ID))
	require.NoError(t, svc.MarkRead(ctx, msg.ID))

	items, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.True(t, items[0].IsRead)

	require.NoError(t, svc.Delete(ctx, msg.ID))
	assert.ErrorIs(t, svc.Delete(ctx, msg.ID), ErrMessageNotFound)
	assert.ErrorIs(t, svc.MarkRead(ctx, msg.ID), ErrMessageNotFound)
}
