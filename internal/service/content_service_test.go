package service

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/devfolio/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContentServiceSaveRoundTrip(t *testing.T) {
	svc := NewContentService(store.NewMemoryStore())
	ctx := context.Background()

	saved, err := svc.Save(ctx, "Hero", []byte(`{
		"title": "  Assis  ",
		"subtitle": "DevOps Engineer",
		"description": "Hello",
		"photoUrl": "/me.jpeg",
		"unknown": "dropped"
	}`))
	require.NoError(t, err)
	assert.Equal(t, "hero", saved.Section)

	got, err := svc.Get(ctx, "hero")
	require.NoError(t, err)
	assert.JSONEq(t, `{"title":"Assis","subtitle":"DevOps Engineer","description":"Hello","photoUrl":"/me.jpeg"}`, string(got.Content))
	assert.False(t, got.LastUpdated.Before(saved.LastUpdated))
}

func TestContentServiceRejectsUnknownSection(t *testing.T) {
	svc := NewContentService(store.NewMemoryStore())

	_, err := svc.Save(context.Background(), "footer", []byte(`{"title":"x"}`))
	assert.ErrorIs(t, err, ErrSectionNotFound)

	_, err = svc.Get(context.Background(), "footer")
	assert.ErrorIs(t, err, ErrSectionNotFound)
}

func TestContentServiceValidatesDocument(t *testing.T) {
	svc := NewContentService(store.NewMemoryStore())
	ctx := context.Background()

	_, err := svc.Save(ctx, "contact", []byte(`{"title":"Contato","description":"d","email":"not-an-email"}`))
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "must be a valid email address", verr.Fields["email"])

	_, err = svc.Save(ctx, "about", []byte(`{"title":"Sobre","paragraphs":["   "]}`))
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "paragraphs")

	_, err = svc.Save(ctx, "hero", []byte(`["not","an","object"]`))
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "content")

	items, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestContentServiceSaveDocumentKeepsCertifications(t *testing.T) {
	svc := NewContentService(store.NewMemoryStore())
	ctx := context.Background()

	_, err := svc.SaveDocument(ctx, AboutContent{
		Title:          "Sobre Mim",
		Paragraphs:     []string{"one", "two"},
		Certifications: []Certification{{Name: "Docker", Issuer: "Alura"}},
	})
	require.NoError(t, err)

	got, err := svc.Get(ctx, "about")
	require.NoError(t, err)

	var about AboutContent
	require.NoError(t, json.Unmarshal(got.Content, &about))
	assert.Equal(t, []string{"one", "two"}, about.Paragraphs)
	assert.Equal(t, "Alura", about.Certifications[0].Issuer)
}
