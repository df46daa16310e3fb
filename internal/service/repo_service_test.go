package service

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubHTTPDoer struct {
	calls   int
	lastReq *http.Request
	status  int
	body    string
	err     error
}

func (s *stubHTTPDoer) Do(req *http.Request) (*http.Response, error) {
	s.calls++
	s.lastReq = req
	if s.err != nil {
		return nil, s.err
	}
	return &http.Response{
		StatusCode: s.status,
		Body:       io.NopCloser(strings.NewReader(s.body)),
		Header:     make(http.Header),
	}, nil
}

func TestRepoServiceFallbackWithoutToken(t *testing.T) {
	doer := &stubHTTPDoer{status: http.StatusOK, body: `[]`}
	svc := NewRepoService("", "assisberlanda", nil)
	svc.SetHTTPClient(doer)

	first := svc.List(context.Background())
	require.Len(t, first, 3)
	assert.Equal(t, "docker-compose-collection", first[0].Name)

	second := svc.List(context.Background())
	assert.Equal(t, first, second)
	assert.Zero(t, doer.calls)
}

func TestRepoServiceFetchesAndCaches(t *testing.T) {
	doer := &stubHTTPDoer{status: http.StatusOK, body: `[
		{"id": 1, "name": "infra", "description": null, "html_url": "https://github.com/u/infra",
		 "language": "HCL", "stargazers_count": 4, "forks_count": 1, "topics": ["iac"], "updated_at": "2024-05-01T10:00:00Z"}
	]`}
	svc := NewRepoService("ghp_token", "u", nil)
	svc.SetHTTPClient(doer)
	svc.SetBaseURL("https://github.test/")

	repos := svc.List(context.Background())
	require.Len(t, repos, 1)
	assert.Equal(t, "infra", repos[0].Name)
	assert.Equal(t, []string{"iac"}, repos[0].Topics)

	require.NotNil(t, doer.lastReq)
	assert.Equal(t, "/users/u/repos", doer.lastReq.URL.Path)
	assert.Equal(t, "updated", doer.lastReq.URL.Query().Get("sort"))
	assert.Equal(t, "10", doer.lastReq.URL.Query().Get("per_page"))
	assert.Equal(t, "Bearer ghp_token", doer.lastReq.Header.Get("Authorization"))

	svc.List(context.Background())
	assert.Equal(t, 1, doer.calls)
}

func TestRepoServiceFallsBackOnFailure(t *testing.T) {
	for name, doer := range map[string]*stubHTTPDoer{
		"transport": {err: errors.New("dial tcp: refused")},
		"status":    {status: http.StatusForbidden, body: `{"message":"rate limited"}`},
		"payload":   {status: http.StatusOK, body: `{"not":"a list"}`},
	} {
		t.Run(name, func(t *testing.T) {
			svc := NewRepoService("ghp_token", "u", nil)
			svc.SetHTTPClient(doer)

			repos := svc.List(context.Background())
			assert.Equal(t, FallbackRepositories(), repos)
		})
	}
}
