package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/patrickmn/go-cache"
)

const (
	// RepoCacheTTL 与前端的重新拉取间隔一致。
	RepoCacheTTL = 10 * time.Minute
	// 拉取失败时的后备数据只缓存较短时间
	repoFailureTTL = time.Minute
	repoPerPage    = 10
)

// Repository 是 GitHub 仓库信息中前端用到的子集。
type Repository struct {
	ID              int64    `json:"id"`
	Name            string   `json:"name"`
	Description     string   `json:"description"`
	HTMLURL         string   `json:"html_url"`
	Homepage        string   `json:"homepage,omitempty"`
	Language        string   `json:"language"`
	StargazersCount int      `json:"stargazers_count"`
	ForksCount      int      `json:"forks_count"`
	Topics          []string `json:"topics"`
	UpdatedAt       string   `json:"updated_at,omitempty"`
}

// RepoCache 缓存仓库列表，未命中时返回 false。
type RepoCache interface {
	Get(ctx context.Context, key string) ([]Repository, bool)
	Set(ctx context.Context, key string, repos []Repository, ttl time.Duration)
}

// MemoryRepoCache 使用 go-cache 在进程内缓存。
type MemoryRepoCache struct {
	items *cache.Cache
}

// NewMemoryRepoCache 创建进程内缓存。
func NewMemoryRepoCache() *MemoryRepoCache {
	return &MemoryRepoCache{items: cache.New(RepoCacheTTL, 2*RepoCacheTTL)}
}

// Get implements RepoCache.
func (c *MemoryRepoCache) Get(_ context.Context, key string) ([]Repository, bool) {
	value, ok := c.items.Get(key)
	if !ok {
		return nil, false
	}
	repos, ok := value.([]Repository)
	return repos, ok
}

// Set implements RepoCache.
func (c *MemoryRepoCache) Set(_ context.Context, key string, repos []Repository, ttl time.Duration) {
	c.items.Set(key, repos, ttl)
}

// RedisRepoCache 通过 Redis 在多个实例间共享缓存。
type RedisRepoCache struct {
	client *redis.Client
	prefix string
}

// NewRedisRepoCache 解析 redis:// 地址并创建缓存。
func NewRedisRepoCache(redisURL string) (*RedisRepoCache, error) {
	opts, err := redis.ParseURL(strings.TrimSpace(redisURL))
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	return &RedisRepoCache{client: redis.NewClient(opts), prefix: "devfolio:"}, nil
}

// Ping 检查 Redis 是否可用。
func (c *RedisRepoCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

// Close 关闭连接池。
func (c *RedisRepoCache) Close() error {
	return c.client.Close()
}

// Get implements RepoCache. Redis 出错时按未命中处理。
func (c *RedisRepoCache) Get(ctx context.Context, key string) ([]Repository, bool) {
	raw, err := c.client.Get(ctx, c.prefix+key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			log.Printf("[repos] redis get failed: %v", err)
		}
		return nil, false
	}

	var repos []Repository
	if err := json.Unmarshal(raw, &repos); err != nil {
		log.Printf("[repos] redis payload corrupted: %v", err)
		return nil, false
	}
	return repos, true
}

// Set implements RepoCache.
func (c *RedisRepoCache) Set(ctx context.Context, key string, repos []Repository, ttl time.Duration) {
	payload, err := json.Marshal(repos)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, c.prefix+key, payload, ttl).Err(); err != nil {
		log.Printf("[repos] redis set failed: %v", err)
	}
}

// RepoService 镜像 GitHub 上的公开仓库列表。
type RepoService struct {
	http     httpDoer
	cache    RepoCache
	baseURL  string
	token    string
	username string
}

type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// NewRepoService 构造 RepoService；cache 为 nil 时使用进程内缓存。
func NewRepoService(token, username string, repoCache RepoCache) *RepoService {
	if repoCache == nil {
		repoCache = NewMemoryRepoCache()
	}
	return &RepoService{
		http:     &http.Client{Timeout: 10 * time.Second},
		cache:    repoCache,
		baseURL:  "https://api.github.com",
		token:    strings.TrimSpace(token),
		username: strings.TrimSpace(username),
	}
}

// SetHTTPClient 替换底层 HTTP 客户端，测试中用于注入桩实现。
func (s *RepoService) SetHTTPClient(client httpDoer) {
	if client == nil {
		s.http = &http.Client{Timeout: 10 * time.Second}
		return
	}
	s.http = client
}

// SetBaseURL 覆盖 GitHub API 地址。
func (s *RepoService) SetBaseURL(base string) {
	s.baseURL = strings.TrimRight(strings.TrimSpace(base), "/")
}

// List 返回仓库列表：优先读缓存，其次请求 GitHub，失败或未配置令牌时返回内置列表。
func (s *RepoService) List(ctx context.Context) []Repository {
	key := "repos:" + strings.ToLower(s.username)
	if repos, ok := s.cache.Get(ctx, key); ok {
		return repos
	}

	if s.token == "" || s.username == "" {
		repos := FallbackRepositories()
		s.cache.Set(ctx, key, repos, RepoCacheTTL)
		return repos
	}

	repos, err := s.fetch(ctx)
	if err != nil {
		log.Printf("[repos] fetch from github failed, serving fallback: %v", err)
		fallback := FallbackRepositories()
		s.cache.Set(ctx, key, fallback, repoFailureTTL)
		return fallback
	}

	s.cache.Set(ctx, key, repos, RepoCacheTTL)
	return repos
}

func (s *RepoService) fetch(ctx context.Context) ([]Repository, error) {
	query := url.Values{}
	query.Set("sort", "updated")
	query.Set("per_page", fmt.Sprint(repoPerPage))
	endpoint := fmt.Sprintf("%s/users/%s/repos?%s", s.baseURL, url.PathEscape(s.username), query.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/vnd.github+json")
	req.Header.Set("Authorization", "Bearer "+s.token)
	req.Header.Set("X-GitHub-Api-Version", "2022-11-28")

	resp, err := s.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("github responded %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var repos []Repository
	if err := json.NewDecoder(resp.Body).Decode(&repos); err != nil {
		return nil, fmt.Errorf("decode github response: %w", err)
	}
	for i := range repos {
		if repos[i].Topics == nil {
			repos[i].Topics = []string{}
		}
	}
	return repos, nil
}

// FallbackRepositories 返回内置的仓库列表，每次调用都是新切片。
func FallbackRepositories() []Repository {
	return []Repository{
		{
			ID:              956542314,
			Name:            "docker-compose-collection",
			HTMLURL:         "https://github.com/assisberlanda/docker-compose-collection",
			Description:     "Uma coleção de arquivos Docker Compose para configurar rapidamente ambientes de desenvolvimento e aplicações comuns.",
			Language:        "YAML",
			StargazersCount: 12,
			ForksCount:      5,
			Topics:          []string{"docker", "devops", "containers"},
		},
		{
			ID:              956542315,
			Name:            "kubernetes-templates",
			HTMLURL:         "https://github.com/assisberlanda/kubernetes-templates",
			Description:     "Templates para implantação de aplicações em clusters Kubernetes.",
			Language:        "YAML",
			StargazersCount: 8,
			ForksCount:      3,
			Topics:          []string{"kubernetes", "devops", "containers"},
		},
		{
			ID:              956542316,
			Name:            "terraform-azure-modules",
			HTMLURL:         "https://github.com/assisberlanda/terraform-azure-modules",
			Description:     "Módulos Terraform para provisionamento de infraestrutura na Azure.",
			Language:        "HCL",
			StargazersCount: 15,
			ForksCount:      7,
			Topics:          []string{"terraform", "azure", "iac", "devops"},
		},
	}
}
