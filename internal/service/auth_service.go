package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/devfolio/internal/db"
	"github.com/devfolio/internal/store"
	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrInvalidCredentials 用户名或密码错误。
	ErrInvalidCredentials = errors.New("invalid username or password")
	// ErrUnauthorized 令牌缺失、过期或签名不符。
	ErrUnauthorized = errors.New("unauthorized")
)

const tokenIssuer = "devfolio"

// AuthConfig 描述管理员认证所需的配置。
type AuthConfig struct {
	// LegacyToken 是历史上前端硬编码的共享令牌，按字符串完全相等比较。
	// 这是一个已知的安全缺口，仅为兼容旧客户端保留；为空时禁用。
	LegacyToken string
	JWTSecret   string
	TokenTTL    time.Duration
	// Username/Password 在库里还没有管理员时作为后备凭据。
	Username string
	Password string
}

// Identity 是通过认证的管理员身份。
type Identity struct {
	UserID   uint   `json:"userId"`
	Username string `json:"username"`
	// Legacy 表示通过共享令牌认证，没有具体用户。
	Legacy bool `json:"-"`
}

// LoginResult 是登录接口的返回值。
type LoginResult struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
	Username  string    `json:"username"`
}

// AdminClaims 是签发给管理员的 JWT 声明。
type AdminClaims struct {
	UserID   uint   `json:"uid"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// AuthService 负责管理员登录和令牌校验。
type AuthService struct {
	users store.UserStore
	cfg   AuthConfig
	now   func() time.Time
}

// NewAuthService 构造 AuthService，TokenTTL 未设置时为 24 小时。
func NewAuthService(users store.UserStore, cfg AuthConfig) *AuthService {
	if cfg.TokenTTL <= 0 {
		cfg.TokenTTL = 24 * time.Hour
	}
	return &AuthService{users: users, cfg: cfg, now: time.Now}
}

// EnsureAdmin 在没有任何用户时用配置中的凭据创建管理员，返回是否新建。
func (s *AuthService) EnsureAdmin(ctx context.Context) (bool, error) {
	count, err := s.users.CountUsers(ctx)
	if err != nil {
		return false, fmt.Errorf("count users: %w", err)
	}
	if count > 0 {
		return false, nil
	}

	user, err := db.NewAdminUser(s.cfg.Username, s.cfg.Password)
	if err != nil {
		return false, err
	}
	if err := s.users.CreateUser(ctx, user); err != nil {
		if errors.Is(err, store.ErrConflict) {
			return false, nil
		}
		return false, fmt.Errorf("create admin user: %w", err)
	}
	return true, nil
}

// Login 校验用户名密码并签发令牌。
func (s *AuthService) Login(ctx context.Context, username, password string) (*LoginResult, *Identity, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, nil, ErrInvalidCredentials
	}

	identity, err := s.verifyCredentials(ctx, username, password)
	if err != nil {
		return nil, nil, err
	}

	expiresAt := s.now().Add(s.cfg.TokenTTL)
	token, err := s.issue(identity, expiresAt)
	if err != nil {
		return nil, nil, err
	}
	return &LoginResult{Token: token, ExpiresAt: expiresAt, Username: identity.Username}, identity, nil
}

func (s *AuthService) verifyCredentials(ctx context.Context, username, password string) (*Identity, error) {
	user, err := s.users.GetUserByUsername(ctx, username)
	switch {
	case err == nil:
		if !user.IsAdmin || !user.CheckPassword(password) {
			return nil, ErrInvalidCredentials
		}
		return &Identity{UserID: user.ID, Username: user.Username}, nil
	case errors.Is(err, store.ErrNotFound):
	default:
		return nil, fmt.Errorf("load user: %w", err)
	}

	// 库里没有任何用户时退回到配置凭据
	count, err := s.users.CountUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("count users: %w", err)
	}
	if count > 0 || s.cfg.Username == "" {
		return nil, ErrInvalidCredentials
	}
	if !equalSecret(username, s.cfg.Username) || !equalSecret(password, s.cfg.Password) {
		return nil, ErrInvalidCredentials
	}
	return &Identity{Username: s.cfg.Username}, nil
}

func (s *AuthService) issue(identity *Identity, expiresAt time.Time) (string, error) {
	now := s.now()
	claims := AdminClaims{
		UserID:   identity.UserID,
		Username: identity.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    tokenIssuer,
			Subject:   identity.Username,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.cfg.JWTSecret))
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Authenticate 校验 Bearer 令牌：先按共享令牌比较，再按 JWT 解析。
func (s *AuthService) Authenticate(ctx context.Context, token string) (*Identity, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, ErrUnauthorized
	}

	if s.cfg.LegacyToken != "" && token == s.cfg.LegacyToken {
		return &Identity{Username: s.cfg.Username, Legacy: true}, nil
	}

	claims := &AdminClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(s.cfg.JWTSecret), nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(tokenIssuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil || !parsed.Valid {
		return nil, ErrUnauthorized
	}

	return s.resolve(ctx, claims.UserID, claims.Username)
}

// ResolveSession 校验会话 cookie 中保存的身份。
func (s *AuthService) ResolveSession(ctx context.Context, userID uint, username string) (*Identity, error) {
	if username == "" {
		return nil, ErrUnauthorized
	}
	return s.resolve(ctx, userID, username)
}

// resolve 确认令牌绑定的用户仍然存在且是管理员。
func (s *AuthService) resolve(ctx context.Context, userID uint, username string) (*Identity, error) {
	if userID == 0 {
		// 由后备凭据签发，只在仍然没有用户时有效
		count, err := s.users.CountUsers(ctx)
		if err != nil {
			return nil, fmt.Errorf("count users: %w", err)
		}
		if count > 0 || !equalSecret(username, s.cfg.Username) {
			return nil, ErrUnauthorized
		}
		return &Identity{Username: username}, nil
	}

	user, err := s.users.GetUser(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrUnauthorized
		}
		return nil, fmt.Errorf("load user: %w", err)
	}
	if !user.IsAdmin || user.Username != username {
		return nil, ErrUnauthorized
	}
	return &Identity{UserID: user.ID, Username: user.Username}, nil
}

func equalSecret(a, b string) bool {
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}
