package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/devfolio/internal/service"
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

const (
	sessionUserIDKey   = "user_id"
	sessionUsernameKey = "username"
	identityContextKey = "__admin_identity"
)

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login 校验管理员凭据，签发令牌并写入会话。
func (a *API) Login(c *gin.Context) {
	var req loginRequest
	if !bindJSON(c, &req) {
		return
	}

	result, identity, err := a.auth.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			respondError(c, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		respondServiceError(c, err, "failed to log in")
		return
	}

	session := sessions.Default(c)
	session.Set(sessionUserIDKey, identity.UserID)
	session.Set(sessionUsernameKey, identity.Username)
	if err := session.Save(); err != nil {
		respondError(c, http.StatusInternalServerError, "failed to save session")
		return
	}

	c.JSON(http.StatusOK, result)
}

// Logout 清空会话。持有的 JWT 会在过期后自然失效。
func (a *API) Logout(c *gin.Context) {
	session := sessions.Default(c)
	session.Clear()
	session.Options(sessions.Options{Path: "/", MaxAge: -1})
	if err := session.Save(); err != nil {
		respondError(c, http.StatusInternalServerError, "failed to clear session")
		return
	}
	c.Status(http.StatusNoContent)
}

// Session 报告当前请求是否已认证。
func (a *API) Session(c *gin.Context) {
	identity, ok := a.identify(c)
	if !ok {
		c.JSON(http.StatusOK, gin.H{"authenticated": false})
		return
	}
	c.JSON(http.StatusOK, gin.H{"authenticated": true, "username": identity.Username})
}

// AuthRequired 校验 Bearer 令牌或会话，未通过时返回 401 且不执行后续 handler。
func (a *API) AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := a.identify(c)
		if !ok {
			respondError(c, http.StatusUnauthorized, "unauthorized")
			c.Abort()
			return
		}
		c.Set(identityContextKey, identity)
		c.Next()
	}
}

// identify 依次尝试 Authorization 头和会话 cookie。
func (a *API) identify(c *gin.Context) (*service.Identity, bool) {
	ctx := c.Request.Context()

	if token, ok := bearerToken(c.GetHeader("Authorization")); ok {
		identity, err := a.auth.Authenticate(ctx, token)
		if err == nil {
			return identity, true
		}
		if !errors.Is(err, service.ErrUnauthorized) {
			c.Error(err)
		}
	}

	session := sessions.Default(c)
	username, _ := session.Get(sessionUsernameKey).(string)
	if username == "" {
		return nil, false
	}
	userID, _ := session.Get(sessionUserIDKey).(uint)
	identity, err := a.auth.ResolveSession(ctx, userID, username)
	if err != nil {
		if !errors.Is(err, service.ErrUnauthorized) {
			c.Error(err)
		}
		return nil, false
	}
	return identity, true
}

func bearerToken(header string) (string, bool) {
	header = strings.TrimSpace(header)
	if len(header) < len("Bearer ") || !strings.EqualFold(header[:len("Bearer ")], "Bearer ") {
		return "", false
	}
	token := strings.TrimSpace(header[len("Bearer "):])
	return token, token != ""
}
