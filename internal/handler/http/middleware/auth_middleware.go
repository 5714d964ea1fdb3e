package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	"github.com/Ganapati12/Edulists-sub001/internal/domain/contract"
	"github.com/Ganapati12/Edulists-sub001/internal/domain/entity"
	"github.com/Ganapati12/Edulists-sub001/internal/handler/http/dto"
	jwtinfra "github.com/Ganapati12/Edulists-sub001/internal/infrastructure/jwt"
	"github.com/Ganapati12/Edulists-sub001/internal/usecase"
	usecasecontract "github.com/Ganapati12/Edulists-sub001/internal/usecase/contract"
)

// ContextKeyActor is the gin context key for the authenticated actor.
const ContextKeyActor = "actor"

// AuthMiddleware verifies bearer credentials and attaches the reloaded
// identity to the request context. Every request re-verifies the token and
// re-fetches the identity; nothing is cached.
type AuthMiddleware struct {
	jwtService  usecase.JWTService
	authUsecase usecasecontract.IAuthUseCase
}

// NewAuthMiddleware creates the middleware with its token and identity
// dependencies.
func NewAuthMiddleware(jwtService usecase.JWTService, authUsecase usecasecontract.IAuthUseCase) *AuthMiddleware {
	return &AuthMiddleware{jwtService: jwtService, authUsecase: authUsecase}
}

// Authenticate is the mandatory auth gate. Failure responses carry one of the
// documented machine-readable codes and terminate the request.
func (m *AuthMiddleware) Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr := extractToken(c)
		if tokenStr == "" {
			abortCode(c, http.StatusUnauthorized, dto.CodeNoToken, "Authentication token required")
			return
		}

		claims, err := m.jwtService.VerifyToken(tokenStr)
		if err != nil {
			switch {
			case errors.Is(err, jwtinfra.ErrTokenExpired):
				abortCode(c, http.StatusUnauthorized, dto.CodeTokenExpired, "Token has expired")
			case errors.Is(err, jwtinfra.ErrTokenInvalid):
				abortCode(c, http.StatusUnauthorized, dto.CodeInvalidToken, "Token is invalid")
			default:
				abortCode(c, http.StatusUnauthorized, dto.CodeAuthFailed, "Authentication failed")
			}
			return
		}

		actor, err := m.authUsecase.ResolveActor(c.Request.Context(), claims.UserID, claims.Role)
		if err != nil {
			switch {
			case errors.Is(err, contract.ErrNotFound):
				abortCode(c, http.StatusUnauthorized, dto.CodeUserNotFound, "Account no longer exists")
			case errors.Is(err, usecase.ErrAccountDeactivated):
				abortCode(c, http.StatusUnauthorized, dto.CodeAccountDeactivated, "Account is deactivated")
			default:
				abortCode(c, http.StatusInternalServerError, dto.CodeServerError, "Internal server error")
			}
			return
		}

		c.Set(ContextKeyActor, actor)
		c.Next()
	}
}

// OptionalAuthenticate decodes a token when present but swallows every
// verification failure, proceeding without an attached identity.
func (m *AuthMiddleware) OptionalAuthenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr := extractToken(c)
		if tokenStr == "" {
			c.Next()
			return
		}
		claims, err := m.jwtService.VerifyToken(tokenStr)
		if err != nil {
			c.Next()
			return
		}
		actor, err := m.authUsecase.ResolveActor(c.Request.Context(), claims.UserID, claims.Role)
		if err != nil {
			c.Next()
			return
		}
		c.Set(ContextKeyActor, actor)
		c.Next()
	}
}

// RequireRoles permits only the listed roles. The 403 response echoes the
// allowed roles and the actor's actual role.
func RequireRoles(roles ...entity.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor := GetActor(c)
		if actor == nil {
			abortCode(c, http.StatusUnauthorized, dto.CodeAuthRequired, "Authentication required")
			return
		}
		for _, role := range roles {
			if actor.Role == role {
				c.Next()
				return
			}
		}

		required := make([]string, 0, len(roles))
		for _, role := range roles {
			required = append(required, string(role))
		}
		c.AbortWithStatusJSON(http.StatusForbidden, dto.Response{
			Success:       false,
			Message:       "Your role does not permit this action",
			Code:          dto.CodeRoleForbidden,
			RequiredRoles: required,
			ActualRole:    string(actor.Role),
		})
	}
}

// RequireInstituteOwnership enforces the institute ownership predicate. The
// target institute id is resolved from route params, then body, then query;
// the first present source wins. Admins bypass the check; institutes must
// match their own id; users are permitted only for review and enquiry
// submissions.
func RequireInstituteOwnership() gin.HandlerFunc {
	return func(c *gin.Context) {
		actor := GetActor(c)
		if actor == nil {
			abortCode(c, http.StatusUnauthorized, dto.CodeAuthRequired, "Authentication required")
			return
		}

		if actor.IsAdmin() {
			c.Next()
			return
		}

		if actor.Role == entity.RoleUser {
			path := c.Request.URL.Path
			if c.Request.Method == http.MethodPost &&
				(strings.Contains(path, "/reviews") || strings.Contains(path, "/enquiries")) {
				c.Next()
				return
			}
			Forbid(c, "Users may only submit reviews and enquiries")
			return
		}

		targetID := resolveTargetInstituteID(c)
		if targetID != "" && targetID != actor.InstituteID {
			Forbid(c, "You may only manage your own institute")
			return
		}
		c.Next()
	}
}

// RequireSelfOrAdmin permits access when the caller's id equals the named
// route parameter, or the caller is an admin.
func RequireSelfOrAdmin(param string) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor := GetActor(c)
		if actor == nil {
			abortCode(c, http.StatusUnauthorized, dto.CodeAuthRequired, "Authentication required")
			return
		}
		if actor.IsAdmin() || c.Param(param) == actor.ID {
			c.Next()
			return
		}
		Forbid(c, "You may only access your own resources")
	}
}

// GetActor retrieves the authenticated actor from the gin context, or nil.
func GetActor(c *gin.Context) *entity.Actor {
	val, exists := c.Get(ContextKeyActor)
	if !exists {
		return nil
	}
	actor, ok := val.(*entity.Actor)
	if !ok {
		return nil
	}
	return actor
}

// Forbid aborts with a plain 403 envelope.
func Forbid(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusForbidden, dto.Response{Success: false, Message: message})
}

func abortCode(c *gin.Context, statusCode int, code, message string) {
	c.AbortWithStatusJSON(statusCode, dto.Response{Success: false, Message: message, Code: code})
}

// extractToken pulls the credential from the Authorization header, falling
// back to the token cookie.
func extractToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader != "" {
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
			return strings.TrimSpace(parts[1])
		}
	}
	if cookie, err := c.Cookie("token"); err == nil {
		return cookie
	}
	return ""
}

// resolveTargetInstituteID finds the institute a request is aimed at: route
// params first, then body keys, then the query string. Body reads go through
// gin's cached binding so handlers can still bind the payload afterwards.
func resolveTargetInstituteID(c *gin.Context) string {
	if id := c.Param("instituteId"); id != "" {
		return id
	}

	if c.Request.Body != nil && c.Request.ContentLength > 0 {
		var body map[string]interface{}
		if err := c.ShouldBindBodyWith(&body, binding.JSON); err == nil {
			for _, key := range []string{"institute", "instituteId"} {
				if v, ok := body[key].(string); ok && v != "" {
					return v
				}
			}
		}
	}

	return c.Query("institute")
}
