package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/avolkov/photovault/internal/model"
	"github.com/avolkov/photovault/internal/pkg/response"
)

const ContextUserKey = "auth_user"

// Resolver turns a bearer token into a user record.
type Resolver interface {
	Resolve(ctx context.Context, token string) (*model.User, error)
}

// Auth gates every protected route. All failure modes return the same 401
// body so clients cannot distinguish expired from malformed from unknown.
func Auth(resolver Resolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			unauthorized(c)
			return
		}
		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			unauthorized(c)
			return
		}
		user, err := resolver.Resolve(c.Request.Context(), parts[1])
		if err != nil {
			unauthorized(c)
			return
		}
		c.Set(ContextUserKey, user)
		c.Next()
	}
}

func unauthorized(c *gin.Context) {
	response.Error(c, http.StatusUnauthorized, "unauthorized", "invalid authentication credentials")
	c.Abort()
}
