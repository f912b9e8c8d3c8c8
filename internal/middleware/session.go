package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/creparitsdev-collab/SGI-FRONT-sub001/internal/upstream"
	appErrors "github.com/creparitsdev-collab/SGI-FRONT-sub001/pkg/errors"
	"github.com/creparitsdev-collab/SGI-FRONT-sub001/pkg/middleware/requestid"
	"github.com/creparitsdev-collab/SGI-FRONT-sub001/pkg/response"
)

// ContextSessionKey is the gin context key storing the upstream session.
const ContextSessionKey = "currentSession"

// Session protects routes by requiring a valid forwarded bearer token.
// The parsed session carries the token, its claims, and the request's
// correlation ID for every upstream call made on its behalf.
func Session(parser *upstream.SessionParser) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			response.Error(c, appErrors.ErrUnauthorized)
			c.Abort()
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			response.Error(c, appErrors.Clone(appErrors.ErrUnauthorized, "invalid authorization header"))
			c.Abort()
			return
		}

		sess, err := parser.Parse(parts[1], requestid.Value(c))
		if err != nil {
			response.Error(c, err)
			c.Abort()
			return
		}

		c.Set(ContextSessionKey, sess)
		c.Next()
	}
}

// SessionFrom retrieves the parsed session from the request context.
func SessionFrom(c *gin.Context) (*upstream.Session, bool) {
	v, ok := c.Get(ContextSessionKey)
	if !ok {
		return nil, false
	}
	sess, ok := v.(*upstream.Session)
	return sess, ok
}
