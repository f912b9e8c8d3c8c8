package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/creparitsdev-collab/SGI-FRONT-sub001/internal/middleware"
	"github.com/creparitsdev-collab/SGI-FRONT-sub001/internal/upstream"
	appErrors "github.com/creparitsdev-collab/SGI-FRONT-sub001/pkg/errors"
	"github.com/creparitsdev-collab/SGI-FRONT-sub001/pkg/response"
)

// sessionFrom pulls the parsed session off the context, answering 401 and
// aborting when the session middleware did not run or was bypassed.
func sessionFrom(c *gin.Context) (*upstream.Session, bool) {
	sess, ok := middleware.SessionFrom(c)
	if !ok || sess == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		c.Abort()
		return nil, false
	}
	return sess, true
}
