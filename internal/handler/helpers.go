package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/xxxsen/common/logutil"
	"go.uber.org/zap"

	"github.com/avolkov/photovault/internal/middleware"
	"github.com/avolkov/photovault/internal/model"
	appErr "github.com/avolkov/photovault/internal/pkg/errors"
	"github.com/avolkov/photovault/internal/pkg/response"
)

func getUser(c *gin.Context) *model.User {
	value, _ := c.Get(middleware.ContextUserKey)
	user, _ := value.(*model.User)
	return user
}

func handleError(c *gin.Context, err error) {
	if err == nil {
		return
	}
	requestID, _ := c.Get(middleware.ContextRequestIDKey)
	logutil.GetLogger(c.Request.Context()).Error("request failed",
		zap.Any("request_id", requestID),
		zap.String("method", c.Request.Method),
		zap.String("path", c.Request.URL.Path),
		zap.Error(err))
	switch {
	case appErr.IsUnauthorized(err):
		response.Error(c, http.StatusUnauthorized, "unauthorized", "invalid authentication credentials")
	case appErr.IsNotFound(err):
		response.Error(c, http.StatusNotFound, "not_found", "not found")
	case appErr.IsConflict(err):
		response.Error(c, http.StatusBadRequest, "duplicate", "email already registered")
	case appErr.IsInvalid(err):
		response.Error(c, http.StatusBadRequest, "invalid", "invalid request")
	default:
		response.Error(c, http.StatusInternalServerError, "internal", "internal error")
	}
}
