package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	userapp "github.com/sidapp/mongo-user-service/internal/application"
	"github.com/sidapp/mongo-user-service/pkg/response"
	"github.com/sidapp/mongo-user-service/pkg/validation"
)

// RespondError is the single conversion point from a failure kind to a
// transport status and error envelope. Anything it does not recognize falls
// back to 500 with a fixed message; the detail goes to the log only.
func RespondError(c *gin.Context, logger logrus.FieldLogger, err error) {
	var (
		notFound   *userapp.NotFoundError
		conflict   *userapp.ConflictError
		invalidArg *userapp.InvalidArgumentError
		constraint *userapp.ConstraintViolationError
		verr       *validation.Error
	)
	switch {
	case errors.As(err, &notFound):
		logger.WithField("path", c.Request.URL.Path).Warn(notFound.Error())
		writeError(c, http.StatusNotFound, notFound.Error())
	case errors.As(err, &verr):
		logger.WithField("path", c.Request.URL.Path).Warn("validation failed: " + verr.Error())
		writeError(c, http.StatusBadRequest, verr.Error())
	case errors.As(err, &constraint):
		writeError(c, http.StatusBadRequest, constraint.Error())
	case errors.As(err, &invalidArg):
		writeError(c, http.StatusBadRequest, invalidArg.Error())
	case errors.As(err, &conflict):
		writeError(c, http.StatusConflict, conflict.Error())
	default:
		logger.WithError(err).WithField("path", c.Request.URL.Path).Error("unexpected error")
		writeError(c, http.StatusInternalServerError, "An unexpected error occurred")
	}
}

func writeError(c *gin.Context, status int, message string) {
	response.Error(c, status, http.StatusText(status), message)
}
