package apierror

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/nvbf/tournament-tracker/pkg/league"
	tournaments "github.com/nvbf/tournament-tracker/repos/tournaments"
)

// ValidID reports whether id looks like an identifier this service hands out.
func ValidID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

// TournamentID reads the :id path parameter. Malformed ids answer 404 and
// abort the request.
func TournamentID(c *gin.Context) (string, bool) {
	id := c.Param("id")
	if !ValidID(id) {
		Abort(c, http.StatusNotFound, "tournament not found")
		return "", false
	}
	return id, true
}

// Abort writes an error response and stops the handler chain.
func Abort(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
	c.Abort()
}

// Respond maps err onto a status code. Unexpected errors are logged and
// reported without detail.
func Respond(c *gin.Context, logger *logrus.Logger, err error) {
	switch {
	case league.IsValidation(err):
		Abort(c, http.StatusBadRequest, err.Error())
	case league.IsNotFound(err):
		Abort(c, http.StatusNotFound, err.Error())
	case errors.Is(err, tournaments.ErrNotFound):
		Abort(c, http.StatusNotFound, "tournament not found")
	default:
		logger.WithError(err).WithFields(logrus.Fields{
			"method": c.Request.Method,
			"path":   c.FullPath(),
		}).Error("request failed")
		Abort(c, http.StatusInternalServerError, "something went wrong")
	}
}
