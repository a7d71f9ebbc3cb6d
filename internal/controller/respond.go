package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"mindcare-backend/internal/apperror"
)

// respondError maps the error taxonomy onto HTTP statuses. NotFound and
// MalformedSubmission reach the client with the entity kind and id;
// storage failures surface as a generic 500.
func respondError(c *gin.Context, err error) {
	if ae, ok := apperror.As(err); ok {
		if ae.Kind == apperror.KindStorageFailure {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal storage error"})
			return
		}
		c.JSON(ae.StatusCode(), gin.H{"error": ae.Error()})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}
