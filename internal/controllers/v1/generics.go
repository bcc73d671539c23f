package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/pennyflow/backend/internal/httputil"
	"github.com/pennyflow/backend/internal/models"
)

// getModelByID parses the id URI parameter and loads the resource it
// references.
func getModelByID[T models.Account | models.Category | models.Goal | models.Transaction](c *gin.Context) (T, error) {
	var resource T

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return resource, httputil.ErrInvalidUUID
	}

	err = models.DB.First(&resource, "id = ?", id).Error
	return resource, err
}

// deleteResource deletes the resource identified by the id URI
// parameter.
func deleteResource[T models.Account | models.Goal | models.Transaction](c *gin.Context) {
	resource, err := getModelByID[T](c)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.Delete(&resource).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, gin.H{})
}
