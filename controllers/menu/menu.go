package menuControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/picklesmvr/mvr-v1/models"
)

// GET /api/menu
func GetMenu() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, models.Menu())
	}
}
