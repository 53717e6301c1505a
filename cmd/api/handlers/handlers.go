package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"social-gateway/cmd/api/dto"
)

// HealthHandler godoc
// @Summary      Health check
// @Description  Always returns ok. Does not call the external API.
// @Tags         health
// @Produce      json
// @Success      200  {object}  dto.StatusResponseDTO
// @Router       /health [get]
func HealthHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, dto.StatusResponseDTO{Status: "ok"})
	}
}
