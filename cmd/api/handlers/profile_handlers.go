package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"social-gateway/cmd/api/dto"
	"social-gateway/cmd/api/services"
	"social-gateway/cmd/api/trace"
	"social-gateway/cmd/internal/logger"
)

const (
	ErrMsgUserNotFound    = "User not found"
	ErrMsgProfileUpstream = "Failed to fetch Twitter profile"
)

// GetSocialProfileHandler godoc
// @Summary      Twitter 프로필 조회
// @Description  username 으로 Twitter API 를 조회해 username, name, avatar_url, description 만 반환합니다.
// @Tags         social
// @Param        username  path  string  true  "Twitter username"
// @Produce      json
// @Success      200  {object}  dto.ProfileDTO
// @Failure      404  {object}  dto.ErrorResponseDTO
// @Failure      500  {object}  dto.ErrorResponseDTO
// @Router       /social/profile/{username} [get]
func GetSocialProfileHandler(svc *services.ProfileService) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		username := c.Param("username")

		profile, err := svc.GetProfile(ctx, username)
		if err != nil {
			fields := logger.Fields{
				"username":   username,
				"request_id": trace.RequestIDFromContext(ctx),
				"error":      err.Error(),
			}
			if errors.Is(err, services.ErrProfileNotFound) {
				logger.InfoWithFields("twitter profile not found", fields)
				c.JSON(http.StatusNotFound, dto.ErrorResponseDTO{Error: ErrMsgUserNotFound})
				return
			}
			// 원인 에러는 로그에만 남기고 응답에는 고정 메시지만 내려준다.
			logger.ErrorWithFields("failed to fetch twitter profile", fields)
			c.JSON(http.StatusInternalServerError, dto.ErrorResponseDTO{Error: ErrMsgProfileUpstream})
			return
		}

		c.JSON(http.StatusOK, dto.ProfileDTO{
			Username:    profile.Username,
			Name:        profile.Name,
			AvatarURL:   profile.AvatarURL,
			Description: profile.Description,
		})
	}
}
