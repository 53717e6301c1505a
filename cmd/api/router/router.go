package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/cors"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"social-gateway/cmd/api/clients/twitterclient"
	"social-gateway/cmd/api/handlers"
	"social-gateway/cmd/api/middleware"
	"social-gateway/cmd/api/services"
	"social-gateway/config"
	_ "social-gateway/docs"
)

// New 는 설정 값으로 외부 API 클라이언트와 서비스를 구성하고 라우트를 등록한다.
func New(cfg *config.AppConfig) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestTrace(), middleware.RequestLogging(), middleware.Recovery())

	// Health check (외부 API 를 호출하지 않는다)
	r.GET("/", handlers.HealthHandler())
	r.GET("/health", handlers.HealthHandler())

	// Swagger
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api")
	{
		twitterClient := twitterclient.New(twitterclient.Options{
			BaseURL:     cfg.Twitter.BaseURL,
			BearerToken: cfg.Twitter.BearerToken,
			Timeout:     cfg.Twitter.Timeout,
		})
		profileSvc := services.NewProfileService(twitterClient, services.ProfileOptions{
			UserFields: cfg.Twitter.UserFields,
			Avatar: services.AvatarPolicy{
				StripSuffix: cfg.Twitter.Avatar.StripSuffix,
				Suffix:      cfg.Twitter.Avatar.Suffix,
			},
		})

		api.GET("/health", handlers.HealthHandler())
		api.GET("/social/profile/:username", handlers.GetSocialProfileHandler(profileSvc))
	}

	return r
}

// NewHandler 는 New 로 만든 엔진을 CORS 핸들러로 감싼다.
func NewHandler(cfg *config.AppConfig) http.Handler {
	c := cors.New(cors.Options{
		AllowedOrigins: cfg.Server.CORSAllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders: []string{"*"},
		ExposedHeaders: []string{"X-Request-Id", "X-Span-Id"},
	})
	return c.Handler(New(cfg))
}
