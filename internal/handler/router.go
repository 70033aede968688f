package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/avolkov/photovault/internal/middleware"
	"github.com/avolkov/photovault/internal/pkg/response"
)

type RouterDeps struct {
	Auth     *AuthHandler
	Photos   *PhotoHandler
	Gallery  *GalleryHandler
	Files    *FileHandler
	Resolver middleware.Resolver
}

func RegisterRoutes(api *gin.RouterGroup, deps RouterDeps) {
	api.GET("/healthz", func(c *gin.Context) {
		response.Success(c, gin.H{"message": "photovault is running"})
	})

	api.POST("/auth/register", deps.Auth.Register)
	api.POST("/auth/login", deps.Auth.Login)
	api.POST("/auth/logout", deps.Auth.Logout)

	api.GET("/files/*key", deps.Files.Get)

	authGroup := api.Group("")
	authGroup.Use(middleware.Auth(deps.Resolver))
	authGroup.POST("/photos", deps.Photos.Upload)
	authGroup.GET("/photos", deps.Photos.List)
	authGroup.GET("/photos/:filename", deps.Photos.Get)
	authGroup.GET("/gallery", deps.Gallery.Gallery)
}
