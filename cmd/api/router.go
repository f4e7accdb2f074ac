package main

import (
	"context"
	"errors"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"nonprofit-cms-backend/internal/domains/user"
	"nonprofit-cms-backend/internal/shared/middleware"
	"nonprofit-cms-backend/internal/shared/response"
	"nonprofit-cms-backend/pkg/container"
)

// SetupRouter wires every route under /api. Write endpoints sit behind the
// auth gate; public reads stay open so the marketing site needs no token.
func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(),
		middleware.Timeout(15*time.Second),
	)

	// The middleware re-resolves the token's subject so a deleted user's
	// still-valid token stops working immediately.
	resolveIdentity := func(ctx context.Context, id uuid.UUID) error {
		if err := c.UserService.Exists(ctx, id); err != nil {
			if errors.Is(err, user.ErrNotFound) {
				return middleware.ErrUserNotFound
			}
			return err
		}
		return nil
	}
	authRequired := middleware.AuthMiddleware(c.JWTManager, resolveIdentity)
	authOptional := middleware.OptionalAuth(c.JWTManager)

	api := router.Group("/api")
	{
		api.GET("/health", healthHandler(c))

		setupAuthRoutes(api, c, authRequired)
		setupContentRoutes(api, c, authRequired, authOptional)
		setupGalleryRoutes(api, c, authRequired)
		setupProgramRoutes(api, c, authRequired)
		setupProjectRoutes(api, c, authRequired)
		setupAboutRoutes(api, c, authRequired)

		admin := api.Group("/admin")
		admin.Use(authRequired)
		{
			admin.GET("/export", exportStatsHandler(c))
		}
	}

	return router
}

func setupAuthRoutes(api *gin.RouterGroup, c *container.Container, authRequired gin.HandlerFunc) {
	auth := api.Group("/auth")
	{
		auth.POST("/register", c.UserHandler.Register)
		auth.POST("/login", c.UserHandler.Login)

		protected := auth.Group("")
		protected.Use(authRequired)
		{
			protected.GET("/profile", c.UserHandler.GetProfile)
			protected.PUT("/profile", c.UserHandler.UpdateProfile)
			protected.PUT("/change-password", c.UserHandler.ChangePassword)
		}
	}
}

func setupContentRoutes(api *gin.RouterGroup, c *container.Container, authRequired, authOptional gin.HandlerFunc) {
	contents := api.Group("/content")
	{
		contents.GET("", c.ContentHandler.List)
		contents.GET("/stats", c.ContentHandler.Stats)
		contents.GET("/:id", c.ContentHandler.Get)

		// Creation may run anonymously; with a token the creator is recorded.
		contents.POST("/create", authOptional, c.ContentHandler.Create)

		protected := contents.Group("")
		protected.Use(authRequired)
		{
			protected.PUT("/:id", c.ContentHandler.Update)
			protected.PATCH("/:id/captions", c.ContentHandler.PatchCaptions)
			protected.DELETE("/:id", c.ContentHandler.Delete)
		}
	}
}

func setupGalleryRoutes(api *gin.RouterGroup, c *container.Container, authRequired gin.HandlerFunc) {
	gallery := api.Group("/gallery")
	{
		gallery.GET("", c.GalleryHandler.List)
		gallery.GET("/stats", c.GalleryHandler.Stats)
		gallery.GET("/:id", c.GalleryHandler.Get)
		gallery.POST("/:id/like", c.GalleryHandler.Like)

		protected := gallery.Group("")
		protected.Use(authRequired)
		{
			protected.POST("/create", c.GalleryHandler.Create)
			protected.PUT("/:id", c.GalleryHandler.Update)
			protected.DELETE("/:id", c.GalleryHandler.Delete)
		}
	}
}

func setupProgramRoutes(api *gin.RouterGroup, c *container.Container, authRequired gin.HandlerFunc) {
	programs := api.Group("/programs")
	{
		programs.GET("", c.ProgramHandler.List)
		programs.GET("/stats", c.ProgramHandler.Stats)
		programs.GET("/:id", c.ProgramHandler.Get)

		protected := programs.Group("")
		protected.Use(authRequired)
		{
			protected.POST("/create", c.ProgramHandler.Create)
			protected.PUT("/:id", c.ProgramHandler.Update)
			protected.DELETE("/:id", c.ProgramHandler.Delete)
		}
	}
}

func setupProjectRoutes(api *gin.RouterGroup, c *container.Container, authRequired gin.HandlerFunc) {
	projects := api.Group("/projects")
	{
		projects.GET("", c.ProjectHandler.List)
		projects.GET("/stats", c.ProjectHandler.Stats)
		projects.GET("/:id", c.ProjectHandler.Get)

		protected := projects.Group("")
		protected.Use(authRequired)
		{
			protected.POST("/create", c.ProjectHandler.Create)
			protected.PUT("/:id", c.ProjectHandler.Update)
			protected.PATCH("/:id/toggle-status", c.ProjectHandler.ToggleStatus)
			protected.DELETE("/:id/images/*storageId", c.ProjectHandler.RemoveImage)
			protected.DELETE("/:id", c.ProjectHandler.Delete)
		}
	}
}

func setupAboutRoutes(api *gin.RouterGroup, c *container.Container, authRequired gin.HandlerFunc) {
	about := api.Group("/about")
	{
		about.GET("", c.AboutHandler.List)
		about.GET("/active", c.AboutHandler.GetActive)
		about.GET("/:id", c.AboutHandler.Get)

		protected := about.Group("")
		protected.Use(authRequired)
		{
			protected.POST("/create", c.AboutHandler.Create)
			protected.PUT("/:id", c.AboutHandler.Update)
			protected.POST("/:id/activate", c.AboutHandler.Activate)
			protected.DELETE("/:id", c.AboutHandler.Delete)
			protected.GET("/admin/stats", c.AboutHandler.Stats)
		}
	}
}

func healthHandler(c *container.Container) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		checkCtx, cancel := context.WithTimeout(ctx.Request.Context(), 2*time.Second)
		defer cancel()

		if err := c.DB.HealthCheck(checkCtx); err != nil {
			response.Error(ctx, 503, "Service unavailable")
			return
		}
		response.Success(ctx, 200, "Server is running", nil)
	}
}
