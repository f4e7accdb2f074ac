package container

import (
	"context"
	"fmt"
	"time"

	"nonprofit-cms-backend/internal/config"
	"nonprofit-cms-backend/internal/infrastructure/database"
	"nonprofit-cms-backend/internal/infrastructure/storage"
	"nonprofit-cms-backend/pkg/jwt"
	"nonprofit-cms-backend/pkg/logger"

	"nonprofit-cms-backend/internal/domains/about"
	aboutHandler "nonprofit-cms-backend/internal/domains/about/handler"
	aboutRepo "nonprofit-cms-backend/internal/domains/about/repository"
	aboutService "nonprofit-cms-backend/internal/domains/about/service"
	"nonprofit-cms-backend/internal/domains/content"
	contentHandler "nonprofit-cms-backend/internal/domains/content/handler"
	contentRepo "nonprofit-cms-backend/internal/domains/content/repository"
	contentService "nonprofit-cms-backend/internal/domains/content/service"
	"nonprofit-cms-backend/internal/domains/gallery"
	galleryHandler "nonprofit-cms-backend/internal/domains/gallery/handler"
	galleryRepo "nonprofit-cms-backend/internal/domains/gallery/repository"
	galleryService "nonprofit-cms-backend/internal/domains/gallery/service"
	"nonprofit-cms-backend/internal/domains/program"
	programHandler "nonprofit-cms-backend/internal/domains/program/handler"
	programRepo "nonprofit-cms-backend/internal/domains/program/repository"
	programService "nonprofit-cms-backend/internal/domains/program/service"
	"nonprofit-cms-backend/internal/domains/project"
	projectHandler "nonprofit-cms-backend/internal/domains/project/handler"
	projectRepo "nonprofit-cms-backend/internal/domains/project/repository"
	projectService "nonprofit-cms-backend/internal/domains/project/service"
	"nonprofit-cms-backend/internal/domains/user"
	userHandler "nonprofit-cms-backend/internal/domains/user/handler"
	userRepo "nonprofit-cms-backend/internal/domains/user/repository"
	userService "nonprofit-cms-backend/internal/domains/user/service"
)

// Container holds the full dependency graph. Everything in it is a
// singleton, built once at startup in dependency order: config,
// infrastructure, repositories, services, handlers.
type Container struct {
	Config     *config.Config
	DB         *database.PostgresDB
	Media      storage.MediaStore
	JWTManager *jwt.Manager

	UserRepo    user.Repository
	ContentRepo content.Repository
	GalleryRepo gallery.Repository
	ProgramRepo program.Repository
	ProjectRepo project.Repository
	AboutRepo   about.Repository

	UserService    user.Service
	ContentService content.Service
	GalleryService gallery.Service
	ProgramService program.Service
	ProjectService project.Service
	AboutService   about.Service

	UserHandler    *userHandler.UserHandler
	ContentHandler *contentHandler.ContentHandler
	GalleryHandler *galleryHandler.GalleryHandler
	ProgramHandler *programHandler.ProgramHandler
	ProjectHandler *projectHandler.ProjectHandler
	AboutHandler   *aboutHandler.AboutHandler
}

func NewContainer() (*Container, error) {
	c := &Container{}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg
	logger.Info("config loaded", map[string]interface{}{"environment": cfg.App.Environment})

	db := database.NewPostgresDB(&cfg.Database)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := db.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := db.HealthCheck(context.Background()); err != nil {
		return nil, fmt.Errorf("database health check failed: %w", err)
	}
	c.DB = db
	logger.Info("database connected", nil)

	processor := storage.NewImageProcessor(cfg.Upload.MaxFileSize)
	media, err := storage.NewMinIOStorage(cfg.MinIO, processor)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize media storage: %w", err)
	}
	c.Media = media
	logger.Info("media storage ready", map[string]interface{}{"bucket": cfg.MinIO.Bucket})

	c.JWTManager = jwt.NewManager(cfg.JWT.Secret)

	c.UserRepo = userRepo.NewRepository(db.Pool)
	c.ContentRepo = contentRepo.NewRepository(db.Pool)
	c.GalleryRepo = galleryRepo.NewRepository(db.Pool)
	c.ProgramRepo = programRepo.NewRepository(db.Pool)
	c.ProjectRepo = projectRepo.NewRepository(db.Pool)
	c.AboutRepo = aboutRepo.NewRepository(db.Pool)

	c.UserService = userService.NewUserService(c.UserRepo, c.Media, c.JWTManager)
	c.ContentService = contentService.NewContentService(c.ContentRepo, c.Media)
	c.GalleryService = galleryService.NewGalleryService(c.GalleryRepo, c.Media)
	c.ProgramService = programService.NewProgramService(c.ProgramRepo, c.Media)
	c.ProjectService = projectService.NewProjectService(c.ProjectRepo, c.Media)
	c.AboutService = aboutService.NewAboutService(c.AboutRepo)

	maxFiles := cfg.Upload.MaxFileCount
	c.UserHandler = userHandler.NewUserHandler(c.UserService)
	c.ContentHandler = contentHandler.NewContentHandler(c.ContentService, maxFiles)
	c.GalleryHandler = galleryHandler.NewGalleryHandler(c.GalleryService, maxFiles)
	c.ProgramHandler = programHandler.NewProgramHandler(c.ProgramService, maxFiles)
	c.ProjectHandler = projectHandler.NewProjectHandler(c.ProjectService, maxFiles)
	c.AboutHandler = aboutHandler.NewAboutHandler(c.AboutService)

	return c, nil
}

// Cleanup releases infrastructure resources; call on shutdown.
func (c *Container) Cleanup() {
	if c.DB != nil {
		c.DB.Close()
		logger.Info("database connection closed", nil)
	}
}
