package service

import (
	"context"
	"mime/multipart"

	"github.com/google/uuid"

	"nonprofit-cms-backend/internal/domains/project"
	"nonprofit-cms-backend/internal/infrastructure/storage"
	"nonprofit-cms-backend/internal/shared/uploads"
)

const mediaFolder = "projects"

type projectService struct {
	repo  project.Repository
	media storage.MediaStore
}

func NewProjectService(repo project.Repository, media storage.MediaStore) project.Service {
	return &projectService{repo: repo, media: media}
}

func (s *projectService) Create(ctx context.Context, req project.CreateRequest, files []*multipart.FileHeader) (*project.Project, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	images, err := uploads.Collect(ctx, s.media, mediaFolder, files)
	if err != nil {
		return nil, err
	}

	order := 0
	if req.Order != nil {
		order = *req.Order
	}

	p := &project.Project{
		ID:          uuid.New(),
		Title:       req.Title,
		Goal:        req.Goal,
		Icon:        req.Icon,
		Description: req.ParseDescription(),
		Gradient:    req.Gradient,
		Images:      images,
		IsActive:    true,
		Order:       order,
	}

	if err := s.repo.Create(ctx, p); err != nil {
		uploads.Rollback(s.media, images)
		return nil, err
	}

	return p, nil
}

func (s *projectService) Get(ctx context.Context, id uuid.UUID) (*project.Project, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *projectService) List(ctx context.Context, filter project.ListFilter) ([]project.Project, int64, error) {
	return s.repo.List(ctx, filter)
}

// Update appends new images after the existing ones; removal goes through
// RemoveImage, one image at a time.
func (s *projectService) Update(ctx context.Context, id uuid.UUID, req project.UpdateRequest, files []*multipart.FileHeader) (*project.Project, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title != "" {
		p.Title = req.Title
	}
	if req.Goal != "" {
		p.Goal = req.Goal
	}
	if req.Icon != "" {
		p.Icon = req.Icon
	}
	if req.Description != "" {
		p.Description = req.ParseDescription()
	}
	if req.Gradient != "" {
		p.Gradient = req.Gradient
	}
	if req.Order != nil {
		p.Order = *req.Order
	}

	newImages, err := uploads.Collect(ctx, s.media, mediaFolder, files)
	if err != nil {
		return nil, err
	}
	p.Images = append(p.Images, newImages...)

	if err := s.repo.Update(ctx, p); err != nil {
		uploads.Rollback(s.media, newImages)
		return nil, err
	}

	return p, nil
}

// RemoveImage detaches one image from the project and deletes it from the
// media store only after the row is saved without it.
func (s *projectService) RemoveImage(ctx context.Context, id uuid.UUID, storageID string) (*project.Project, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	kept := make([]uploads.Image, 0, len(p.Images))
	found := false
	for _, img := range p.Images {
		if img.StorageID == storageID {
			found = true
			continue
		}
		kept = append(kept, img)
	}
	if !found {
		return nil, project.ErrImageNotFound
	}

	p.Images = kept
	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}

	uploads.Cleanup(s.media, []string{storageID})
	return p, nil
}

func (s *projectService) ToggleStatus(ctx context.Context, id uuid.UUID) (*project.Project, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	p.IsActive = !p.IsActive
	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *projectService) Delete(ctx context.Context, id uuid.UUID) error {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	uploads.Cleanup(s.media, uploads.StorageIDs(p.Images))
	return nil
}

func (s *projectService) Stats(ctx context.Context) (*project.Stats, error) {
	return s.repo.Stats(ctx)
}
