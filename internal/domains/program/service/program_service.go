package service

import (
	"context"
	"mime/multipart"

	"github.com/google/uuid"

	"nonprofit-cms-backend/internal/domains/program"
	"nonprofit-cms-backend/internal/infrastructure/storage"
	"nonprofit-cms-backend/internal/shared/uploads"
	"nonprofit-cms-backend/internal/shared/utils"
)

const mediaFolder = "programs"

type programService struct {
	repo  program.Repository
	media storage.MediaStore
}

func NewProgramService(repo program.Repository, media storage.MediaStore) program.Service {
	return &programService{repo: repo, media: media}
}

func (s *programService) Create(ctx context.Context, req program.CreateRequest, files []*multipart.FileHeader) (*program.Program, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	status := req.Status
	if status == "" {
		status = program.StatusActive
	}

	images, err := uploads.Collect(ctx, s.media, mediaFolder, files)
	if err != nil {
		return nil, err
	}

	p := &program.Program{
		ID:          uuid.New(),
		Title:       req.Title,
		Description: req.Description,
		ProgramType: req.ProgramType,
		Images:      images,
		Features:    req.ParseFeatures(),
		Status:      status,
		// No uniqueness suffix: a colliding title fails the unique
		// constraint and surfaces as a validation error.
		Slug: utils.GenerateSlug(req.Title),
	}

	if err := s.repo.Create(ctx, p); err != nil {
		uploads.Rollback(s.media, images)
		return nil, err
	}

	return p, nil
}

func (s *programService) Get(ctx context.Context, idOrSlug string) (*program.Program, error) {
	return s.repo.FindByIDOrSlug(ctx, idOrSlug)
}

func (s *programService) List(ctx context.Context, filter program.ListFilter) ([]program.Program, int64, error) {
	return s.repo.List(ctx, filter)
}

func (s *programService) Update(ctx context.Context, id uuid.UUID, req program.UpdateRequest, files []*multipart.FileHeader) (*program.Program, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	p, err := s.repo.FindByIDOrSlug(ctx, id.String())
	if err != nil {
		return nil, err
	}

	if req.Title != "" {
		p.Title = req.Title
		// Slug follows the title, unlike content's immutable slug.
		p.Slug = utils.GenerateSlug(req.Title)
	}
	if req.Description != "" {
		p.Description = req.Description
	}
	if req.ProgramType != "" {
		p.ProgramType = req.ProgramType
	}
	if req.Status != "" {
		p.Status = req.Status
	}
	if req.Features != "" {
		p.Features = req.ParseFeatures()
	}

	removed := req.ParseRemoveImages()
	if len(removed) > 0 {
		p.Images = dropImages(p.Images, removed)
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

	uploads.Cleanup(s.media, removed)
	return p, nil
}

func (s *programService) Delete(ctx context.Context, id uuid.UUID) error {
	p, err := s.repo.FindByIDOrSlug(ctx, id.String())
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, p.ID); err != nil {
		return err
	}

	uploads.Cleanup(s.media, uploads.StorageIDs(p.Images))
	return nil
}

func (s *programService) Stats(ctx context.Context) (*program.Stats, error) {
	return s.repo.Stats(ctx)
}

func dropImages(images []uploads.Image, removeIDs []string) []uploads.Image {
	removeSet := make(map[string]struct{}, len(removeIDs))
	for _, id := range removeIDs {
		removeSet[id] = struct{}{}
	}

	kept := images[:0]
	for _, img := range images {
		if _, gone := removeSet[img.StorageID]; !gone {
			kept = append(kept, img)
		}
	}
	return kept
}
