package service

import (
	"context"
	"mime/multipart"

	"github.com/google/uuid"

	"nonprofit-cms-backend/internal/domains/gallery"
	"nonprofit-cms-backend/internal/infrastructure/storage"
	"nonprofit-cms-backend/internal/shared/uploads"
)

const mediaFolder = "gallery"

type galleryService struct {
	repo  gallery.Repository
	media storage.MediaStore
}

func NewGalleryService(repo gallery.Repository, media storage.MediaStore) gallery.Service {
	return &galleryService{repo: repo, media: media}
}

// Create requires at least one image — a gallery entry without a photo is
// meaningless. The check runs before any upload so nothing needs cleanup.
func (s *galleryService) Create(ctx context.Context, req gallery.CreateRequest, files []*multipart.FileHeader) (*gallery.Item, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	if len(files) == 0 {
		return nil, gallery.ErrNoImages
	}

	images, err := uploads.Collect(ctx, s.media, mediaFolder, files)
	if err != nil {
		return nil, err
	}

	item := &gallery.Item{
		ID:           uuid.New(),
		Title:        req.Title,
		Description:  req.Description,
		Category:     req.Category,
		Event:        req.Event,
		Location:     req.Location,
		Photographer: req.Photographer,
		Images:       images,
		Tags:         req.ParseTags(),
	}

	if err := s.repo.Create(ctx, item); err != nil {
		uploads.Rollback(s.media, images)
		return nil, err
	}

	return item, nil
}

func (s *galleryService) Get(ctx context.Context, id uuid.UUID) (*gallery.Item, error) {
	return s.repo.FindAndIncrementViews(ctx, id)
}

func (s *galleryService) Like(ctx context.Context, id uuid.UUID) (*gallery.Item, error) {
	return s.repo.IncrementLikes(ctx, id)
}

func (s *galleryService) List(ctx context.Context, filter gallery.ListFilter) ([]gallery.Item, int64, error) {
	return s.repo.List(ctx, filter)
}

func (s *galleryService) Update(ctx context.Context, id uuid.UUID, req gallery.UpdateRequest, files []*multipart.FileHeader) (*gallery.Item, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	item, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title != "" {
		item.Title = req.Title
	}
	if req.Description != "" {
		item.Description = req.Description
	}
	if req.Category != "" {
		item.Category = req.Category
	}
	if req.Event != "" {
		item.Event = req.Event
	}
	if req.Location != "" {
		item.Location = req.Location
	}
	if req.Photographer != "" {
		item.Photographer = req.Photographer
	}
	if req.Tags != "" {
		item.Tags = req.ParseTags()
	}

	removed := req.ParseRemoveImages()
	kept := item.Images
	if len(removed) > 0 {
		kept = filterImages(item.Images, removed)
	}

	newImages, err := uploads.Collect(ctx, s.media, mediaFolder, files)
	if err != nil {
		return nil, err
	}

	// The at-least-one-image rule holds across updates, too.
	if len(kept)+len(newImages) == 0 {
		uploads.Rollback(s.media, newImages)
		return nil, gallery.ErrLastImageGone
	}

	item.Images = append(kept, newImages...)

	if err := s.repo.Update(ctx, item); err != nil {
		uploads.Rollback(s.media, newImages)
		return nil, err
	}

	uploads.Cleanup(s.media, removed)
	return item, nil
}

func (s *galleryService) Delete(ctx context.Context, id uuid.UUID) error {
	item, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	uploads.Cleanup(s.media, uploads.StorageIDs(item.Images))
	return nil
}

func (s *galleryService) Stats(ctx context.Context) (*gallery.Stats, error) {
	return s.repo.Stats(ctx)
}

func filterImages(images []uploads.Image, removeIDs []string) []uploads.Image {
	removeSet := make(map[string]struct{}, len(removeIDs))
	for _, id := range removeIDs {
		removeSet[id] = struct{}{}
	}

	var kept []uploads.Image
	for _, img := range images {
		if _, gone := removeSet[img.StorageID]; !gone {
			kept = append(kept, img)
		}
	}
	return kept
}
