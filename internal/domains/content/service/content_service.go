package service

import (
	"context"
	"mime/multipart"

	"github.com/google/uuid"

	"nonprofit-cms-backend/internal/domains/content"
	"nonprofit-cms-backend/internal/infrastructure/storage"
	"nonprofit-cms-backend/internal/shared/uploads"
	"nonprofit-cms-backend/internal/shared/utils"
)

const mediaFolder = "content"

type contentService struct {
	repo  content.Repository
	media storage.MediaStore
}

func NewContentService(repo content.Repository, media storage.MediaStore) content.Service {
	return &contentService{repo: repo, media: media}
}

// Create runs the upload-coupled flow: validate, store attachments in
// order, persist, and compensate by deleting this request's uploads when
// persistence fails. Zero attached images is valid for content.
func (s *contentService) Create(ctx context.Context, req content.CreateRequest, files []*multipart.FileHeader) (*content.Content, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	subtopics, err := req.ParseSubtopics()
	if err != nil {
		return nil, err
	}

	status := req.Status
	if status == "" {
		status = content.StatusDraft
	}

	images, err := uploads.Collect(ctx, s.media, mediaFolder, files)
	if err != nil {
		return nil, err
	}

	doc := &content.Content{
		ID:        uuid.New(),
		Topic:     req.Topic,
		Subtopics: subtopics,
		Images:    images,
		CreatorID: req.CreatorID,
		Status:    status,
		// Timestamp suffix guarantees uniqueness across repeated topics.
		Slug: utils.GenerateUniqueSlug(req.Topic),
		Tags: req.ParseTags(),
	}

	if err := s.repo.Create(ctx, doc); err != nil {
		uploads.Rollback(s.media, images)
		return nil, err
	}

	return doc, nil
}

func (s *contentService) Get(ctx context.Context, idOrSlug string) (*content.Content, error) {
	return s.repo.FindAndIncrementViews(ctx, idOrSlug)
}

func (s *contentService) List(ctx context.Context, filter content.ListFilter) ([]content.Content, int64, error) {
	return s.repo.List(ctx, filter)
}

// Update patches fields and appends newly uploaded images. Pre-existing
// attachments are only removed through the explicit removal list, and their
// media objects are deleted best-effort after the row is saved — never
// before, and never as part of compensation.
func (s *contentService) Update(ctx context.Context, id uuid.UUID, req content.UpdateRequest, files []*multipart.FileHeader) (*content.Content, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	doc, err := s.repo.FindByIDOrSlug(ctx, id.String())
	if err != nil {
		return nil, err
	}

	if req.Topic != "" {
		doc.Topic = req.Topic
	}
	if req.Status != "" {
		doc.Status = req.Status
	}
	if req.Subtopics != "" {
		subtopics, err := req.ParseSubtopics()
		if err != nil {
			return nil, err
		}
		doc.Subtopics = subtopics
	}
	if req.Tags != "" {
		doc.Tags = req.ParseTags()
	}

	removed := req.ParseRemoveImages()
	if len(removed) > 0 {
		doc.Images = dropImages(doc.Images, removed)
	}

	newImages, err := uploads.Collect(ctx, s.media, mediaFolder, files)
	if err != nil {
		return nil, err
	}
	doc.Images = append(doc.Images, newImages...)

	if err := s.repo.Update(ctx, doc); err != nil {
		uploads.Rollback(s.media, newImages)
		return nil, err
	}

	uploads.Cleanup(s.media, removed)
	return doc, nil
}

// PatchCaptions updates captions keyed by storage id.
func (s *contentService) PatchCaptions(ctx context.Context, id uuid.UUID, patch content.CaptionPatch) (*content.Content, error) {
	if err := patch.Validate(); err != nil {
		return nil, err
	}

	doc, err := s.repo.FindByIDOrSlug(ctx, id.String())
	if err != nil {
		return nil, err
	}

	for i := range doc.Images {
		if caption, ok := patch.Captions[doc.Images[i].StorageID]; ok {
			doc.Images[i].Caption = caption
		}
	}

	if err := s.repo.Update(ctx, doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// Delete removes the document and then its media, in that order: the entity
// owns its images, but a media hiccup must not resurrect the row.
func (s *contentService) Delete(ctx context.Context, id uuid.UUID) error {
	doc, err := s.repo.FindByIDOrSlug(ctx, id.String())
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, doc.ID); err != nil {
		return err
	}

	uploads.Cleanup(s.media, uploads.StorageIDs(doc.Images))
	return nil
}

func (s *contentService) Stats(ctx context.Context) (*content.Stats, error) {
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
