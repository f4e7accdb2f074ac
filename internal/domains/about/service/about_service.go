package service

import (
	"context"

	"github.com/google/uuid"

	"nonprofit-cms-backend/internal/domains/about"
)

type aboutService struct {
	repo about.Repository
}

func NewAboutService(repo about.Repository) about.Service {
	return &aboutService{repo: repo}
}

// Create stores a new inactive version; it only becomes visible on the
// public site once activated.
func (s *aboutService) Create(ctx context.Context, req about.CreateRequest, updatedBy *uuid.UUID) (*about.Document, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	doc := &about.Document{
		ID:            uuid.New(),
		Hero:          req.Hero,
		Vision:        req.Vision,
		Mission:       req.Mission,
		Objectives:    req.Objectives,
		History:       req.History,
		Timeline:      req.Timeline,
		CTA:           req.CTA,
		Version:       req.Version,
		IsActive:      false,
		LastUpdatedBy: updatedBy,
	}

	if err := s.repo.Create(ctx, doc); err != nil {
		return nil, err
	}
	return doc, nil
}

func (s *aboutService) Get(ctx context.Context, id uuid.UUID) (*about.Document, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *aboutService) GetActive(ctx context.Context) (*about.Document, error) {
	return s.repo.FindActive(ctx)
}

func (s *aboutService) List(ctx context.Context, filter about.ListFilter) ([]about.Document, int64, error) {
	return s.repo.List(ctx, filter)
}

func (s *aboutService) Update(ctx context.Context, id uuid.UUID, req about.UpdateRequest, updatedBy *uuid.UUID) (*about.Document, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	doc, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Hero != nil {
		doc.Hero = *req.Hero
	}
	if req.Vision != nil {
		doc.Vision = *req.Vision
	}
	if req.Mission != nil {
		doc.Mission = *req.Mission
	}
	if req.Objectives != nil {
		doc.Objectives = *req.Objectives
	}
	if req.History != nil {
		doc.History = *req.History
	}
	if req.Timeline != nil {
		doc.Timeline = *req.Timeline
	}
	if req.CTA != nil {
		doc.CTA = *req.CTA
	}
	if req.Version != nil {
		doc.Version = *req.Version
	}
	doc.LastUpdatedBy = updatedBy

	if err := s.repo.Update(ctx, doc); err != nil {
		return nil, err
	}
	return doc, nil
}

func (s *aboutService) Activate(ctx context.Context, id uuid.UUID) (*about.Document, error) {
	return s.repo.Activate(ctx, id)
}

func (s *aboutService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

func (s *aboutService) Stats(ctx context.Context) (*about.Stats, error) {
	return s.repo.Stats(ctx)
}
