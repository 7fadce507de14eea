package service

import (
	"context"
	"errors"

	"bookhive/internal/http-api/dto"
	"bookhive/internal/http-api/repository"

	"gorm.io/gorm"
)

var ErrRelationNotFound = errors.New("relation not found")

type RelationService interface {
	Patch(ctx context.Context, userID string, bookID int64, in dto.UpdateRelationDTO) (*dto.RelationResponse, error)
	Get(ctx context.Context, userID string, bookID int64) (*dto.RelationResponse, error)
	Delete(ctx context.Context, userID string, bookID int64) error
}

type relationService struct {
	relationRepo repository.RelationRepository
	bookRepo     repository.BookRepository
}

func NewRelationService(relationRepo repository.RelationRepository, bookRepo repository.BookRepository) RelationService {
	return &relationService{
		relationRepo: relationRepo,
		bookRepo:     bookRepo,
	}
}

// Patch upserts the caller's relation row for a book, touching only the
// fields present in the request.
func (s *relationService) Patch(ctx context.Context, userID string, bookID int64, in dto.UpdateRelationDTO) (*dto.RelationResponse, error) {
	if _, err := s.bookRepo.GetByID(ctx, bookID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookNotFound
		}
		return nil, err
	}

	// An empty body has nothing to merge; return the stored state as-is and
	// only create the row when this is the first contact for the pair.
	if in.Empty() {
		rel, err := s.relationRepo.GetByUserAndBook(ctx, userID, bookID)
		if err == nil {
			resp := dto.FromModelToRelationResponse(rel)
			return &resp, nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	}

	rel, err := s.relationRepo.Upsert(ctx, userID, bookID, in.ToPatch())
	if err != nil {
		return nil, err
	}

	resp := dto.FromModelToRelationResponse(rel)
	return &resp, nil
}

// Get returns the caller's relation row for a book, if one exists.
func (s *relationService) Get(ctx context.Context, userID string, bookID int64) (*dto.RelationResponse, error) {
	if _, err := s.bookRepo.GetByID(ctx, bookID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookNotFound
		}
		return nil, err
	}

	rel, err := s.relationRepo.GetByUserAndBook(ctx, userID, bookID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRelationNotFound
		}
		return nil, err
	}

	resp := dto.FromModelToRelationResponse(rel)
	return &resp, nil
}

func (s *relationService) Delete(ctx context.Context, userID string, bookID int64) error {
	if err := s.relationRepo.Delete(ctx, userID, bookID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrRelationNotFound
		}
		return err
	}
	return nil
}
