package repository

import (
	"context"
	"errors"
	"fmt"

	"bookhive/internal/http-api/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type RelationRepository interface {
	GetByUserAndBook(ctx context.Context, userID string, bookID int64) (*models.UserBookRelation, error)
	Upsert(ctx context.Context, userID string, bookID int64, patch models.RelationPatch) (*models.UserBookRelation, error)
	Delete(ctx context.Context, userID string, bookID int64) error
}

type relationRepository struct {
	db *gorm.DB
}

func NewRelationRepository(db *gorm.DB) RelationRepository {
	return &relationRepository{db: db}
}

func (r *relationRepository) GetByUserAndBook(ctx context.Context, userID string, bookID int64) (*models.UserBookRelation, error) {
	var rel models.UserBookRelation
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND book_id = ?", userID, bookID).
		First(&rel).Error
	if err != nil {
		return nil, err
	}
	return &rel, nil
}

// Upsert locates or creates the unique (user, book) row and merges only the
// fields present in the patch, inside one transaction. Fields absent from the
// patch keep their stored values; on first contact the row starts from
// defaults.
func (r *relationRepository) Upsert(ctx context.Context, userID string, bookID int64, patch models.RelationPatch) (*models.UserBookRelation, error) {
	var rel models.UserBookRelation

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Row lock so concurrent patches merge onto the latest committed
		// state instead of clobbering each other's fields.
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("user_id = ? AND book_id = ?", userID, bookID).First(&rel).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			rel = models.UserBookRelation{UserID: userID, BookID: bookID}
		} else if err != nil {
			return err
		}

		patch.Apply(&rel)
		return tx.Save(&rel).Error
	})
	if err != nil {
		return nil, fmt.Errorf("upsert relation: %w", err)
	}
	return &rel, nil
}

func (r *relationRepository) Delete(ctx context.Context, userID string, bookID int64) error {
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND book_id = ?", userID, bookID).
		Delete(&models.UserBookRelation{})
	if result.Error != nil {
		return fmt.Errorf("delete relation: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
