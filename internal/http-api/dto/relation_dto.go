package dto

import (
	"time"

	"bookhive/internal/http-api/models"
)

// UpdateRelationDTO used for PATCH /api/book-relation/:book_id. Every field is
// optional; only the fields present in the body are applied to the row.
type UpdateRelationDTO struct {
	Like        *bool `json:"like"`
	InBookmarks *bool `json:"in_bookmarks"`
	Rate        *int  `json:"rate" binding:"omitempty,min=1,max=5"`
}

// Empty reports whether the body carried no recognized field at all.
func (d UpdateRelationDTO) Empty() bool {
	return d.Like == nil && d.InBookmarks == nil && d.Rate == nil
}

func (d UpdateRelationDTO) ToPatch() models.RelationPatch {
	return models.RelationPatch{
		Like:        d.Like,
		InBookmarks: d.InBookmarks,
		Rate:        d.Rate,
	}
}

// RelationResponse for returning the caller's relation state for a book.
// rate_display is presentation only and derived from rate.
type RelationResponse struct {
	BookID      int64     `json:"book_id"`
	Like        bool      `json:"like"`
	InBookmarks bool      `json:"in_bookmarks"`
	Rate        *int      `json:"rate,omitempty"`
	RateDisplay string    `json:"rate_display,omitempty"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func FromModelToRelationResponse(rel *models.UserBookRelation) RelationResponse {
	resp := RelationResponse{
		BookID:      rel.BookID,
		Like:        rel.Like,
		InBookmarks: rel.InBookmarks,
		Rate:        rel.Rate,
		UpdatedAt:   rel.UpdatedAt,
	}
	if rel.Rate != nil {
		resp.RateDisplay = models.RateLabel(*rel.Rate)
	}
	return resp
}
