package dto

import (
	"strconv"

	"bookhive/internal/http-api/models"
)

// BookListQuery carries the filter/search/order parameters for the book list
// endpoint. All fields are optional and combine freely.
type BookListQuery struct {
	Price    *float64 // exact match on price
	Search   string   // case-insensitive substring over name OR author
	Ordering string   // column name, leading '-' for descending
}

// CreateBookDTO used for POST /api/book and PUT /api/book/:id. The owner is
// never part of the body, it comes from the authenticated caller.
type CreateBookDTO struct {
	Name   string   `json:"name" binding:"required,max=250"`
	Price  *float64 `json:"price" binding:"required,gt=0"`
	Author string   `json:"author" binding:"required,max=250"`
}

func (d CreateBookDTO) ToModel() models.Book {
	return models.Book{
		Name:   d.Name,
		Price:  *d.Price,
		Author: d.Author,
	}
}

func (d CreateBookDTO) ApplyTo(b *models.Book) {
	b.Name = d.Name
	b.Price = *d.Price
	b.Author = d.Author
}

// BookResponse DTO for responses. like_count is recomputed per book,
// annotated_likes comes from the list query aggregate; the two always agree
// within one request.
type BookResponse struct {
	ID             int64   `json:"id"`
	Name           string  `json:"name"`
	Price          string  `json:"price"`
	Author         string  `json:"author"`
	OwnerID        *string `json:"owner_id,omitempty"`
	LikeCount      int64   `json:"like_count"`
	AnnotatedLikes int64   `json:"annotated_likes"`
}

func FromModelToBookResponse(b models.Book, annotatedLikes, likeCount int64) BookResponse {
	return BookResponse{
		ID:             b.ID,
		Name:           b.Name,
		Price:          FormatPrice(b.Price),
		Author:         b.Author,
		OwnerID:        b.OwnerID,
		LikeCount:      likeCount,
		AnnotatedLikes: annotatedLikes,
	}
}

// FormatPrice renders a price with exactly two fractional digits, "50.10"
// rather than "50.1".
func FormatPrice(price float64) string {
	return strconv.FormatFloat(price, 'f', 2, 64)
}
