package dto

import (
	"testing"

	"bookhive/internal/http-api/models"

	"github.com/stretchr/testify/assert"
)

func TestFormatPrice(t *testing.T) {
	tests := []struct {
		name  string
		price float64
		want  string
	}{
		{"TrailingZeroKept", 50.1, "50.10"},
		{"TwoDigits", 110.12, "110.12"},
		{"WholeNumber", 50, "50.00"},
		{"Zero", 0, "0.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatPrice(tt.price))
		})
	}
}

func TestFromModelToBookResponse(t *testing.T) {
	owner := "3f1c9c1e-0000-0000-0000-000000000001"
	book := models.Book{
		ID:      1,
		Name:    "Test book 1",
		Price:   50.1,
		Author:  "Author_1",
		OwnerID: &owner,
	}

	resp := FromModelToBookResponse(book, 3, 3)

	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, "Test book 1", resp.Name)
	assert.Equal(t, "50.10", resp.Price)
	assert.Equal(t, "Author_1", resp.Author)
	assert.Equal(t, &owner, resp.OwnerID)
	assert.Equal(t, int64(3), resp.LikeCount)
	assert.Equal(t, int64(3), resp.AnnotatedLikes)
}

func TestFromModelToBookResponse_NoOwner(t *testing.T) {
	resp := FromModelToBookResponse(models.Book{ID: 2, Name: "Orphan", Price: 9.9, Author: "A"}, 0, 0)

	assert.Nil(t, resp.OwnerID)
	assert.Equal(t, "9.90", resp.Price)
}

func TestCreateBookDTO_ApplyTo(t *testing.T) {
	price := 25.5
	in := CreateBookDTO{Name: "New name", Price: &price, Author: "New author"}

	owner := "u1"
	book := models.Book{ID: 10, Name: "Old", Price: 50, Author: "Old author", OwnerID: &owner}
	in.ApplyTo(&book)

	assert.Equal(t, "New name", book.Name)
	assert.Equal(t, 25.5, book.Price)
	assert.Equal(t, "New author", book.Author)
	// the owner never changes through the update body
	assert.Equal(t, &owner, book.OwnerID)
	assert.Equal(t, int64(10), book.ID)
}
