package dto

import (
	"testing"

	"bookhive/internal/http-api/models"

	"github.com/stretchr/testify/assert"
)

func TestFromModelToRelationResponse(t *testing.T) {
	rate := models.RateAwesome
	rel := &models.UserBookRelation{
		UserID:      "u1",
		BookID:      7,
		Like:        true,
		InBookmarks: false,
		Rate:        &rate,
	}

	resp := FromModelToRelationResponse(rel)

	assert.Equal(t, int64(7), resp.BookID)
	assert.True(t, resp.Like)
	assert.False(t, resp.InBookmarks)
	assert.Equal(t, 5, *resp.Rate)
	assert.Equal(t, "Awesome", resp.RateDisplay)
}

func TestFromModelToRelationResponse_NoRate(t *testing.T) {
	resp := FromModelToRelationResponse(&models.UserBookRelation{BookID: 7})

	assert.Nil(t, resp.Rate)
	assert.Equal(t, "", resp.RateDisplay)
}

func TestUpdateRelationDTO(t *testing.T) {
	like := true
	rate := 3

	t.Run("Empty", func(t *testing.T) {
		assert.True(t, UpdateRelationDTO{}.Empty())
		assert.False(t, UpdateRelationDTO{Like: &like}.Empty())
	})

	t.Run("ToPatchKeepsNils", func(t *testing.T) {
		patch := UpdateRelationDTO{Like: &like, Rate: &rate}.ToPatch()

		assert.Equal(t, &like, patch.Like)
		assert.Nil(t, patch.InBookmarks)
		assert.Equal(t, &rate, patch.Rate)
	})
}
