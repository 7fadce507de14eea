package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRateLabel(t *testing.T) {
	assert.Equal(t, "Normal", RateLabel(RateNormal))
	assert.Equal(t, "Awesome", RateLabel(RateAwesome))
	assert.Equal(t, "", RateLabel(0))
	assert.Equal(t, "", RateLabel(6))
}

func TestRelationPatch_Apply(t *testing.T) {
	boolPtr := func(b bool) *bool { return &b }
	intPtr := func(i int) *int { return &i }

	t.Run("UnsetFieldsSurviveLaterPatches", func(t *testing.T) {
		rel := UserBookRelation{UserID: "u1", BookID: 1}

		RelationPatch{Like: boolPtr(true)}.Apply(&rel)
		RelationPatch{InBookmarks: boolPtr(true)}.Apply(&rel)

		assert.True(t, rel.Like, "second patch must not reset like")
		assert.True(t, rel.InBookmarks)
		assert.Nil(t, rel.Rate)
	})

	t.Run("SetFieldsOverwrite", func(t *testing.T) {
		rel := UserBookRelation{Like: true, Rate: intPtr(3)}

		RelationPatch{Like: boolPtr(false), Rate: intPtr(5)}.Apply(&rel)

		assert.False(t, rel.Like)
		assert.Equal(t, 5, *rel.Rate)
	})

	t.Run("EmptyPatchIsNoop", func(t *testing.T) {
		rel := UserBookRelation{Like: true, InBookmarks: true, Rate: intPtr(4)}

		RelationPatch{}.Apply(&rel)

		assert.True(t, rel.Like)
		assert.True(t, rel.InBookmarks)
		assert.Equal(t, 4, *rel.Rate)
	})
}
