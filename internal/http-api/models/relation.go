package models

import "time"

// Rate values and their display labels. The label is presentation only and
// never stored.
const (
	RateNormal  = 1
	RateFine    = 2
	RateGood    = 3
	RateAmazing = 4
	RateAwesome = 5
)

var rateLabels = map[int]string{
	RateNormal:  "Normal",
	RateFine:    "Fine",
	RateGood:    "Good",
	RateAmazing: "Amazing",
	RateAwesome: "Awesome",
}

// RateLabel returns the display label for a rate value, or "" for an unknown
// or absent rate.
func RateLabel(rate int) string {
	return rateLabels[rate]
}

// UserBookRelation holds the per-(user, book) like/bookmark/rate state.
// One row per pair, enforced by the composite unique index.
type UserBookRelation struct {
	ID          int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	UserID      string    `json:"user_id" gorm:"type:uuid;not null;uniqueIndex:idx_user_book"`
	BookID      int64     `json:"book_id" gorm:"not null;uniqueIndex:idx_user_book"`
	Like        bool      `json:"like" gorm:"column:like;not null;default:false"`
	InBookmarks bool      `json:"in_bookmarks" gorm:"not null;default:false"`
	Rate        *int      `json:"rate,omitempty" gorm:"check:rate >= 1 AND rate <= 5"`
	CreatedAt   time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt   time.Time `json:"updated_at" gorm:"autoUpdateTime"`

	// Associations
	User *User `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE;"`
	Book *Book `json:"book,omitempty" gorm:"foreignKey:BookID;constraint:OnDelete:CASCADE;"`
}

func (UserBookRelation) TableName() string {
	return "user_book_relations"
}

// RelationPatch carries a partial update for a relation row. Nil fields are
// left untouched by Apply.
type RelationPatch struct {
	Like        *bool
	InBookmarks *bool
	Rate        *int
}

// Apply merges the set fields of the patch into the relation row.
func (p RelationPatch) Apply(rel *UserBookRelation) {
	if p.Like != nil {
		rel.Like = *p.Like
	}
	if p.InBookmarks != nil {
		rel.InBookmarks = *p.InBookmarks
	}
	if p.Rate != nil {
		rel.Rate = p.Rate
	}
}
