package models

import "time"

type Book struct {
	ID        int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	Name      string    `json:"name" gorm:"size:250;not null"`
	Price     float64   `json:"price" gorm:"type:decimal(7,2);not null"`
	Author    string    `json:"author" gorm:"size:250;not null"`
	OwnerID   *string   `json:"owner_id,omitempty" gorm:"type:uuid;index"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`

	// Associations
	Owner     *User              `json:"owner,omitempty" gorm:"foreignKey:OwnerID;constraint:OnDelete:SET NULL;"`
	Relations []UserBookRelation `json:"relations,omitempty" gorm:"foreignKey:BookID;constraint:OnDelete:CASCADE;"`
}

func (Book) TableName() string {
	return "books"
}
