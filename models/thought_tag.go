package models

import "github.com/google/uuid"

// ThoughtTag links a thought to a tag. Rows cascade away with either parent.
type ThoughtTag struct {
	ThoughtID uuid.UUID `json:"thought_id" db:"thought_id" gorm:"type:varchar(36);primaryKey;not null"`
	TagID     uuid.UUID `json:"tag_id" db:"tag_id" gorm:"type:varchar(36);primaryKey;not null"`

	Thought Thought `json:"thought,omitempty" gorm:"foreignKey:ThoughtID;references:ID;constraint:OnDelete:CASCADE"`
	Tag     Tag     `json:"tag,omitempty" gorm:"foreignKey:TagID;references:ID;constraint:OnDelete:CASCADE"`
}
