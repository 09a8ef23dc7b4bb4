package model

import (
	"time"

	"github.com/google/uuid"
)

// PushTokenModel is the GORM-specific struct for the 'user_push_tokens' table.
// Each row is one member of a user's token set.
type PushTokenModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID    string    `gorm:"type:varchar(128);not null;uniqueIndex:idx_user_push_tokens_user_token,priority:1"`
	Token     string    `gorm:"type:varchar(512);not null;uniqueIndex:idx_user_push_tokens_user_token,priority:2;index"`
	Platform  string    `gorm:"type:varchar(16);not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (PushTokenModel) TableName() string {
	return "user_push_tokens"
}
