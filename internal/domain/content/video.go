package content

import (
	"time"

	"github.com/google/uuid"

	"github.com/gyansetu/gyansetu-backend/internal/domain/user"
)

// IsYouTube has no column default: gorm would skip an explicit false on insert.
type Video struct {
	ID          int64      `gorm:"primaryKey;autoIncrement" json:"id"`
	Title       string     `gorm:"size:200;not null" json:"title"`
	Description string     `gorm:"type:text" json:"description"`
	Category    string     `gorm:"size:50" json:"category"`
	Subject     string     `gorm:"size:100" json:"subject"`
	VideoURL    string     `gorm:"column:video_url;type:text;not null" json:"video_url"`
	IsYouTube   bool       `gorm:"column:is_youtube;not null" json:"is_youtube"`
	UploadedBy  *uuid.UUID `gorm:"column:uploaded_by;type:uuid;index" json:"uploaded_by,omitempty"`
	Uploader    *user.User `gorm:"foreignKey:UploadedBy;references:ID;constraint:OnDelete:SET NULL" json:"-"`
	CreatedAt   time.Time  `gorm:"autoCreateTime" json:"created_at"`
}

func (Video) TableName() string { return "videos" }
