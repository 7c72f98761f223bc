package content

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/gyansetu/gyansetu-backend/internal/domain/user"
)

type ContentType string

const (
	TypeMaterial ContentType = "material"
	TypeSyllabus ContentType = "syllabus"
	TypePYP      ContentType = "pyp"
)

func ParseContentType(raw string) (ContentType, error) {
	switch ct := ContentType(strings.ToLower(strings.TrimSpace(raw))); ct {
	case TypeMaterial, TypeSyllabus, TypePYP:
		return ct, nil
	default:
		return "", fmt.Errorf("invalid content_type %q: must be one of material, syllabus, pyp", raw)
	}
}

// Material covers study material, syllabus documents and past-year papers.
// ExamYear and ExamName are only meaningful for past-year papers.
type Material struct {
	ID          int64      `gorm:"primaryKey;autoIncrement" json:"id"`
	Title       string     `gorm:"size:200;not null" json:"title"`
	Category    string     `gorm:"size:50" json:"category"`
	Subject     string     `gorm:"size:100" json:"subject"`
	ContentType string     `gorm:"column:content_type;size:20;default:material" json:"content_type"`
	FileURL     string     `gorm:"column:file_url;type:text" json:"file_url"`
	ExamYear    *int       `gorm:"column:exam_year" json:"exam_year,omitempty"`
	ExamName    *string    `gorm:"column:exam_name;size:100" json:"exam_name,omitempty"`
	UploadedBy  *uuid.UUID `gorm:"column:uploaded_by;type:uuid;index" json:"uploaded_by,omitempty"`
	Uploader    *user.User `gorm:"foreignKey:UploadedBy;references:ID;constraint:OnDelete:SET NULL" json:"-"`
	CreatedAt   time.Time  `gorm:"autoCreateTime" json:"created_at"`
}

func (Material) TableName() string { return "materials" }

// IsPDFURL reports whether a file URL names a PDF by extension. Query strings and
// fragments are ignored; ".pdf" and ".PDF" both match.
func IsPDFURL(fileURL string) bool {
	u := strings.TrimSpace(fileURL)
	if i := strings.IndexAny(u, "?#"); i >= 0 {
		u = u[:i]
	}
	return strings.HasSuffix(strings.ToLower(u), ".pdf")
}
