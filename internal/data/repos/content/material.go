package content

import (
	"errors"

	"github.com/google/uuid"
	types "github.com/gyansetu/gyansetu-backend/internal/domain"
	"github.com/gyansetu/gyansetu-backend/internal/platform/dbctx"
	"github.com/gyansetu/gyansetu-backend/internal/platform/logger"
	"gorm.io/gorm"
)

// MaterialFilter narrows a material listing. Empty fields do not filter.
// IgnoreTypeCase compares ContentType case-insensitively.
type MaterialFilter struct {
	ContentType    string
	Category       string
	IgnoreTypeCase bool
}

type MaterialRepo interface {
	Create(dbc dbctx.Context, m *types.Material) error
	GetByID(dbc dbctx.Context, id int64) (*types.Material, error)
	Delete(dbc dbctx.Context, id int64) (bool, error)
	List(dbc dbctx.Context, f MaterialFilter) ([]*types.Material, error)
	ListByUploader(dbc dbctx.Context, uploader uuid.UUID, contentType string) ([]*types.Material, error)
	CountByType(dbc dbctx.Context, contentType string) (int64, error)
}

type materialRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewMaterialRepo(db *gorm.DB, baseLog *logger.Logger) MaterialRepo {
	return &materialRepo{db: db, log: baseLog.With("repo", "MaterialRepo")}
}

func (r *materialRepo) Create(dbc dbctx.Context, m *types.Material) error {
	return dbc.Conn(r.db).Create(m).Error
}

func (r *materialRepo) GetByID(dbc dbctx.Context, id int64) (*types.Material, error) {
	var m types.Material
	err := dbc.Conn(r.db).Where("id = ?", id).First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// Delete reports whether a row was removed.
func (r *materialRepo) Delete(dbc dbctx.Context, id int64) (bool, error) {
	res := dbc.Conn(r.db).Where("id = ?", id).Delete(&types.Material{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// List applies no ordering: rows come back in storage order.
func (r *materialRepo) List(dbc dbctx.Context, f MaterialFilter) ([]*types.Material, error) {
	q := dbc.Conn(r.db).Model(&types.Material{})
	if f.ContentType != "" {
		if f.IgnoreTypeCase {
			q = q.Where("LOWER(content_type) = LOWER(?)", f.ContentType)
		} else {
			q = q.Where("content_type = ?", f.ContentType)
		}
	}
	if f.Category != "" {
		q = q.Where("category = ?", f.Category)
	}
	var results []*types.Material
	if err := q.Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *materialRepo) ListByUploader(dbc dbctx.Context, uploader uuid.UUID, contentType string) ([]*types.Material, error) {
	q := dbc.Conn(r.db).Where("uploaded_by = ?", uploader)
	if contentType != "" {
		q = q.Where("content_type = ?", contentType)
	}
	var results []*types.Material
	if err := q.Order("created_at DESC").Order("id DESC").Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *materialRepo) CountByType(dbc dbctx.Context, contentType string) (int64, error) {
	var n int64
	if err := dbc.Conn(r.db).
		Model(&types.Material{}).
		Where("content_type = ?", contentType).
		Count(&n).Error; err != nil {
		return 0, err
	}
	return n, nil
}
