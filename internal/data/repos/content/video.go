package content

import (
	"errors"

	types "github.com/gyansetu/gyansetu-backend/internal/domain"
	"github.com/gyansetu/gyansetu-backend/internal/platform/dbctx"
	"github.com/gyansetu/gyansetu-backend/internal/platform/logger"
	"gorm.io/gorm"
)

type VideoRepo interface {
	Create(dbc dbctx.Context, v *types.Video) error
	GetByID(dbc dbctx.Context, id int64) (*types.Video, error)
	Delete(dbc dbctx.Context, id int64) (bool, error)
	List(dbc dbctx.Context, category string) ([]*types.Video, error)
	Count(dbc dbctx.Context) (int64, error)
}

type videoRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewVideoRepo(db *gorm.DB, baseLog *logger.Logger) VideoRepo {
	return &videoRepo{db: db, log: baseLog.With("repo", "VideoRepo")}
}

func (r *videoRepo) Create(dbc dbctx.Context, v *types.Video) error {
	return dbc.Conn(r.db).Create(v).Error
}

func (r *videoRepo) GetByID(dbc dbctx.Context, id int64) (*types.Video, error) {
	var v types.Video
	err := dbc.Conn(r.db).Where("id = ?", id).First(&v).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *videoRepo) Delete(dbc dbctx.Context, id int64) (bool, error) {
	res := dbc.Conn(r.db).Where("id = ?", id).Delete(&types.Video{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *videoRepo) List(dbc dbctx.Context, category string) ([]*types.Video, error) {
	q := dbc.Conn(r.db).Model(&types.Video{})
	if category != "" {
		q = q.Where("category = ?", category)
	}
	var results []*types.Video
	if err := q.Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *videoRepo) Count(dbc dbctx.Context) (int64, error) {
	var n int64
	if err := dbc.Conn(r.db).Model(&types.Video{}).Count(&n).Error; err != nil {
		return 0, err
	}
	return n, nil
}
