package user

import (
	"errors"

	"github.com/google/uuid"
	types "github.com/gyansetu/gyansetu-backend/internal/domain"
	"github.com/gyansetu/gyansetu-backend/internal/platform/dbctx"
	"github.com/gyansetu/gyansetu-backend/internal/platform/logger"
	"gorm.io/gorm"
)

type UserRepo interface {
	Create(dbc dbctx.Context, users []*types.User) ([]*types.User, error)
	// GetByID returns (nil, nil) when no user has the id.
	GetByID(dbc dbctx.Context, userID uuid.UUID) (*types.User, error)
	ListByRole(dbc dbctx.Context, role types.Role) ([]*types.User, error)
	CountByRole(dbc dbctx.Context, role types.Role) (int64, error)
	UpdateRole(dbc dbctx.Context, userID uuid.UUID, role string) error
}

type userRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewUserRepo(db *gorm.DB, baseLog *logger.Logger) UserRepo {
	repoLog := baseLog.With("repo", "UserRepo")
	return &userRepo{db: db, log: repoLog}
}

func (ur *userRepo) Create(dbc dbctx.Context, users []*types.User) ([]*types.User, error) {
	if len(users) == 0 {
		return []*types.User{}, nil
	}
	if err := dbc.Conn(ur.db).Create(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (ur *userRepo) GetByID(dbc dbctx.Context, userID uuid.UUID) (*types.User, error) {
	var u types.User
	err := dbc.Conn(ur.db).Where("id = ?", userID).First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// ListByRole matches the role case-insensitively, so "Student" rows are included.
func (ur *userRepo) ListByRole(dbc dbctx.Context, role types.Role) ([]*types.User, error) {
	var results []*types.User
	if err := dbc.Conn(ur.db).
		Where("LOWER(role) = LOWER(?)", string(role)).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (ur *userRepo) CountByRole(dbc dbctx.Context, role types.Role) (int64, error) {
	var count int64
	if err := dbc.Conn(ur.db).
		Model(&types.User{}).
		Where("LOWER(role) = LOWER(?)", string(role)).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (ur *userRepo) UpdateRole(dbc dbctx.Context, userID uuid.UUID, role string) error {
	return dbc.Conn(ur.db).
		Model(&types.User{}).
		Where("id = ?", userID).
		Update("role", role).Error
}
