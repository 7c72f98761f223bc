package services

import (
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/gyansetu/gyansetu-backend/internal/data/repos"
	types "github.com/gyansetu/gyansetu-backend/internal/domain"
	"github.com/gyansetu/gyansetu-backend/internal/platform/apierr"
	"github.com/gyansetu/gyansetu-backend/internal/platform/dbctx"
	"github.com/gyansetu/gyansetu-backend/internal/platform/logger"
)

type DashboardStats struct {
	Materials int64 `json:"materials"`
	Videos    int64 `json:"videos"`
	Students  int64 `json:"students"`
}

type UserService interface {
	// GetProfile treats a malformed id the same as an unknown one.
	GetProfile(dbc dbctx.Context, rawID string) (*types.User, error)
	PromoteUser(dbc dbctx.Context, rawID string, rawRole string) (types.Role, error)
	ListStudents(dbc dbctx.Context) ([]*types.User, error)
	Stats(dbc dbctx.Context) (*DashboardStats, error)
}

type userService struct {
	db           *gorm.DB
	log          *logger.Logger
	userRepo     repos.UserRepo
	materialRepo repos.MaterialRepo
	videoRepo    repos.VideoRepo
}

func NewUserService(db *gorm.DB, log *logger.Logger, userRepo repos.UserRepo, materialRepo repos.MaterialRepo, videoRepo repos.VideoRepo) UserService {
	return &userService{
		db:           db,
		log:          log.With("service", "UserService"),
		userRepo:     userRepo,
		materialRepo: materialRepo,
		videoRepo:    videoRepo,
	}
}

func (us *userService) GetProfile(dbc dbctx.Context, rawID string) (*types.User, error) {
	userID, err := uuid.Parse(rawID)
	if err != nil {
		return nil, apierr.NotFound("User not found")
	}
	u, err := us.userRepo.GetByID(dbc, userID)
	if err != nil {
		us.log.Error("Profile lookup failed", "user_id", userID, "error", err)
		return nil, apierr.FromDB(err)
	}
	if u == nil {
		return nil, apierr.NotFound("User not found")
	}
	return u, nil
}

func (us *userService) PromoteUser(dbc dbctx.Context, rawID string, rawRole string) (types.Role, error) {
	userID, err := uuid.Parse(rawID)
	if err != nil {
		return "", apierr.BadRequest(fmt.Errorf("invalid uid %q", rawID))
	}
	var role types.Role
	err = inTx(us.db, dbc, func(txc dbctx.Context) error {
		u, err := us.userRepo.GetByID(txc, userID)
		if err != nil {
			return apierr.FromDB(err)
		}
		if u == nil {
			return apierr.NotFound("User not found")
		}
		role, err = types.ParseRole(rawRole)
		if err != nil {
			return apierr.BadRequest(err)
		}
		if err := us.userRepo.UpdateRole(txc, userID, string(role)); err != nil {
			return apierr.FromDB(err)
		}
		return nil
	})
	if err != nil {
		if apierr.Status(err, http.StatusInternalServerError) >= http.StatusInternalServerError {
			us.log.Error("Promote user failed", "user_id", userID, "error", err)
		}
		return "", err
	}
	us.log.Info("User role updated", "user_id", userID, "role", role)
	return role, nil
}

func (us *userService) ListStudents(dbc dbctx.Context) ([]*types.User, error) {
	students, err := us.userRepo.ListByRole(dbc, types.RoleStudent)
	if err != nil {
		us.log.Error("List students failed", "error", err)
		return nil, apierr.FromDB(err)
	}
	return students, nil
}

func (us *userService) Stats(dbc dbctx.Context) (*DashboardStats, error) {
	var (
		out DashboardStats
		err error
	)
	if out.Materials, err = us.materialRepo.CountByType(dbc, string(types.ContentMaterial)); err != nil {
		return nil, apierr.FromDB(err)
	}
	if out.Videos, err = us.videoRepo.Count(dbc); err != nil {
		return nil, apierr.FromDB(err)
	}
	if out.Students, err = us.userRepo.CountByRole(dbc, types.RoleStudent); err != nil {
		return nil, apierr.FromDB(err)
	}
	return &out, nil
}
