package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/gyansetu/gyansetu-backend/internal/data/repos"
	types "github.com/gyansetu/gyansetu-backend/internal/domain"
	"github.com/gyansetu/gyansetu-backend/internal/platform/apierr"
	"github.com/gyansetu/gyansetu-backend/internal/platform/dbctx"
	"github.com/gyansetu/gyansetu-backend/internal/platform/logger"
)

// PDFExtractor is invoked synchronously for uploads whose file_url names a PDF.
type PDFExtractor interface {
	ExtractPDF(ctx context.Context, materialID int64, fileURL string) error
}

type UploadContentInput struct {
	Title       string
	Category    string
	Subject     string
	ContentType string
	FileURL     string
	UploadedBy  string
	ExamName    *string
	ExamYear    *int
}

type UploadVideoInput struct {
	Title       string
	Description string
	Category    string
	Subject     string
	VideoURL    string
	UploadedBy  string
	// IsYouTube defaults to true when nil.
	IsYouTube *bool
}

type ContentService interface {
	ListMaterials(dbc dbctx.Context, contentType, category string) ([]*types.Material, error)
	ListVideos(dbc dbctx.Context, category string) ([]*types.Video, error)
	ListPYP(dbc dbctx.Context) ([]*types.Material, error)
	ListMyContent(dbc dbctx.Context, uploadedBy, contentType string) ([]*types.Material, error)
	UploadContent(dbc dbctx.Context, in UploadContentInput) (*types.Material, error)
	UploadVideo(dbc dbctx.Context, in UploadVideoInput) (*types.Video, error)
	DeleteContent(dbc dbctx.Context, id int64) error
	DeleteVideo(dbc dbctx.Context, id int64) error
}

type contentService struct {
	db           *gorm.DB
	log          *logger.Logger
	userRepo     repos.UserRepo
	materialRepo repos.MaterialRepo
	videoRepo    repos.VideoRepo
	extractor    PDFExtractor
}

func NewContentService(
	db *gorm.DB,
	log *logger.Logger,
	userRepo repos.UserRepo,
	materialRepo repos.MaterialRepo,
	videoRepo repos.VideoRepo,
	extractor PDFExtractor,
) ContentService {
	return &contentService{
		db:           db,
		log:          log.With("service", "ContentService"),
		userRepo:     userRepo,
		materialRepo: materialRepo,
		videoRepo:    videoRepo,
		extractor:    extractor,
	}
}

func (cs *contentService) ListMaterials(dbc dbctx.Context, contentType, category string) ([]*types.Material, error) {
	if strings.TrimSpace(contentType) == "" {
		contentType = string(types.ContentMaterial)
	}
	out, err := cs.materialRepo.List(dbc, repos.MaterialFilter{ContentType: contentType, Category: category})
	if err != nil {
		return nil, apierr.FromDB(err)
	}
	return out, nil
}

func (cs *contentService) ListVideos(dbc dbctx.Context, category string) ([]*types.Video, error) {
	out, err := cs.videoRepo.List(dbc, category)
	if err != nil {
		return nil, apierr.FromDB(err)
	}
	return out, nil
}

func (cs *contentService) ListPYP(dbc dbctx.Context) ([]*types.Material, error) {
	out, err := cs.materialRepo.List(dbc, repos.MaterialFilter{
		ContentType:    string(types.ContentPYP),
		IgnoreTypeCase: true,
	})
	if err != nil {
		cs.log.Error("List past-year papers failed", "error", err)
		return nil, apierr.FromDB(err)
	}
	return out, nil
}

func (cs *contentService) ListMyContent(dbc dbctx.Context, uploadedBy, contentType string) ([]*types.Material, error) {
	uploader, err := uuid.Parse(strings.TrimSpace(uploadedBy))
	if err != nil {
		return nil, apierr.BadRequest(fmt.Errorf("invalid uploaded_by %q", uploadedBy))
	}
	if strings.TrimSpace(contentType) == "" {
		contentType = string(types.ContentMaterial)
	}
	out, err := cs.materialRepo.ListByUploader(dbc, uploader, contentType)
	if err != nil {
		return nil, apierr.FromDB(err)
	}
	return out, nil
}

// UploadContent inserts the material and, for PDF links, runs text extraction
// before commit. Extraction failures never fail the upload.
func (cs *contentService) UploadContent(dbc dbctx.Context, in UploadContentInput) (*types.Material, error) {
	ct, err := types.ParseContentType(in.ContentType)
	if err != nil {
		return nil, apierr.BadRequest(err)
	}
	uploader, err := uuid.Parse(strings.TrimSpace(in.UploadedBy))
	if err != nil {
		return nil, apierr.BadRequest(fmt.Errorf("invalid uploaded_by %q", in.UploadedBy))
	}
	m := &types.Material{
		Title:       in.Title,
		Category:    in.Category,
		Subject:     in.Subject,
		ContentType: string(ct),
		FileURL:     strings.TrimSpace(in.FileURL),
		ExamName:    in.ExamName,
		ExamYear:    in.ExamYear,
		UploadedBy:  &uploader,
	}

	err = inTx(cs.db, dbc, func(txc dbctx.Context) error {
		u, err := cs.userRepo.GetByID(txc, uploader)
		if err != nil {
			return err
		}
		if u == nil {
			return apierr.BadRequest(fmt.Errorf("uploader %s does not exist", uploader))
		}
		if err := cs.materialRepo.Create(txc, m); err != nil {
			return err
		}
		if cs.extractor != nil && types.IsPDFURL(m.FileURL) {
			if err := cs.extractor.ExtractPDF(txc.Ctx, m.ID, m.FileURL); err != nil {
				cs.log.Warn("PDF extraction failed; keeping upload", "material_id", m.ID, "error", err)
			}
		}
		return nil
	})
	if err != nil {
		cs.log.Warn("Upload content rolled back", "title", in.Title, "error", err)
		return nil, uploadErr(err)
	}
	cs.log.Info("Content uploaded", "material_id", m.ID, "content_type", m.ContentType, "uploaded_by", uploader)
	return m, nil
}

func (cs *contentService) UploadVideo(dbc dbctx.Context, in UploadVideoInput) (*types.Video, error) {
	uploader, err := uuid.Parse(strings.TrimSpace(in.UploadedBy))
	if err != nil {
		return nil, apierr.BadRequest(fmt.Errorf("invalid uploaded_by %q", in.UploadedBy))
	}
	isYouTube := true
	if in.IsYouTube != nil {
		isYouTube = *in.IsYouTube
	}
	v := &types.Video{
		Title:       in.Title,
		Description: in.Description,
		Category:    in.Category,
		Subject:     in.Subject,
		VideoURL:    strings.TrimSpace(in.VideoURL),
		IsYouTube:   isYouTube,
		UploadedBy:  &uploader,
	}

	err = inTx(cs.db, dbc, func(txc dbctx.Context) error {
		u, err := cs.userRepo.GetByID(txc, uploader)
		if err != nil {
			return err
		}
		if !u.CanPublish() {
			return apierr.Forbidden("Unauthorized: Only experts can upload")
		}
		return cs.videoRepo.Create(txc, v)
	})
	if err != nil {
		return nil, uploadErr(err)
	}
	cs.log.Info("Video published", "video_id", v.ID, "uploaded_by", uploader)
	return v, nil
}

func (cs *contentService) DeleteContent(dbc dbctx.Context, id int64) error {
	err := inTx(cs.db, dbc, func(txc dbctx.Context) error {
		m, err := cs.materialRepo.GetByID(txc, id)
		if err != nil {
			return err
		}
		if m == nil {
			return apierr.NotFound("Not found")
		}
		_, err = cs.materialRepo.Delete(txc, m.ID)
		return err
	})
	if err != nil {
		return apierr.FromDB(err)
	}
	cs.log.Info("Content deleted", "material_id", id)
	return nil
}

func (cs *contentService) DeleteVideo(dbc dbctx.Context, id int64) error {
	err := inTx(cs.db, dbc, func(txc dbctx.Context) error {
		v, err := cs.videoRepo.GetByID(txc, id)
		if err != nil {
			return err
		}
		if v == nil {
			return apierr.NotFound("Not found")
		}
		_, err = cs.videoRepo.Delete(txc, v.ID)
		return err
	})
	if err != nil {
		return apierr.FromDB(err)
	}
	cs.log.Info("Video deleted", "video_id", id)
	return nil
}

// uploadErr keeps status-carrying errors and reports any other write failure as 400.
func uploadErr(err error) error {
	var ae *apierr.Error
	if errors.As(err, &ae) {
		return err
	}
	return apierr.BadRequest(err)
}
