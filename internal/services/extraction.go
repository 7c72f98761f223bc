package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	pdf "github.com/ledongthuc/pdf"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/gyansetu/gyansetu-backend/internal/observability"
	"github.com/gyansetu/gyansetu-backend/internal/platform/gcp"
	"github.com/gyansetu/gyansetu-backend/internal/platform/logger"
)

type ExtractionConfig struct {
	// FetchTimeout bounds the download; zero means no timeout.
	FetchTimeout time.Duration
	MaxPages     int
	// MaxBytes caps the downloaded body; zero means unbounded.
	MaxBytes int64
}

// ExtractionResult is logged and dropped; nothing stores it.
type ExtractionResult struct {
	Pages int
	Chars int
	Text  string
}

type ExtractionService interface {
	PDFExtractor
	Extract(ctx context.Context, fileURL string) (*ExtractionResult, error)
}

type extractionService struct {
	log     *logger.Logger
	cfg     ExtractionConfig
	http    *http.Client
	objects gcp.ObjectReader
}

// NewExtractionService fetches http(s) URLs with httpClient and gs:// URLs with
// objects; objects may be nil, in which case gs:// links fail.
func NewExtractionService(log *logger.Logger, cfg ExtractionConfig, httpClient *http.Client, objects gcp.ObjectReader) ExtractionService {
	if cfg.MaxPages <= 0 {
		cfg.MaxPages = 5
	}
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &extractionService{
		log:     log.With("service", "ExtractionService"),
		cfg:     cfg,
		http:    httpClient,
		objects: objects,
	}
}

func (es *extractionService) ExtractPDF(ctx context.Context, materialID int64, fileURL string) error {
	start := time.Now()
	res, err := es.Extract(ctx, fileURL)
	if err != nil {
		observability.Current().IncPDFExtraction("failed")
		es.log.Warn("PDF extraction failed",
			"material_id", materialID,
			"file_url", fileURL,
			"duration_ms", time.Since(start).Milliseconds(),
			"error", err,
		)
		return err
	}
	observability.Current().IncPDFExtraction("ok")
	es.log.Info("PDF extraction succeeded",
		"material_id", materialID,
		"pages", res.Pages,
		"chars", res.Chars,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return nil
}

func (es *extractionService) Extract(ctx context.Context, fileURL string) (*ExtractionResult, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, span := observability.StartSpan(ctx, "pdf.extract", attribute.String("file.url", fileURL))
	defer span.End()

	if es.cfg.FetchTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, es.cfg.FetchTimeout)
		defer cancel()
	}

	data, err := es.fetch(ctx, strings.TrimSpace(fileURL))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "fetch failed")
		return nil, err
	}
	text, pages, err := pdfText(data, es.cfg.MaxPages)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "parse failed")
		return nil, err
	}
	span.SetAttributes(attribute.Int("pdf.pages", pages), attribute.Int("pdf.chars", len(text)))
	return &ExtractionResult{Pages: pages, Chars: len(text), Text: text}, nil
}

func (es *extractionService) fetch(ctx context.Context, fileURL string) ([]byte, error) {
	if strings.HasPrefix(strings.ToLower(fileURL), "gs://") {
		if es.objects == nil {
			return nil, fmt.Errorf("cannot fetch %s: cloud storage is not configured", fileURL)
		}
		bucket, object, err := gcp.ParseGSURL(fileURL)
		if err != nil {
			return nil, err
		}
		return es.objects.ReadObject(ctx, bucket, object, es.cfg.MaxBytes)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fileURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	resp, err := es.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("download: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("download: unexpected status %d", resp.StatusCode)
	}
	var body io.Reader = resp.Body
	if es.cfg.MaxBytes > 0 {
		body = io.LimitReader(resp.Body, es.cfg.MaxBytes)
	}
	data, err := io.ReadAll(body)
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	return data, nil
}

// pdfText concatenates the plain text of at most maxPages leading pages.
// The parser panics on some malformed inputs, so panics become errors.
func pdfText(data []byte, maxPages int) (text string, pages int, err error) {
	defer func() {
		if r := recover(); r != nil {
			text, pages, err = "", 0, fmt.Errorf("pdf parse panic: %v", r)
		}
	}()
	if len(data) < 5 || string(data[:5]) != "%PDF-" {
		return "", 0, errors.New("not a pdf document")
	}
	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", 0, fmt.Errorf("pdf reader: %w", err)
	}
	n := r.NumPage()
	if n > maxPages {
		n = maxPages
	}
	var b strings.Builder
	for i := 1; i <= n; i++ {
		p := r.Page(i)
		if p.V.IsNull() {
			continue
		}
		pt, err := p.GetPlainText(nil)
		if err != nil {
			return "", 0, fmt.Errorf("pdf page %d: %w", i, err)
		}
		b.WriteString(pt)
		pages++
	}
	return b.String(), pages, nil
}
