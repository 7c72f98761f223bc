package services

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gyansetu/gyansetu-backend/internal/data/repos/testutil"
)

// buildPDF writes a minimal uncompressed PDF with one text line per page.
func buildPDF(pages ...string) []byte {
	n := len(pages)
	objs := []string{
		"<< /Type /Catalog /Pages 2 0 R >>",
		"",
		"<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica /Encoding /WinAnsiEncoding >>",
	}
	kids := make([]string, 0, n)
	for i, text := range pages {
		pageNum := 4 + i*2
		contentNum := pageNum + 1
		kids = append(kids, fmt.Sprintf("%d 0 R", pageNum))
		stream := fmt.Sprintf("BT /F1 12 Tf 72 720 Td (%s) Tj ET", text)
		objs = append(objs,
			fmt.Sprintf("<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] /Resources << /Font << /F1 3 0 R >> >> /Contents %d 0 R >>", contentNum),
			fmt.Sprintf("<< /Length %d >>\nstream\n%s\nendstream", len(stream), stream),
		)
	}
	objs[1] = fmt.Sprintf("<< /Type /Pages /Kids [%s] /Count %d >>", strings.Join(kids, " "), n)

	var buf bytes.Buffer
	buf.WriteString("%PDF-1.4\n")
	offsets := make([]int, len(objs))
	for i, body := range objs {
		offsets[i] = buf.Len()
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", i+1, body)
	}
	xref := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n0000000000 65535 f \n", len(objs)+1)
	for _, off := range offsets {
		fmt.Fprintf(&buf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", len(objs)+1, xref)
	return buf.Bytes()
}

func serve(t *testing.T, h http.HandlerFunc) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return srv
}

func TestExtractReadsLeadingPages(t *testing.T) {
	doc := buildPDF("GyanSetu page one", "page two", "page three")
	srv := serve(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/pdf")
		_, _ = w.Write(doc)
	})

	svc := NewExtractionService(testutil.Logger(t), ExtractionConfig{MaxPages: 2}, srv.Client(), nil)
	res, err := svc.Extract(context.Background(), srv.URL+"/paper.pdf")
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if res.Pages != 2 {
		t.Fatalf("expected 2 pages read, got %d", res.Pages)
	}
	if !strings.Contains(res.Text, "GyanSetu") {
		t.Fatalf("missing first page text: %q", res.Text)
	}
	if strings.Contains(res.Text, "three") {
		t.Fatalf("read past page limit: %q", res.Text)
	}
}

func TestExtractFailures(t *testing.T) {
	notFound := serve(t, func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	})
	html := serve(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html>login required</html>"))
	})
	truncated := serve(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("%PDF-1.4\n1 0 obj\n<<"))
	})

	svc := NewExtractionService(testutil.Logger(t), ExtractionConfig{}, nil, nil)
	for name, url := range map[string]string{
		"status":    notFound.URL + "/a.pdf",
		"not pdf":   html.URL + "/a.pdf",
		"truncated": truncated.URL + "/a.pdf",
		"gs":        "gs://bucket/a.pdf",
		"bad url":   "::not a url.pdf",
	} {
		if err := svc.ExtractPDF(context.Background(), 1, url); err == nil {
			t.Fatalf("%s: expected error", name)
		}
	}
}

func TestExtractFetchTimeout(t *testing.T) {
	release := make(chan struct{})
	slow := serve(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	})
	defer close(release)

	svc := NewExtractionService(testutil.Logger(t), ExtractionConfig{FetchTimeout: 50 * time.Millisecond}, nil, nil)
	start := time.Now()
	if _, err := svc.Extract(context.Background(), slow.URL+"/slow.pdf"); err == nil {
		t.Fatal("expected timeout error")
	}
	if time.Since(start) > 5*time.Second {
		t.Fatal("timeout not applied")
	}
}

type fakeObjects struct {
	bucket, object string
	data           []byte
}

func (f *fakeObjects) ReadObject(ctx context.Context, bucket, object string, limit int64) ([]byte, error) {
	f.bucket, f.object = bucket, object
	return f.data, nil
}

func (f *fakeObjects) Close() error { return nil }

func TestExtractFromCloudStorage(t *testing.T) {
	objs := &fakeObjects{data: buildPDF("Indian Polity syllabus")}
	svc := NewExtractionService(testutil.Logger(t), ExtractionConfig{}, nil, objs)

	if err := svc.ExtractPDF(context.Background(), 3, "gs://gyansetu-files/syllabus/2024.PDF"); err != nil {
		t.Fatalf("ExtractPDF: %v", err)
	}
	if objs.bucket != "gyansetu-files" || objs.object != "syllabus/2024.PDF" {
		t.Fatalf("unexpected object: %s/%s", objs.bucket, objs.object)
	}
}
