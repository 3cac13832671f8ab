package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func exportServer(t *testing.T, disposition string, body []byte) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if disposition != "" {
			w.Header().Set("Content-Disposition", disposition)
		}
		w.Header().Set("Content-Type", "application/octet-stream")
		w.Write(body)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestExport_FilenameDeduplication(t *testing.T) {
	srv := exportServer(t, `attachment; filename="report.xlsx"`, []byte("xlsx-bytes"))
	dir := t.TempDir()
	c := New(srv.URL, Options{Logger: testLogger(), DownloadDir: dir})
	ctx := context.Background()

	first, err := c.ExportInspections(ctx, ListQuery{AdminName: "관리자"}, ExportXLSX)
	require.NoError(t, err)
	assert.Equal(t, "report.xlsx", filepath.Base(first))

	second, err := c.ExportInspections(ctx, ListQuery{AdminName: "관리자"}, ExportXLSX)
	require.NoError(t, err)
	assert.Equal(t, "report_1.xlsx", filepath.Base(second))

	third, err := c.ExportInspections(ctx, ListQuery{AdminName: "관리자"}, ExportXLSX)
	require.NoError(t, err)
	assert.Equal(t, "report_2.xlsx", filepath.Base(third))

	data, err := os.ReadFile(first)
	require.NoError(t, err)
	assert.Equal(t, []byte("xlsx-bytes"), data)
}

func TestExport_DefaultFilenameWithoutDisposition(t *testing.T) {
	srv := exportServer(t, "", []byte("pdf-bytes"))
	dir := t.TempDir()
	c := New(srv.URL, Options{Logger: testLogger(), DownloadDir: dir})

	path, err := c.ExportInspections(context.Background(), ListQuery{}, ExportPDF)
	require.NoError(t, err)
	assert.Regexp(t, `^safety_report_\d+\.pdf$`, filepath.Base(path))
}

func TestExport_PDFVariantPath(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Write([]byte("x"))
	}))
	t.Cleanup(srv.Close)
	c := New(srv.URL, Options{Logger: testLogger(), DownloadDir: t.TempDir()})

	_, err := c.ExportInspections(context.Background(), ListQuery{}, ExportPDF)
	require.NoError(t, err)
	assert.Equal(t, "/inspections/export-pdf", gotPath)

	_, err = c.ExportInspections(context.Background(), ListQuery{}, ExportXLSX)
	require.NoError(t, err)
	assert.Equal(t, "/inspections/export", gotPath)
}

func TestExport_ServerErrorPropagates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{"detail":"권한이 없습니다"}`))
	}))
	t.Cleanup(srv.Close)
	c := New(srv.URL, Options{Logger: testLogger(), DownloadDir: t.TempDir()})

	_, err := c.ExportInspections(context.Background(), ListQuery{}, ExportXLSX)
	require.Error(t, err)
	assert.Equal(t, "권한이 없습니다", UserMessage(err, "다운로드 실패"))
}

func TestNextDownloadName_TracksPerBaseName(t *testing.T) {
	c := New("http://example", Options{Logger: testLogger()})

	assert.Equal(t, "a.xlsx", c.nextDownloadName("a.xlsx"))
	assert.Equal(t, "b.xlsx", c.nextDownloadName("b.xlsx"))
	assert.Equal(t, "a_1.xlsx", c.nextDownloadName("a.xlsx"))
	assert.Equal(t, "b_1.xlsx", c.nextDownloadName("b.xlsx"))
	assert.Equal(t, "noext", c.nextDownloadName("noext"))
	assert.Equal(t, "noext_1", c.nextDownloadName("noext"))
}
