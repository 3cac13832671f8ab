package api

import (
	"context"
	"fmt"
	"io"
	"mime"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/safecheck/safecheck/internal/filex"
)

// ExportFormat selects the report rendering the server produces.
type ExportFormat string

const (
	ExportXLSX ExportFormat = "xlsx"
	ExportPDF  ExportFormat = "pdf"
)

func (f ExportFormat) path() string {
	if f == ExportPDF {
		return "/inspections/export-pdf"
	}
	return "/inspections/export"
}

// ExportInspections downloads a rendered report for the given scope and
// saves it under the download directory. The filename comes from the
// Content-Disposition header; requesting the same name again within one
// session gets an incrementing "_N" suffix so earlier downloads are never
// overwritten. Returns the saved path. Fails loudly.
func (c *Client) ExportInspections(ctx context.Context, q ListQuery, format ExportFormat) (string, error) {
	u := c.baseURL + format.path() + "?" + q.values().Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("X-Request-Id", uuid.NewString())

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", c.decodeError(resp)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read export body: %w", err)
	}

	name := c.nextDownloadName(serverFileName(resp.Header.Get("Content-Disposition"), format))

	dir, err := filex.EnsureDownloadDir(c.downloadDir)
	if err != nil {
		return "", err
	}

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0o660); err != nil {
		return "", fmt.Errorf("save export: %w", err)
	}

	c.log.Info(ctx, "export saved", "path", path, "bytes", len(data))
	return path, nil
}

// serverFileName extracts the filename from a Content-Disposition header,
// falling back to a timestamped default when the header is absent or
// unparsable.
func serverFileName(disposition string, format ExportFormat) string {
	if disposition != "" {
		if _, params, err := mime.ParseMediaType(disposition); err == nil {
			if name := strings.TrimSpace(params["filename"]); name != "" {
				return filepath.Base(name)
			}
		}
	}
	return fmt.Sprintf("safety_report_%d.%s", time.Now().UnixMilli(), format)
}

// nextDownloadName de-duplicates a requested filename with a per-session
// counter: "report.xlsx", then "report_1.xlsx", "report_2.xlsx", ...
// The counter is purely local and never consults the filesystem.
func (c *Client) nextDownloadName(name string) string {
	c.mu.Lock()
	defer c.mu.Unlock()

	n := c.downloadCounts[name]
	c.downloadCounts[name] = n + 1
	if n == 0 {
		return name
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	return fmt.Sprintf("%s_%d%s", base, n, ext)
}
