package download

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/rs/zerolog"
	"github.com/schollz/progressbar/v3"
)

// File permissions
const (
	DefaultDirPermissions = 0755
)

// Service downloads images into a target directory.
type Service struct {
	http        *http.Client
	outputDir   string
	progressOut io.Writer
	log         zerolog.Logger
}

// NewService creates a new download service writing into outputDir.
func NewService(outputDir string, timeout time.Duration, log zerolog.Logger) *Service {
	return &Service{
		http:        &http.Client{Timeout: timeout},
		outputDir:   outputDir,
		progressOut: os.Stderr,
		log:         log,
	}
}

// SetProgressOutput redirects the progress bar, e.g. to io.Discard in tests.
func (s *Service) SetProgressOutput(w io.Writer) {
	s.progressOut = w
}

// SaveImage fetches rawURL and writes it to baseName plus the extension taken
// from the URL. It returns the path of the written file.
func (s *Service) SaveImage(ctx context.Context, rawURL, baseName string) (string, error) {
	name := baseName + ExtensionFromURL(rawURL)
	path := filepath.Join(s.outputDir, name)

	if err := CreateDirectoryIfNotExists(s.outputDir); err != nil {
		return "", fmt.Errorf("ensuring output directory: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", fmt.Errorf("building image request: %w", err)
	}

	resp, err := s.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetching image: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("fetching image %s: unexpected status %s", rawURL, resp.Status)
	}

	out, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("creating image file: %w", err)
	}
	defer out.Close()

	bar := progressbar.NewOptions64(resp.ContentLength,
		progressbar.OptionSetWriter(s.progressOut),
		progressbar.OptionSetDescription("saving "+name),
		progressbar.OptionShowBytes(true),
		progressbar.OptionClearOnFinish(),
	)

	n, err := io.Copy(io.MultiWriter(out, bar), resp.Body)
	if err != nil {
		return "", fmt.Errorf("writing image file: %w", err)
	}

	s.log.Info().
		Str("file", path).
		Str("size", humanize.Bytes(uint64(n))).
		Msg("saved image")
	return path, nil
}

// ExtensionFromURL extracts the lowercased file extension from a URL path.
// URLs without an extension yield an empty string.
func ExtensionFromURL(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return strings.ToLower(filepath.Ext(rawURL))
	}
	return strings.ToLower(filepath.Ext(u.Path))
}

// CreateDirectoryIfNotExists creates directory if it doesn't exist
func CreateDirectoryIfNotExists(dirPath string) error {
	if _, err := os.Stat(dirPath); os.IsNotExist(err) {
		return os.MkdirAll(dirPath, DefaultDirPermissions)
	}
	return nil
}
