package download

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func newTestService(t *testing.T, dir string) *Service {
	t.Helper()
	service := NewService(dir, 5*time.Second, zerolog.Nop())
	service.SetProgressOutput(io.Discard)
	return service
}

func TestService_SaveImage(t *testing.T) {
	payload := []byte("fake image bytes")
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, "/picture.JPG") {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		w.Write(payload)
	}))
	defer server.Close()

	dir := t.TempDir()
	service := newTestService(t, dir)

	path, err := service.SaveImage(context.Background(), server.URL+"/picture.JPG", "apod")
	if err != nil {
		t.Fatalf("SaveImage() returned error %v", err)
	}
	if path != filepath.Join(dir, "apod.jpg") {
		t.Errorf("SaveImage() path = %q, expected apod.jpg in temp dir", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading saved image: %v", err)
	}
	if string(data) != string(payload) {
		t.Errorf("saved bytes differ from served bytes")
	}
}

func TestService_SaveImage_CreatesOutputDir(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("x"))
	}))
	defer server.Close()

	dir := filepath.Join(t.TempDir(), "nested", "out")
	service := newTestService(t, dir)

	if _, err := service.SaveImage(context.Background(), server.URL+"/mars.png", "mars"); err != nil {
		t.Fatalf("SaveImage() returned error %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "mars.png")); err != nil {
		t.Errorf("expected mars.png in created directory: %v", err)
	}
}

func TestService_SaveImage_BadStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer server.Close()

	service := newTestService(t, t.TempDir())

	_, err := service.SaveImage(context.Background(), server.URL+"/missing.jpg", "apod")
	if err == nil {
		t.Fatal("SaveImage() returned no error for a 404")
	}
}

func TestService_SaveImage_Cancelled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("x"))
	}))
	defer server.Close()

	service := newTestService(t, t.TempDir())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := service.SaveImage(ctx, server.URL+"/a.jpg", "apod"); err == nil {
		t.Fatal("SaveImage() returned no error with a cancelled context")
	}
}

func TestExtensionFromURL(t *testing.T) {
	tests := []struct {
		url      string
		expected string
	}{
		{"https://apod.nasa.gov/apod/image/2212/tadpole.jpg", ".jpg"},
		{"https://mars.nasa.gov/msl/FLB_719222451EDR.JPG", ".jpg"},
		{"https://example.com/image.png?size=large", ".png"},
		{"https://example.com/noextension", ""},
		{"https://example.com/", ""},
	}

	for _, test := range tests {
		if got := ExtensionFromURL(test.url); got != test.expected {
			t.Errorf("ExtensionFromURL(%q) = %q, expected %q", test.url, got, test.expected)
		}
	}
}
