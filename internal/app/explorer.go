package app

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/astroget/nasa-explorer/internal/config"
	"github.com/astroget/nasa-explorer/internal/download"
	"github.com/astroget/nasa-explorer/internal/export"
	"github.com/astroget/nasa-explorer/internal/nasa"
	"github.com/astroget/nasa-explorer/internal/validate"
)

// MarsImageBaseName is the base file name of the first downloaded rover photo.
const MarsImageBaseName = "mars"

// Explorer runs the query operations: validate input, call the API, write
// the result files. Each operation returns the upstream HTTP status code.
type Explorer struct {
	cfg        *config.Settings
	client     *nasa.Client
	exporter   *export.Exporter
	downloader *download.Service
	log        zerolog.Logger
	now        func() time.Time
}

// New wires an Explorer from its services.
func New(cfg *config.Settings, client *nasa.Client, exporter *export.Exporter, downloader *download.Service, log zerolog.Logger) *Explorer {
	return &Explorer{
		cfg:        cfg,
		client:     client,
		exporter:   exporter,
		downloader: downloader,
		log:        log,
		now:        time.Now,
	}
}

// Asteroids fetches the NeoWs feed for the date range and writes
// near_earth_object_data.csv in the output directory.
func (e *Explorer) Asteroids(ctx context.Context, startDate, endDate string) (int, error) {
	if _, _, err := validate.DateRange(startDate, endDate); err != nil {
		return 0, err
	}

	log := e.opLogger("asteroids")
	log.Info().Str("start_date", startDate).Str("end_date", endDate).Msg("fetching near earth objects")

	feed, status, err := e.client.NeoFeed(ctx, startDate, endDate)
	if err != nil {
		return status, err
	}

	path := filepath.Join(e.cfg.OutputDir(), export.NeoCSVFileName)
	if _, err := e.exporter.WriteNeoCSV(path, feed.Records()); err != nil {
		return status, err
	}
	return status, nil
}

// APOD fetches the Astronomy Picture of the Day for a date and saves its HD
// image as fileName plus the extension from the image URL.
func (e *Explorer) APOD(ctx context.Context, date, fileName string) (int, error) {
	if _, err := validate.Date(date); err != nil {
		return 0, err
	}
	if err := validate.FileName(fileName); err != nil {
		return 0, err
	}

	log := e.opLogger("apod")
	log.Info().Str("date", date).Msg("fetching picture of the day")

	apod, status, err := e.client.Apod(ctx, date)
	if err != nil {
		return status, err
	}
	if !apod.IsImage() {
		return status, fmt.Errorf("entry for %s is %q, not an image", date, apod.MediaType)
	}
	imageURL := apod.ImageURL()
	if imageURL == "" {
		return status, fmt.Errorf("entry for %s has no image url", date)
	}

	log.Info().Str("title", apod.Title).Str("url", imageURL).Msg("saving image")
	if _, err := e.downloader.SaveImage(ctx, imageURL, fileName); err != nil {
		return status, err
	}
	return status, nil
}

// MarsPhotos fetches the rover photos taken on the given earth date, writes
// their URLs to fileName, and saves the first photo as mars plus its
// extension. A date with no photos produces an empty URL file and no image.
func (e *Explorer) MarsPhotos(ctx context.Context, fileName, date string) (int, error) {
	if err := validate.TextFileName(fileName); err != nil {
		return 0, err
	}
	if _, err := validate.PastOrPresentDate(date, e.now()); err != nil {
		return 0, err
	}

	log := e.opLogger("mars")
	log.Info().Str("rover", e.cfg.Rover()).Str("earth_date", date).Msg("fetching rover photos")

	photos, status, err := e.client.MarsPhotos(ctx, e.cfg.Rover(), date)
	if err != nil {
		return status, err
	}

	urls := photos.ImageURLs()
	path := filepath.Join(e.cfg.OutputDir(), fileName)
	if _, err := e.exporter.WriteURLList(path, urls); err != nil {
		return status, err
	}

	if len(urls) == 0 {
		log.Info().Msg("no photos for this date, skipping image download")
		return status, nil
	}

	if _, err := e.downloader.SaveImage(ctx, urls[0], MarsImageBaseName); err != nil {
		return status, err
	}
	return status, nil
}

// opLogger tags operation logs with a fresh job id.
func (e *Explorer) opLogger(op string) zerolog.Logger {
	return e.log.With().Str("op", op).Str("job_id", uuid.NewString()).Logger()
}
