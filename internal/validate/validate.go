package validate

import (
	"errors"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
	"time"
)

// DateLayout is the wire format every NASA endpoint accepts for dates.
const DateLayout = "2006-01-02"

// Validation errors returned by this package.
var (
	ErrInvalidDate     = errors.New("invalid date, use YYYY-MM-DD")
	ErrDateOrder       = errors.New("end date must not be before start date")
	ErrFutureDate      = errors.New("date must not be after today")
	ErrInvalidFileName = errors.New("invalid file name")
)

var datePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// Date checks that s is a well-formed YYYY-MM-DD string naming a real
// calendar date.
func Date(s string) (time.Time, error) {
	if !datePattern.MatchString(s) {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return t, nil
}

// DateRange checks both dates and that end does not precede start.
func DateRange(start, end string) (time.Time, time.Time, error) {
	from, err := Date(start)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	to, err := Date(end)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	if from.After(to) {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: %s > %s", ErrDateOrder, start, end)
	}
	return from, to, nil
}

// PastOrPresentDate checks the date and rejects dates after now. The Mars
// rover archive has no photos for future earth dates.
func PastOrPresentDate(s string, now time.Time) (time.Time, error) {
	t, err := Date(s)
	if err != nil {
		return time.Time{}, err
	}
	// Compare calendar dates, not instants: now carries a wall-clock zone
	// while the parsed date is UTC midnight.
	if s > now.Format(DateLayout) {
		return time.Time{}, fmt.Errorf("%w: %q", ErrFutureDate, s)
	}
	return t, nil
}

// FileName rejects empty and all-whitespace names, and names that try to
// escape into another directory.
func FileName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: name is blank", ErrInvalidFileName)
	}
	if name != filepath.Base(name) {
		return fmt.Errorf("%w: %q contains a path separator", ErrInvalidFileName, name)
	}
	return nil
}

// TextFileName checks FileName and requires a .txt extension.
func TextFileName(name string) error {
	if err := FileName(name); err != nil {
		return err
	}
	if strings.ToLower(filepath.Ext(name)) != ".txt" {
		return fmt.Errorf("%w: %q must end with .txt", ErrInvalidFileName, name)
	}
	return nil
}
