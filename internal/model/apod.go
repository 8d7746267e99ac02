package model

// APOD is a single Astronomy Picture of the Day entry as returned by the
// /planetary/apod endpoint.
type APOD struct {
	Date        string `json:"date"`
	Title       string `json:"title"`
	Explanation string `json:"explanation"`
	MediaType   string `json:"media_type"`
	URL         string `json:"url"`
	HDURL       string `json:"hdurl"`
	Copyright   string `json:"copyright"`
}

// MediaTypeImage is the media_type value for downloadable picture entries.
// APOD occasionally publishes videos, which have no hdurl.
const MediaTypeImage = "image"

// IsImage reports whether the entry is a downloadable picture.
func (a *APOD) IsImage() bool {
	return a.MediaType == MediaTypeImage
}

// ImageURL returns the HD image URL, falling back to the standard URL when
// no HD variant was published.
func (a *APOD) ImageURL() string {
	if a.HDURL != "" {
		return a.HDURL
	}
	return a.URL
}
