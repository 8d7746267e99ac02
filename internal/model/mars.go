package model

// MarsPhotos is the rover photos response for a single earth date.
type MarsPhotos struct {
	Photos []MarsPhoto `json:"photos"`
}

// MarsPhoto is one photo entry with its source URL and capture metadata.
type MarsPhoto struct {
	ID        int        `json:"id"`
	Sol       int        `json:"sol"`
	ImgSrc    string     `json:"img_src"`
	EarthDate string     `json:"earth_date"`
	Camera    MarsCamera `json:"camera"`
	Rover     MarsRover  `json:"rover"`
}

// MarsCamera identifies the rover camera that took a photo.
type MarsCamera struct {
	Name     string `json:"name"`
	FullName string `json:"full_name"`
}

// MarsRover identifies the rover a photo belongs to.
type MarsRover struct {
	Name   string `json:"name"`
	Status string `json:"status"`
}

// ImageURLs returns the source URL of every photo, in feed order.
func (m *MarsPhotos) ImageURLs() []string {
	urls := make([]string, 0, len(m.Photos))
	for _, photo := range m.Photos {
		urls = append(urls, photo.ImgSrc)
	}
	return urls
}
