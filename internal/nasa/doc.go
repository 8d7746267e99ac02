package nasa

// Package nasa is the REST client for NASA's public APIs: the Astronomy
// Picture of the Day, the NeoWs asteroid feed, and the Mars Rover Photos
// archive. Every operation issues a single GET and reports the upstream
// HTTP status code alongside the decoded payload.
