package download

// Package download saves a single remote image to the local filesystem. The
// fetch is synchronous and context-aware, streams the body through a progress
// bar, and derives the file extension from the source URL.
