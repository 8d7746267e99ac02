package model

// Package model defines the NASA API payload types used across the app: APOD
// entries, the NeoWs asteroid feed, and Mars rover photo listings, plus the
// flattened record shapes the exporters consume.
