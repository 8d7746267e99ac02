package app

// Package app ties the services together into the three explorer operations:
// asteroid feed export, picture-of-the-day download, and rover photo listing.
