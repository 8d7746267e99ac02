package export

// Package export writes query results to local files: the near earth object
// CSV and the Mars photo URL list. Writers create or truncate their target
// and report how many rows they wrote.
