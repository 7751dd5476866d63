package importer

import (
	"errors"
	"fmt"
)

// ErrNoItems means the feed parsed but carried no items. It is raised only
// after the ledger row was written, so the attempt stays auditable.
var ErrNoItems = errors.New("no items found in feed")

// ValidationError reports a missing, malformed, or unsupported feed URL.
type ValidationError struct {
	URL string
}

func (e *ValidationError) Error() string {
	if e.URL == "" {
		return "missing feed URL"
	}
	return fmt.Sprintf("invalid or unsupported feed URL: %q", e.URL)
}

// FetchError reports a failure to retrieve or parse the remote feed.
type FetchError struct {
	URL string
	Err error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetching feed %s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// StorageError reports a persistence failure while recording the import or
// saving articles.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}
