package storage

import "errors"

var (
	// ErrRecordNotFound is returned when a record does not exist in the store
	ErrRecordNotFound = errors.New("record not found")

	// ErrItemNotFound is returned when a queue item does not exist
	ErrItemNotFound = errors.New("queue item not found")

	// ErrStorageClosed is returned when operating on a closed store
	ErrStorageClosed = errors.New("storage is closed")
)
