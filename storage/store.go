// Package storage provides the blob store the ledger persists through.
// A store holds one named blob; the ledger reads and rewrites it whole
// on every mutation.
package storage

import "errors"

// ErrNotFound is returned by Read when the blob has never been written.
// Callers treat it as an empty ledger.
var ErrNotFound = errors.New("storage: blob not found")

type Store interface {
	Read() ([]byte, error)
	Write(data []byte) error
}
