// Package blobstore provides the durable named-blob store backing the
// in-memory collections. Each key maps to one opaque value; callers own the
// serialization.
package blobstore

import "errors"

var ErrNotFound = errors.New("blob not found")

type Store interface {
	Get(key string) ([]byte, error)
	Put(key string, value []byte) error
	Delete(key string) error
	Close() error
}
