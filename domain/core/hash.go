package core

import (
	"crypto/sha256"
	"encoding/hex"
)

// Hash represents a cryptographic hash
type Hash string

// NewHash creates a new hash from data
func NewHash(data []byte) Hash {
	sum := sha256.Sum256(data)
	return Hash(hex.EncodeToString(sum[:]))
}

// String returns the string representation
func (h Hash) String() string {
	return string(h)
}

// IsEmpty checks if the hash is empty
func (h Hash) IsEmpty() bool {
	return h == ""
}

// ContentHash identifies a loaded source by its bytes. The loader cache is
// keyed on it so a changed file is never served from a stale entry.
type ContentHash Hash

func NewContentHash(data []byte) ContentHash { return ContentHash(NewHash(data)) }

func (h ContentHash) String() string { return Hash(h).String() }
