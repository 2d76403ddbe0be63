// Package analytics provides a privacy-first page-view counter.
// Visitor IPs are only ever stored as a salted hash; the salt is
// generated once per installation and kept in the database.
package analytics

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sync"
)

// salt holds the per-installation random salt for IP hashing, protected
// by sync.Once.
var salt struct {
	once  sync.Once
	value string
}

// InitSalt loads or generates a persistent salt for IP hashing.
// Must be called once at startup before any requests are served.
func InitSalt(store *Store) error {
	var initErr error
	salt.once.Do(func() {
		s, err := store.GetSetting("hash_salt")
		if err != nil {
			initErr = fmt.Errorf("read hash salt: %w", err)
			return
		}
		if s == "" {
			b := make([]byte, 32)
			if _, err := rand.Read(b); err != nil {
				initErr = fmt.Errorf("generate salt: %w", err)
				return
			}
			s = hex.EncodeToString(b)
			if err := store.SetSetting("hash_salt", s); err != nil {
				initErr = fmt.Errorf("store hash salt: %w", err)
				return
			}
		}
		salt.value = s
	})
	return initErr
}

// HashIP returns the salted hash under which a visitor IP is stored.
func HashIP(ip string) string {
	sum := sha256.Sum256([]byte(salt.value + ip))
	return hex.EncodeToString(sum[:])
}

// PathCount is the visit count for one page path.
type PathCount struct {
	Path  string
	Count int64
}

// DayCount is the visit count for one calendar day (YYYY-MM-DD).
type DayCount struct {
	Day   string
	Count int64
}

// Summary aggregates the dashboard numbers.
type Summary struct {
	Total    int64
	Today    int64
	TopPaths []PathCount
	Days     []DayCount
}
