package services

import (
	"encoding/json"
	"fmt"

	"github.com/communityguardian/core/internal/store"
)

// loadCollection decodes a named collection into out. It reports found=false
// when the collection has never been written, leaving out untouched.
func loadCollection(s store.Store, name string, out any) (bool, error) {
	payload, found, err := s.Load(name)
	if err != nil {
		return false, err
	}
	if !found || payload == "" {
		return false, nil
	}
	if err := json.Unmarshal([]byte(payload), out); err != nil {
		return false, fmt.Errorf("decode %s: %w", name, err)
	}
	return true, nil
}

// saveCollection serializes v and writes it as the whole collection.
func saveCollection(s store.Store, name string, v any) error {
	payload, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", name, err)
	}
	return s.Save(name, string(payload))
}
