package common

import (
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
)

var (
	ErrCollectionNotFound = errors.New("collection not found")
	ErrDocumentNotFound   = errors.New("document not found")
	ErrNotConnected       = errors.New("database not connected")
)

// DecodeAll unmarshals raw documents returned by a store into typed values.
func DecodeAll[T any](raws []bson.Raw) ([]T, error) {
	out := make([]T, 0, len(raws))
	for i, raw := range raws {
		var v T
		if err := bson.Unmarshal(raw, &v); err != nil {
			return nil, fmt.Errorf("failed to decode document %d: %w", i, err)
		}
		out = append(out, v)
	}
	return out, nil
}
