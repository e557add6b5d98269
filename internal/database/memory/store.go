// Package memory is an in-process document store used for dry runs and tests.
// Documents are kept as marshalled BSON so reads see exactly what a real
// server would return.
package memory

import (
	"context"
	"fmt"
	"reflect"
	"sync"

	"github.com/Rana718/evseed/internal/database/common"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Store struct {
	mu          sync.Mutex
	collections map[string][]bson.Raw
}

func New() *Store {
	return &Store{collections: make(map[string][]bson.Raw)}
}

func (s *Store) Ping(ctx context.Context) error  { return nil }
func (s *Store) Close(ctx context.Context) error { return nil }

func (s *Store) DropCollection(ctx context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.collections[name]; !ok {
		return fmt.Errorf("%w: %s", common.ErrCollectionNotFound, name)
	}
	delete(s.collections, name)
	return nil
}

func (s *Store) InsertOne(ctx context.Context, collection string, document interface{}) error {
	return s.InsertMany(ctx, collection, []interface{}{document})
}

// InsertMany is all-or-nothing: every document is marshalled before any is stored.
func (s *Store) InsertMany(ctx context.Context, collection string, documents []interface{}) error {
	raws := make([]bson.Raw, 0, len(documents))
	for i, doc := range documents {
		raw, err := bson.Marshal(doc)
		if err != nil {
			return fmt.Errorf("failed to marshal document %d for %s: %w", i, collection, err)
		}
		if _, err := bson.Raw(raw).LookupErr("_id"); err != nil {
			return fmt.Errorf("document %d for %s has no _id", i, collection)
		}
		raws = append(raws, raw)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.collections[collection] = append(s.collections[collection], raws...)
	return nil
}

func (s *Store) Find(ctx context.Context, collection string, filter, projection bson.M) ([]bson.Raw, error) {
	s.mu.Lock()
	docs := append([]bson.Raw(nil), s.collections[collection]...)
	s.mu.Unlock()

	var results []bson.Raw
	for _, raw := range docs {
		ok, err := matches(raw, filter)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		out, err := project(raw, projection)
		if err != nil {
			return nil, err
		}
		results = append(results, out)
	}
	return results, nil
}

func (s *Store) CountDocuments(ctx context.Context, collection string, filter bson.M) (int64, error) {
	found, err := s.Find(ctx, collection, filter, nil)
	if err != nil {
		return 0, err
	}
	return int64(len(found)), nil
}

// PushToArray holds the store lock for the whole read-modify-write, which is
// what makes it atomic for concurrent callers.
func (s *Store) PushToArray(ctx context.Context, collection string, id primitive.ObjectID, field string, values ...interface{}) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	docs := s.collections[collection]
	for i, raw := range docs {
		var doc bson.D
		if err := bson.Unmarshal(raw, &doc); err != nil {
			return err
		}
		if !hasID(doc, id) {
			continue
		}

		updated, err := appendField(doc, field, values)
		if err != nil {
			return fmt.Errorf("failed to update %s %s: %w", collection, id.Hex(), err)
		}
		out, err := bson.Marshal(updated)
		if err != nil {
			return err
		}
		docs[i] = out
		return nil
	}
	return fmt.Errorf("%w: %s %s", common.ErrDocumentNotFound, collection, id.Hex())
}

func hasID(doc bson.D, id primitive.ObjectID) bool {
	for _, e := range doc {
		if e.Key == "_id" {
			oid, ok := e.Value.(primitive.ObjectID)
			return ok && oid == id
		}
	}
	return false
}

func appendField(doc bson.D, field string, values []interface{}) (bson.D, error) {
	for i, e := range doc {
		if e.Key != field {
			continue
		}
		switch arr := e.Value.(type) {
		case primitive.A:
			doc[i].Value = append(arr, values...)
		case nil:
			doc[i].Value = primitive.A(values)
		default:
			return nil, fmt.Errorf("field %s is %T, not an array", field, e.Value)
		}
		return doc, nil
	}
	return append(doc, bson.E{Key: field, Value: primitive.A(values)}), nil
}

// matches supports top-level equality and {"$in": [...]} conditions.
func matches(raw bson.Raw, filter bson.M) (bool, error) {
	if len(filter) == 0 {
		return true, nil
	}

	var doc bson.M
	if err := bson.Unmarshal(raw, &doc); err != nil {
		return false, err
	}

	for key, cond := range filter {
		got, present := doc[key]
		if op, ok := cond.(bson.M); ok {
			in, ok := op["$in"]
			if !ok || len(op) != 1 {
				return false, fmt.Errorf("unsupported filter operator on %s", key)
			}
			if !present || !containsValue(in, got) {
				return false, nil
			}
			continue
		}
		if !present || !reflect.DeepEqual(got, cond) {
			return false, nil
		}
	}
	return true, nil
}

func containsValue(list interface{}, v interface{}) bool {
	rv := reflect.ValueOf(list)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return false
	}
	for i := 0; i < rv.Len(); i++ {
		if reflect.DeepEqual(rv.Index(i).Interface(), v) {
			return true
		}
	}
	return false
}

// project keeps _id plus every field set to a truthy value in projection.
func project(raw bson.Raw, projection bson.M) (bson.Raw, error) {
	if len(projection) == 0 {
		return raw, nil
	}

	var doc bson.D
	if err := bson.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}

	out := bson.D{}
	for _, e := range doc {
		if e.Key == "_id" || included(projection[e.Key]) {
			out = append(out, e)
		}
	}
	b, err := bson.Marshal(out)
	if err != nil {
		return nil, err
	}
	return b, nil
}

func included(v interface{}) bool {
	switch x := v.(type) {
	case bool:
		return x
	case int:
		return x != 0
	case int32:
		return x != 0
	case int64:
		return x != 0
	default:
		return false
	}
}
