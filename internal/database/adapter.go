package database

import (
	"context"
	"fmt"

	"github.com/Rana718/evseed/internal/database/common"
	"github.com/Rana718/evseed/internal/database/memory"
	"github.com/Rana718/evseed/internal/database/mongodb"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	ErrCollectionNotFound = common.ErrCollectionNotFound
	ErrDocumentNotFound   = common.ErrDocumentNotFound
)

// DocumentStore is the byte-level boundary the seeder talks to.
type DocumentStore interface {
	Ping(ctx context.Context) error
	Close(ctx context.Context) error

	// DropCollection returns ErrCollectionNotFound when the collection does not exist.
	DropCollection(ctx context.Context, name string) error

	InsertOne(ctx context.Context, collection string, document interface{}) error
	InsertMany(ctx context.Context, collection string, documents []interface{}) error
	Find(ctx context.Context, collection string, filter, projection bson.M) ([]bson.Raw, error)
	CountDocuments(ctx context.Context, collection string, filter bson.M) (int64, error)

	// PushToArray atomically appends values to an array field of one document.
	// It returns ErrDocumentNotFound when no document has the given id.
	PushToArray(ctx context.Context, collection string, id primitive.ObjectID, field string, values ...interface{}) error
}

type ConnectOptions struct {
	Provider string
	URL      string
	Name     string
}

// Open returns a connected store for the given provider.
func Open(ctx context.Context, opts ConnectOptions) (DocumentStore, error) {
	switch opts.Provider {
	case "memory":
		return memory.New(), nil
	case "mongodb", "mongo", "":
		adapter := mongodb.New()
		if err := adapter.Connect(ctx, opts.URL, opts.Name); err != nil {
			return nil, err
		}
		return adapter, nil
	default:
		return nil, fmt.Errorf("unsupported database provider: %s", opts.Provider)
	}
}

// WithStore opens a store, runs fn with it and closes it on every exit path.
func WithStore(ctx context.Context, opts ConnectOptions, fn func(DocumentStore) error) (err error) {
	store, err := Open(ctx, opts)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer func() {
		if cerr := store.Close(context.Background()); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close database: %w", cerr)
		}
	}()

	return fn(store)
}
