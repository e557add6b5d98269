package mongodb

import (
	"context"
	"fmt"
	"strings"

	"github.com/Rana718/evseed/internal/database/common"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Adapter struct {
	client   *mongo.Client
	database *mongo.Database
	dbName   string
}

func New() *Adapter {
	return &Adapter{}
}

// Connect dials the server and pings it. dbName overrides the database named
// in the connection string.
func (a *Adapter) Connect(ctx context.Context, url, dbName string) error {
	if url == "" {
		return fmt.Errorf("empty MongoDB connection string")
	}

	clientOpts := options.Client().ApplyURI(url)
	client, err := mongo.Connect(ctx, clientOpts)
	if err != nil {
		return fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		client.Disconnect(context.Background())
		return fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	if dbName == "" {
		dbName = extractDBName(url, clientOpts)
	}

	a.client = client
	a.database = client.Database(dbName)
	a.dbName = dbName
	return nil
}

func extractDBName(url string, opts *options.ClientOptions) string {
	if idx := strings.Index(url, "://"); idx >= 0 {
		rest := url[idx+3:]
		if slash := strings.Index(rest, "/"); slash >= 0 {
			dbPart := rest[slash+1:]
			if q := strings.Index(dbPart, "?"); q >= 0 {
				dbPart = dbPart[:q]
			}
			if dbPart != "" && dbPart != "admin" {
				return dbPart
			}
		}
	}

	if opts != nil && opts.Auth != nil && opts.Auth.AuthSource != "" && opts.Auth.AuthSource != "admin" {
		return opts.Auth.AuthSource
	}

	return "test"
}

func (a *Adapter) DatabaseName() string {
	return a.dbName
}

func (a *Adapter) Close(ctx context.Context) error {
	if a.client != nil {
		return a.client.Disconnect(ctx)
	}
	return nil
}

func (a *Adapter) Ping(ctx context.Context) error {
	if a.client == nil {
		return common.ErrNotConnected
	}
	return a.client.Ping(ctx, nil)
}

func (a *Adapter) collection(name string) (*mongo.Collection, error) {
	if a.database == nil {
		return nil, common.ErrNotConnected
	}
	return a.database.Collection(name), nil
}

func (a *Adapter) DropCollection(ctx context.Context, name string) error {
	coll, err := a.collection(name)
	if err != nil {
		return err
	}

	// Drop succeeds silently on a missing namespace, so check first to report it.
	names, err := a.database.ListCollectionNames(ctx, bson.M{"name": name})
	if err != nil {
		return fmt.Errorf("failed to list collections: %w", err)
	}
	if len(names) == 0 {
		return fmt.Errorf("%w: %s", common.ErrCollectionNotFound, name)
	}

	if err := coll.Drop(ctx); err != nil {
		return fmt.Errorf("failed to drop %s: %w", name, err)
	}
	return nil
}

func (a *Adapter) InsertOne(ctx context.Context, collection string, document interface{}) error {
	coll, err := a.collection(collection)
	if err != nil {
		return err
	}
	if _, err := coll.InsertOne(ctx, document); err != nil {
		return fmt.Errorf("failed to insert into %s: %w", collection, err)
	}
	return nil
}

func (a *Adapter) InsertMany(ctx context.Context, collection string, documents []interface{}) error {
	if len(documents) == 0 {
		return nil
	}
	coll, err := a.collection(collection)
	if err != nil {
		return err
	}
	if _, err := coll.InsertMany(ctx, documents); err != nil {
		return fmt.Errorf("failed to insert %d documents into %s: %w", len(documents), collection, err)
	}
	return nil
}

func (a *Adapter) Find(ctx context.Context, collection string, filter, projection bson.M) ([]bson.Raw, error) {
	coll, err := a.collection(collection)
	if err != nil {
		return nil, err
	}
	if filter == nil {
		filter = bson.M{}
	}

	opts := options.Find()
	if len(projection) > 0 {
		opts.SetProjection(projection)
	}

	cursor, err := coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", collection, err)
	}
	defer cursor.Close(ctx)

	var results []bson.Raw
	for cursor.Next(ctx) {
		// cursor.Current is reused by the next call
		doc := make(bson.Raw, len(cursor.Current))
		copy(doc, cursor.Current)
		results = append(results, doc)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", collection, err)
	}
	return results, nil
}

func (a *Adapter) CountDocuments(ctx context.Context, collection string, filter bson.M) (int64, error) {
	coll, err := a.collection(collection)
	if err != nil {
		return 0, err
	}
	if filter == nil {
		filter = bson.M{}
	}
	return coll.CountDocuments(ctx, filter)
}

func (a *Adapter) PushToArray(ctx context.Context, collection string, id primitive.ObjectID, field string, values ...interface{}) error {
	if len(values) == 0 {
		return nil
	}
	coll, err := a.collection(collection)
	if err != nil {
		return err
	}

	res, err := coll.UpdateByID(ctx, id, pushUpdate(field, values))
	if err != nil {
		return fmt.Errorf("failed to update %s %s: %w", collection, id.Hex(), err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("%w: %s %s", common.ErrDocumentNotFound, collection, id.Hex())
	}
	return nil
}

func pushUpdate(field string, values []interface{}) bson.M {
	if len(values) == 1 {
		return bson.M{"$push": bson.M{field: values[0]}}
	}
	return bson.M{"$push": bson.M{field: bson.M{"$each": values}}}
}
