package seeder

import (
	"context"
	"errors"

	"github.com/Rana718/evseed/internal/database"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// BackRefs accumulates dependent ids per owner, keeping owners in first-seen order.
type BackRefs struct {
	owners []primitive.ObjectID
	ids    map[primitive.ObjectID][]primitive.ObjectID
}

func NewBackRefs() *BackRefs {
	return &BackRefs{ids: make(map[primitive.ObjectID][]primitive.ObjectID)}
}

func (b *BackRefs) Add(owner, id primitive.ObjectID) {
	if _, ok := b.ids[owner]; !ok {
		b.owners = append(b.owners, owner)
	}
	b.ids[owner] = append(b.ids[owner], id)
}

func (b *BackRefs) Owners() []primitive.ObjectID {
	return b.owners
}

func (b *BackRefs) IDs(owner primitive.ObjectID) []primitive.ObjectID {
	return b.ids[owner]
}

// Linker appends dependent ids to an array field on owner documents. Both
// shapes use the store's atomic push, never a read-modify-write.
type Linker struct {
	store      database.DocumentStore
	collection string
	field      string
}

func NewLinker(store database.DocumentStore, collection, field string) *Linker {
	return &Linker{store: store, collection: collection, field: field}
}

// LinkBatch writes every owner's accumulated ids with one update per owner.
// Call it only after all dependents in refs have been inserted.
func (l *Linker) LinkBatch(ctx context.Context, refs *BackRefs) error {
	for _, owner := range refs.Owners() {
		ids := refs.IDs(owner)
		values := make([]interface{}, len(ids))
		for i, id := range ids {
			values[i] = id
		}
		if err := l.push(ctx, owner, values...); err != nil {
			return err
		}
	}
	return nil
}

// Link appends a single id to owner. Safe for concurrent use.
func (l *Linker) Link(ctx context.Context, owner, id primitive.ObjectID) error {
	return l.push(ctx, owner, id)
}

func (l *Linker) push(ctx context.Context, owner primitive.ObjectID, values ...interface{}) error {
	err := l.store.PushToArray(ctx, l.collection, owner, l.field, values...)
	if errors.Is(err, database.ErrDocumentNotFound) {
		return &ReferenceError{Collection: l.collection, ID: owner.Hex()}
	}
	return err
}
