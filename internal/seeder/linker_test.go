package seeder

import (
	"context"
	"sync"
	"testing"

	"github.com/Rana718/evseed/internal/database/common"
	"github.com/Rana718/evseed/internal/database/memory"
	"github.com/Rana718/evseed/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func insertEvents(t *testing.T, store *memory.Store, n int) []primitive.ObjectID {
	t.Helper()
	g := NewDataGenerator(1)
	ids := make([]primitive.ObjectID, n)
	docs := make([]interface{}, n)
	for i := range ids {
		e := NewEvent(g, primitive.NewObjectID(), testNow)
		ids[i] = e.ID
		docs[i] = e
	}
	require.NoError(t, store.InsertMany(context.Background(), domain.CollectionEvents, docs))
	return ids
}

func eventBookings(t *testing.T, store *memory.Store, id primitive.ObjectID) []primitive.ObjectID {
	t.Helper()
	raws, err := store.Find(context.Background(), domain.CollectionEvents, bson.M{"_id": id}, nil)
	require.NoError(t, err)
	events, err := common.DecodeAll[domain.Event](raws)
	require.NoError(t, err)
	require.Len(t, events, 1)
	return events[0].Bookings
}

func TestBackRefsKeepsFirstSeenOrder(t *testing.T) {
	a, b := primitive.NewObjectID(), primitive.NewObjectID()
	x, y, z := primitive.NewObjectID(), primitive.NewObjectID(), primitive.NewObjectID()

	refs := NewBackRefs()
	refs.Add(b, x)
	refs.Add(a, y)
	refs.Add(b, z)

	assert.Equal(t, []primitive.ObjectID{b, a}, refs.Owners())
	assert.Equal(t, []primitive.ObjectID{x, z}, refs.IDs(b))
	assert.Equal(t, []primitive.ObjectID{y}, refs.IDs(a))
}

func TestLinkBatch(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	events := insertEvents(t, store, 3)

	refs := NewBackRefs()
	want := make(map[primitive.ObjectID][]primitive.ObjectID)
	for i := 0; i < 9; i++ {
		owner := events[i%2]
		id := primitive.NewObjectID()
		refs.Add(owner, id)
		want[owner] = append(want[owner], id)
	}

	linker := NewLinker(store, domain.CollectionEvents, "bookings")
	require.NoError(t, linker.LinkBatch(ctx, refs))

	assert.Equal(t, want[events[0]], eventBookings(t, store, events[0]))
	assert.Equal(t, want[events[1]], eventBookings(t, store, events[1]))
	assert.Empty(t, eventBookings(t, store, events[2]))
}

func TestLinkConcurrentNoLostUpdates(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	events := insertEvents(t, store, 2)
	linker := NewLinker(store, domain.CollectionEvents, "bookings")

	var mu sync.Mutex
	want := make(map[primitive.ObjectID][]primitive.ObjectID)
	var wg sync.WaitGroup
	for i := 0; i < 40; i++ {
		owner := events[i%2]
		id := primitive.NewObjectID()
		mu.Lock()
		want[owner] = append(want[owner], id)
		mu.Unlock()

		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, linker.Link(ctx, owner, id))
		}()
	}
	wg.Wait()

	for _, owner := range events {
		assert.ElementsMatch(t, want[owner], eventBookings(t, store, owner))
	}
}

func TestLinkMissingOwner(t *testing.T) {
	linker := NewLinker(memory.New(), domain.CollectionEvents, "bookings")
	err := linker.Link(context.Background(), primitive.NewObjectID(), primitive.NewObjectID())

	var refErr *ReferenceError
	require.ErrorAs(t, err, &refErr)
	assert.Equal(t, domain.CollectionEvents, refErr.Collection)
	assert.ErrorIs(t, err, ErrReferenceNotFound)
}
