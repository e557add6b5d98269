package seeder

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Rana718/evseed/internal/database"
	"github.com/Rana718/evseed/internal/database/common"
	"github.com/Rana718/evseed/internal/domain"
	"github.com/fatih/color"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/sync/errgroup"
)

var idProjection = bson.M{"_id": 1}

type Seeder struct {
	store     database.DocumentStore
	generator *DataGenerator
	plan      Plan
	clock     func() time.Time
	now       time.Time
}

type Option func(*Seeder)

func WithGenerator(g *DataGenerator) Option {
	return func(s *Seeder) { s.generator = g }
}

func WithClock(clock func() time.Time) Option {
	return func(s *Seeder) { s.clock = clock }
}

func NewSeeder(store database.DocumentStore, plan Plan, opts ...Option) *Seeder {
	s := &Seeder{
		store: store,
		plan:  plan,
		clock: time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.generator == nil {
		s.generator = NewDataGenerator(0)
	}
	return s
}

// Run drops the plan's collections and seeds every enabled phase. Any failure
// aborts the run; documents written by earlier phases are left in place.
func (s *Seeder) Run(ctx context.Context) error {
	if err := s.plan.Validate(); err != nil {
		return fmt.Errorf("invalid seed plan: %w", err)
	}
	// stored dates have millisecond precision
	s.now = s.clock().Truncate(time.Millisecond)

	color.Cyan("🌱 Starting database seeding...")

	graph := NewPhaseGraph()
	enabled := make(map[PhaseName]PhaseSpec)
	for _, ph := range s.plan.Enabled() {
		graph.AddPhase(ph.Name, phases[ph.Name].dependsOn...)
		enabled[ph.Name] = ph
	}
	order, err := graph.BuildOrder()
	if err != nil {
		return fmt.Errorf("failed to build phase order: %w", err)
	}

	names := make([]string, len(order))
	for i, name := range order {
		names[i] = string(name)
	}
	color.Cyan("📋 Phase order: %s", strings.Join(names, " → "))
	fmt.Println()

	if err := s.dropCollections(ctx); err != nil {
		return err
	}

	for _, name := range order {
		if err := s.runPhase(ctx, enabled[name]); err != nil {
			return fmt.Errorf("seed %s: %w", name, err)
		}
	}

	if err := s.summarize(ctx, order); err != nil {
		return err
	}

	color.Green("\n✅ Database seeding completed successfully!")
	return nil
}

func (s *Seeder) dropCollections(ctx context.Context) error {
	if len(s.plan.Drop) == 0 {
		return nil
	}
	color.Yellow("🗑️  Dropping collections...")

	for _, name := range s.plan.Drop {
		err := s.store.DropCollection(ctx, name)
		switch {
		case errors.Is(err, database.ErrCollectionNotFound):
			color.Yellow("  ⚠️  %s does not exist, skipping", name)
		case err != nil:
			return fmt.Errorf("failed to drop %s: %w", name, err)
		default:
			color.Green("  ✅ %s dropped", name)
		}
	}
	fmt.Println()
	return nil
}

func (s *Seeder) runPhase(ctx context.Context, spec PhaseSpec) error {
	switch spec.Name {
	case PhaseClients:
		return s.seedClients(ctx, spec)
	case PhaseVendors:
		return s.seedVendors(ctx, spec)
	case PhaseTags:
		return s.seedTags(ctx)
	case PhaseEvents:
		return s.seedEvents(ctx, spec)
	case PhasePackages:
		return s.seedPackages(ctx, spec)
	case PhaseBookings:
		return s.seedBookings(ctx, spec)
	case PhaseReviews:
		return s.seedReviews(ctx, spec)
	default:
		return fmt.Errorf("unknown seed phase: %s", spec.Name)
	}
}

func (s *Seeder) insert(ctx context.Context, collection string, docs []interface{}) error {
	color.Cyan("  📝 Seeding %s (%d documents)...", collection, len(docs))
	if err := s.store.InsertMany(ctx, collection, docs); err != nil {
		return err
	}
	color.Green("  ✅ %s seeded successfully", collection)
	return nil
}

func (s *Seeder) seedClients(ctx context.Context, spec PhaseSpec) error {
	docs := make([]interface{}, 0, spec.Count)
	for i := 0; i < spec.Count; i++ {
		docs = append(docs, NewClient(s.generator))
	}
	return s.insert(ctx, domain.CollectionUsers, docs)
}

func (s *Seeder) seedVendors(ctx context.Context, spec PhaseSpec) error {
	docs := make([]interface{}, 0, spec.Count)
	for i := 0; i < spec.Count; i++ {
		docs = append(docs, NewVendor(s.generator, s.now))
	}
	return s.insert(ctx, domain.CollectionVendors, docs)
}

func (s *Seeder) seedTags(ctx context.Context) error {
	tags := NewTags()
	docs := make([]interface{}, 0, len(tags))
	for _, tag := range tags {
		docs = append(docs, tag)
	}
	return s.insert(ctx, domain.CollectionTags, docs)
}

func (s *Seeder) seedEvents(ctx context.Context, spec PhaseSpec) error {
	clientIDs, err := s.loadIDs(ctx, domain.CollectionUsers, true)
	if err != nil {
		return err
	}

	docs := make([]interface{}, 0, spec.Count)
	for i := 0; i < spec.Count; i++ {
		docs = append(docs, NewEvent(s.generator, Pick(s.generator, clientIDs), s.now))
	}
	return s.insert(ctx, domain.CollectionEvents, docs)
}

func (s *Seeder) seedPackages(ctx context.Context, spec PhaseSpec) error {
	vendorIDs, err := s.loadIDs(ctx, domain.CollectionVendors, true)
	if err != nil {
		return err
	}
	// Packages may be untagged when no tags exist.
	tagIDs, err := s.loadIDs(ctx, domain.CollectionTags, false)
	if err != nil {
		return err
	}

	docs := make([]interface{}, 0, len(vendorIDs)*spec.Count)
	for _, vendorID := range vendorIDs {
		for i := 0; i < spec.Count; i++ {
			docs = append(docs, NewVendorPackage(s.generator, vendorID, tagIDs))
		}
	}
	return s.insert(ctx, domain.CollectionVendorPackages, docs)
}

func (s *Seeder) seedBookings(ctx context.Context, spec PhaseSpec) error {
	events, err := s.loadEvents(ctx)
	if err != nil {
		return err
	}
	packages, err := s.loadPackages(ctx)
	if err != nil {
		return err
	}

	bookings := make([]domain.Booking, 0, spec.Count)
	for i := 0; i < spec.Count; i++ {
		b, err := NewBooking(s.generator, Pick(s.generator, events), Pick(s.generator, packages), s.now)
		if err != nil {
			return err
		}
		bookings = append(bookings, b)
	}

	linker := NewLinker(s.store, domain.CollectionEvents, "bookings")
	if spec.Link == LinkEach {
		return s.insertAndLinkEach(ctx, linker, bookings)
	}
	return s.insertAndLinkBatch(ctx, linker, bookings)
}

func (s *Seeder) insertAndLinkBatch(ctx context.Context, linker *Linker, bookings []domain.Booking) error {
	refs := NewBackRefs()
	docs := make([]interface{}, 0, len(bookings))
	for _, b := range bookings {
		docs = append(docs, b)
		refs.Add(b.EventID, b.ID)
	}

	if err := s.insert(ctx, domain.CollectionBookings, docs); err != nil {
		return err
	}
	if err := linker.LinkBatch(ctx, refs); err != nil {
		return fmt.Errorf("failed to link bookings: %w", err)
	}
	color.Green("  🔗 linked bookings to %d events", len(refs.Owners()))
	return nil
}

// insertAndLinkEach writes bookings concurrently. Several bookings may share
// an event, so each link is a single atomic push.
func (s *Seeder) insertAndLinkEach(ctx context.Context, linker *Linker, bookings []domain.Booking) error {
	color.Cyan("  📝 Seeding %s (%d documents, %d at a time)...", domain.CollectionBookings, len(bookings), s.plan.Concurrency)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.plan.Concurrency)
	for _, b := range bookings {
		g.Go(func() error {
			if err := s.store.InsertOne(gctx, domain.CollectionBookings, b); err != nil {
				return err
			}
			if err := linker.Link(gctx, b.EventID, b.ID); err != nil {
				return fmt.Errorf("failed to link booking %s: %w", b.ID.Hex(), err)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	color.Green("  ✅ %s seeded and linked", domain.CollectionBookings)
	return nil
}

func (s *Seeder) seedReviews(ctx context.Context, spec PhaseSpec) error {
	clientIDs, err := s.loadIDs(ctx, domain.CollectionUsers, true)
	if err != nil {
		return err
	}
	packages, err := s.loadPackages(ctx)
	if err != nil {
		return err
	}

	docs := make([]interface{}, 0, spec.Count)
	for i := 0; i < spec.Count; i++ {
		docs = append(docs, NewVendorReview(s.generator, Pick(s.generator, clientIDs), Pick(s.generator, packages)))
	}
	return s.insert(ctx, domain.CollectionVendorReviews, docs)
}

type idOnly struct {
	ID primitive.ObjectID `bson:"_id"`
}

func (s *Seeder) loadIDs(ctx context.Context, collection string, required bool) ([]primitive.ObjectID, error) {
	raws, err := s.store.Find(ctx, collection, nil, idProjection)
	if err != nil {
		return nil, err
	}
	docs, err := common.DecodeAll[idOnly](raws)
	if err != nil {
		return nil, err
	}
	if required && len(docs) == 0 {
		return nil, &ReferenceError{Collection: collection}
	}

	ids := make([]primitive.ObjectID, len(docs))
	for i, d := range docs {
		ids[i] = d.ID
	}
	return ids, nil
}

func (s *Seeder) loadEvents(ctx context.Context) ([]domain.Event, error) {
	raws, err := s.store.Find(ctx, domain.CollectionEvents, nil, bson.M{"_id": 1, "date": 1})
	if err != nil {
		return nil, err
	}
	events, err := common.DecodeAll[domain.Event](raws)
	if err != nil {
		return nil, err
	}
	if len(events) == 0 {
		return nil, &ReferenceError{Collection: domain.CollectionEvents}
	}
	return events, nil
}

func (s *Seeder) loadPackages(ctx context.Context) ([]domain.VendorPackage, error) {
	raws, err := s.store.Find(ctx, domain.CollectionVendorPackages, nil, nil)
	if err != nil {
		return nil, err
	}
	packages, err := common.DecodeAll[domain.VendorPackage](raws)
	if err != nil {
		return nil, err
	}
	if len(packages) == 0 {
		return nil, &ReferenceError{Collection: domain.CollectionVendorPackages}
	}
	return packages, nil
}

// FindEvent resolves one event by id.
func (s *Seeder) FindEvent(ctx context.Context, id primitive.ObjectID) (domain.Event, error) {
	raws, err := s.store.Find(ctx, domain.CollectionEvents, bson.M{"_id": id}, nil)
	if err != nil {
		return domain.Event{}, err
	}
	events, err := common.DecodeAll[domain.Event](raws)
	if err != nil {
		return domain.Event{}, err
	}
	if len(events) == 0 {
		return domain.Event{}, &ReferenceError{Collection: domain.CollectionEvents, ID: id.Hex()}
	}
	return events[0], nil
}

// BookEvent creates and links one booking for an existing event. It is the
// per-entity path used outside a full run.
func (s *Seeder) BookEvent(ctx context.Context, eventID primitive.ObjectID) (domain.Booking, error) {
	if s.now.IsZero() {
		s.now = s.clock().Truncate(time.Millisecond)
	}
	event, err := s.FindEvent(ctx, eventID)
	if err != nil {
		return domain.Booking{}, err
	}
	packages, err := s.loadPackages(ctx)
	if err != nil {
		return domain.Booking{}, err
	}

	b, err := NewBooking(s.generator, event, Pick(s.generator, packages), s.now)
	if err != nil {
		return domain.Booking{}, err
	}
	if err := s.store.InsertOne(ctx, domain.CollectionBookings, b); err != nil {
		return domain.Booking{}, err
	}
	linker := NewLinker(s.store, domain.CollectionEvents, "bookings")
	if err := linker.Link(ctx, event.ID, b.ID); err != nil {
		return domain.Booking{}, err
	}
	return b, nil
}

// summarize prints the document count of every seeded collection.
func (s *Seeder) summarize(ctx context.Context, order []PhaseName) error {
	fmt.Println()
	color.Cyan("📊 Collection counts:")
	for _, name := range order {
		collection := phases[name].collection
		n, err := s.store.CountDocuments(ctx, collection, nil)
		if err != nil {
			return fmt.Errorf("failed to count %s: %w", collection, err)
		}
		color.White("  %-15s %d", collection, n)
	}
	return nil
}
