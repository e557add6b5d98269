package seeder

import (
	"fmt"
	"time"

	"github.com/Rana718/evseed/internal/domain"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	inclusionsPerPackage = 3
	blockedDayWindow     = 60
	maxBlockedDays       = 5
	eventPastWindow      = 180 * 24 * time.Hour
	eventFutureWindow    = 365 * 24 * time.Hour
)

var eventKinds = []string{"Wedding", "Birthday Party", "Conference", "Gala", "Reunion", "Baby Shower", "Retreat", "Launch Party"}

func NewClient(g *DataGenerator) domain.Client {
	return domain.Client{
		ID:        primitive.NewObjectID(),
		FirstName: g.FirstName(),
		LastName:  g.LastName(),
		Email:     g.Email(),
		Phone:     g.Phone(),
		Avatar:    g.Avatar(),
	}
}

func NewVendor(g *DataGenerator, now time.Time) domain.Vendor {
	return domain.Vendor{
		ID:          primitive.NewObjectID(),
		Name:        g.Company(),
		Email:       g.Email(),
		Phone:       g.Phone(),
		Description: g.Paragraph(),
		Website:     g.URL(),
		Address: domain.Address{
			Street:  g.Street(),
			City:    g.City(),
			State:   g.State(),
			Zip:     g.Zip(),
			Country: g.Country(),
		},
		BlockedDays: newBlockedDays(g, now),
		Permits:     newPermits(g, now),
		Visible:     g.Bool(),
	}
}

func newBlockedDays(g *DataGenerator, now time.Time) []time.Time {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	days := make([]time.Time, blockedDayWindow)
	for i := range days {
		days[i] = today.AddDate(0, 0, i+1)
	}
	return PickSubsetMax(g, days, maxBlockedDays)
}

// newPermits draws each permit type at most once.
func newPermits(g *DataGenerator, now time.Time) []domain.Permit {
	types := PickSubset(g, domain.PermitTypes)
	permits := make([]domain.Permit, 0, len(types))
	for _, t := range types {
		permits = append(permits, domain.Permit{
			Type:      t,
			Verified:  g.Bool(),
			ExpiresAt: now.AddDate(0, 0, g.IntRange(30, 730)),
		})
	}
	return permits
}

// NewTags returns one tag per known tag name.
func NewTags() []domain.Tag {
	tags := make([]domain.Tag, 0, len(domain.TagNames))
	for _, name := range domain.TagNames {
		tags = append(tags, domain.Tag{ID: primitive.NewObjectID(), Name: name})
	}
	return tags
}

// NewVendorPackage builds a package for vendorID. tagIDs may be empty, in
// which case the package carries no tags.
func NewVendorPackage(g *DataGenerator, vendorID primitive.ObjectID, tagIDs []primitive.ObjectID) domain.VendorPackage {
	tags := PickSubset(g, tagIDs)
	if tags == nil {
		tags = []primitive.ObjectID{}
	}

	inclusions := make([]domain.Inclusion, 0, inclusionsPerPackage)
	for i := 0; i < inclusionsPerPackage; i++ {
		inclusions = append(inclusions, domain.Inclusion{
			Name:        fmt.Sprintf("%s %s", g.Adjective(), g.Noun()),
			Description: g.Sentence(8),
			Quantity:    g.IntRange(1, 10),
		})
	}

	return domain.VendorPackage{
		ID:          primitive.NewObjectID(),
		VendorID:    vendorID,
		Name:        fmt.Sprintf("%s %s package", g.Adjective(), g.Noun()),
		Description: g.Paragraph(),
		Price:       g.Price(50, 5000),
		Capacity:    g.IntRange(10, 500),
		OrderTypes:  PickSubset(g, domain.OrderTypes),
		Tags:        tags,
		Inclusions:  inclusions,
	}
}

// NewBudget decides each field on its own coin flip.
func NewBudget(g *DataGenerator) domain.Budget {
	var b domain.Budget
	for _, field := range b.Fields() {
		if g.Bool() {
			v := g.Price(100, 20000)
			*field = &v
		}
	}
	return b
}

func NewEvent(g *DataGenerator, clientID primitive.ObjectID, now time.Time) domain.Event {
	return domain.Event{
		ID:        primitive.NewObjectID(),
		ClientID:  clientID,
		Name:      fmt.Sprintf("%s %s", g.LastName(), Pick(g, eventKinds)),
		Date:      g.Between(now.Add(-eventPastWindow), now.Add(eventFutureWindow)),
		Attendees: g.IntRange(10, 500),
		Budget:    NewBudget(g),
		Bookings:  []primitive.ObjectID{},
	}
}

// NewBooking books pkg for event. The booking date follows DependentDate with
// the event date as anchor.
func NewBooking(g *DataGenerator, event domain.Event, pkg domain.VendorPackage, now time.Time) (domain.Booking, error) {
	status, err := domain.ParseBookingStatus(string(Pick(g, domain.BookingStatuses)))
	if err != nil {
		return domain.Booking{}, err
	}

	return domain.Booking{
		ID:       primitive.NewObjectID(),
		VendorID: pkg.VendorID,
		EventID:  event.ID,
		Date:     DependentDate(g, event.Date, now),
		Status:   status,
		Package:  pkg.Snapshot(),
	}, nil
}

func NewVendorReview(g *DataGenerator, clientID primitive.ObjectID, pkg domain.VendorPackage) domain.VendorReview {
	return domain.VendorReview{
		ID:       primitive.NewObjectID(),
		VendorID: pkg.VendorID,
		ClientID: clientID,
		Rating:   g.IntRange(domain.MinRating, domain.MaxRating),
		Package:  pkg.Snapshot(),
		Comment:  g.Paragraph(),
	}
}
