package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Collection names of the seeded schema.
const (
	CollectionUsers          = "users"
	CollectionVendors        = "vendors"
	CollectionVendorPackages = "vendorPackages"
	CollectionVendorReviews  = "vendorReviews"
	CollectionEvents         = "events"
	CollectionBookings       = "bookings"
	CollectionTags           = "tags"
)

// Collections lists every collection the seeder owns, in drop order.
var Collections = []string{
	CollectionUsers,
	CollectionVendors,
	CollectionVendorPackages,
	CollectionVendorReviews,
	CollectionEvents,
	CollectionBookings,
	CollectionTags,
}

// Client is stored in the users collection.
type Client struct {
	ID        primitive.ObjectID `bson:"_id" json:"id"`
	FirstName string             `bson:"firstName" json:"firstName"`
	LastName  string             `bson:"lastName" json:"lastName"`
	Email     string             `bson:"email" json:"email"`
	Phone     string             `bson:"phone" json:"phone"`
	Avatar    string             `bson:"avatar" json:"avatar"`
}

type Address struct {
	Street  string `bson:"street" json:"street"`
	City    string `bson:"city" json:"city"`
	State   string `bson:"state" json:"state"`
	Zip     string `bson:"zip" json:"zip"`
	Country string `bson:"country" json:"country"`
}

type Permit struct {
	Type      PermitType `bson:"type" json:"type"`
	Verified  bool       `bson:"verified" json:"verified"`
	ExpiresAt time.Time  `bson:"expiresAt" json:"expiresAt"`
}

type Vendor struct {
	ID          primitive.ObjectID `bson:"_id" json:"id"`
	Name        string             `bson:"name" json:"name"`
	Email       string             `bson:"email" json:"email"`
	Phone       string             `bson:"phone" json:"phone"`
	Description string             `bson:"description" json:"description"`
	Website     string             `bson:"website" json:"website"`
	Address     Address            `bson:"address" json:"address"`
	BlockedDays []time.Time        `bson:"blockedDays" json:"blockedDays"`
	Permits     []Permit           `bson:"permits" json:"permits"`
	Visible     bool               `bson:"visible" json:"visible"`
}

type Tag struct {
	ID   primitive.ObjectID `bson:"_id" json:"id"`
	Name TagName            `bson:"name" json:"name"`
}

// Inclusion is one good or service bundled into a package.
type Inclusion struct {
	Name        string `bson:"name" json:"name"`
	Description string `bson:"description" json:"description"`
	Quantity    int    `bson:"quantity" json:"quantity"`
}

type VendorPackage struct {
	ID          primitive.ObjectID   `bson:"_id" json:"id"`
	VendorID    primitive.ObjectID   `bson:"vendorId" json:"vendorId"`
	Name        string               `bson:"name" json:"name"`
	Description string               `bson:"description" json:"description"`
	Price       float64              `bson:"price" json:"price"`
	Capacity    int                  `bson:"capacity" json:"capacity"`
	OrderTypes  []OrderType          `bson:"orderTypes" json:"orderTypes"`
	Tags        []primitive.ObjectID `bson:"tags" json:"tags"`
	Inclusions  []Inclusion          `bson:"inclusions" json:"inclusions"`
}

// Snapshot copies the fields a booking or review embeds.
func (p VendorPackage) Snapshot() PackageSnapshot {
	return PackageSnapshot{
		PackageID:  p.ID,
		Name:       p.Name,
		Price:      p.Price,
		Capacity:   p.Capacity,
		OrderTypes: append([]OrderType(nil), p.OrderTypes...),
		Inclusions: append([]Inclusion(nil), p.Inclusions...),
	}
}

// PackageSnapshot is a package as it was when a booking or review was made.
type PackageSnapshot struct {
	PackageID  primitive.ObjectID `bson:"packageId" json:"packageId"`
	Name       string             `bson:"name" json:"name"`
	Price      float64            `bson:"price" json:"price"`
	Capacity   int                `bson:"capacity" json:"capacity"`
	OrderTypes []OrderType        `bson:"orderTypes" json:"orderTypes"`
	Inclusions []Inclusion        `bson:"inclusions" json:"inclusions"`
}

// Budget fields are independently present or null.
type Budget struct {
	Venue         *float64 `bson:"venue" json:"venue"`
	Catering      *float64 `bson:"catering" json:"catering"`
	Decor         *float64 `bson:"decor" json:"decor"`
	Entertainment *float64 `bson:"entertainment" json:"entertainment"`
	Photography   *float64 `bson:"photography" json:"photography"`
	Attire        *float64 `bson:"attire" json:"attire"`
	Miscellaneous *float64 `bson:"miscellaneous" json:"miscellaneous"`
}

// Fields returns pointers to every budget field in declaration order.
func (b *Budget) Fields() []**float64 {
	return []**float64{
		&b.Venue,
		&b.Catering,
		&b.Decor,
		&b.Entertainment,
		&b.Photography,
		&b.Attire,
		&b.Miscellaneous,
	}
}

type Event struct {
	ID        primitive.ObjectID   `bson:"_id" json:"id"`
	ClientID  primitive.ObjectID   `bson:"clientId" json:"clientId"`
	Name      string               `bson:"name" json:"name"`
	Date      time.Time            `bson:"date" json:"date"`
	Attendees int                  `bson:"attendees" json:"attendees"`
	Budget    Budget               `bson:"budget" json:"budget"`
	Bookings  []primitive.ObjectID `bson:"bookings" json:"bookings"`
}

type Booking struct {
	ID       primitive.ObjectID `bson:"_id" json:"id"`
	VendorID primitive.ObjectID `bson:"vendorId" json:"vendorId"`
	EventID  primitive.ObjectID `bson:"eventId" json:"eventId"`
	Date     time.Time          `bson:"date" json:"date"`
	Status   BookingStatus      `bson:"status" json:"status"`
	Package  PackageSnapshot    `bson:"package" json:"package"`
}

const (
	MinRating = 1
	MaxRating = 5
)

type VendorReview struct {
	ID       primitive.ObjectID `bson:"_id" json:"id"`
	VendorID primitive.ObjectID `bson:"vendorId" json:"vendorId"`
	ClientID primitive.ObjectID `bson:"clientId" json:"clientId"`
	Rating   int                `bson:"rating" json:"rating"`
	Package  PackageSnapshot    `bson:"package" json:"package"`
	Comment  string             `bson:"comment" json:"comment"`
}
