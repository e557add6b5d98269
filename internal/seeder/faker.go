package seeder

import (
	"fmt"
	"math"
	"time"

	"github.com/brianvoe/gofakeit/v7"
)

// DataGenerator is the random-value source every factory draws from.
// It is not safe for concurrent use.
type DataGenerator struct {
	faker *gofakeit.Faker
	seed  uint64
}

// NewDataGenerator returns a generator seeded with seed, or with a random
// seed when seed is 0.
func NewDataGenerator(seed uint64) *DataGenerator {
	return &DataGenerator{
		faker: gofakeit.New(seed),
		seed:  seed,
	}
}

func (g *DataGenerator) Seed() uint64 {
	return g.seed
}

// Intn returns a uniform int in [0, n). n must be positive.
func (g *DataGenerator) Intn(n int) int {
	return g.faker.Number(0, n-1)
}

// IntRange returns a uniform int in [min, max].
func (g *DataGenerator) IntRange(min, max int) int {
	return g.faker.Number(min, max)
}

// Price returns a value in [min, max] rounded to two decimals.
func (g *DataGenerator) Price(min, max float64) float64 {
	return math.Round(g.faker.Float64Range(min, max)*100) / 100
}

func (g *DataGenerator) Bool() bool {
	return g.faker.Bool()
}

// Pick returns one element of items. items must not be empty.
func Pick[T any](g *DataGenerator, items []T) T {
	return items[g.Intn(len(items))]
}

func (g *DataGenerator) FirstName() string {
	return g.faker.FirstName()
}

func (g *DataGenerator) LastName() string {
	return g.faker.LastName()
}

func (g *DataGenerator) Email() string {
	return g.faker.Email()
}

func (g *DataGenerator) Phone() string {
	return g.faker.Phone()
}

func (g *DataGenerator) Company() string {
	return g.faker.Company()
}

func (g *DataGenerator) URL() string {
	return g.faker.URL()
}

func (g *DataGenerator) Avatar() string {
	return fmt.Sprintf("https://i.pravatar.cc/300?u=%d", g.IntRange(1, 1000000))
}

func (g *DataGenerator) Street() string {
	return g.faker.Street()
}

func (g *DataGenerator) City() string {
	return g.faker.City()
}

func (g *DataGenerator) State() string {
	return g.faker.State()
}

func (g *DataGenerator) Zip() string {
	return g.faker.Zip()
}

func (g *DataGenerator) Country() string {
	return g.faker.Country()
}

func (g *DataGenerator) Word() string {
	return g.faker.Word()
}

func (g *DataGenerator) Adjective() string {
	return g.faker.Adjective()
}

func (g *DataGenerator) Noun() string {
	return g.faker.Noun()
}

func (g *DataGenerator) Sentence(words int) string {
	return g.faker.Sentence(words)
}

func (g *DataGenerator) Paragraph() string {
	return g.faker.Paragraph(1, g.IntRange(2, 4), 12, " ")
}

// Offset returns a uniform duration in [0, d). d must be positive.
func (g *DataGenerator) Offset(d time.Duration) time.Duration {
	return time.Duration(g.faker.Number(0, int(d-1)))
}

// Between returns a uniform time in [from, to). to must be after from.
func (g *DataGenerator) Between(from, to time.Time) time.Time {
	return from.Add(g.Offset(to.Sub(from)))
}

// PastDate returns a time between one and 365 days before now.
func (g *DataGenerator) PastDate(now time.Time) time.Time {
	days := g.IntRange(1, 365)
	return now.AddDate(0, 0, -days).Add(-g.Offset(24 * time.Hour))
}
