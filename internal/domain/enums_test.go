package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBookingStatus(t *testing.T) {
	for _, want := range BookingStatuses {
		got, err := ParseBookingStatus(string(want))
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := ParseBookingStatus("pending")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidValue))
}

func TestParsePermitType(t *testing.T) {
	assert.Len(t, PermitTypes, 4)
	for _, want := range PermitTypes {
		got, err := ParsePermitType(string(want))
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := ParsePermitType("FISHING")
	assert.ErrorIs(t, err, ErrInvalidValue)
}

func TestParseOrderType(t *testing.T) {
	got, err := ParseOrderType("HOURLY")
	require.NoError(t, err)
	assert.Equal(t, OrderHourly, got)

	_, err = ParseOrderType("")
	assert.ErrorIs(t, err, ErrInvalidValue)
}

func TestTagNamesAreUpperCase(t *testing.T) {
	for _, name := range TagNames {
		assert.True(t, name.Valid())
		for _, r := range name {
			assert.False(t, r >= 'a' && r <= 'z', "tag %s has lower-case rune", name)
		}
	}
	assert.False(t, TagName("wedding").Valid())
}

func TestPackageSnapshotCopiesSlices(t *testing.T) {
	pkg := VendorPackage{
		Name:       "gold",
		Price:      10.5,
		OrderTypes: []OrderType{OrderFlatRate},
		Inclusions: []Inclusion{{Name: "cake", Quantity: 1}},
	}
	snap := pkg.Snapshot()
	pkg.OrderTypes[0] = OrderHourly
	pkg.Inclusions[0].Quantity = 9

	assert.Equal(t, OrderFlatRate, snap.OrderTypes[0])
	assert.Equal(t, 1, snap.Inclusions[0].Quantity)
	assert.Equal(t, "gold", snap.Name)
}
