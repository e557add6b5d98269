package domain

import (
	"errors"
	"fmt"
)

var ErrInvalidValue = errors.New("invalid value")

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "PENDING"
	BookingStatusConfirmed BookingStatus = "CONFIRMED"
	BookingStatusCancelled BookingStatus = "CANCELLED"
	BookingStatusCompleted BookingStatus = "COMPLETED"
)

var BookingStatuses = []BookingStatus{
	BookingStatusPending,
	BookingStatusConfirmed,
	BookingStatusCancelled,
	BookingStatusCompleted,
}

func (s BookingStatus) Valid() bool {
	for _, v := range BookingStatuses {
		if s == v {
			return true
		}
	}
	return false
}

func ParseBookingStatus(s string) (BookingStatus, error) {
	status := BookingStatus(s)
	if !status.Valid() {
		return "", fmt.Errorf("%w: booking status %q", ErrInvalidValue, s)
	}
	return status, nil
}

// PermitType is the category of a vendor credential. A vendor holds at most
// one permit per type.
type PermitType string

const (
	PermitBusinessLicense    PermitType = "BUSINESS_LICENSE"
	PermitFoodHandling       PermitType = "FOOD_HANDLING"
	PermitLiquorLicense      PermitType = "LIQUOR_LICENSE"
	PermitLiabilityInsurance PermitType = "LIABILITY_INSURANCE"
)

var PermitTypes = []PermitType{
	PermitBusinessLicense,
	PermitFoodHandling,
	PermitLiquorLicense,
	PermitLiabilityInsurance,
}

func (p PermitType) Valid() bool {
	for _, v := range PermitTypes {
		if p == v {
			return true
		}
	}
	return false
}

func ParsePermitType(s string) (PermitType, error) {
	permit := PermitType(s)
	if !permit.Valid() {
		return "", fmt.Errorf("%w: permit type %q", ErrInvalidValue, s)
	}
	return permit, nil
}

type OrderType string

const (
	OrderPerPerson OrderType = "PER_PERSON"
	OrderFlatRate  OrderType = "FLAT_RATE"
	OrderHourly    OrderType = "HOURLY"
)

var OrderTypes = []OrderType{OrderPerPerson, OrderFlatRate, OrderHourly}

func (o OrderType) Valid() bool {
	for _, v := range OrderTypes {
		if o == v {
			return true
		}
	}
	return false
}

func ParseOrderType(s string) (OrderType, error) {
	order := OrderType(s)
	if !order.Valid() {
		return "", fmt.Errorf("%w: order type %q", ErrInvalidValue, s)
	}
	return order, nil
}

type TagName string

const (
	TagWedding     TagName = "WEDDING"
	TagBirthday    TagName = "BIRTHDAY"
	TagCorporate   TagName = "CORPORATE"
	TagOutdoor     TagName = "OUTDOOR"
	TagCatering    TagName = "CATERING"
	TagMusic       TagName = "MUSIC"
	TagPhotography TagName = "PHOTOGRAPHY"
	TagDecor       TagName = "DECOR"
)

var TagNames = []TagName{
	TagWedding,
	TagBirthday,
	TagCorporate,
	TagOutdoor,
	TagCatering,
	TagMusic,
	TagPhotography,
	TagDecor,
}

func (t TagName) Valid() bool {
	for _, v := range TagNames {
		if t == v {
			return true
		}
	}
	return false
}
