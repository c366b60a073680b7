package domain

import "strings"

// Category identifies the content family a record belongs to. The value is
// immutable once a record exists; edit flows must never change it.
type Category string

const (
	CategoryBanner        Category = "BANNER"
	CategoryPromotion     Category = "PROMOTION"
	CategoryInsurance     Category = "INSURANCE"
	CategorySuitInsurance Category = "SUIT_INSURANCE"

	// CategoryAll is a list-filter value only; no record carries it.
	CategoryAll Category = "ALL"
)

// Categories lists every concrete content category in display order.
func Categories() []Category {
	return []Category{
		CategoryBanner,
		CategoryPromotion,
		CategoryInsurance,
		CategorySuitInsurance,
	}
}

// Valid reports whether the category names a concrete content family.
func (c Category) Valid() bool {
	switch c {
	case CategoryBanner, CategoryPromotion, CategoryInsurance, CategorySuitInsurance:
		return true
	default:
		return false
	}
}

// ValidFilter reports whether the category can be used as a list filter.
func (c Category) ValidFilter() bool {
	return c == CategoryAll || c.Valid()
}

// Path returns the REST resource segment for the category.
func (c Category) Path() string {
	switch c {
	case CategoryBanner:
		return "banners"
	case CategoryPromotion:
		return "promotions"
	case CategoryInsurance:
		return "insurances"
	case CategorySuitInsurance:
		return "suit-insurances"
	default:
		return ""
	}
}

func (c Category) String() string {
	return string(c)
}

// ParseCategory coerces arbitrary input into a known category value. Unknown
// input yields the zero Category, which fails Valid().
func ParseCategory(input string) Category {
	candidate := Category(strings.ToUpper(strings.TrimSpace(input)))
	if candidate.ValidFilter() {
		return candidate
	}
	return Category("")
}

// Status represents visibility states for content records.
type Status string

const (
	StatusActive   Status = "ACTIVE"
	StatusInactive Status = "INACTIVE"
)

// Valid reports whether the status carries a known value.
func (s Status) Valid() bool {
	return s == StatusActive || s == StatusInactive
}

func (s Status) String() string {
	return string(s)
}

// ParseStatus coerces arbitrary input into a known status value. Unknown input
// yields the zero Status, which fails Valid().
func ParseStatus(input string) Status {
	candidate := Status(strings.ToUpper(strings.TrimSpace(input)))
	if candidate.Valid() {
		return candidate
	}
	return Status("")
}
