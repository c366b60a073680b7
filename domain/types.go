package domain

import internaldomain "github.com/prakan/go-content-admin/internal/domain"

// Category identifies the content family a record belongs to.
type Category = internaldomain.Category

const (
	// CategoryBanner identifies home-page banner records.
	CategoryBanner = internaldomain.CategoryBanner
	// CategoryPromotion identifies promotional campaign records.
	CategoryPromotion = internaldomain.CategoryPromotion
	// CategoryInsurance identifies insurance product card records.
	CategoryInsurance = internaldomain.CategoryInsurance
	// CategorySuitInsurance identifies "suit insurance" card records.
	CategorySuitInsurance = internaldomain.CategorySuitInsurance
	// CategoryAll is the list filter matching every category.
	CategoryAll = internaldomain.CategoryAll
)

// Status represents visibility states for content records.
type Status = internaldomain.Status

const (
	// StatusActive marks content visible on the public site.
	StatusActive = internaldomain.StatusActive
	// StatusInactive marks content retained but hidden from the public site.
	StatusInactive = internaldomain.StatusInactive
)

// Categories lists every concrete content category in display order.
func Categories() []Category {
	return internaldomain.Categories()
}

// ParseCategory coerces arbitrary input into a known category value.
func ParseCategory(input string) Category {
	return internaldomain.ParseCategory(input)
}

// ParseStatus coerces arbitrary input into a known status value.
func ParseStatus(input string) Status {
	return internaldomain.ParseStatus(input)
}
