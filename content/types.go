package content

import (
	"encoding/json"
	"fmt"

	"github.com/prakan/go-content-admin/domain"
)

// Summary is the list-view row for any category of content. It is read-only in
// the admin UI except for deletion; reordering happens client-side only.
type Summary struct {
	ID               string          `json:"id"`
	Title            string          `json:"title"`
	Status           domain.Status   `json:"status"`
	Category         domain.Category `json:"category"`
	CategoryRecordID string          `json:"categoryRecordId"`
}

// Common carries the fields shared by every category record.
// Invariant: EffectiveFrom <= EffectiveTo.
type Common struct {
	ID            string          `json:"id"`
	Title         string          `json:"title"`
	Status        domain.Status   `json:"status"`
	Category      domain.Category `json:"category"`
	EffectiveFrom Timestamp       `json:"effectiveFrom"`
	EffectiveTo   Timestamp       `json:"effectiveTo"`
}

// BannerItem is one ordered image+link pair inside a banner. ID is the stable
// server-assigned identifier; it is empty only for items that do not exist on
// the backend yet.
type BannerItem struct {
	ID        string `json:"id"`
	ImagePath string `json:"contentImage"`
	HyperLink string `json:"contentHyperLink"`
}

// Banner is a home-page banner with an ordered collection of content items.
type Banner struct {
	Common
	CoverImagePath string       `json:"coverImage"`
	CoverHyperLink string       `json:"coverHyperLink"`
	Contents       []BannerItem `json:"contents"`
}

// Promotion is a promotional campaign card with bilingual copy and a campaign
// date range.
type Promotion struct {
	Common
	CoverImagePath string    `json:"coverImage"`
	CoverHyperLink string    `json:"coverHyperLink"`
	TitleTh        string    `json:"titleTh"`
	TitleEn        string    `json:"titleEn"`
	DescriptionTh  string    `json:"descriptionTh"`
	DescriptionEn  string    `json:"descriptionEn"`
	StartDate      Timestamp `json:"startDate"`
	EndDate        Timestamp `json:"endDate"`
}

// Insurance is an insurance product card with cover and icon images.
type Insurance struct {
	Common
	CoverImagePath string    `json:"coverImage"`
	IconImagePath  string    `json:"iconImage"`
	TitleTh        string    `json:"titleTh"`
	TitleEn        string    `json:"titleEn"`
	DescriptionTh  string    `json:"descriptionTh"`
	DescriptionEn  string    `json:"descriptionEn"`
	StartDate      Timestamp `json:"startDate"`
	EndDate        Timestamp `json:"endDate"`
}

// SuitInsurance is the reduced card variant: one image and bilingual titles,
// no hyperlink and no date range. The asymmetry with its siblings is
// intentional product behavior, not an omission.
type SuitInsurance struct {
	Common
	ImagePath string `json:"image"`
	TitleTh   string `json:"titleTh"`
	TitleEn   string `json:"titleEn"`
}

// Record is the tagged union over the four category record shapes. Exactly one
// variant is non-nil; Category() is the discriminant. Consumption sites switch
// exhaustively so a new category becomes a compile-time checklist.
type Record struct {
	banner        *Banner
	promotion     *Promotion
	insurance     *Insurance
	suitInsurance *SuitInsurance
}

// BannerRecord wraps a banner into the union.
func BannerRecord(b *Banner) Record {
	return Record{banner: b}
}

// PromotionRecord wraps a promotion into the union.
func PromotionRecord(p *Promotion) Record {
	return Record{promotion: p}
}

// InsuranceRecord wraps an insurance card into the union.
func InsuranceRecord(i *Insurance) Record {
	return Record{insurance: i}
}

// SuitInsuranceRecord wraps a suit-insurance card into the union.
func SuitInsuranceRecord(s *SuitInsurance) Record {
	return Record{suitInsurance: s}
}

// Category returns the union discriminant; the zero Record reports an empty
// category, which fails domain validity checks.
func (r Record) Category() domain.Category {
	switch {
	case r.banner != nil:
		return domain.CategoryBanner
	case r.promotion != nil:
		return domain.CategoryPromotion
	case r.insurance != nil:
		return domain.CategoryInsurance
	case r.suitInsurance != nil:
		return domain.CategorySuitInsurance
	default:
		return domain.Category("")
	}
}

// Banner returns the banner variant when present.
func (r Record) Banner() (*Banner, bool) {
	return r.banner, r.banner != nil
}

// Promotion returns the promotion variant when present.
func (r Record) Promotion() (*Promotion, bool) {
	return r.promotion, r.promotion != nil
}

// Insurance returns the insurance variant when present.
func (r Record) Insurance() (*Insurance, bool) {
	return r.insurance, r.insurance != nil
}

// SuitInsurance returns the suit-insurance variant when present.
func (r Record) SuitInsurance() (*SuitInsurance, bool) {
	return r.suitInsurance, r.suitInsurance != nil
}

// Common returns the shared base fields of whichever variant is populated.
func (r Record) Common() (Common, error) {
	switch {
	case r.banner != nil:
		return r.banner.Common, nil
	case r.promotion != nil:
		return r.promotion.Common, nil
	case r.insurance != nil:
		return r.insurance.Common, nil
	case r.suitInsurance != nil:
		return r.suitInsurance.Common, nil
	default:
		return Common{}, ErrUnknownCategory
	}
}

// MarshalJSON encodes the populated variant directly, so a Record round-trips
// as the category-specific payload the backend speaks.
func (r Record) MarshalJSON() ([]byte, error) {
	switch {
	case r.banner != nil:
		return json.Marshal(r.banner)
	case r.promotion != nil:
		return json.Marshal(r.promotion)
	case r.insurance != nil:
		return json.Marshal(r.insurance)
	case r.suitInsurance != nil:
		return json.Marshal(r.suitInsurance)
	default:
		return nil, ErrUnknownCategory
	}
}

// UnmarshalJSON peeks at the category discriminant and decodes the matching
// variant shape.
func (r *Record) UnmarshalJSON(data []byte) error {
	var peek struct {
		Category domain.Category `json:"category"`
	}
	if err := json.Unmarshal(data, &peek); err != nil {
		return fmt.Errorf("content: decode record: %w", err)
	}

	switch peek.Category {
	case domain.CategoryBanner:
		var b Banner
		if err := json.Unmarshal(data, &b); err != nil {
			return fmt.Errorf("content: decode banner record: %w", err)
		}
		*r = BannerRecord(&b)
	case domain.CategoryPromotion:
		var p Promotion
		if err := json.Unmarshal(data, &p); err != nil {
			return fmt.Errorf("content: decode promotion record: %w", err)
		}
		*r = PromotionRecord(&p)
	case domain.CategoryInsurance:
		var i Insurance
		if err := json.Unmarshal(data, &i); err != nil {
			return fmt.Errorf("content: decode insurance record: %w", err)
		}
		*r = InsuranceRecord(&i)
	case domain.CategorySuitInsurance:
		var s SuitInsurance
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("content: decode suit insurance record: %w", err)
		}
		*r = SuitInsuranceRecord(&s)
	default:
		return &UnknownCategoryError{Category: string(peek.Category)}
	}
	return nil
}
