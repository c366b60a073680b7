package content

import (
	"github.com/google/uuid"

	"github.com/prakan/go-content-admin/domain"
)

// Field names a leaf of the draft for dirty tracking and validation messages.
// Values double as the multipart field names on the wire.
type Field string

const (
	FieldTitle          Field = "title"
	FieldStatus         Field = "status"
	FieldEffectiveFrom  Field = "effectiveFrom"
	FieldEffectiveTo    Field = "effectiveTo"
	FieldCoverImage     Field = "coverImage"
	FieldCoverHyperLink Field = "coverHyperLink"
	FieldContents       Field = "contents"
	FieldTitleTh        Field = "titleTh"
	FieldTitleEn        Field = "titleEn"
	FieldDescriptionTh  Field = "descriptionTh"
	FieldDescriptionEn  Field = "descriptionEn"
	FieldStartDate      Field = "startDate"
	FieldEndDate        Field = "endDate"
	FieldIconImage      Field = "iconImage"
	FieldImage          Field = "image"
)

// Draft is the in-memory, not-yet-submitted form state for one category
// record. Exactly one variant pointer is non-nil and it always matches
// Category; DefaultDraft and DraftFromRecord are the only constructors that
// guarantee this.
//
// Images are ImageValue unions instead of persisted paths, so "user swapped
// this file" survives until the diff builder reads it.
type Draft struct {
	Category domain.Category
	// ID is the backend record identifier; empty in create mode.
	ID            string
	Title         string
	Status        domain.Status
	EffectiveFrom Timestamp
	EffectiveTo   Timestamp

	Banner        *BannerDraft
	Promotion     *PromotionDraft
	Insurance     *InsuranceDraft
	SuitInsurance *SuitInsuranceDraft
}

// BannerDraft holds the banner-specific draft fields.
type BannerDraft struct {
	CoverImage     ImageValue
	CoverHyperLink string
	Items          []BannerItemDraft
}

// BannerItemDraft is one editable image+link row. Key identifies the row
// locally for the lifetime of the edit session; ID is the stable backend
// identifier and stays empty for rows added during this session.
type BannerItemDraft struct {
	Key       uuid.UUID
	ID        string
	Image     ImageValue
	HyperLink string
}

// PromotionDraft holds the promotion-specific draft fields.
type PromotionDraft struct {
	CoverImage     ImageValue
	CoverHyperLink string
	TitleTh        string
	TitleEn        string
	DescriptionTh  string
	DescriptionEn  string
	StartDate      Timestamp
	EndDate        Timestamp
}

// InsuranceDraft holds the insurance-specific draft fields.
type InsuranceDraft struct {
	CoverImage    ImageValue
	IconImage     ImageValue
	TitleTh       string
	TitleEn       string
	DescriptionTh string
	DescriptionEn string
	StartDate     Timestamp
	EndDate       Timestamp
}

// SuitInsuranceDraft holds the suit-insurance draft fields.
type SuitInsuranceDraft struct {
	Image   ImageValue
	TitleTh string
	TitleEn string
}

// NewBannerItemDraft allocates an empty row with a fresh local key.
func NewBannerItemDraft() BannerItemDraft {
	return BannerItemDraft{Key: uuid.New(), Image: NoImage()}
}

// DefaultDraft returns the empty draft for a category. Passing an unknown
// category is a programmer error and panics, mirroring the compile-time intent
// of the union.
func DefaultDraft(category domain.Category) Draft {
	draft := Draft{
		Category: category,
		Status:   domain.StatusActive,
	}
	switch category {
	case domain.CategoryBanner:
		draft.Banner = &BannerDraft{
			CoverImage: NoImage(),
			Items:      []BannerItemDraft{NewBannerItemDraft()},
		}
	case domain.CategoryPromotion:
		draft.Promotion = &PromotionDraft{CoverImage: NoImage()}
	case domain.CategoryInsurance:
		draft.Insurance = &InsuranceDraft{CoverImage: NoImage(), IconImage: NoImage()}
	case domain.CategorySuitInsurance:
		draft.SuitInsurance = &SuitInsuranceDraft{Image: NoImage()}
	default:
		panic("content: default draft for unknown category " + string(category))
	}
	return draft
}

// DraftFromRecord maps a persisted record into an editable draft. Remote image
// paths become existing image values, so the diff builder can tell "kept as
// is" apart from "swapped this session".
func DraftFromRecord(record Record) (Draft, error) {
	common, err := record.Common()
	if err != nil {
		return Draft{}, err
	}
	draft := Draft{
		Category:      common.Category,
		ID:            common.ID,
		Title:         common.Title,
		Status:        common.Status,
		EffectiveFrom: common.EffectiveFrom,
		EffectiveTo:   common.EffectiveTo,
	}

	switch common.Category {
	case domain.CategoryBanner:
		banner, _ := record.Banner()
		items := make([]BannerItemDraft, 0, len(banner.Contents))
		for _, item := range banner.Contents {
			items = append(items, BannerItemDraft{
				Key:       uuid.New(),
				ID:        item.ID,
				Image:     ExistingImage(item.ImagePath),
				HyperLink: item.HyperLink,
			})
		}
		draft.Banner = &BannerDraft{
			CoverImage:     ExistingImage(banner.CoverImagePath),
			CoverHyperLink: banner.CoverHyperLink,
			Items:          items,
		}
	case domain.CategoryPromotion:
		promo, _ := record.Promotion()
		draft.Promotion = &PromotionDraft{
			CoverImage:     ExistingImage(promo.CoverImagePath),
			CoverHyperLink: promo.CoverHyperLink,
			TitleTh:        promo.TitleTh,
			TitleEn:        promo.TitleEn,
			DescriptionTh:  promo.DescriptionTh,
			DescriptionEn:  promo.DescriptionEn,
			StartDate:      promo.StartDate,
			EndDate:        promo.EndDate,
		}
	case domain.CategoryInsurance:
		ins, _ := record.Insurance()
		draft.Insurance = &InsuranceDraft{
			CoverImage:    ExistingImage(ins.CoverImagePath),
			IconImage:     ExistingImage(ins.IconImagePath),
			TitleTh:       ins.TitleTh,
			TitleEn:       ins.TitleEn,
			DescriptionTh: ins.DescriptionTh,
			DescriptionEn: ins.DescriptionEn,
			StartDate:     ins.StartDate,
			EndDate:       ins.EndDate,
		}
	case domain.CategorySuitInsurance:
		suit, _ := record.SuitInsurance()
		draft.SuitInsurance = &SuitInsuranceDraft{
			Image:   ExistingImage(suit.ImagePath),
			TitleTh: suit.TitleTh,
			TitleEn: suit.TitleEn,
		}
	default:
		return Draft{}, &UnknownCategoryError{Category: string(common.Category)}
	}

	return draft, nil
}

// Consistent reports whether exactly the variant matching the category tag is
// populated. Controllers check this on init; a false result is a programmer
// error upstream.
func (d Draft) Consistent() bool {
	populated := 0
	if d.Banner != nil {
		populated++
	}
	if d.Promotion != nil {
		populated++
	}
	if d.Insurance != nil {
		populated++
	}
	if d.SuitInsurance != nil {
		populated++
	}
	if populated != 1 {
		return false
	}
	switch d.Category {
	case domain.CategoryBanner:
		return d.Banner != nil
	case domain.CategoryPromotion:
		return d.Promotion != nil
	case domain.CategoryInsurance:
		return d.Insurance != nil
	case domain.CategorySuitInsurance:
		return d.SuitInsurance != nil
	default:
		return false
	}
}

// Clone deep-copies the draft so snapshots handed to callers cannot alias the
// controller's state.
func (d Draft) Clone() Draft {
	out := d
	if d.Banner != nil {
		banner := *d.Banner
		banner.Items = append([]BannerItemDraft(nil), d.Banner.Items...)
		out.Banner = &banner
	}
	if d.Promotion != nil {
		promo := *d.Promotion
		out.Promotion = &promo
	}
	if d.Insurance != nil {
		ins := *d.Insurance
		out.Insurance = &ins
	}
	if d.SuitInsurance != nil {
		suit := *d.SuitInsurance
		out.SuitInsurance = &suit
	}
	return out
}
