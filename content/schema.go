package content

import (
	"fmt"
	"strings"
	"unicode/utf8"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"github.com/prakan/go-content-admin/domain"
)

const (
	// MinTextLength applies to every free-text field (titles, descriptions).
	MinTextLength = 3
	// MinBannerItems and MaxBannerItems bound the banner contents collection.
	MinBannerItems = 1
	MaxBannerItems = 10
)

// ValidateDraft runs the category schema over a draft. It returns nil for a
// valid draft or a validation.Errors map keyed by field path. Validation is
// synchronous and total over user input; a draft whose category tag does not
// match its populated variant is a programmer error and panics.
func ValidateDraft(d Draft) error {
	if !d.Consistent() {
		panic(fmt.Sprintf("content: validate draft with inconsistent category %q", d.Category))
	}

	errs := validation.Errors{}
	validateCommon(d, errs)

	switch d.Category {
	case domain.CategoryBanner:
		validateBanner(d.Banner, errs)
	case domain.CategoryPromotion:
		validatePromotion(d.Promotion, errs)
	case domain.CategoryInsurance:
		validateInsurance(d.Insurance, errs)
	case domain.CategorySuitInsurance:
		validateSuitInsurance(d.SuitInsurance, errs)
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func validateCommon(d Draft, errs validation.Errors) {
	if textTooShort(d.Title) {
		errs["title"] = validation.NewError(
			"admin.content.title_too_short",
			fmt.Sprintf("title must be at least %d characters", MinTextLength))
	}
	if !d.Status.Valid() {
		errs["status"] = validation.NewError(
			"admin.content.status_invalid",
			"status must be ACTIVE or INACTIVE")
	}
	if err := rangeError(d.EffectiveFrom, d.EffectiveTo, "effective period"); err != nil {
		errs["effectivePeriod"] = err
	}
}

func validateBanner(b *BannerDraft, errs validation.Errors) {
	if !b.CoverImage.IsSet() {
		errs["coverImage"] = validation.NewError(
			"admin.content.banner.cover_image_required",
			"cover image is required")
	}
	if !validHyperLink(b.CoverHyperLink) {
		errs["coverHyperLink"] = validation.NewError(
			"admin.content.banner.cover_hyperlink_invalid",
			"cover hyperlink must be a well-formed URL")
	}
	if len(b.Items) < MinBannerItems || len(b.Items) > MaxBannerItems {
		errs["contents"] = validation.NewError(
			"admin.content.banner.contents_length",
			fmt.Sprintf("banner requires between %d and %d content items", MinBannerItems, MaxBannerItems))
	}
	for i, item := range b.Items {
		if !item.Image.IsSet() {
			errs[fmt.Sprintf("contents[%d].contentImage", i)] = validation.NewError(
				"admin.content.banner.content_image_required",
				"content image is required")
		}
		if !validHyperLink(item.HyperLink) {
			errs[fmt.Sprintf("contents[%d].contentHyperLink", i)] = validation.NewError(
				"admin.content.banner.content_hyperlink_invalid",
				"content hyperlink must be a well-formed URL")
		}
	}
}

func validatePromotion(p *PromotionDraft, errs validation.Errors) {
	if !p.CoverImage.IsSet() {
		errs["coverImage"] = validation.NewError(
			"admin.content.promotion.cover_image_required",
			"cover image is required")
	}
	if !validHyperLink(p.CoverHyperLink) {
		errs["coverHyperLink"] = validation.NewError(
			"admin.content.promotion.cover_hyperlink_invalid",
			"cover hyperlink must be a well-formed URL")
	}
	validateBilingual(p.TitleTh, p.TitleEn, p.DescriptionTh, p.DescriptionEn, "promotion", errs)
	if err := rangeError(p.StartDate, p.EndDate, "date period"); err != nil {
		errs["datePeriod"] = err
	}
}

func validateInsurance(i *InsuranceDraft, errs validation.Errors) {
	if !i.CoverImage.IsSet() {
		errs["coverImage"] = validation.NewError(
			"admin.content.insurance.cover_image_required",
			"cover image is required")
	}
	if !i.IconImage.IsSet() {
		errs["iconImage"] = validation.NewError(
			"admin.content.insurance.icon_image_required",
			"icon image is required")
	}
	validateBilingual(i.TitleTh, i.TitleEn, i.DescriptionTh, i.DescriptionEn, "insurance", errs)
	if err := rangeError(i.StartDate, i.EndDate, "date period"); err != nil {
		errs["datePeriod"] = err
	}
}

// Suit-insurance deliberately skips hyperlink and date-range rules; the
// siblings' symmetry does not apply to this category.
func validateSuitInsurance(s *SuitInsuranceDraft, errs validation.Errors) {
	if !s.Image.IsSet() {
		errs["image"] = validation.NewError(
			"admin.content.suit_insurance.image_required",
			"image is required")
	}
	if textTooShort(s.TitleTh) {
		errs["titleTh"] = validation.NewError(
			"admin.content.suit_insurance.title_th_too_short",
			fmt.Sprintf("Thai title must be at least %d characters", MinTextLength))
	}
	if textTooShort(s.TitleEn) {
		errs["titleEn"] = validation.NewError(
			"admin.content.suit_insurance.title_en_too_short",
			fmt.Sprintf("English title must be at least %d characters", MinTextLength))
	}
}

func validateBilingual(titleTh, titleEn, descTh, descEn, category string, errs validation.Errors) {
	checks := []struct {
		key   string
		value string
		label string
	}{
		{"titleTh", titleTh, "Thai title"},
		{"titleEn", titleEn, "English title"},
		{"descriptionTh", descTh, "Thai description"},
		{"descriptionEn", descEn, "English description"},
	}
	for _, check := range checks {
		if textTooShort(check.value) {
			errs[check.key] = validation.NewError(
				fmt.Sprintf("admin.content.%s.%s_too_short", category, snake(check.key)),
				fmt.Sprintf("%s must be at least %d characters", check.label, MinTextLength))
		}
	}
}

// rangeError enforces "both ends present, start <= end"; equal endpoints
// (same day) are allowed.
func rangeError(from, to Timestamp, label string) error {
	switch {
	case from.IsZero() || to.IsZero():
		return validation.NewError(
			"admin.content.range_required",
			fmt.Sprintf("%s requires both a start and an end", label))
	case from.After(to.Time):
		return validation.NewError(
			"admin.content.range_order",
			fmt.Sprintf("%s start must not be after its end", label))
	default:
		return nil
	}
}

func validHyperLink(link string) bool {
	return validation.Validate(strings.TrimSpace(link), validation.Required, is.URL) == nil
}

// Length is counted in runes, not bytes; Thai text is multi-byte per
// character.
func textTooShort(value string) bool {
	return utf8.RuneCountInString(strings.TrimSpace(value)) < MinTextLength
}

func snake(field string) string {
	var out strings.Builder
	for i, r := range field {
		if r >= 'A' && r <= 'Z' {
			if i > 0 {
				out.WriteByte('_')
			}
			out.WriteRune(r - 'A' + 'a')
		} else {
			out.WriteRune(r)
		}
	}
	return out.String()
}
