package payload

import (
	"fmt"

	"github.com/prakan/go-content-admin/content"
	"github.com/prakan/go-content-admin/internal/domain"
)

// pairedRange names a two-ended date field whose halves never travel alone:
// when either end is dirty the update emits both. New paired fields are added
// here, not as branches in the walkers.
type pairedRange struct {
	from content.Field
	to   content.Field
}

var pairedRanges = []pairedRange{
	{from: content.FieldEffectiveFrom, to: content.FieldEffectiveTo},
	{from: content.FieldStartDate, to: content.FieldEndDate},
}

// Dirty is the set of draft fields the user changed since the draft loaded.
type Dirty map[content.Field]bool

// BuildCreate assembles the complete multipart payload for a new record: every
// field the draft's category defines, with the full sub-item collection for
// banners.
func BuildCreate(draft content.Draft) (*Payload, error) {
	if !draft.Consistent() {
		return nil, content.ErrDraftCategorySkew
	}

	p := &Payload{}
	p.AddValue(string(content.FieldTitle), draft.Title)
	p.AddValue(string(content.FieldStatus), string(draft.Status))
	p.AddValue(string(content.FieldEffectiveFrom), draft.EffectiveFrom.String())
	p.AddValue(string(content.FieldEffectiveTo), draft.EffectiveTo.String())

	switch draft.Category {
	case domain.CategoryBanner:
		banner := draft.Banner
		addImage(p, string(content.FieldCoverImage), banner.CoverImage)
		p.AddValue(string(content.FieldCoverHyperLink), banner.CoverHyperLink)
		for i, item := range banner.Items {
			addImage(p, itemPath(string(content.FieldContents), i, "contentImage"), item.Image)
			p.AddValue(itemPath(string(content.FieldContents), i, "contentHyperLink"), item.HyperLink)
		}
	case domain.CategoryPromotion:
		promo := draft.Promotion
		addImage(p, string(content.FieldCoverImage), promo.CoverImage)
		p.AddValue(string(content.FieldCoverHyperLink), promo.CoverHyperLink)
		p.AddValue(string(content.FieldTitleTh), promo.TitleTh)
		p.AddValue(string(content.FieldTitleEn), promo.TitleEn)
		p.AddValue(string(content.FieldDescriptionTh), promo.DescriptionTh)
		p.AddValue(string(content.FieldDescriptionEn), promo.DescriptionEn)
		p.AddValue(string(content.FieldStartDate), promo.StartDate.String())
		p.AddValue(string(content.FieldEndDate), promo.EndDate.String())
	case domain.CategoryInsurance:
		ins := draft.Insurance
		addImage(p, string(content.FieldCoverImage), ins.CoverImage)
		addImage(p, string(content.FieldIconImage), ins.IconImage)
		p.AddValue(string(content.FieldTitleTh), ins.TitleTh)
		p.AddValue(string(content.FieldTitleEn), ins.TitleEn)
		p.AddValue(string(content.FieldDescriptionTh), ins.DescriptionTh)
		p.AddValue(string(content.FieldDescriptionEn), ins.DescriptionEn)
		p.AddValue(string(content.FieldStartDate), ins.StartDate.String())
		p.AddValue(string(content.FieldEndDate), ins.EndDate.String())
	case domain.CategorySuitInsurance:
		suit := draft.SuitInsurance
		addImage(p, string(content.FieldImage), suit.Image)
		p.AddValue(string(content.FieldTitleTh), suit.TitleTh)
		p.AddValue(string(content.FieldTitleEn), suit.TitleEn)
	default:
		return nil, &content.UnknownCategoryError{Category: string(draft.Category)}
	}
	return p, nil
}

// BuildUpdate assembles the minimal multipart payload for an edit: only dirty
// fields travel, paired date ranges travel whole when either end changed, and
// banner sub-items diff against the original record into update, create, and
// remove groups.
func BuildUpdate(original content.Record, draft content.Draft, dirty Dirty) (*Payload, error) {
	if draft.ID == "" {
		return nil, content.ErrRecordIDRequired
	}
	if !draft.Consistent() {
		return nil, content.ErrDraftCategorySkew
	}
	if original.Category() != draft.Category {
		return nil, content.ErrDraftCategorySkew
	}

	emit := expandPairs(dirty)

	p := &Payload{}
	if emit[content.FieldTitle] {
		p.AddValue(string(content.FieldTitle), draft.Title)
	}
	if emit[content.FieldStatus] {
		p.AddValue(string(content.FieldStatus), string(draft.Status))
	}
	if emit[content.FieldEffectiveFrom] {
		p.AddValue(string(content.FieldEffectiveFrom), draft.EffectiveFrom.String())
	}
	if emit[content.FieldEffectiveTo] {
		p.AddValue(string(content.FieldEffectiveTo), draft.EffectiveTo.String())
	}

	switch draft.Category {
	case domain.CategoryBanner:
		banner := draft.Banner
		if emit[content.FieldCoverImage] && banner.CoverImage.Pending() {
			addImage(p, string(content.FieldCoverImage), banner.CoverImage)
		}
		if emit[content.FieldCoverHyperLink] {
			p.AddValue(string(content.FieldCoverHyperLink), banner.CoverHyperLink)
		}
		if emit[content.FieldContents] {
			if err := diffBannerItems(p, original, banner.Items); err != nil {
				return nil, err
			}
		}
	case domain.CategoryPromotion:
		promo := draft.Promotion
		if emit[content.FieldCoverImage] && promo.CoverImage.Pending() {
			addImage(p, string(content.FieldCoverImage), promo.CoverImage)
		}
		if emit[content.FieldCoverHyperLink] {
			p.AddValue(string(content.FieldCoverHyperLink), promo.CoverHyperLink)
		}
		if emit[content.FieldTitleTh] {
			p.AddValue(string(content.FieldTitleTh), promo.TitleTh)
		}
		if emit[content.FieldTitleEn] {
			p.AddValue(string(content.FieldTitleEn), promo.TitleEn)
		}
		if emit[content.FieldDescriptionTh] {
			p.AddValue(string(content.FieldDescriptionTh), promo.DescriptionTh)
		}
		if emit[content.FieldDescriptionEn] {
			p.AddValue(string(content.FieldDescriptionEn), promo.DescriptionEn)
		}
		if emit[content.FieldStartDate] {
			p.AddValue(string(content.FieldStartDate), promo.StartDate.String())
		}
		if emit[content.FieldEndDate] {
			p.AddValue(string(content.FieldEndDate), promo.EndDate.String())
		}
	case domain.CategoryInsurance:
		ins := draft.Insurance
		if emit[content.FieldCoverImage] && ins.CoverImage.Pending() {
			addImage(p, string(content.FieldCoverImage), ins.CoverImage)
		}
		if emit[content.FieldIconImage] && ins.IconImage.Pending() {
			addImage(p, string(content.FieldIconImage), ins.IconImage)
		}
		if emit[content.FieldTitleTh] {
			p.AddValue(string(content.FieldTitleTh), ins.TitleTh)
		}
		if emit[content.FieldTitleEn] {
			p.AddValue(string(content.FieldTitleEn), ins.TitleEn)
		}
		if emit[content.FieldDescriptionTh] {
			p.AddValue(string(content.FieldDescriptionTh), ins.DescriptionTh)
		}
		if emit[content.FieldDescriptionEn] {
			p.AddValue(string(content.FieldDescriptionEn), ins.DescriptionEn)
		}
		if emit[content.FieldStartDate] {
			p.AddValue(string(content.FieldStartDate), ins.StartDate.String())
		}
		if emit[content.FieldEndDate] {
			p.AddValue(string(content.FieldEndDate), ins.EndDate.String())
		}
	case domain.CategorySuitInsurance:
		suit := draft.SuitInsurance
		if emit[content.FieldImage] && suit.Image.Pending() {
			addImage(p, string(content.FieldImage), suit.Image)
		}
		if emit[content.FieldTitleTh] {
			p.AddValue(string(content.FieldTitleTh), suit.TitleTh)
		}
		if emit[content.FieldTitleEn] {
			p.AddValue(string(content.FieldTitleEn), suit.TitleEn)
		}
	default:
		return nil, &content.UnknownCategoryError{Category: string(draft.Category)}
	}
	return p, nil
}

// diffBannerItems splits the draft rows against the stored record into the
// three wire groups. Rows keep their stable server id across the session, so
// identity, not position, decides the group:
//
//   - stable id present, image swapped this session -> contentUpdates
//   - no stable id (added this session)             -> contentCreates
//   - stored id missing from the draft              -> contentRemoves
func diffBannerItems(p *Payload, original content.Record, items []content.BannerItemDraft) error {
	banner, ok := original.Banner()
	if !ok {
		return content.ErrDraftCategorySkew
	}

	kept := make(map[string]bool, len(items))
	updates := 0
	creates := 0
	for _, item := range items {
		if item.ID == "" {
			addImage(p, itemPath("contentCreates", creates, "contentImage"), item.Image)
			p.AddValue(itemPath("contentCreates", creates, "contentHyperLink"), item.HyperLink)
			creates++
			continue
		}
		kept[item.ID] = true
		if !item.Image.Pending() {
			continue
		}
		p.AddValue(itemPath("contentUpdates", updates, "id"), item.ID)
		addImage(p, itemPath("contentUpdates", updates, "contentImage"), item.Image)
		p.AddValue(itemPath("contentUpdates", updates, "contentHyperLink"), item.HyperLink)
		updates++
	}

	for _, stored := range banner.Contents {
		if stored.ID == "" || kept[stored.ID] {
			continue
		}
		p.AddValue("contentRemoves", stored.ID)
	}
	return nil
}

// expandPairs widens the dirty set so both halves of a paired range are
// emitted when either end changed.
func expandPairs(dirty Dirty) Dirty {
	emit := make(Dirty, len(dirty))
	for field, set := range dirty {
		if set {
			emit[field] = true
		}
	}
	for _, pair := range pairedRanges {
		if emit[pair.from] || emit[pair.to] {
			emit[pair.from] = true
			emit[pair.to] = true
		}
	}
	return emit
}

func addImage(p *Payload, name string, img content.ImageValue) {
	switch img.State() {
	case content.ImagePending:
		p.AddFile(name, img.Filename(), img.Bytes())
	case content.ImageExisting:
		p.AddValue(name, img.RemotePath())
	}
}

func itemPath(collection string, index int, field string) string {
	return fmt.Sprintf("%s[%d].%s", collection, index, field)
}
