package palacefetcher

import (
	"github.com/antchfx/xmlquery"

	"kheritage-client/internal/adapters/xmltext"
	"kheritage-client/internal/core/domain"
)

// toPalaceItems maps every <list> element of the palace list response.
// List rows carry the full identifier triple; a missing tag is fatal.
func toPalaceItems(body []byte) ([]domain.PalaceSearchResultItem, error) {
	doc, err := xmltext.Parse(body)
	if err != nil {
		return nil, err
	}

	var items []domain.PalaceSearchResultItem
	for _, el := range xmlquery.Find(doc, "//list") {
		item := domain.PalaceSearchResultItem{}
		if item.SerialNumber, err = xmltext.RequiredText(el, "serial_number"); err != nil {
			return nil, err
		}
		if item.PalaceCode, err = xmltext.RequiredText(el, "gung_number"); err != nil {
			return nil, err
		}
		if item.DetailCode, err = xmltext.RequiredText(el, "detail_code"); err != nil {
			return nil, err
		}
		if item.Name, err = xmltext.RequiredText(el, "name_kor"); err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, nil
}

// toPalaceDetail maps the palace detail response onto the preview
// identifiers. Detail tags are optional.
func toPalaceDetail(body []byte, preview *domain.PalaceSearchResultItem) (*domain.PalaceDetail, error) {
	doc, err := xmltext.Parse(body)
	if err != nil {
		return nil, err
	}

	return &domain.PalaceDetail{
		SerialNumber: preview.SerialNumber,
		PalaceCode:   preview.PalaceCode,
		DetailCode:   preview.DetailCode,
		Name:         preview.Name,

		NameEnglish: xmltext.OptionalText(doc, "//name_eng"),
		Content:     xmltext.OptionalText(doc, "//content_ko"),
		ImageURL:    xmltext.OptionalText(doc, "//image_url"),
		AudioURL:    xmltext.OptionalText(doc, "//audio_url"),
	}, nil
}
