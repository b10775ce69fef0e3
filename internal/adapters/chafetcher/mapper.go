package chafetcher

import (
	"strings"

	"github.com/antchfx/xmlquery"

	"kheritage-client/internal/adapters/xmltext"
	"kheritage-client/internal/constants"
	"kheritage-client/internal/core/domain"
)

func toSearchResultPage(body []byte) (*domain.SearchResultPage, error) {
	doc, err := xmltext.Parse(body)
	if err != nil {
		return nil, err
	}

	page := &domain.SearchResultPage{}
	if page.Hits, err = xmltext.RequiredInt(doc, "//totalCnt"); err != nil {
		return nil, err
	}
	if page.Limit, err = xmltext.RequiredInt(doc, "//pageUnit"); err != nil {
		return nil, err
	}
	if page.PageIndex, err = xmltext.RequiredInt(doc, "//pageIndex"); err != nil {
		return nil, err
	}

	for _, el := range xmlquery.Find(doc, "//item") {
		item, itemErr := toSearchResultItem(el)
		if itemErr != nil {
			return nil, itemErr
		}
		page.Items = append(page.Items, *item)
	}

	return page, nil
}

// toSearchResultItem maps one <item> of the list response. Every tag is
// mandatory here: the list endpoint always emits the full row.
func toSearchResultItem(el *xmlquery.Node) (*domain.SearchResultItem, error) {
	item := &domain.SearchResultItem{}
	var err error

	if item.Seq, err = xmltext.RequiredInt(el, "sn"); err != nil {
		return nil, err
	}
	if item.UID, err = xmltext.RequiredText(el, "no"); err != nil {
		return nil, err
	}
	if item.Type, err = xmltext.RequiredText(el, "ccmaName"); err != nil {
		return nil, err
	}
	if item.TypeCode, err = xmltext.RequiredText(el, "ccbaKdcd"); err != nil {
		return nil, err
	}
	if item.ManagementNumber, err = xmltext.RequiredText(el, "ccbaAsno"); err != nil {
		return nil, err
	}
	if item.LinkageNumber, err = xmltext.RequiredText(el, "ccbaCpno"); err != nil {
		return nil, err
	}
	if item.Name, err = xmltext.RequiredText(el, "ccbaMnm1"); err != nil {
		return nil, err
	}
	if item.NameHanja, err = xmltext.RequiredText(el, "ccbaMnm2"); err != nil {
		return nil, err
	}
	if item.City, err = xmltext.RequiredText(el, "ccbaCtcdNm"); err != nil {
		return nil, err
	}
	if item.CityCode, err = xmltext.RequiredText(el, "ccbaCtcd"); err != nil {
		return nil, err
	}
	if item.District, err = xmltext.RequiredText(el, "ccsiName"); err != nil {
		return nil, err
	}
	if item.Administrator, err = xmltext.RequiredText(el, "ccbaAdmin"); err != nil {
		return nil, err
	}
	if item.Longitude, err = xmltext.RequiredText(el, "longitude"); err != nil {
		return nil, err
	}
	if item.Latitude, err = xmltext.RequiredText(el, "latitude"); err != nil {
		return nil, err
	}

	canceled, err := xmltext.RequiredText(el, "ccbaCncl")
	if err != nil {
		return nil, err
	}
	item.Canceled = canceled == "Y"

	if item.LastModified, err = xmltext.RequiredTime(el, "regDt"); err != nil {
		return nil, err
	}

	return item, nil
}

// toDetail maps the detail response onto a fresh Detail, carrying the
// preview fields over verbatim. Detail tags are optional: the endpoint
// omits what it does not know.
func toDetail(body []byte, preview *domain.SearchResultItem) (*domain.Detail, error) {
	doc, err := xmltext.Parse(body)
	if err != nil {
		return nil, err
	}

	detail := &domain.Detail{
		UID:          preview.UID,
		Name:         preview.Name,
		NameHanja:    preview.NameHanja,
		City:         preview.City,
		District:     preview.District,
		Canceled:     preview.Canceled,
		LastModified: preview.LastModified,

		Type:           xmltext.OptionalText(doc, "//ccmaName"),
		CategoryLarge:  xmltext.OptionalText(doc, "//gcodeName"),
		CategoryMiddle: xmltext.OptionalText(doc, "//bcodeName"),
		CategorySmall:  xmltext.OptionalText(doc, "//mcodeName"),
		CategoryDetail: xmltext.OptionalText(doc, "//scodeName"),
		Quantity:       xmltext.OptionalText(doc, "//ccbaQuan"),
		Location:       xmltext.OptionalText(doc, "//ccbaLcad"),
		Era:            xmltext.OptionalText(doc, "//ccceName"),
		Owner:          xmltext.OptionalText(doc, "//ccbaPoss"),
		Administrator:  xmltext.OptionalText(doc, "//ccbaAdmin"),
		ThumbnailURL:   xmltext.OptionalText(doc, "//imageUrl"),
		Content:        xmltext.OptionalText(doc, "//content"),
	}

	if raw := xmltext.OptionalText(doc, "//ccbaAsdt"); raw != "" {
		if detail.RegisteredDate, err = xmltext.ParseTime("ccbaAsdt", raw); err != nil {
			return nil, err
		}
	}

	return detail, nil
}

func toImageSet(body []byte) (*domain.ImageSet, error) {
	doc, err := xmltext.Parse(body)
	if err != nil {
		return nil, err
	}

	set := &domain.ImageSet{
		TypeCode:         xmltext.OptionalText(doc, "//ccbaKdcd"),
		ManagementNumber: xmltext.OptionalText(doc, "//ccbaAsno"),
		CityCode:         xmltext.OptionalText(doc, "//ccbaCtcd"),
		Name:             xmltext.OptionalText(doc, "//ccbaMnm1"),
	}

	for _, el := range xmlquery.Find(doc, "//item") {
		img := domain.Image{}
		if img.LicenseCode, err = xmltext.RequiredText(el, "imageNuri"); err != nil {
			return nil, err
		}
		if img.URL, err = xmltext.RequiredText(el, "imageUrl"); err != nil {
			return nil, err
		}
		if img.Description, err = xmltext.RequiredText(el, "ccimDesc"); err != nil {
			return nil, err
		}
		set.Items = append(set.Items, img)
	}

	return set, nil
}

// toVideoSet maps the video response, dropping the upstream "no video"
// placeholder while keeping document order for the rest.
func toVideoSet(body []byte) (*domain.VideoSet, error) {
	doc, err := xmltext.Parse(body)
	if err != nil {
		return nil, err
	}

	set := &domain.VideoSet{
		TypeCode:         xmltext.OptionalText(doc, "//ccbaKdcd"),
		ManagementNumber: xmltext.OptionalText(doc, "//ccbaAsno"),
		CityCode:         xmltext.OptionalText(doc, "//ccbaCtcd"),
		Name:             xmltext.OptionalText(doc, "//ccbaMnm1"),
	}

	for _, el := range xmlquery.Find(doc, "//videoUrl") {
		u := strings.TrimSpace(el.InnerText())
		if u == "" || u == constants.PlaceholderVideoURL {
			continue
		}
		set.URLs = append(set.URLs, u)
	}

	return set, nil
}

func toEvents(body []byte) ([]domain.Event, error) {
	doc, err := xmltext.Parse(body)
	if err != nil {
		return nil, err
	}

	var events []domain.Event
	for _, el := range xmlquery.Find(doc, "//item") {
		event, evErr := toEvent(el)
		if evErr != nil {
			return nil, evErr
		}
		events = append(events, *event)
	}
	return events, nil
}

func toEvent(el *xmlquery.Node) (*domain.Event, error) {
	event := &domain.Event{}
	var err error

	if event.Seq, err = xmltext.RequiredInt(el, "seqNo"); err != nil {
		return nil, err
	}
	if event.SiteCode, err = xmltext.RequiredText(el, "siteCode"); err != nil {
		return nil, err
	}
	if event.Title, err = xmltext.RequiredText(el, "subTitle"); err != nil {
		return nil, err
	}
	if event.Content, err = xmltext.RequiredText(el, "subContent"); err != nil {
		return nil, err
	}
	if event.StartDate, err = xmltext.RequiredTime(el, "sDate"); err != nil {
		return nil, err
	}
	if event.EndDate, err = xmltext.RequiredTime(el, "eDate"); err != nil {
		return nil, err
	}
	if event.Host, err = xmltext.RequiredText(el, "groupName"); err != nil {
		return nil, err
	}
	if event.Contact, err = xmltext.RequiredText(el, "contact"); err != nil {
		return nil, err
	}
	if event.Location, err = xmltext.RequiredText(el, "subDesc"); err != nil {
		return nil, err
	}
	if event.City, err = xmltext.RequiredText(el, "sido"); err != nil {
		return nil, err
	}
	if event.District, err = xmltext.RequiredText(el, "gugun"); err != nil {
		return nil, err
	}

	return event, nil
}
