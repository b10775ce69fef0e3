package domain

import (
	"strconv"
	"strings"
	"time"

	"github.com/mmcloughlin/geohash"
)

const geohashPrecision = 5

// SearchResultItem is one row of a paged heritage search. Every field
// is mandatory in the upstream XML; the mapper fails when one is absent.
type SearchResultItem struct {
	Seq              int    // sn
	UID              string // no
	Type             string // ccmaName
	TypeCode         string // ccbaKdcd
	ManagementNumber string // ccbaAsno
	LinkageNumber    string // ccbaCpno
	Name             string // ccbaMnm1
	NameHanja        string // ccbaMnm2
	City             string // ccbaCtcdNm
	CityCode         string // ccbaCtcd
	District         string // ccsiName
	Administrator    string // ccbaAdmin
	Longitude        string
	Latitude         string
	Canceled         bool // ccbaCncl
	LastModified     time.Time // regDt
}

func (i *SearchResultItem) Fields() []Field {
	return []Field{
		{"seq", i.Seq},
		{"uid", i.UID},
		{"type", i.Type},
		{"type_code", i.TypeCode},
		{"management_number", i.ManagementNumber},
		{"linkage_number", i.LinkageNumber},
		{"name", i.Name},
		{"name_hanja", i.NameHanja},
		{"city", i.City},
		{"city_code", i.CityCode},
		{"district", i.District},
		{"administrator", i.Administrator},
		{"longitude", i.Longitude},
		{"latitude", i.Latitude},
		{"canceled", i.Canceled},
		{"last_modified", i.LastModified},
	}
}

func (i *SearchResultItem) String() string { return FormatRecord("Heritage Item", i) }

// Geohash returns a precision-5 geohash of the item coordinates, or an
// empty string when the coordinates do not parse.
func (i *SearchResultItem) Geohash() string {
	lat, latErr := strconv.ParseFloat(i.Latitude, 64)
	lon, lonErr := strconv.ParseFloat(i.Longitude, 64)
	if latErr != nil || lonErr != nil {
		return ""
	}
	return geohash.EncodeWithPrecision(lat, lon, geohashPrecision)
}

// SearchResultPage is the paged container of a heritage search.
type SearchResultPage struct {
	Hits      int // totalCnt
	Limit     int // pageUnit
	PageIndex int // pageIndex
	Items     []SearchResultItem
}

// Pages reports the page count the upstream pagination exposes. The
// upstream formula over-counts by one when Hits is an exact multiple of
// Limit; kept as-is for wire compatibility.
func (p *SearchResultPage) Pages() int {
	return p.Hits/p.Limit + 1
}

func (p *SearchResultPage) Len() int { return len(p.Items) }

func (p *SearchResultPage) Fields() []Field {
	return []Field{
		{"hits", p.Hits},
		{"limit", p.Limit},
		{"page_index", p.PageIndex},
		{"pages", p.Pages()},
		{"items", p.Len()},
	}
}

// String renders the page header followed by every item on the page.
func (p *SearchResultPage) String() string {
	var b strings.Builder
	b.WriteString(FormatRecord("Heritage Search Result", p))
	for i := range p.Items {
		b.WriteString("\n")
		b.WriteString(p.Items[i].String())
	}
	return b.String()
}

// Detail merges the preview fields of the originating search item with
// the richer fields of the detail endpoint. Detail-endpoint fields are
// optional: a missing tag yields a zero value, never an error.
type Detail struct {
	// Copied verbatim from the preview item.
	UID          string
	Name         string
	NameHanja    string
	City         string
	District     string
	Canceled     bool
	LastModified time.Time

	// Fetched from the detail endpoint.
	Type           string    // ccmaName
	CategoryLarge  string    // gcodeName
	CategoryMiddle string    // bcodeName
	CategorySmall  string    // mcodeName
	CategoryDetail string    // scodeName
	Quantity       string    // ccbaQuan
	RegisteredDate time.Time // ccbaAsdt
	Location       string    // ccbaLcad
	Era            string    // ccceName
	Owner          string    // ccbaPoss
	Administrator  string    // ccbaAdmin
	ThumbnailURL   string    // imageUrl
	Content        string    // content
}

func (d *Detail) Fields() []Field {
	return []Field{
		{"uid", d.UID},
		{"name", d.Name},
		{"name_hanja", d.NameHanja},
		{"city", d.City},
		{"district", d.District},
		{"canceled", d.Canceled},
		{"last_modified", d.LastModified},
		{"type", d.Type},
		{"category_large", d.CategoryLarge},
		{"category_middle", d.CategoryMiddle},
		{"category_small", d.CategorySmall},
		{"category_detail", d.CategoryDetail},
		{"quantity", d.Quantity},
		{"registered_date", d.RegisteredDate},
		{"location", d.Location},
		{"era", d.Era},
		{"owner", d.Owner},
		{"administrator", d.Administrator},
		{"thumbnail_url", d.ThumbnailURL},
		{"content", d.Content},
	}
}

func (d *Detail) String() string { return FormatRecord("Heritage Detail", d) }

// Image is one licensed image of a heritage item. All tags mandatory.
type Image struct {
	LicenseCode string // imageNuri
	URL         string // imageUrl
	Description string // ccimDesc
}

func (m *Image) Fields() []Field {
	return []Field{
		{"license_code", m.LicenseCode},
		{"url", m.URL},
		{"description", m.Description},
	}
}

func (m *Image) String() string { return FormatRecord("Heritage Image", m) }

// ImageSet carries the images of one item plus the optional container
// metadata the endpoint repeats from the query.
type ImageSet struct {
	TypeCode         string // ccbaKdcd
	ManagementNumber string // ccbaAsno
	CityCode         string // ccbaCtcd
	Name             string // ccbaMnm1
	Items            []Image
}

func (s *ImageSet) Len() int { return len(s.Items) }

func (s *ImageSet) Fields() []Field {
	return []Field{
		{"type_code", s.TypeCode},
		{"management_number", s.ManagementNumber},
		{"city_code", s.CityCode},
		{"name", s.Name},
		{"images", s.Len()},
	}
}

func (s *ImageSet) String() string {
	var b strings.Builder
	b.WriteString(FormatRecord("Heritage Image Set", s))
	for i := range s.Items {
		b.WriteString("\n")
		b.WriteString(s.Items[i].String())
	}
	return b.String()
}

// VideoSet carries the video URLs of one item in document order, with
// the upstream "no video" placeholder already filtered out.
type VideoSet struct {
	TypeCode         string
	ManagementNumber string
	CityCode         string
	Name             string
	URLs             []string // videoUrl
}

func (s *VideoSet) Len() int { return len(s.URLs) }

func (s *VideoSet) Fields() []Field {
	return []Field{
		{"type_code", s.TypeCode},
		{"management_number", s.ManagementNumber},
		{"city_code", s.CityCode},
		{"name", s.Name},
		{"videos", s.Len()},
	}
}

func (s *VideoSet) String() string {
	var b strings.Builder
	b.WriteString(FormatRecord("Heritage Video Set", s))
	for _, u := range s.URLs {
		b.WriteString("\n  ")
		b.WriteString(u)
	}
	return b.String()
}

// Event is one heritage calendar event. All tags mandatory.
type Event struct {
	Seq       int       // seqNo
	SiteCode  string    // siteCode
	Title     string    // subTitle
	Content   string    // subContent
	StartDate time.Time // sDate
	EndDate   time.Time // eDate
	Host      string    // groupName
	Contact   string    // contact
	Location  string    // subDesc
	City      string    // sido
	District  string    // gugun
}

func (e *Event) Fields() []Field {
	return []Field{
		{"seq", e.Seq},
		{"site_code", e.SiteCode},
		{"title", e.Title},
		{"content", e.Content},
		{"start_date", e.StartDate},
		{"end_date", e.EndDate},
		{"host", e.Host},
		{"contact", e.Contact},
		{"location", e.Location},
		{"city", e.City},
		{"district", e.District},
	}
}

func (e *Event) String() string { return FormatRecord("Heritage Event", e) }

// PalaceSearchResultItem is one structure of a palace complex from the
// gung list endpoint. All tags mandatory.
type PalaceSearchResultItem struct {
	SerialNumber string // serial_number
	PalaceCode   string // gung_number
	DetailCode   string // detail_code
	Name         string // name_kor
}

func (i *PalaceSearchResultItem) Fields() []Field {
	return []Field{
		{"serial_number", i.SerialNumber},
		{"palace_code", i.PalaceCode},
		{"detail_code", i.DetailCode},
		{"name", i.Name},
	}
}

func (i *PalaceSearchResultItem) String() string { return FormatRecord("Palace Item", i) }

// PalaceDetail merges the preview identifiers with the optional detail
// endpoint fields.
type PalaceDetail struct {
	// Copied verbatim from the preview item.
	SerialNumber string
	PalaceCode   string
	DetailCode   string
	Name         string

	// Fetched from the detail endpoint, all optional.
	NameEnglish string // name_eng
	Content     string // content_ko
	ImageURL    string // image_url
	AudioURL    string // audio_url
}

func (d *PalaceDetail) Fields() []Field {
	return []Field{
		{"serial_number", d.SerialNumber},
		{"palace_code", d.PalaceCode},
		{"detail_code", d.DetailCode},
		{"name", d.Name},
		{"name_english", d.NameEnglish},
		{"content", d.Content},
		{"image_url", d.ImageURL},
		{"audio_url", d.AudioURL},
	}
}

func (d *PalaceDetail) String() string { return FormatRecord("Palace Detail", d) }

// HeritageRecord aggregates everything the API exposes for one item.
type HeritageRecord struct {
	Preview *SearchResultItem
	Detail  *Detail
	Images  *ImageSet
	Videos  *VideoSet
}
