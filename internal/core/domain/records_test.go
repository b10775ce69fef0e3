package domain

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleItem() *SearchResultItem {
	return &SearchResultItem{
		Seq:              1,
		UID:              "1",
		Type:             "사적",
		TypeCode:         "13",
		ManagementNumber: "01170000",
		LinkageNumber:    "1331101170000",
		Name:             "서울 경복궁",
		NameHanja:        "서울 景福宮",
		City:             "서울",
		CityCode:         "11",
		District:         "종로구",
		Administrator:    "궁능유적본부",
		Longitude:        "126.97720417",
		Latitude:         "37.57861111",
		Canceled:         false,
		LastModified:     time.Date(2023, 11, 23, 14, 1, 2, 0, time.UTC),
	}
}

func TestRecordMapCoversEveryField(t *testing.T) {
	item := sampleItem()
	m := RecordMap(item)

	assert.Len(t, m, len(item.Fields()))
	assert.Equal(t, "서울 경복궁", m["name"])
	assert.Equal(t, "13", m["type_code"])
	assert.Equal(t, false, m["canceled"])
}

func TestFormatRecordDeterministic(t *testing.T) {
	item := sampleItem()

	first := item.String()
	second := item.String()
	assert.Equal(t, first, second)

	lines := strings.Split(first, "\n")
	require.Equal(t, 1+len(item.Fields()), len(lines))
	assert.Equal(t, "Heritage Item", lines[0])
	assert.Contains(t, first, "  name: 서울 경복궁")
	assert.Contains(t, first, "  canceled: N")
	assert.Contains(t, first, "  last_modified: 2023-11-23 14:01:02")
}

func TestFormatRecordZeroTime(t *testing.T) {
	detail := &Detail{UID: "1", Name: "서울 경복궁"}
	assert.Contains(t, detail.String(), "  registered_date: \n")
}

func TestGeohash(t *testing.T) {
	item := sampleItem()
	h := item.Geohash()
	assert.Len(t, h, 5)
	// Gyeongbokgung sits in the wydmc cell
	assert.Equal(t, "wydmc", h)
}

func TestGeohashUnparseableCoordinates(t *testing.T) {
	item := sampleItem()
	item.Latitude = "unknown"
	assert.Empty(t, item.Geohash())

	item = sampleItem()
	item.Longitude = ""
	assert.Empty(t, item.Geohash())
}

func TestPagesFormula(t *testing.T) {
	cases := []struct {
		hits, limit, want int
	}{
		{23, 10, 3},
		{5, 10, 1},
		{0, 10, 1},
		// exact multiples over-count by one, matching the upstream
		{20, 10, 3},
	}
	for _, tc := range cases {
		page := &SearchResultPage{Hits: tc.hits, Limit: tc.limit}
		assert.Equal(t, tc.want, page.Pages(), "hits=%d limit=%d", tc.hits, tc.limit)
	}
}

func TestSetLens(t *testing.T) {
	images := &ImageSet{Items: []Image{{URL: "a"}, {URL: "b"}}}
	assert.Equal(t, 2, images.Len())

	videos := &VideoSet{URLs: []string{"a"}}
	assert.Equal(t, 1, videos.Len())

	page := &SearchResultPage{Items: []SearchResultItem{*sampleItem()}}
	assert.Equal(t, 1, page.Len())
}

func TestSearchResultPageRecord(t *testing.T) {
	page := &SearchResultPage{Hits: 23, Limit: 10, PageIndex: 1, Items: []SearchResultItem{*sampleItem()}}

	m := RecordMap(page)
	assert.Equal(t, 23, m["hits"])
	assert.Equal(t, 3, m["pages"])
	assert.Equal(t, 1, m["items"])

	s := page.String()
	assert.True(t, strings.HasPrefix(s, "Heritage Search Result"))
	assert.Contains(t, s, "  hits: 23")
	assert.Contains(t, s, "Heritage Item")
	assert.Contains(t, s, "  name: 서울 경복궁")
}

func TestImageSetRecord(t *testing.T) {
	set := &ImageSet{
		Name: "서울 경복궁",
		Items: []Image{
			{LicenseCode: "제1유형", URL: "http://example.com/1.jpg", Description: "근정전"},
		},
	}

	m := RecordMap(set)
	assert.Equal(t, "서울 경복궁", m["name"])
	assert.Equal(t, 1, m["images"])

	s := set.String()
	assert.True(t, strings.HasPrefix(s, "Heritage Image Set"))
	assert.Contains(t, s, "Heritage Image")
	assert.Contains(t, s, "  description: 근정전")
}

func TestVideoSetRecord(t *testing.T) {
	set := &VideoSet{Name: "서울 경복궁", URLs: []string{"http://example.com/a.mp4"}}

	m := RecordMap(set)
	assert.Equal(t, 1, m["videos"])

	s := set.String()
	assert.True(t, strings.HasPrefix(s, "Heritage Video Set"))
	assert.Contains(t, s, "  videos: 1")
	assert.Contains(t, s, "http://example.com/a.mp4")
}

func TestEveryRecordImplementsRecord(t *testing.T) {
	records := []Record{
		&SearchResultItem{},
		&SearchResultPage{},
		&Detail{},
		&Image{},
		&ImageSet{},
		&VideoSet{},
		&Event{},
		&PalaceSearchResultItem{},
		&PalaceDetail{},
	}
	for _, r := range records {
		assert.NotEmpty(t, r.Fields())
	}
}
