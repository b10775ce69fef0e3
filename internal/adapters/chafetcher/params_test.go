package chafetcher

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kheritage-client/internal/constants"
	"kheritage-client/internal/core/domain"
)

func queryKeys(t *testing.T, q map[string][]string) []string {
	t.Helper()
	keys := make([]string, 0, len(q))
	for k := range q {
		keys = append(keys, k)
	}
	return keys
}

func TestBuildSearchQueryDefaultsOnly(t *testing.T) {
	q := buildSearchQuery(domain.HeritageSearchCriteria{})

	// unset optional filters must be absent, not empty
	assert.ElementsMatch(t, []string{constants.ParamPageSize, constants.ParamPageIndex}, queryKeys(t, q))
	assert.Equal(t, "10", q.Get(constants.ParamPageSize))
	assert.Equal(t, "1", q.Get(constants.ParamPageIndex))
}

func TestBuildSearchQueryAllFilters(t *testing.T) {
	start, end := 1400, 1500
	canceled := false
	q := buildSearchQuery(domain.HeritageSearchCriteria{
		HeritageType:  constants.HeritageHistoricSite,
		StartYear:     &start,
		EndYear:       &end,
		Name:          "경복궁",
		Province:      constants.ProvinceSeoul,
		District:      "11",
		LinkageNumber: "1331100120000",
		Canceled:      &canceled,
		PageSize:      50,
		PageIndex:     3,
	})

	assert.ElementsMatch(t, []string{
		constants.ParamPageSize, constants.ParamPageIndex,
		constants.ParamStartYear, constants.ParamEndYear,
		constants.ParamKoreanName, constants.ParamLinkageNumber,
		constants.ParamCanceled, constants.ParamHeritageType,
		constants.ParamProvince, constants.ParamDistrict,
	}, queryKeys(t, q))

	assert.Equal(t, "1400", q.Get(constants.ParamStartYear))
	assert.Equal(t, "1500", q.Get(constants.ParamEndYear))
	assert.Equal(t, "N", q.Get(constants.ParamCanceled))
	assert.Equal(t, "13", q.Get(constants.ParamHeritageType))
	assert.Equal(t, "50", q.Get(constants.ParamPageSize))
	assert.Equal(t, "3", q.Get(constants.ParamPageIndex))
}

func TestBuildSearchQueryCanceledTrue(t *testing.T) {
	canceled := true
	q := buildSearchQuery(domain.HeritageSearchCriteria{Canceled: &canceled})
	assert.Equal(t, "Y", q.Get(constants.ParamCanceled))
}

func TestBuildSearchQueryNormalizesKoreanName(t *testing.T) {
	// decomposed jamo input ("한" as U+1112 U+1161 U+11AB) recomposes to NFC
	q := buildSearchQuery(domain.HeritageSearchCriteria{Name: "  한  "})
	assert.Equal(t, "한", q.Get(constants.ParamKoreanName))
}

func TestBuildInfoQueryCopiesIdentifiers(t *testing.T) {
	preview := &domain.SearchResultItem{
		TypeCode:         "13",
		ManagementNumber: "0117",
		CityCode:         "11",
	}
	q := buildInfoQuery(preview)

	assert.ElementsMatch(t, []string{
		constants.ParamHeritageType, constants.ParamManagementNumber, constants.ParamProvince,
	}, queryKeys(t, q))
	assert.Equal(t, "13", q.Get(constants.ParamHeritageType))
	assert.Equal(t, "0117", q.Get(constants.ParamManagementNumber))
	assert.Equal(t, "11", q.Get(constants.ParamProvince))
}

func TestBuildEventQuery(t *testing.T) {
	q := buildEventQuery(domain.EventSearchCriteria{Year: 2023, Month: 12})
	assert.ElementsMatch(t, []string{constants.ParamEventYear, constants.ParamEventMonth}, queryKeys(t, q))

	q = buildEventQuery(domain.EventSearchCriteria{
		Year: 2023, Month: 12, SearchWord: "야행", EventType: constants.EventNighttimeHeritage,
	})
	require.Equal(t, "2023", q.Get(constants.ParamEventYear))
	require.Equal(t, "12", q.Get(constants.ParamEventMonth))
	assert.Equal(t, "01", q.Get(constants.ParamEventSite))
}
