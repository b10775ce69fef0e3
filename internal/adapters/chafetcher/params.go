package chafetcher

import (
	"net/url"
	"strconv"
	"strings"

	"golang.org/x/text/unicode/norm"

	"kheritage-client/internal/constants"
	"kheritage-client/internal/core/domain"
)

// normalizeKoreanText trims a free-text wire value and recomposes it to
// NFC so decomposed jamo input matches what the upstream indexes.
func normalizeKoreanText(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}

// buildSearchQuery assembles the list-search query string. Only filters
// the caller actually set are present; pageUnit and pageIndex always
// are, falling back to the upstream defaults.
func buildSearchQuery(criteria domain.HeritageSearchCriteria) url.Values {
	q := url.Values{}

	pageSize := criteria.PageSize
	if pageSize == 0 {
		pageSize = constants.DefaultPageSize
	}
	pageIndex := criteria.PageIndex
	if pageIndex == 0 {
		pageIndex = constants.DefaultPageIndex
	}
	q.Set(constants.ParamPageSize, strconv.Itoa(pageSize))
	q.Set(constants.ParamPageIndex, strconv.Itoa(pageIndex))

	if criteria.StartYear != nil {
		q.Set(constants.ParamStartYear, strconv.Itoa(*criteria.StartYear))
	}
	if criteria.EndYear != nil {
		q.Set(constants.ParamEndYear, strconv.Itoa(*criteria.EndYear))
	}
	if criteria.Name != "" {
		q.Set(constants.ParamKoreanName, normalizeKoreanText(criteria.Name))
	}
	if criteria.LinkageNumber != "" {
		q.Set(constants.ParamLinkageNumber, criteria.LinkageNumber)
	}
	if criteria.Canceled != nil {
		q.Set(constants.ParamCanceled, yn(*criteria.Canceled))
	}
	if criteria.HeritageType != "" {
		q.Set(constants.ParamHeritageType, criteria.HeritageType)
	}
	if criteria.Province != "" {
		q.Set(constants.ParamProvince, criteria.Province)
	}
	if criteria.District != "" {
		// Not validated against the province here; the upstream service
		// decides what a mismatched pair means.
		q.Set(constants.ParamDistrict, criteria.District)
	}

	return q
}

// buildInfoQuery copies the three identifying fields of a search result
// item into the query shared by the detail, image and video endpoints.
func buildInfoQuery(preview *domain.SearchResultItem) url.Values {
	q := url.Values{}
	q.Set(constants.ParamHeritageType, preview.TypeCode)
	q.Set(constants.ParamManagementNumber, preview.ManagementNumber)
	q.Set(constants.ParamProvince, preview.CityCode)
	return q
}

// buildEventQuery assembles the event-calendar query string.
func buildEventQuery(criteria domain.EventSearchCriteria) url.Values {
	q := url.Values{}
	q.Set(constants.ParamEventYear, strconv.Itoa(criteria.Year))
	q.Set(constants.ParamEventMonth, strconv.Itoa(criteria.Month))
	if criteria.SearchWord != "" {
		q.Set(constants.ParamSearchWord, normalizeKoreanText(criteria.SearchWord))
	}
	if criteria.EventType != "" {
		q.Set(constants.ParamEventSite, criteria.EventType)
	}
	return q
}

func yn(v bool) string {
	if v {
		return "Y"
	}
	return "N"
}
