package constants

// Base URLs of the two endpoint families.
const (
	HeritageBaseURL = "http://www.cha.go.kr/cha/"
	PalaceBaseURL   = "https://www.heritage.go.kr/"
)

// Endpoint paths, relative to the base URLs.
const (
	EndpointSearch = "SearchKindOpenapiList.do"
	EndpointDetail = "SearchKindOpenapiDt.do"
	EndpointImage  = "SearchImageOpenapi.do"
	EndpointVideo  = "SearchVideoOpenapi.do"
	EndpointEvent  = "openapi/selectEventListOpenapi.do"

	EndpointPalaceList   = "heri/gungDetail/gogungListOpenApi.do"
	EndpointPalaceDetail = "heri/gungDetail/gogungDetailOpenApi.do"
)

// Wire query parameter names. Fixed by the upstream service, reproduced
// verbatim for compatibility.
const (
	ParamStartYear        = "stCcbaAsdt"
	ParamEndYear          = "enCcbaAsdt"
	ParamKoreanName       = "ccbaMnm1"
	ParamLinkageNumber    = "ccbaCpno"
	ParamPageSize         = "pageUnit"
	ParamPageIndex        = "pageIndex"
	ParamCanceled         = "ccbaCncl"
	ParamHeritageType     = "ccbaKdcd"
	ParamProvince         = "ccbaCtcd"
	ParamDistrict         = "ccbaLcto"
	ParamManagementNumber = "ccbaAsno"

	ParamEventYear  = "searchYear"
	ParamEventMonth = "searchMonth"
	ParamSearchWord = "searchWrd"
	ParamEventSite  = "siteCode"

	ParamPalaceNumber = "gung_number"
	ParamSerialNumber = "serial_number"
	ParamDetailCode   = "detail_code"
)

// Paging defaults applied when a search leaves them unset.
const (
	DefaultPageSize  = 10
	DefaultPageIndex = 1
)

// PlaceholderVideoURL is the sentinel the video endpoint returns to mean
// "no video". Entries equal to it are dropped from VideoSet.
const PlaceholderVideoURL = "http://116.67.83.213/webdata/file_data/media_data/videos/"
