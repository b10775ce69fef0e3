package domain

// HeritageSearchCriteria is the filter set of the heritage list search.
// Zero values mean "not set": unset filters never reach the wire.
// PageSize and PageIndex default to 10 and 1 when left at zero.
//
// District codes are scoped to their province: the pairing is not
// validated here, a district that does not belong to the selected
// province is passed through and the upstream service decides.
type HeritageSearchCriteria struct {
	HeritageType  string // ccbaKdcd
	StartYear     *int   // stCcbaAsdt
	EndYear       *int   // enCcbaAsdt
	Name          string // ccbaMnm1, Korean name substring
	Province      string // ccbaCtcd
	District      string // ccbaLcto
	LinkageNumber string // ccbaCpno
	Canceled      *bool  // ccbaCncl
	PageSize      int    // pageUnit
	PageIndex     int    // pageIndex
}

// EventSearchCriteria is the filter set of the event calendar search.
// Year and Month are required by the upstream service.
type EventSearchCriteria struct {
	Year       int    // searchYear
	Month      int    // searchMonth
	SearchWord string // searchWrd
	EventType  string // siteCode
}
