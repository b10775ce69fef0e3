package constants

// Heritage designation types (ccbaKdcd).
const (
	HeritageNationalTreasure      = "11"
	HeritageTreasure              = "12"
	HeritageHistoricSite          = "13"
	HeritageHistoricAndScenicSite = "14"
	HeritageScenicSite            = "15"
	HeritageNaturalMonument       = "16"
	HeritageIntangible            = "17"
	HeritageFolklore              = "18"
	HeritageRegional              = "21"
	HeritageRegionalIntangible    = "22"
	HeritageRegionalMonument      = "23"
	HeritageRegionalFolklore      = "24"
	HeritageRegionalRegistered    = "25"
	HeritageMaterial              = "31"
	HeritageNationalRegistered    = "79"
	HeritageNorthKoreanIntangible = "80"
)

var HeritageTypes = NewCodeSet("heritage type", map[string]string{
	"national_treasure":                HeritageNationalTreasure,
	"treasure":                         HeritageTreasure,
	"historic_site":                    HeritageHistoricSite,
	"historic_and_scenic_site":         HeritageHistoricAndScenicSite,
	"scenic_site":                      HeritageScenicSite,
	"natural_monument":                 HeritageNaturalMonument,
	"intangible_heritage":              HeritageIntangible,
	"folklore_heritage":                HeritageFolklore,
	"regional_heritage":                HeritageRegional,
	"regional_intangible_heritage":     HeritageRegionalIntangible,
	"regional_monument":                HeritageRegionalMonument,
	"regional_folklore_heritage":       HeritageRegionalFolklore,
	"regional_registered_heritage":     HeritageRegionalRegistered,
	"heritage_material":                HeritageMaterial,
	"national_registered_heritage":     HeritageNationalRegistered,
	"north_korean_intangible_heritage": HeritageNorthKoreanIntangible,
})

// Event site codes (siteCode).
const (
	EventNighttimeHeritage         = "01"
	EventVividHeritage             = "02"
	EventTraditionalTempleHeritage = "03"
	EventHyanggyoAndSeowon         = "04"
	EventOthers                    = "06"
	EventNationalIntangible        = "07"
	EventHeritageFoundation        = "08"
	EventTraditionalHouses         = "09"
	EventWorldHeritage             = "10"
)

var EventTypes = NewCodeSet("event type", map[string]string{
	"nighttime_heritage":           EventNighttimeHeritage,
	"vivid_heritage":               EventVividHeritage,
	"traditional_temple_heritage":  EventTraditionalTempleHeritage,
	"hyanggyo_and_seowon":          EventHyanggyoAndSeowon,
	"others":                       EventOthers,
	"national_intangible_heritage": EventNationalIntangible,
	"cultural_heritage_foundation": EventHeritageFoundation,
	"traditional_houses":           EventTraditionalHouses,
	"world_heritage":               EventWorldHeritage,
})

// Province codes (ccbaCtcd). "ZZ" queries the whole country.
const (
	ProvinceSeoul     = "11"
	ProvinceBusan     = "21"
	ProvinceDaegu     = "22"
	ProvinceIncheon   = "23"
	ProvinceGwangju   = "24"
	ProvinceDaejeon   = "25"
	ProvinceUlsan     = "26"
	ProvinceGyeonggi  = "31"
	ProvinceGangwon   = "32"
	ProvinceChungbuk  = "33"
	ProvinceChungnam  = "34"
	ProvinceJeonbuk   = "35"
	ProvinceJeonnam   = "36"
	ProvinceGyeongbuk = "37"
	ProvinceGyeongnam = "38"
	ProvinceSejong    = "45"
	ProvinceJeju      = "50"
	ProvinceNational  = "ZZ"
)

var Provinces = NewCodeSet("province", map[string]string{
	"seoul":     ProvinceSeoul,
	"busan":     ProvinceBusan,
	"daegu":     ProvinceDaegu,
	"incheon":   ProvinceIncheon,
	"gwangju":   ProvinceGwangju,
	"daejeon":   ProvinceDaejeon,
	"ulsan":     ProvinceUlsan,
	"gyeonggi":  ProvinceGyeonggi,
	"gangwon":   ProvinceGangwon,
	"chungbuk":  ProvinceChungbuk,
	"chungnam":  ProvinceChungnam,
	"jeonbuk":   ProvinceJeonbuk,
	"jeonnam":   ProvinceJeonnam,
	"gyeongbuk": ProvinceGyeongbuk,
	"gyeongnam": ProvinceGyeongnam,
	"sejong":    ProvinceSejong,
	"jeju":      ProvinceJeju,
	"national":  ProvinceNational,
})

// Palace numbers of the gung sub-API (gung_number).
const (
	PalaceGyeongbokgung   = "1"
	PalaceChangdeokgung   = "2"
	PalaceChanggyeonggung = "3"
	PalaceDeoksugung      = "4"
	PalaceJongmyo         = "5"
)

var Palaces = NewCodeSet("palace", map[string]string{
	"gyeongbokgung":   PalaceGyeongbokgung,
	"changdeokgung":   PalaceChangdeokgung,
	"changgyeonggung": PalaceChanggyeonggung,
	"deoksugung":      PalaceDeoksugung,
	"jongmyo":         PalaceJongmyo,
})
