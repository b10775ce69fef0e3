package constants

import "kheritage-client/internal/core/domain"

// District code tables (ccbaLcto), one closed set per province. District
// codes repeat between provinces, so a code here is only meaningful next
// to the ccbaCtcd value of its owning province.

var SeoulDistricts = NewCodeSet("seoul district", map[string]string{
	"all":          "00",
	"jongno":       "11",
	"jung":         "12",
	"yongsan":      "13",
	"seongdong":    "14",
	"dongdaemun":   "15",
	"seongbuk":     "16",
	"dobong":       "17",
	"eunpyeong":    "18",
	"seodaemun":    "19",
	"mapo":         "20",
	"gangseo":      "21",
	"guro":         "22",
	"yeongdeungpo": "23",
	"dongjak":      "24",
	"gwanak":       "25",
	"gangnam":      "26",
	"gangdong":     "27",
	"songpa":       "28",
	"jungnang":     "29",
	"nowon":        "30",
	"seocho":       "31",
	"yangcheon":    "32",
	"gwangjin":     "33",
	"gangbuk":      "34",
	"geumcheon":    "35",
	"han_river":    "99",
	"seoul_wide":   "ZZ",
})

var BusanDistricts = NewCodeSet("busan district", map[string]string{
	"all":        "00",
	"jung":       "11",
	"seo":        "12",
	"dong":       "13",
	"yeongdo":    "14",
	"busanjin":   "15",
	"dongnae":    "16",
	"nam":        "17",
	"buk":        "18",
	"haeundae":   "19",
	"saha":       "20",
	"geumjeong":  "21",
	"gangseo":    "22",
	"yeonje":     "23",
	"suyeong":    "24",
	"sasang":     "25",
	"gijang":     "26",
	"busan_wide": "ZZ",
})

var DaeguDistricts = NewCodeSet("daegu district", map[string]string{
	"all":        "00",
	"jung":       "11",
	"dong":       "12",
	"seo":        "13",
	"nam":        "14",
	"buk":        "15",
	"suseong":    "16",
	"dalseo":     "17",
	"dalseong":   "18",
	"gunwi":      "32",
	"daegu_wide": "ZZ",
})

var IncheonDistricts = NewCodeSet("incheon district", map[string]string{
	"all":          "00",
	"jung":         "11",
	"dong":         "12",
	"seo":          "15",
	"namdong":      "16",
	"yeonsu":       "17",
	"bupyeong":     "18",
	"gyeyang":      "19",
	"michuhol":     "20",
	"ganghwa":      "30",
	"ongjin":       "31",
	"incheon_wide": "ZZ",
})

var GwangjuDistricts = NewCodeSet("gwangju district", map[string]string{
	"all":          "00",
	"dong":         "11",
	"seo":          "12",
	"buk":          "13",
	"gwangsan":     "14",
	"nam":          "15",
	"gwangju_wide": "ZZ",
})

var DaejeonDistricts = NewCodeSet("daejeon district", map[string]string{
	"all":          "00",
	"dong":         "11",
	"jung":         "12",
	"seo":          "13",
	"yuseong":      "14",
	"daedeok":      "15",
	"daejeon_wide": "ZZ",
})

var UlsanDistricts = NewCodeSet("ulsan district", map[string]string{
	"all":        "00",
	"nam":        "01",
	"dong":       "02",
	"buk":        "03",
	"jung":       "04",
	"ulju":       "05",
	"ulsan_wide": "ZZ",
})

var SejongDistricts = NewCodeSet("sejong district", map[string]string{
	"sejong_wide": "00",
})

var GyeonggiDistricts = NewCodeSet("gyeonggi district", map[string]string{
	"all":           "00",
	"suwon":         "11",
	"seongnam":      "12",
	"uijeongbu":     "13",
	"anyang":        "14",
	"bucheon":       "15",
	"gwangmyeong":   "16",
	"anseong":       "17",
	"dongducheon":   "18",
	"guri":          "19",
	"pyeongtaek":    "20",
	"gwacheon":      "21",
	"ansan":         "22",
	"osan":          "25",
	"uiwang":        "26",
	"gunpo":         "27",
	"siheung":       "28",
	"hanam":         "30",
	"yangju":        "31",
	"hwaseong":      "35",
	"paju":          "37",
	"gwangju":       "39",
	"yeoncheon":     "40",
	"pocheon":       "41",
	"gapyeong":      "42",
	"yangpyeong":    "43",
	"icheon":        "44",
	"yongin":        "45",
	"gimpo":         "47",
	"goyang":        "50",
	"namyangju":     "51",
	"yeoju":         "70",
	"gyeonggi_wide": "ZZ",
})

var GangwonDistricts = NewCodeSet("gangwon district", map[string]string{
	"all":          "00",
	"chuncheon":    "11",
	"wonju":        "12",
	"gangneung":    "13",
	"donghae":      "14",
	"taebaek":      "15",
	"sokcho":       "16",
	"samcheok":     "17",
	"hongcheon":    "32",
	"hoengseong":   "33",
	"yeongwol":     "35",
	"pyeongchang":  "36",
	"jeongseon":    "37",
	"cheorwon":     "38",
	"hwacheon":     "39",
	"yanggu":       "40",
	"inje":         "41",
	"goseong":      "42",
	"yangyang":     "43",
	"myeongju":     "44",
	"gangwon_wide": "ZZ",
})

var ChungbukDistricts = NewCodeSet("chungbuk district", map[string]string{
	"all":           "00",
	"chungju":       "12",
	"jecheon":       "13",
	"cheongju":      "20",
	"boeun":         "32",
	"okcheon":       "33",
	"yeongdong":     "34",
	"jincheon":      "35",
	"goesan":        "36",
	"eumseong":      "37",
	"danyang":       "40",
	"jeungpyeong":   "42",
	"chungbuk_wide": "ZZ",
})

var ChungnamDistricts = NewCodeSet("chungnam district", map[string]string{
	"all":           "00",
	"cheonan":       "11",
	"gongju":        "12",
	"seosan":        "15",
	"asan":          "16",
	"boryeong":      "17",
	"gyeryong":      "18",
	"geumsan":       "31",
	"nonsan":        "35",
	"buyeo":         "36",
	"seocheon":      "37",
	"cheongyang":    "39",
	"hongseong":     "40",
	"yesan":         "41",
	"dangjin":       "43",
	"taean":         "46",
	"chungnam_wide": "ZZ",
})

var JeonbukDistricts = NewCodeSet("jeonbuk district", map[string]string{
	"all":          "00",
	"jeonju":       "11",
	"gunsan":       "12",
	"namwon":       "15",
	"gimje":        "16",
	"jeongeup":     "17",
	"iksan":        "18",
	"wanju":        "31",
	"jinan":        "32",
	"muju":         "33",
	"jangsu":       "34",
	"imsil":        "35",
	"sunchang":     "37",
	"gochang":      "39",
	"buan":         "40",
	"jeonbuk_wide": "ZZ",
})

var JeonnamDistricts = NewCodeSet("jeonnam district", map[string]string{
	"all":          "00",
	"mokpo":        "11",
	"yeosu":        "12",
	"suncheon":     "13",
	"naju":         "14",
	"yeocheon":     "15",
	"gwangyang":    "17",
	"damyang":      "32",
	"gokseong":     "33",
	"gurye":        "34",
	"yeocheon_gun": "36",
	"goheung":      "38",
	"boseong":      "39",
	"hwasun":       "40",
	"jangheung":    "41",
	"gangjin":      "42",
	"haenam":       "43",
	"yeongam":      "44",
	"muan":         "45",
	"hampyeong":    "47",
	"yeonggwang":   "48",
	"jangseong":    "49",
	"wando":        "50",
	"jindo":        "51",
	"sinan":        "52",
	"seungju":      "53",
	"jeonnam_wide": "ZZ",
})

var GyeongbukDistricts = NewCodeSet("gyeongbuk district", map[string]string{
	"all":            "00",
	"pohang":         "11",
	"gyeongju":       "12",
	"gimcheon":       "13",
	"andong":         "14",
	"gumi":           "15",
	"yeongju":        "16",
	"yeongcheon":     "17",
	"sangju":         "18",
	"gyeongsan":      "20",
	"mungyeong":      "21",
	"uiseong":        "33",
	"cheongsong":     "35",
	"yeongyang":      "36",
	"yeongdeok":      "37",
	"cheongdo":       "42",
	"goryeong":       "43",
	"seongju":        "44",
	"chilgok":        "45",
	"yecheon":        "50",
	"bonghwa":        "52",
	"uljin":          "53",
	"ulleung":        "54",
	"gyeongbuk_wide": "ZZ",
})

var GyeongnamDistricts = NewCodeSet("gyeongnam district", map[string]string{
	"all":            "00",
	"jinju":          "13",
	"gimhae":         "18",
	"miryang":        "22",
	"tongyeong":      "25",
	"geoje":          "26",
	"sacheon":        "27",
	"uiryeong":       "32",
	"haman":          "33",
	"changnyeong":    "34",
	"yangsan":        "36",
	"uichang":        "39",
	"goseong":        "42",
	"namhae":         "44",
	"hadong":         "45",
	"sancheong":      "46",
	"hamyang":        "47",
	"geochang":       "48",
	"hapcheon":       "49",
	"changwon":       "50",
	"gyeongnam_wide": "ZZ",
})

var JejuDistricts = NewCodeSet("jeju district", map[string]string{
	"all":       "00",
	"jeju_city": "01",
	"seogwipo":  "02",
	"jeju_wide": "ZZ",
})

// DistrictSets resolves a province code to its district set. The
// national pseudo-province "ZZ" has no district table.
var DistrictSets = map[string]*CodeSet{
	ProvinceSeoul:     SeoulDistricts,
	ProvinceBusan:     BusanDistricts,
	ProvinceDaegu:     DaeguDistricts,
	ProvinceIncheon:   IncheonDistricts,
	ProvinceGwangju:   GwangjuDistricts,
	ProvinceDaejeon:   DaejeonDistricts,
	ProvinceUlsan:     UlsanDistricts,
	ProvinceSejong:    SejongDistricts,
	ProvinceGyeonggi:  GyeonggiDistricts,
	ProvinceGangwon:   GangwonDistricts,
	ProvinceChungbuk:  ChungbukDistricts,
	ProvinceChungnam:  ChungnamDistricts,
	ProvinceJeonbuk:   JeonbukDistricts,
	ProvinceJeonnam:   JeonnamDistricts,
	ProvinceGyeongbuk: GyeongbukDistricts,
	ProvinceGyeongnam: GyeongnamDistricts,
	ProvinceJeju:      JejuDistricts,
}

// DistrictsOf returns the district set owned by the given province code.
func DistrictsOf(provinceCode string) (*CodeSet, error) {
	set, ok := DistrictSets[provinceCode]
	if !ok {
		return nil, &domain.UnknownCodeError{Set: "district sets", Value: provinceCode}
	}
	return set, nil
}
