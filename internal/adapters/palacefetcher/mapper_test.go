package palacefetcher

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kheritage-client/internal/constants"
	"kheritage-client/internal/core/domain"
)

const palaceListXML = `<?xml version="1.0" encoding="UTF-8"?>
<result>
	<list>
		<serial_number>1</serial_number>
		<gung_number>1</gung_number>
		<detail_code>1</detail_code>
		<name_kor>광화문</name_kor>
	</list>
	<list>
		<serial_number>2</serial_number>
		<gung_number>1</gung_number>
		<detail_code>1</detail_code>
		<name_kor>근정전</name_kor>
	</list>
</result>`

func TestToPalaceItems(t *testing.T) {
	items, err := toPalaceItems([]byte(palaceListXML))
	require.NoError(t, err)
	require.Len(t, items, 2)

	assert.Equal(t, "1", items[0].SerialNumber)
	assert.Equal(t, "1", items[0].PalaceCode)
	assert.Equal(t, "광화문", items[0].Name)
	assert.Equal(t, "근정전", items[1].Name)
}

func TestToPalaceItemsMissingMandatoryTag(t *testing.T) {
	body := `<result><list><serial_number>1</serial_number><gung_number>1</gung_number><name_kor>광화문</name_kor></list></result>`
	_, err := toPalaceItems([]byte(body))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrMalformedResponse)
	assert.Contains(t, err.Error(), "detail_code")
}

func TestToPalaceDetail(t *testing.T) {
	preview := &domain.PalaceSearchResultItem{
		SerialNumber: "1",
		PalaceCode:   "1",
		DetailCode:   "1",
		Name:         "광화문",
	}

	body := `<result>
		<name_eng>Gwanghwamun Gate</name_eng>
		<content_ko>경복궁의 정문.</content_ko>
		<image_url>http://example.com/gwanghwamun.jpg</image_url>
	</result>`

	detail, err := toPalaceDetail([]byte(body), preview)
	require.NoError(t, err)

	assert.Equal(t, "1", detail.SerialNumber)
	assert.Equal(t, "광화문", detail.Name)
	assert.Equal(t, "Gwanghwamun Gate", detail.NameEnglish)
	assert.Equal(t, "경복궁의 정문.", detail.Content)
	assert.Equal(t, "http://example.com/gwanghwamun.jpg", detail.ImageURL)
	assert.Empty(t, detail.AudioURL)
}

func TestSearchAgainstTestServer(t *testing.T) {
	var gotQuery url.Values
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.Header().Set("Content-Type", "application/xml; charset=utf-8")
		_, _ = w.Write([]byte(palaceListXML))
	}))
	defer server.Close()

	adapter, err := NewPalaceFetcherAdapter(server.URL + "/")
	require.NoError(t, err)

	items, err := adapter.Search(context.Background(), constants.PalaceGyeongbokgung)
	require.NoError(t, err)

	assert.Equal(t, constants.PalaceGyeongbokgung, gotQuery.Get(constants.ParamPalaceNumber))
	assert.Len(t, items, 2)
}

func TestSearchServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "maintenance", http.StatusServiceUnavailable)
	}))
	defer server.Close()

	adapter, err := NewPalaceFetcherAdapter(server.URL + "/")
	require.NoError(t, err)

	_, err = adapter.Search(context.Background(), constants.PalaceGyeongbokgung)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "503")
}

func TestDetailAgainstTestServer(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "2", r.URL.Query().Get(constants.ParamSerialNumber))
		assert.Equal(t, "1", r.URL.Query().Get(constants.ParamPalaceNumber))
		assert.Equal(t, "1", r.URL.Query().Get(constants.ParamDetailCode))
		_, _ = w.Write([]byte(`<result><name_eng>Geunjeongjeon Hall</name_eng></result>`))
	}))
	defer server.Close()

	adapter, err := NewPalaceFetcherAdapter(server.URL + "/")
	require.NoError(t, err)

	preview := &domain.PalaceSearchResultItem{
		SerialNumber: "2",
		PalaceCode:   "1",
		DetailCode:   "1",
		Name:         "근정전",
	}
	detail, err := adapter.Detail(context.Background(), preview)
	require.NoError(t, err)
	assert.Equal(t, "Geunjeongjeon Hall", detail.NameEnglish)
	assert.Equal(t, "근정전", detail.Name)
}
