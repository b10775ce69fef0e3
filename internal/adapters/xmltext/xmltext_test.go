package xmltext

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kheritage-client/internal/core/domain"
)

func TestParseRejectsBrokenXML(t *testing.T) {
	_, err := Parse([]byte("<result><totalCnt>"))
	assert.ErrorIs(t, err, domain.ErrMalformedResponse)
}

func TestRequiredAndOptionalText(t *testing.T) {
	doc, err := Parse([]byte(`<item><name> 경복궁 </name></item>`))
	require.NoError(t, err)

	name, err := RequiredText(doc, "//name")
	require.NoError(t, err)
	assert.Equal(t, "경복궁", name)

	_, err = RequiredText(doc, "//missing")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrMalformedResponse)
	assert.Contains(t, err.Error(), "missing")

	assert.Equal(t, "경복궁", OptionalText(doc, "//name"))
	assert.Empty(t, OptionalText(doc, "//missing"))
}

func TestRequiredInt(t *testing.T) {
	doc, err := Parse([]byte(`<item><sn>7</sn><bad>seven</bad></item>`))
	require.NoError(t, err)

	v, err := RequiredInt(doc, "//sn")
	require.NoError(t, err)
	assert.Equal(t, 7, v)

	_, err = RequiredInt(doc, "//bad")
	assert.ErrorIs(t, err, domain.ErrMalformedResponse)
}

func TestParseTimePicksLayoutByShape(t *testing.T) {
	compact, err := ParseTime("regDt", "20231123")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2023, 11, 23, 0, 0, 0, 0, time.UTC), compact)

	full, err := ParseTime("regDt", "2023-11-23 14:01:02")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2023, 11, 23, 14, 1, 2, 0, time.UTC), full)

	_, err = ParseTime("regDt", "late Joseon")
	assert.ErrorIs(t, err, domain.ErrMalformedResponse)
}
