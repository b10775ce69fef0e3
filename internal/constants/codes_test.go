package constants

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kheritage-client/internal/core/domain"
)

func allCodeSets() []*CodeSet {
	sets := []*CodeSet{HeritageTypes, EventTypes, Provinces, Palaces}
	for _, districts := range DistrictSets {
		sets = append(sets, districts)
	}
	return sets
}

func TestCodeSetSizes(t *testing.T) {
	assert.Equal(t, 16, HeritageTypes.Len())
	assert.Equal(t, 9, EventTypes.Len())
	assert.Equal(t, 18, Provinces.Len())
	assert.Equal(t, 5, Palaces.Len())
	assert.Len(t, DistrictSets, 17)
}

func TestCodeSetRoundTrip(t *testing.T) {
	for _, set := range allCodeSets() {
		for _, name := range set.Names() {
			code, err := set.Code(name)
			require.NoError(t, err, "set %s name %s", set.Name(), name)
			require.NotEmpty(t, code, "set %s name %s", set.Name(), name)

			back, err := set.NameOf(code)
			require.NoError(t, err, "set %s code %s", set.Name(), code)
			assert.Equal(t, name, back, "set %s round trip", set.Name())
		}
	}
}

func TestCodeSetCodesUniqueWithinSet(t *testing.T) {
	for _, set := range allCodeSets() {
		seen := map[string]string{}
		for _, name := range set.Names() {
			code, err := set.Code(name)
			require.NoError(t, err)
			if prev, dup := seen[code]; dup {
				t.Fatalf("set %s: code %s used by both %s and %s", set.Name(), code, prev, name)
			}
			seen[code] = name
		}
	}
}

func TestCodeSetUnknownLookups(t *testing.T) {
	_, err := HeritageTypes.Code("spaceship")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnknownCode)

	var unknownErr *domain.UnknownCodeError
	require.True(t, errors.As(err, &unknownErr))
	assert.Equal(t, "heritage type", unknownErr.Set)
	assert.Equal(t, "spaceship", unknownErr.Value)

	_, err = Provinces.NameOf("99")
	assert.ErrorIs(t, err, domain.ErrUnknownCode)
}

func TestDistrictsOf(t *testing.T) {
	set, err := DistrictsOf(ProvinceSeoul)
	require.NoError(t, err)
	code, err := set.Code("jongno")
	require.NoError(t, err)
	assert.Equal(t, "11", code)

	// the national pseudo-province has no district table
	_, err = DistrictsOf(ProvinceNational)
	assert.ErrorIs(t, err, domain.ErrUnknownCode)
}

func TestDistrictCodesRepeatAcrossProvinces(t *testing.T) {
	// "11" means Jongno in Seoul and Jung in Busan: district codes are
	// only meaningful next to their province code.
	seoulName, err := SeoulDistricts.NameOf("11")
	require.NoError(t, err)
	busanName, err := BusanDistricts.NameOf("11")
	require.NoError(t, err)
	assert.NotEqual(t, seoulName, busanName)
}
