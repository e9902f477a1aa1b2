package seed

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleCSV = `hotspot_id,gu_name,location_name,latitude,longitude,accident_count,casualty_count,death_count
101,Gangnam-gu,Gangnam Station Crossing,37.4979,127.0276,42,55,3
102,Mapo-gu,Hongik Univ. Entrance,37.5572,126.9238,17,20,0
`

func TestParseHotspotCSV(t *testing.T) {
	hotspots, err := ParseHotspotCSV(strings.NewReader(sampleCSV))
	require.NoError(t, err)
	require.Len(t, hotspots, 2)

	assert.Equal(t, int64(101), hotspots[0].HotspotID)
	assert.Equal(t, "Gangnam-gu", hotspots[0].GuName)
	assert.Equal(t, "Gangnam Station Crossing", hotspots[0].LocationName)
	assert.InDelta(t, 37.4979, hotspots[0].Latitude, 1e-9)
	assert.InDelta(t, 127.0276, hotspots[0].Longitude, 1e-9)
	assert.Equal(t, 42, hotspots[0].AccidentCount)
	assert.Equal(t, 55, hotspots[0].CasualtyCount)
	assert.Equal(t, 3, hotspots[0].DeathCount)

	assert.Equal(t, int64(102), hotspots[1].HotspotID)
	assert.Equal(t, 0, hotspots[1].DeathCount)
}

func TestParseHotspotCSV_StripsBOM(t *testing.T) {
	hotspots, err := ParseHotspotCSV(strings.NewReader("\uFEFF" + sampleCSV))
	require.NoError(t, err)
	assert.Len(t, hotspots, 2)
}

func TestParseHotspotCSV_HeaderOnly(t *testing.T) {
	hotspots, err := ParseHotspotCSV(strings.NewReader("hotspot_id,gu_name,location_name,latitude,longitude,accident_count,casualty_count,death_count\n"))
	require.NoError(t, err)
	assert.Empty(t, hotspots)
}

func TestParseHotspotCSV_BadNumeric(t *testing.T) {
	bad := "hotspot_id,gu_name,location_name,latitude,longitude,accident_count,casualty_count,death_count\nabc,Gangnam-gu,Somewhere,37.1,127.1,1,1,0\n"
	_, err := ParseHotspotCSV(strings.NewReader(bad))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid hotspot_id")
}

func TestParseHotspotCSV_WrongColumnCount(t *testing.T) {
	bad := "hotspot_id,gu_name\n1,Gangnam-gu\n"
	_, err := ParseHotspotCSV(strings.NewReader(bad))
	require.Error(t, err)
}
