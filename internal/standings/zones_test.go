package standings

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rankedTable(n int) []Entry {
	entries := make([]Entry, n)
	for i := range entries {
		entries[i] = Entry{TeamID: fmt.Sprintf("t%d", i+1), Position: i + 1}
	}
	return entries
}

func zonesOf(entries []Entry) []Zone {
	out := make([]Zone, len(entries))
	for i, e := range entries {
		out[i] = e.Zone
	}
	return out
}

func TestClassify(t *testing.T) {
	const (
		P = ZonePromotion
		O = ZonePlayoff
		R = ZoneRelegation
		N = ZoneNone
	)

	tests := []struct {
		name  string
		teams int
		zones ZoneConfig
		want  []Zone
	}{
		{"no zones", 4, ZoneConfig{}, []Zone{N, N, N, N}},
		{"all bands", 8, ZoneConfig{PromotionSpots: 2, PlayoffSpots: 2, RelegationSpots: 2}, []Zone{P, P, O, O, N, N, R, R}},
		{"exact fit", 5, ZoneConfig{PromotionSpots: 1, PlayoffSpots: 2, RelegationSpots: 2}, []Zone{P, O, O, R, R}},
		{"promotion beats relegation", 3, ZoneConfig{PromotionSpots: 2, RelegationSpots: 2}, []Zone{P, P, R}},
		{"playoff beats relegation", 4, ZoneConfig{PromotionSpots: 1, PlayoffSpots: 2, RelegationSpots: 3}, []Zone{P, O, O, R}},
		{"more spots than teams", 2, ZoneConfig{PromotionSpots: 5, PlayoffSpots: 1, RelegationSpots: 1}, []Zone{P, P}},
		{"negative counts are ignored", 4, ZoneConfig{PromotionSpots: -1, PlayoffSpots: 1, RelegationSpots: -3}, []Zone{O, N, N, N}},
		{"empty table", 0, ZoneConfig{PromotionSpots: 1}, []Zone{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ranked := rankedTable(tt.teams)
			classified := Classify(ranked, tt.zones)
			assert.Equal(t, tt.want, zonesOf(classified))
			for _, e := range ranked {
				assert.Empty(t, e.Zone, "input must not be modified")
			}
		})
	}
}

func TestClassify_ZonePartition(t *testing.T) {
	zones := ZoneConfig{PromotionSpots: 3, PlayoffSpots: 4, RelegationSpots: 3}
	classified := Classify(rankedTable(20), zones)

	counts := map[Zone]int{}
	seen := map[string]Zone{}
	for _, e := range classified {
		counts[e.Zone]++
		_, dup := seen[e.TeamID]
		require.False(t, dup)
		seen[e.TeamID] = e.Zone
	}
	assert.Equal(t, 3, counts[ZonePromotion])
	assert.Equal(t, 4, counts[ZonePlayoff])
	assert.Equal(t, 3, counts[ZoneRelegation])
	assert.Equal(t, 10, counts[ZoneNone])
}

func TestZoneConfig_Validate(t *testing.T) {
	assert.NoError(t, ZoneConfig{}.Validate(0))
	assert.NoError(t, ZoneConfig{PromotionSpots: 2, PlayoffSpots: 2, RelegationSpots: 2}.Validate(6))
	assert.NoError(t, ZoneConfig{PromotionSpots: 10}.Validate(0), "team count unknown")

	err := ZoneConfig{PlayoffSpots: -1}.Validate(10)
	var cfgErr *ConfigError
	require.True(t, errors.As(err, &cfgErr))
	assert.Equal(t, "playoff_spots", cfgErr.Field)
	assert.Equal(t, -1, cfgErr.Value)

	err = ZoneConfig{PromotionSpots: 3, RelegationSpots: 3}.Validate(5)
	require.True(t, errors.As(err, &cfgErr))
	assert.Equal(t, "total_spots", cfgErr.Field)
	assert.Contains(t, err.Error(), "exceeds team count 5")
}
