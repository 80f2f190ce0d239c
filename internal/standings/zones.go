package standings

// Classify tags each ranked entry with its zone and returns a new slice.
//
// The first PromotionSpots positions are promotion, the next PlayoffSpots are
// playoff and the last RelegationSpots are relegation. When the bands overlap
// the earlier rule wins: promotion, then playoff, then relegation. Negative
// counts are treated as zero.
func Classify(ranked []Entry, zones ZoneConfig) []Entry {
	promotion := max(zones.PromotionSpots, 0)
	playoff := max(zones.PlayoffSpots, 0)
	relegation := max(zones.RelegationSpots, 0)

	n := len(ranked)
	out := make([]Entry, n)
	for i, e := range ranked {
		pos := i + 1
		switch {
		case pos <= promotion:
			e.Zone = ZonePromotion
		case pos <= promotion+playoff:
			e.Zone = ZonePlayoff
		case pos > n-relegation:
			e.Zone = ZoneRelegation
		default:
			e.Zone = ZoneNone
		}
		out[i] = e
	}
	return out
}
