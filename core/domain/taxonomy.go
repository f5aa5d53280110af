// ABOUTME: Fixed disaster-type taxonomy mapping type tags to keyword synonyms
// ABOUTME: Static, process-wide, read-only classification data

package domain

import "strings"

// DisasterType is a tag in the fixed disaster-type taxonomy.
type DisasterType string

const (
	DisasterHurricane     DisasterType = "hurricane"
	DisasterFlood         DisasterType = "flood"
	DisasterFire          DisasterType = "fire"
	DisasterTornado       DisasterType = "tornado"
	DisasterEarthquake    DisasterType = "earthquake"
	DisasterWinter        DisasterType = "winter"
	DisasterDrought       DisasterType = "drought"
	DisasterSevereWeather DisasterType = "severe_weather"
)

// disasterKeywords maps each disaster type to its case-insensitive
// keyword synonyms. Matching is plain substring matching, so "fire"
// also matches "Wildfire".
var disasterKeywords = map[DisasterType][]string{
	DisasterHurricane:     {"hurricane", "tropical storm", "cyclone", "typhoon"},
	DisasterFlood:         {"flood", "flooding", "flash flood", "storm surge"},
	DisasterFire:          {"fire", "wildfire", "burn"},
	DisasterTornado:       {"tornado", "twister"},
	DisasterEarthquake:    {"earthquake", "seismic", "quake"},
	DisasterWinter:        {"winter storm", "blizzard", "snow", "ice storm", "freeze"},
	DisasterDrought:       {"drought", "water shortage", "dry conditions"},
	DisasterSevereWeather: {"severe weather", "severe storm", "thunderstorm", "high wind", "hail"},
}

// DisasterTypes returns all taxonomy keys in a stable order.
func DisasterTypes() []DisasterType {
	return []DisasterType{
		DisasterHurricane,
		DisasterFlood,
		DisasterFire,
		DisasterTornado,
		DisasterEarthquake,
		DisasterWinter,
		DisasterDrought,
		DisasterSevereWeather,
	}
}

// KeywordsFor returns the synonym set for a disaster type. The second
// return value is false for tags outside the taxonomy.
func KeywordsFor(t DisasterType) ([]string, bool) {
	kws, ok := disasterKeywords[t]
	return kws, ok
}

// MatchesDisasterType reports whether any synonym of the given type
// appears as a case-insensitive substring of the text.
func MatchesDisasterType(text string, t DisasterType) bool {
	kws, ok := disasterKeywords[t]
	if !ok {
		return false
	}
	lower := strings.ToLower(text)
	for _, kw := range kws {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}
