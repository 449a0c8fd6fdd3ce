package solar

// classify.go - Propagation condition classification
//
// Maps the raw solar/geomagnetic indices onto the German/English phrases
// shown on the banner. Thresholds follow the amateur-radio propagation
// conventions for HF band openings.
//
// Implementation: ordered threshold ladders with a fixed fallback tier.
// Thread-safety: stateless, read-only tables, fully reentrant.

import "strings"

// Condition is one classified band condition as a bilingual phrase pair.
type Condition struct {
	DE string // German phrase
	EN string // English phrase
}

// sfiLadder maps Solar Flux Index to expected HF band openings.
// Bands are ordered low to high; Max is the exclusive upper bound.
var sfiLadder = []struct {
	Max  float64
	Cond Condition
}{
	{80, Condition{"schwache obere KW-Baender", "weak upper HF bands"}},
	{120, Condition{"gute 20-15m Bedingungen", "good 20-15m conditions"}},
	{160, Condition{"sehr gute 20-10m Bedingungen", "very good 20-10m conditions"}},
}

// sfiTop is the fallback tier for SFI >= 160.
var sfiTop = Condition{"exzellente 20-10m Bedingungen", "excellent 20-10m conditions"}

// kLadder maps the planetary K-index to geomagnetic field state.
// Max is the inclusive upper bound; K=4 gets its own "active" tier.
var kLadder = []struct {
	Max  int
	Cond Condition
}{
	{1, Condition{"Magnetfeld ruhig", "geomagnetic field quiet"}},
	{3, Condition{"Magnetfeld leicht unruhig", "geomagnetic field unsettled"}},
	{4, Condition{"Magnetfeld gestoert", "geomagnetic field active"}},
	{5, Condition{"geomagnetischer Sturm (K>=5)", "minor geomagnetic storm (K>=5)"}},
}

// kTop is the fallback tier for K > 5.
var kTop = Condition{"starker geomagnetischer Sturm", "major geomagnetic storm"}

// auroraLadder maps the aurora index to auroral DX likelihood.
var auroraLadder = []struct {
	Max  float64
	Cond Condition
}{
	{5, Condition{"Aurora-DX unwahrscheinlich", "Aurora DX unlikely"}},
	{7, Condition{"moegliche Aurora-Aktivitaet", "possible auroral activity"}},
}

// auroraTop is the fallback tier for an aurora index >= 7.
var auroraTop = Condition{"hohe Aurora-Wahrscheinlichkeit", "high auroral probability"}

// X-ray flare classes keyed by the leading severity letter. Quiet background
// (empty string, A- and B-class) shares one tier; unrecognized letters fall
// through to the X-flare tier since anything above M is a blackout risk.
var (
	xrayQuiet = Condition{"X-Ray Hintergrund ruhig", "low X-ray background"}
	xrayC     = Condition{"C-Flare Aktivitaet", "C-flare activity"}
	xrayM     = Condition{"M-Flare - kurzzeitige HF-Daempfung moeglich", "M-flare - short HF fade possible"}
	xrayX     = Condition{"X-Flare - HF-Blackouts moeglich", "X-flare - HF blackouts possible"}
)

// ClassifySFI classifies the Solar Flux Index into expected HF conditions.
func ClassifySFI(sfi float64) Condition {
	for _, tier := range sfiLadder {
		if sfi < tier.Max {
			return tier.Cond
		}
	}
	return sfiTop
}

// ClassifyK classifies the planetary K-index into geomagnetic field state.
func ClassifyK(k int) Condition {
	for _, tier := range kLadder {
		if k <= tier.Max {
			return tier.Cond
		}
	}
	return kTop
}

// ClassifyAurora classifies the aurora index into auroral DX likelihood.
func ClassifyAurora(a float64) Condition {
	for _, tier := range auroraLadder {
		if a < tier.Max {
			return tier.Cond
		}
	}
	return auroraTop
}

// ClassifyXRay classifies an X-ray flare class string (e.g. "C1.2") by its
// leading severity letter. The letter is matched case-insensitively; an
// empty string means quiet background.
func ClassifyXRay(xray string) Condition {
	if xray == "" {
		return xrayQuiet
	}
	switch strings.ToUpper(xray[:1]) {
	case "A", "B":
		return xrayQuiet
	case "C":
		return xrayC
	case "M":
		return xrayM
	default:
		return xrayX
	}
}
