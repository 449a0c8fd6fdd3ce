// Package solar provides the solar-weather report model and the
// propagation condition classifiers used to render the banner.
//
// All values originate from the N0NBH solar feed (hamqsl.com). A Report is
// always fully populated: fields absent from the feed carry the documented
// defaults instead of leaving the record partially constructed.
package solar

// Report represents one snapshot of solar and geomagnetic indices.
type Report struct {
	SFI         float64 // Solar Flux Index (10.7cm)
	Sunspots    string  // Sunspot number, may be a non-numeric placeholder
	AIndex      int     // Daily geomagnetic A-index
	KIndex      int     // 3-hourly planetary K-index
	XRay        string  // X-ray flare class (e.g. "C1.2"), empty when quiet
	Aurora      float64 // Aurora activity index
	GeomagField string  // Geomagnetic field state (e.g. "Active", "NoRpt")
	SignalNoise string  // Signal noise level (e.g. "S1")
}
