// Package banner turns a solar report into the bilingual banner image:
// six German and six English summary lines rendered onto a fixed 640x300
// PNG canvas.
package banner

import (
	"fmt"
	"time"

	"github.com/dl2ht/solar-banner/internal/solar"
)

// timestampLayout renders e.g. "30 Aug 2026, 14:05 UTC".
const timestampLayout = "02 Jan 2006, 15:04 UTC"

// Lines builds the German and English display lines for one report.
// Each language gets exactly six lines in fixed order: header with
// timestamp, SFI/sunspots, A/K indices, aurora index, X-ray class and
// geomagnetic field with noise level. The SFI is shown truncated, the
// aurora index with one decimal place.
func Lines(rpt solar.Report, now time.Time) (de, en []string) {
	ts := now.UTC().Format(timestampLayout)

	sfi := solar.ClassifySFI(rpt.SFI)
	geo := solar.ClassifyK(rpt.KIndex)
	aur := solar.ClassifyAurora(rpt.Aurora)
	xr := solar.ClassifyXRay(rpt.XRay)

	xray := rpt.XRay
	if xray == "" {
		xray = "n/a"
	}

	de = []string{
		fmt.Sprintf("DL2HT Solarbericht - %s", ts),
		fmt.Sprintf("SFI %d / SN %s - %s", int(rpt.SFI), rpt.Sunspots, sfi.DE),
		fmt.Sprintf("A=%d, K=%d - %s", rpt.AIndex, rpt.KIndex, geo.DE),
		fmt.Sprintf("Aurora-Index %.1f - %s", rpt.Aurora, aur.DE),
		fmt.Sprintf("X-Ray %s - %s", xray, xr.DE),
		fmt.Sprintf("Geomag: %s, Rauschpegel: %s", rpt.GeomagField, rpt.SignalNoise),
	}

	en = []string{
		fmt.Sprintf("DL2HT Solar Report - %s", ts),
		fmt.Sprintf("SFI %d / SSN %s - %s", int(rpt.SFI), rpt.Sunspots, sfi.EN),
		fmt.Sprintf("A=%d, K=%d - %s", rpt.AIndex, rpt.KIndex, geo.EN),
		fmt.Sprintf("Aurora index %.1f - %s", rpt.Aurora, aur.EN),
		fmt.Sprintf("X-ray %s - %s", xray, xr.EN),
		fmt.Sprintf("Geomag: %s, Noise level: %s", rpt.GeomagField, rpt.SignalNoise),
	}

	return de, en
}
