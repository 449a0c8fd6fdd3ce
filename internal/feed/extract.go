package feed

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/beevik/etree"

	"github.com/dl2ht/solar-banner/internal/solar"
)

// recordPaths are the candidate locations of the solar record node under
// the document root, tried in order. The feed usually nests a <solardata>
// element inside channel/item, but some revisions put the leaf fields
// directly under the item.
var recordPaths = []string{
	"channel/item/solardata",
	"channel/item",
}

// Extract parses raw feed bytes and builds a fully populated solar.Report.
//
// A body that is not well-formed XML yields ErrMalformedFeed. A document
// with no record node at any known path yields ErrRecordNotFound; no
// partial report is produced. Individual leaf fields that are missing,
// empty or non-numeric degrade to their defaults instead of failing.
func Extract(raw []byte) (solar.Report, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(raw); err != nil {
		return solar.Report{}, fmt.Errorf("%w: %v", ErrMalformedFeed, err)
	}
	root := doc.Root()
	if root == nil {
		return solar.Report{}, fmt.Errorf("%w: empty document", ErrMalformedFeed)
	}

	var record *etree.Element
	for _, path := range recordPaths {
		if el := root.FindElement(path); el != nil {
			record = el
			break
		}
	}
	if record == nil {
		return solar.Report{}, fmt.Errorf("%w: tried %s", ErrRecordNotFound, strings.Join(recordPaths, ", "))
	}

	return solar.Report{
		SFI:         floatField(record, "solarflux"),
		Sunspots:    textField(record, "sunspots", "?"),
		AIndex:      intField(record, "aindex"),
		KIndex:      intField(record, "kindex"),
		XRay:        textField(record, "xray", ""),
		Aurora:      floatField(record, "aurora"),
		GeomagField: textField(record, "geomagfield", "NoRpt"),
		SignalNoise: textField(record, "signalnoise", "?"),
	}, nil
}

// textField returns the trimmed text of a direct child element, or def when
// the element is missing or its text is empty.
func textField(el *etree.Element, tag, def string) string {
	child := el.SelectElement(tag)
	if child == nil {
		return def
	}
	text := strings.TrimSpace(child.Text())
	if text == "" {
		return def
	}
	return text
}

// floatField parses a numeric child element. Missing, empty or non-numeric
// text coerces to 0 rather than failing the run.
func floatField(el *etree.Element, tag string) float64 {
	v, err := strconv.ParseFloat(textField(el, tag, "0"), 64)
	if err != nil {
		return 0
	}
	return v
}

// intField parses a numeric child element as float and truncates toward
// zero, so "3.8" becomes 3. Truncation, not rounding, is the upstream
// display semantic for these indices.
func intField(el *etree.Element, tag string) int {
	return int(floatField(el, tag))
}
