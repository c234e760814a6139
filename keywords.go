package docinventory

import "strings"

// DefaultBadHeadings lists boilerplate section titles that are never
// controller names.
var DefaultBadHeadings = []string{
	"WHERE TO BUY",
	"FEATURES",
	"PINOUT",
	"WIRING",
	"SPECIFICATIONS",
	"HARDWARE",
	"DESCRIPTION",
	"FIRMWARE TARGETS",
	"TARGET FIRMWARE",
	"NOTE FOR SERIAL RX CONFIGURATION (V3.3.0 AND LATER)",
	"NAME",
	"**OVERVIEW**",
	"TEMPLET",
	"THIS BOARD TARGET HAS BEEN RENAMED TO FF_PIKOBLX.",
}

// DefaultBadLabels lists fragments that disqualify an index label.
var DefaultBadLabels = []string{
	"FIRMWARE LIMITATIONS",
}

// Keywords holds the filters applied to controller candidates.
// The zero value filters nothing.
type Keywords struct {
	badHeadings Set
	badLabels   []string
}

// NewKeywords returns Keywords built from the given heading and label lists.
// Entries are normalized; empty entries are ignored.
func NewKeywords(badHeadings, badLabels []string) Keywords {
	kw := Keywords{badHeadings: NewSet()}
	for _, h := range badHeadings {
		if h = Normalize(h); h != "" {
			kw.badHeadings.Add(h)
		}
	}
	for _, l := range badLabels {
		if l = Normalize(l); l != "" {
			kw.badLabels = append(kw.badLabels, l)
		}
	}
	return kw
}

// DefaultKeywords returns the built-in keyword filters.
func DefaultKeywords() Keywords {
	return NewKeywords(DefaultBadHeadings, DefaultBadLabels)
}

// IsBadHeading reports whether name, once normalized, is a boilerplate heading.
func (k Keywords) IsBadHeading(name string) bool {
	return k.badHeadings.Has(Normalize(name))
}

// IsBadLabel reports whether label contains any bad label fragment.
func (k Keywords) IsBadLabel(label string) bool {
	upper := strings.ToUpper(label)
	for _, l := range k.badLabels {
		if strings.Contains(upper, l) {
			return true
		}
	}
	return false
}

// BadHeadings returns the normalized bad headings in sorted order.
func (k Keywords) BadHeadings() []string {
	return k.badHeadings.Sorted()
}

// BadLabels returns the normalized bad label fragments.
func (k Keywords) BadLabels() []string {
	return append([]string(nil), k.badLabels...)
}
