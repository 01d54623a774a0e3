package matcher

import "github.com/quibble-tools/quibble/api/apitype"

// MatchWidth selects the best-fit record for a viewport width from
// records in canonical order (ascending width, then priority).
//
// The rule is closest-without-exceeding: the largest width that does
// not exceed the viewport wins. When every record is wider than the
// viewport, the smallest one is used instead. Equal widths are won by
// the lower priority number, which the canonical order puts first.
// An empty collection yields nil and no selection.
func MatchWidth(images *apitype.ImageIterator, width int) *apitype.ImageRecord {
	images.Reset()

	var first *apitype.ImageRecord
	var best *apitype.ImageRecord

	for {
		image, found := images.Next()
		if !found {
			break
		}
		if first == nil {
			first = image
		}

		if image.Width() <= width {
			// First record of each width group carries the best
			// priority, so overwrite only on strictly larger width
			if best == nil || image.Width() > best.Width() {
				best = image
			}
		}
	}

	if best != nil {
		return best
	}
	return first
}
