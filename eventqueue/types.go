package eventqueue

import "github.com/nadav-alali/fairsweep/dataset"

// Event records a candidate adjacent-pair exchange: "at rotation angle
// Theta, the items currently at positions Index and Index+1 exchange
// rank." Left and Right capture the item identities present when the
// event was created; the sweep engine compares them against the items
// actually occupying Index/Index+1 at pop time to detect staleness.
type Event struct {
	Theta       float64
	Index       int
	Left, Right *dataset.Item
}
