package engine

import "github.com/rs/xid"

// newRunID returns a short sortable ID for a brew run. Used to correlate log
// lines of one start/reset cycle.
func newRunID() string {
	return xid.New().String()
}
