package engine

import "sync/atomic"

// inflight guards an analyzer so at most one run is active at a time.
// Overlapping requests are rejected rather than queued: the next
// scheduled invocation will see fresher state anyway.
type inflight struct {
	flag int32
}

// begin claims the slot, returning false when a run is already active
func (f *inflight) begin() bool {
	return atomic.CompareAndSwapInt32(&f.flag, 0, 1)
}

// end releases the slot
func (f *inflight) end() {
	atomic.StoreInt32(&f.flag, 0)
}
