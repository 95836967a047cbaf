package breakout

// Handle identifies a scheduled frame callback.
type Handle uint64

// Scheduler runs callbacks at the next display refresh opportunity.
type Scheduler interface {
	// ScheduleNextFrame queues fn to run once at the next frame.
	ScheduleNextFrame(fn func()) Handle
	// Cancel drops a queued callback. Unknown handles are ignored.
	Cancel(h Handle)
}

type frameEntry struct {
	handle Handle
	fn     func()
}

// FrameQueue is a Scheduler whose frames are driven by the host calling
// RunFrame: a Bubble Tea tick, an Ebiten Update or a test.
// It is not safe for concurrent use; drive it from the goroutine that
// owns the game.
type FrameQueue struct {
	next    Handle
	pending []frameEntry
}

// NewFrameQueue creates an empty frame queue.
func NewFrameQueue() *FrameQueue {
	return &FrameQueue{}
}

// ScheduleNextFrame queues fn for the next RunFrame call.
func (q *FrameQueue) ScheduleNextFrame(fn func()) Handle {
	q.next++
	q.pending = append(q.pending, frameEntry{handle: q.next, fn: fn})
	return q.next
}

// Cancel removes a queued callback.
func (q *FrameQueue) Cancel(h Handle) {
	for i, e := range q.pending {
		if e.handle == h {
			q.pending = append(q.pending[:i], q.pending[i+1:]...)
			return
		}
	}
}

// Pending returns the number of queued callbacks.
func (q *FrameQueue) Pending() int {
	return len(q.pending)
}

// RunFrame runs every callback queued before the call and returns how many
// ran. Callbacks scheduled while the frame runs wait for the next frame.
func (q *FrameQueue) RunFrame() int {
	batch := q.pending
	q.pending = nil
	for _, e := range batch {
		e.fn()
	}
	return len(batch)
}
