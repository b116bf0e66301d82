package services

import (
	"time"

	"github.com/kerbaras/maniverse/pkg/data"
)

// Step is one of the three screens of the design flow.
type Step int

const (
	ShapeSelection Step = iota
	ColorSelection
	PreviewSummary
)

const DefaultLoadingDelay = 800 * time.Millisecond

func (s Step) Valid() bool {
	return s >= ShapeSelection && s <= PreviewSummary
}

func (s Step) String() string {
	switch s {
	case ShapeSelection:
		return "shapes"
	case ColorSelection:
		return "colors"
	case PreviewSummary:
		return "preview"
	default:
		return "unknown"
	}
}

// Ticket identifies one pending step transition. Only the most recently
// issued ticket can complete; cancelling it turns its continuation into a no-op.
type Ticket struct {
	ID     uint64
	Target Step
}

// Navigator drives shapes -> colors -> preview. A selection puts it into a
// transient loading state that ends when the matching ticket is completed
// after Delay. While loading, further selections and tab changes are ignored.
type Navigator struct {
	store   *SelectionStore
	delay   time.Duration
	step    Step
	loading bool
	pending uint64
	seq     uint64
	closed  bool
}

func NewNavigator(store *SelectionStore, delay time.Duration) *Navigator {
	if delay < 0 {
		delay = 0
	}
	return &Navigator{
		store: store,
		delay: delay,
		step:  ShapeSelection,
	}
}

func (n *Navigator) Step() Step                { return n.step }
func (n *Navigator) Loading() bool             { return n.loading }
func (n *Navigator) Delay() time.Duration      { return n.delay }
func (n *Navigator) Selection() data.Selection { return n.store.Selection() }

// SelectShape records shape and starts the transition to ColorSelection.
func (n *Navigator) SelectShape(shape data.NailShape) (Ticket, bool) {
	if n.closed || n.loading {
		return Ticket{}, false
	}
	if err := n.store.SetShape(shape); err != nil {
		return Ticket{}, false
	}
	return n.begin(ColorSelection), true
}

// SelectColor records color and starts the transition to PreviewSummary.
func (n *Navigator) SelectColor(color data.NailColor) (Ticket, bool) {
	if n.closed || n.loading {
		return Ticket{}, false
	}
	if err := n.store.SetColor(color); err != nil {
		return Ticket{}, false
	}
	return n.begin(PreviewSummary), true
}

// Complete finishes the transition t started. Stale tickets are ignored.
func (n *Navigator) Complete(t Ticket) bool {
	if n.closed || t.ID == 0 || t.ID != n.pending {
		return false
	}
	n.pending = 0
	n.loading = false
	n.step = t.Target
	return true
}

// Reset cancels any pending transition, clears the selection and goes back
// to ShapeSelection.
func (n *Navigator) Reset() {
	n.cancel()
	n.store.Reset()
	n.step = ShapeSelection
}

// GoTo jumps straight to step, as a tab click would.
func (n *Navigator) GoTo(step Step) bool {
	if n.closed || n.loading || !step.Valid() {
		return false
	}
	n.step = step
	return true
}

// StartDesigning is the way out of an incomplete preview.
func (n *Navigator) StartDesigning() bool {
	if n.closed || n.loading || n.step != PreviewSummary || n.store.Selection().Complete() {
		return false
	}
	n.step = ShapeSelection
	return true
}

// Close is called on teardown; any transition still in flight is dropped.
func (n *Navigator) Close() {
	n.cancel()
	n.closed = true
}

func (n *Navigator) begin(target Step) Ticket {
	n.seq++
	n.pending = n.seq
	n.loading = true
	return Ticket{ID: n.seq, Target: target}
}

func (n *Navigator) cancel() {
	n.pending = 0
	n.loading = false
}
