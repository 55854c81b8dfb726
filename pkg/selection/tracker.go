package selection

import (
	"strings"
	"sync"
	"time"
)

const (
	// DefaultDebounce gives the browser time to finalize the native
	// selection before the commit inspects it.
	DefaultDebounce = 50 * time.Millisecond

	// toolbarOffsetPx lifts the toolbar anchor above the selection so
	// it does not cover the selected text.
	toolbarOffsetPx = 48.0
)

// Tracker turns raw pointer gestures into committed selection
// descriptors for one client. Pointer-down only arms internal flags;
// the observable Descriptor changes exclusively inside the debounced
// commit, so an in-progress native selection is never disturbed by a
// state write.
type Tracker struct {
	mu sync.Mutex

	containerID string
	debounce    time.Duration
	mode        string

	descriptor Descriptor

	pendingDismiss bool
	commitTimer    *time.Timer
	generation     uint64
}

// Option configures a Tracker.
type Option func(*Tracker)

// WithDebounce overrides the commit debounce, mainly for tests.
func WithDebounce(d time.Duration) Option {
	return func(t *Tracker) { t.debounce = d }
}

// WithMode sets the selection mode carried on committed descriptors.
func WithMode(mode string) Option {
	return func(t *Tracker) { t.mode = mode }
}

func NewTracker(containerID string, opts ...Option) *Tracker {
	t := &Tracker{
		containerID: containerID,
		debounce:    DefaultDebounce,
		mode:        "refine",
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// SetContainer re-targets the tracker when the content container is
// replaced, e.g. remounted after an asynchronous document load. Any
// pending commit is abandoned because its snapshot belongs to the old
// container.
func (t *Tracker) SetContainer(containerID string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if containerID == t.containerID {
		return
	}
	t.containerID = containerID
	t.cancelPendingLocked()
	t.descriptor = Descriptor{}
}

// PointerDown arms a pending dismissal and cancels any in-flight
// commit. It deliberately touches no observable state. The armed flag
// is what lets the commit distinguish a click that began here from a
// stray pointer-up whose gesture started outside the container.
func (t *Tracker) PointerDown() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.pendingDismiss = true
	t.cancelPendingLocked()
}

// PointerUp schedules a debounced commit of the given selection
// snapshot. A later pointer-up supersedes an earlier one that has not
// fired yet.
func (t *Tracker) PointerUp(raw RawSelection) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.cancelPendingLocked()
	t.generation++
	gen := t.generation
	t.commitTimer = time.AfterFunc(t.debounce, func() {
		t.commit(gen, raw)
	})
}

func (t *Tracker) commit(gen uint64, raw RawSelection) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if gen != t.generation {
		return // superseded or cancelled
	}
	t.commitTimer = nil
	wasActive := t.descriptor.Active
	dismissArmed := t.pendingDismiss
	t.pendingDismiss = false

	text := strings.TrimSpace(raw.Text)

	switch {
	case raw.Collapsed || raw.Text == "":
		// An ordinary click only dismisses a toolbar that was showing,
		// and only when the click began inside the container.
		if dismissArmed && wasActive {
			t.descriptor = Descriptor{}
		}
		return
	case !raw.InsideContainer || raw.ContainerID != t.containerID:
		return // selection started outside our container
	case text == "":
		return
	}

	sectionKey := resolveSectionKey(raw.AncestorSectionKeys)
	if sectionKey == "" {
		return
	}

	t.descriptor = Descriptor{
		Text:       text,
		SectionKey: sectionKey,
		Active:     true,
		Anchor:     anchorFor(raw.Rect, raw.ContainerRect),
		Mode:       t.mode,
	}
}

// anchorFor places the toolbar above the selection's horizontal
// center, in container-relative coordinates.
func anchorFor(rect, container Rect) Anchor {
	return Anchor{
		X: rect.Left + rect.Width/2 - container.Left,
		Y: rect.Top - container.Top - toolbarOffsetPx,
	}
}

// Clear dismisses the toolbar and abandons any pending commit. The
// caller is expected to also collapse the native browser selection.
func (t *Tracker) Clear() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.cancelPendingLocked()
	t.pendingDismiss = false
	t.descriptor = Descriptor{}
}

// Escape behaves exactly like Clear; kept separate so callers map the
// keyboard path explicitly.
func (t *Tracker) Escape() {
	t.Clear()
}

// Snapshot returns the current committed descriptor.
func (t *Tracker) Snapshot() Descriptor {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.descriptor
}

func (t *Tracker) cancelPendingLocked() {
	t.generation++
	if t.commitTimer != nil {
		t.commitTimer.Stop()
		t.commitTimer = nil
	}
}
