// Package form models the create/edit form lifecycle shared by every module:
// idle -> editing (clean/dirty) -> submitting -> back to idle on success or
// editing on error. It owns the dirty/valid gating and the fetch-reset
// suppression that keeps a slow edit-mode fetch from clobbering typed values.
package form

type Mode int

const (
	ModeCreate Mode = iota
	ModeEdit
)

type State int

const (
	StateIdle State = iota
	StateEditing
	StateSubmitting
)

type Form[T any] struct {
	mode  Mode
	state State

	defaults T
	baseline T
	draft    T

	equal    func(a, b T) bool
	validate func(T) error
	codeOf   func(T) string
}

// Option configures optional behavior.
type Option[T any] func(*Form[T])

// WithImmutableCode locks the business code in edit mode: drafts that change
// it are rejected so the field can be disabled but stay visible.
func WithImmutableCode[T any](codeOf func(T) string) Option[T] {
	return func(f *Form[T]) { f.codeOf = codeOf }
}

// New builds a form. equal compares two drafts for dirty tracking; validate
// returns nil when the draft may be submitted.
func New[T any](mode Mode, defaults T, equal func(a, b T) bool, validate func(T) error, opts ...Option[T]) *Form[T] {
	f := &Form[T]{
		mode:     mode,
		state:    StateIdle,
		defaults: defaults,
		baseline: defaults,
		draft:    defaults,
		equal:    equal,
		validate: validate,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

func (f *Form[T]) Mode() Mode   { return f.mode }
func (f *Form[T]) State() State { return f.state }
func (f *Form[T]) Draft() T     { return f.draft }

// SetDraft applies user edits. In edit mode the business code is immutable;
// a draft changing it is refused without touching current values.
func (f *Form[T]) SetDraft(v T) bool {
	if f.state == StateSubmitting {
		return false
	}
	if f.mode == ModeEdit && f.codeOf != nil && f.codeOf(v) != f.codeOf(f.baseline) {
		return false
	}
	f.draft = v
	f.state = StateEditing
	return true
}

func (f *Form[T]) Dirty() bool {
	return !f.equal(f.draft, f.baseline)
}

func (f *Form[T]) Valid() bool {
	return f.ValidationErr() == nil
}

func (f *Form[T]) ValidationErr() error {
	if f.validate == nil {
		return nil
	}
	return f.validate(f.draft)
}

// CanSubmit gates the submit action: the draft must validate, nothing may be
// in flight, and edit mode additionally requires a dirty draft (nothing to
// save otherwise).
func (f *Form[T]) CanSubmit() bool {
	if f.state == StateSubmitting || !f.Valid() {
		return false
	}
	if f.mode == ModeEdit && !f.Dirty() {
		return false
	}
	return true
}

// BeginSubmit moves to submitting; only one submission may be in flight.
func (f *Form[T]) BeginSubmit() bool {
	if !f.CanSubmit() {
		return false
	}
	f.state = StateSubmitting
	return true
}

// FinishSubmit resolves an in-flight submission. On success create mode
// resets to defaults (form stays open for the next record) and edit mode
// adopts the saved draft as the new baseline. On error the draft is kept
// untouched so the user can retry.
func (f *Form[T]) FinishSubmit(err error) {
	if f.state != StateSubmitting {
		return
	}
	if err != nil {
		f.state = StateEditing
		return
	}
	if f.mode == ModeCreate {
		f.baseline = f.defaults
		f.draft = f.defaults
	} else {
		f.baseline = f.draft
	}
	f.state = StateIdle
}

// ResetFromFetch repopulates baseline and draft from a fetched entity. The
// reset is suppressed while the user has unsaved edits or a submission is in
// flight, so a late fetch cannot clobber typed values. Reports whether it
// applied.
func (f *Form[T]) ResetFromFetch(v T) bool {
	if f.state == StateSubmitting || f.Dirty() {
		return false
	}
	f.baseline = v
	f.draft = v
	f.state = StateIdle
	return true
}

// CancelNeedsConfirm reports whether discarding now loses unsaved changes.
func (f *Form[T]) CancelNeedsConfirm() bool {
	return f.Dirty() && f.state != StateSubmitting
}

// Cancel discards the draft back to the baseline.
func (f *Form[T]) Cancel() {
	if f.state == StateSubmitting {
		return
	}
	f.draft = f.baseline
	f.state = StateIdle
}
