// Package collector gathers a form section by section and gates navigation
// and submission on section completeness.
package collector

import (
	"context"
	"fmt"
	"sync"

	"maternal-screening-server/internal/models"
)

// SubmitFunc receives the completed record. It is called at most once per
// Submit.
type SubmitFunc[F any] func(ctx context.Context, form F) error

// Collector owns one in-progress form. It is safe for concurrent use, but a
// record is meant to belong to a single user session.
type Collector[F any] struct {
	mu      sync.Mutex
	layout  Layout[F]
	form    F
	section int
	busy    bool
}

// New starts an empty form on the first section.
func New[F any](layout Layout[F]) *Collector[F] {
	return &Collector[F]{layout: layout, section: 1}
}

// Resume restores a form at the given 1-based section.
func Resume[F any](layout Layout[F], form F, section int) (*Collector[F], error) {
	if section < 1 || section > layout.TotalSections() {
		return nil, fmt.Errorf("%w: section %d out of range", ErrInvalidDraft, section)
	}
	return &Collector[F]{layout: layout, form: form, section: section}, nil
}

// Layout returns the section layout the collector navigates.
func (c *Collector[F]) Layout() Layout[F] {
	return c.layout
}

// Set stores the answer for the field with the given key.
func (c *Collector[F]) Set(key, value string) error {
	field, ok := models.FieldByKey(c.layout.Fields(), key)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownField, key)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.busy {
		return ErrBusy
	}
	field.Set(&c.form, value)
	return nil
}

// SetAll applies several answers; it stops at the first unknown key.
func (c *Collector[F]) SetAll(answers map[string]string) error {
	for key, value := range answers {
		if err := c.Set(key, value); err != nil {
			return err
		}
	}
	return nil
}

// Form returns a copy of the record collected so far.
func (c *Collector[F]) Form() F {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.form
}

// Section returns the current 1-based section.
func (c *Collector[F]) Section() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.section
}

// IsSectionValid reports whether the given 1-based section is complete.
func (c *Collector[F]) IsSectionValid(section int) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.layout.IsSectionValid(&c.form, section)
}

// IsComplete reports whether every section is complete.
func (c *Collector[F]) IsComplete() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.layout.IsComplete(&c.form)
}

// CanAdvance reports whether Next would succeed.
func (c *Collector[F]) CanAdvance() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.canAdvance()
}

func (c *Collector[F]) canAdvance() bool {
	return c.section < c.layout.TotalSections() && c.layout.IsSectionValid(&c.form, c.section)
}

// CanGoBack reports whether Previous would succeed.
func (c *Collector[F]) CanGoBack() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.section > 1
}

// CanSubmit reports whether the submit action is available: the user is on
// the last section, every section is complete and nothing is in flight.
func (c *Collector[F]) CanSubmit() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.canSubmit()
}

func (c *Collector[F]) canSubmit() bool {
	return !c.busy && c.section == c.layout.TotalSections() && c.layout.IsComplete(&c.form)
}

// Busy reports whether a submission is in flight.
func (c *Collector[F]) Busy() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.busy
}

// Next moves to the following section once the current one is complete.
func (c *Collector[F]) Next() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.section >= c.layout.TotalSections() {
		return ErrNoNextSection
	}
	if !c.layout.IsSectionValid(&c.form, c.section) {
		return fmt.Errorf("%w: section %d", ErrSectionIncomplete, c.section)
	}
	c.section++
	return nil
}

// Previous moves back one section.
func (c *Collector[F]) Previous() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.section <= 1 {
		return ErrNoPreviousSection
	}
	c.section--
	return nil
}

// Submit hands the complete record to fn. While fn runs the collector is busy:
// further submissions and edits fail with ErrBusy. An incomplete record is
// rejected with an *IncompleteError and fn is not called.
func (c *Collector[F]) Submit(ctx context.Context, fn SubmitFunc[F]) error {
	c.mu.Lock()
	if c.busy {
		c.mu.Unlock()
		return ErrBusy
	}
	if err := c.layout.Check(&c.form); err != nil {
		c.mu.Unlock()
		return err
	}
	c.busy = true
	form := c.form
	c.mu.Unlock()

	defer func() {
		c.mu.Lock()
		c.busy = false
		c.mu.Unlock()
	}()
	return fn(ctx, form)
}

// State is a serialisable snapshot of the collector for clients.
type State struct {
	Kind               models.Kind       `json:"kind"`
	Section            int               `json:"section"`
	TotalSections      int               `json:"totalSections"`
	SectionTitle       string            `json:"sectionTitle"`
	SectionValid       bool              `json:"sectionValid"`
	CanAdvance         bool              `json:"canAdvance"`
	CanGoBack          bool              `json:"canGoBack"`
	CanSubmit          bool              `json:"canSubmit"`
	Busy               bool              `json:"busy"`
	IncompleteSections []int             `json:"incompleteSections"`
	Answers            map[string]string `json:"answers"`
}

// State snapshots the collector.
func (c *Collector[F]) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	incomplete := c.layout.IncompleteSections(&c.form)
	if incomplete == nil {
		incomplete = []int{}
	}
	return State{
		Kind:               c.layout.Kind,
		Section:            c.section,
		TotalSections:      c.layout.TotalSections(),
		SectionTitle:       c.layout.Sections[c.section-1].Title,
		SectionValid:       c.layout.IsSectionValid(&c.form, c.section),
		CanAdvance:         c.canAdvance(),
		CanGoBack:          c.section > 1,
		CanSubmit:          c.canSubmit(),
		Busy:               c.busy,
		IncompleteSections: incomplete,
		Answers:            models.Values(&c.form, c.layout.Fields()),
	}
}
