package collector

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"maternal-screening-server/internal/models"
)

func TestCollectorNavigationGating(t *testing.T) {
	c := New(DepressionLayout())

	assert.Equal(t, 1, c.Section())
	assert.False(t, c.CanGoBack())
	assert.False(t, c.CanAdvance())
	assert.ErrorIs(t, c.Previous(), ErrNoPreviousSection)
	assert.ErrorIs(t, c.Next(), ErrSectionIncomplete)

	full := completeDepressionForm()
	for _, f := range models.DepressionDemographicFields {
		require.NoError(t, c.Set(f.Key, f.Get(&full)))
	}
	assert.True(t, c.CanAdvance())
	require.NoError(t, c.Next())
	assert.Equal(t, 2, c.Section())
	assert.True(t, c.CanGoBack())

	require.NoError(t, c.Previous())
	assert.Equal(t, 1, c.Section())
}

func TestCollectorSetUnknownField(t *testing.T) {
	c := New(HealthRiskLayout())
	assert.ErrorIs(t, c.Set("shoeSize", "42"), ErrUnknownField)
}

func TestCollectorSubmitRequiresAllSections(t *testing.T) {
	c := New(DepressionLayout())
	full := completeDepressionForm()
	for _, f := range models.DepressionDemographicFields {
		require.NoError(t, c.Set(f.Key, f.Get(&full)))
	}

	called := false
	err := c.Submit(context.Background(), func(context.Context, models.DepressionForm) error {
		called = true
		return nil
	})
	require.ErrorIs(t, err, ErrFormIncomplete)
	assert.False(t, called, "incomplete form must not be submitted")
	assert.False(t, c.CanSubmit())
}

func TestCollectorWalkThroughAndSubmit(t *testing.T) {
	c := New(HealthRiskLayout())
	full := completeHealthRiskForm()

	for section := 1; section <= 4; section++ {
		for _, f := range c.Layout().Sections[section-1].Fields {
			require.NoError(t, c.Set(f.Key, f.Get(&full)))
		}
		if section < 4 {
			require.NoError(t, c.Next())
		}
	}
	assert.ErrorIs(t, c.Next(), ErrNoNextSection)
	assert.True(t, c.CanSubmit())

	var got models.HealthRiskForm
	calls := 0
	err := c.Submit(context.Background(), func(_ context.Context, form models.HealthRiskForm) error {
		calls++
		assert.True(t, c.Busy())
		assert.False(t, c.CanSubmit())
		got = form
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 1, calls)
	assert.Equal(t, full, got)
	assert.False(t, c.Busy())
}

func TestCollectorRejectsResubmitWhileBusy(t *testing.T) {
	c := New(HealthRiskLayout())
	full := completeHealthRiskForm()
	require.NoError(t, c.SetAll(models.Values(&full, models.HealthRiskFields)))

	release := make(chan struct{})
	started := make(chan struct{})
	done := make(chan error, 1)
	go func() {
		done <- c.Submit(context.Background(), func(context.Context, models.HealthRiskForm) error {
			close(started)
			<-release
			return nil
		})
	}()

	<-started
	assert.ErrorIs(t, c.Submit(context.Background(), func(context.Context, models.HealthRiskForm) error {
		t.Error("second submission must not run")
		return nil
	}), ErrBusy)
	assert.ErrorIs(t, c.Set("age", "31"), ErrBusy)

	close(release)
	require.NoError(t, <-done)
	assert.False(t, c.Busy())
}

func TestCollectorSubmitPropagatesError(t *testing.T) {
	c := New(HealthRiskLayout())
	full := completeHealthRiskForm()
	require.NoError(t, c.SetAll(models.Values(&full, models.HealthRiskFields)))

	boom := errors.New("upstream down")
	err := c.Submit(context.Background(), func(context.Context, models.HealthRiskForm) error { return boom })
	assert.ErrorIs(t, err, boom)
	assert.False(t, c.Busy())
}

func TestCollectorState(t *testing.T) {
	c := New(DepressionLayout())
	require.NoError(t, c.Set("age", "25"))

	state := c.State()
	assert.Equal(t, models.KindDepressionRisk, state.Kind)
	assert.Equal(t, 1, state.Section)
	assert.Equal(t, 3, state.TotalSections)
	assert.Equal(t, "Demographic Information", state.SectionTitle)
	assert.False(t, state.SectionValid)
	assert.Equal(t, []int{1, 2, 3}, state.IncompleteSections)
	assert.Equal(t, "25", state.Answers["age"])
	assert.Len(t, state.Answers, 23)
}

func TestResumeRejectsOutOfRangeSection(t *testing.T) {
	_, err := Resume(DepressionLayout(), models.DepressionForm{}, 4)
	assert.ErrorIs(t, err, ErrInvalidDraft)
	_, err = Resume(DepressionLayout(), models.DepressionForm{}, 0)
	assert.ErrorIs(t, err, ErrInvalidDraft)
}
