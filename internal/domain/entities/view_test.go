//go:build unit

package entities_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rios0rios0/depocheck/internal/domain/entities"
)

func TestView(t *testing.T) {
	t.Parallel()

	t.Run("should display the committed payload", func(t *testing.T) {
		t.Parallel()

		// given
		view := entities.View[[]string]{State: entities.ViewIdle}

		// when
		view.Begin()
		loading := view.Loading()
		view.Commit([]string{"r1"})

		// then
		assert.True(t, loading)
		assert.Equal(t, entities.ViewDisplayed, view.State)
		assert.True(t, view.Loaded)
		assert.Equal(t, []string{"r1"}, view.Data)
	})

	t.Run("should keep the prior payload on failure", func(t *testing.T) {
		t.Parallel()

		// given
		view := entities.View[[]string]{State: entities.ViewIdle}
		view.Commit([]string{"r1"})

		// when
		view.Begin()
		view.Fail()

		// then
		assert.Equal(t, entities.ViewCleared, view.State)
		assert.False(t, view.Loading())
		assert.Equal(t, []string{"r1"}, view.Data)
	})
}
