//go:build unit

package entities_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/depocheck/internal/domain/entities"
	"github.com/rios0rios0/depocheck/test/domain/entitybuilders"
)

func TestRepositoryDecode(t *testing.T) {
	t.Parallel()

	t.Run("should render a never-scanned repository with Never and NaN", func(t *testing.T) {
		t.Parallel()

		// given
		payload := `{"id":"1","name":"r1","branch":"main","type":"MAVEN"}`

		// when
		var repo entities.Repository
		err := json.Unmarshal([]byte(payload), &repo)

		// then
		require.NoError(t, err)
		assert.Equal(t, entities.RepositoryID("1"), repo.ID)
		assert.Equal(t, "r1", repo.Name)
		assert.Equal(t, "main", repo.Branch)
		assert.Equal(t, "MAVEN", repo.Type)
		assert.Equal(t, "Never", repo.LastCheck())
		assert.Equal(t, "NaN", repo.DependencyRatio())
	})

	t.Run("should accept numeric ids", func(t *testing.T) {
		t.Parallel()

		// given
		payload := `{"id":42,"name":"r42"}`

		// when
		var repo entities.Repository
		err := json.Unmarshal([]byte(payload), &repo)

		// then
		require.NoError(t, err)
		assert.Equal(t, "42", repo.ID.String())
	})

	t.Run("should reject ids that are neither string nor number", func(t *testing.T) {
		t.Parallel()

		// given
		payload := `{"id":{"value":1}}`

		// when
		var repo entities.Repository
		err := json.Unmarshal([]byte(payload), &repo)

		// then
		require.Error(t, err)
	})

	t.Run("should parse verification dates without a zone", func(t *testing.T) {
		t.Parallel()

		// given
		payload := `{"id":"1","lastVerificationDate":"2024-03-05T14:07:59.123456"}`

		// when
		var repo entities.Repository
		err := json.Unmarshal([]byte(payload), &repo)

		// then
		require.NoError(t, err)
		assert.Equal(t, "2024-03-05 14:07", repo.LastCheck())
	})

	t.Run("should keep every row when one verification date is empty or unreadable", func(t *testing.T) {
		t.Parallel()

		// given
		payload := `[
			{"id":"1","name":"r1","lastVerificationDate":""},
			{"id":"2","name":"r2","lastVerificationDate":"last tuesday"},
			{"id":"3","name":"r3","lastVerificationDate":20240305},
			{"id":"4","name":"r4","lastVerificationDate":"2024-03-05"}
		]`

		// when
		var repos []entities.Repository
		err := json.Unmarshal([]byte(payload), &repos)

		// then
		require.NoError(t, err)
		require.Len(t, repos, 4)
		assert.Equal(t, "Never", repos[0].LastCheck())
		assert.Equal(t, "Never", repos[1].LastCheck())
		assert.Equal(t, "Never", repos[2].LastCheck())
		assert.Equal(t, "2024-03-05 00:00", repos[3].LastCheck())
	})
}

func TestRepositoryDependencyRatio(t *testing.T) {
	t.Parallel()

	t.Run("should render the share of up-to-date dependencies", func(t *testing.T) {
		t.Parallel()

		// given
		repo := entitybuilders.NewRepositoryBuilder().WithCounts(4, 1).BuildRepository()

		// when
		ratio := repo.DependencyRatio()

		// then
		assert.Equal(t, "75%", ratio)
	})

	t.Run("should render NaN when there are no dependencies", func(t *testing.T) {
		t.Parallel()

		// given
		repo := entitybuilders.NewRepositoryBuilder().WithCounts(0, 0).BuildRepository()

		// when
		ratio := repo.DependencyRatio()

		// then
		assert.Equal(t, "NaN", ratio)
	})
}

func TestRepositoryLastCheck(t *testing.T) {
	t.Parallel()

	t.Run("should format the verification date", func(t *testing.T) {
		t.Parallel()

		// given
		at := time.Date(2025, time.January, 2, 9, 30, 0, 0, time.UTC)
		repo := entitybuilders.NewRepositoryBuilder().WithLastCheck(at).BuildRepository()

		// when
		lastCheck := repo.LastCheck()

		// then
		assert.Equal(t, "2025-01-02 09:30", lastCheck)
	})
}

func TestRepositoryBrowseURL(t *testing.T) {
	t.Parallel()

	t.Run("should point at the tracked branch", func(t *testing.T) {
		t.Parallel()

		// given
		repo := entitybuilders.NewRepositoryBuilder().
			WithURL("https://github.com/octo/r1/").
			WithBranch("develop").
			BuildRepository()

		// when
		url := repo.BrowseURL()

		// then
		assert.Equal(t, "https://github.com/octo/r1/tree/develop", url)
	})
}

func TestWithoutRepository(t *testing.T) {
	t.Parallel()

	t.Run("should drop only the matching repository", func(t *testing.T) {
		t.Parallel()

		// given
		repos := []entities.Repository{
			entitybuilders.NewRepositoryBuilder().WithID("1").BuildRepository(),
			entitybuilders.NewRepositoryBuilder().WithID("2").WithName("r2").BuildRepository(),
		}

		// when
		remaining := entities.WithoutRepository(repos, "1")

		// then
		require.Len(t, remaining, 1)
		assert.Equal(t, "r2", remaining[0].Name)
		assert.Len(t, repos, 2)
	})
}

func TestRepositoryInputValidate(t *testing.T) {
	t.Parallel()

	t.Run("should accept a normalized form without access token", func(t *testing.T) {
		t.Parallel()

		// given
		input := entitybuilders.NewRepositoryInputBuilder().BuildInput().Normalize()

		// when
		err := input.Validate()

		// then
		require.NoError(t, err)
		assert.Equal(t, "MAVEN", input.Type)
	})

	t.Run("should reject a missing name", func(t *testing.T) {
		t.Parallel()

		// given
		input := entitybuilders.NewRepositoryInputBuilder().WithName("   ").BuildInput().Normalize()

		// when
		err := input.Validate()

		// then
		require.ErrorIs(t, err, entities.ErrInvalidInput)
		assert.Contains(t, err.Error(), "name is required")
	})

	t.Run("should reject a url that is not http", func(t *testing.T) {
		t.Parallel()

		// given
		input := entitybuilders.NewRepositoryInputBuilder().WithURL("git@github.com:octo/r1.git").BuildInput()

		// when
		err := input.Validate()

		// then
		require.ErrorIs(t, err, entities.ErrInvalidInput)
	})

	t.Run("should reject an unknown project type", func(t *testing.T) {
		t.Parallel()

		// given
		input := entitybuilders.NewRepositoryInputBuilder().WithType("cargo").BuildInput().Normalize()

		// when
		err := input.Validate()

		// then
		require.ErrorIs(t, err, entities.ErrInvalidInput)
		assert.Contains(t, err.Error(), "CARGO")
	})
}
