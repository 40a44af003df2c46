//go:build integration || unit || test

package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"time"

	"github.com/rios0rios0/depocheck/internal/domain/entities"
	testkit "github.com/rios0rios0/testkit/pkg/test"
)

// RepositoryBuilder helps create test repositories with a fluent interface.
type RepositoryBuilder struct {
	*testkit.BaseBuilder
	id           entities.RepositoryID
	name         string
	branch       string
	repoType     string
	url          string
	username     string
	lastCheck    *entities.Timestamp
	dependencies *int
	pending      *int
}

// NewRepositoryBuilder creates a new repository builder. Optional fields
// start absent, the way a never-scanned repository comes back from the API.
func NewRepositoryBuilder() *RepositoryBuilder {
	return &RepositoryBuilder{
		BaseBuilder: testkit.NewBaseBuilder(),
		id:          "1",
		name:        "r1",
		branch:      "main",
		repoType:    "MAVEN",
		url:         "https://github.com/octo/r1",
		username:    "octo",
	}
}

// WithID sets the repository id.
func (b *RepositoryBuilder) WithID(id string) *RepositoryBuilder {
	b.id = entities.RepositoryID(id)
	return b
}

// WithName sets the repository name.
func (b *RepositoryBuilder) WithName(name string) *RepositoryBuilder {
	b.name = name
	return b
}

// WithBranch sets the tracked branch.
func (b *RepositoryBuilder) WithBranch(branch string) *RepositoryBuilder {
	b.branch = branch
	return b
}

// WithType sets the project type.
func (b *RepositoryBuilder) WithType(repoType string) *RepositoryBuilder {
	b.repoType = repoType
	return b
}

// WithURL sets the clone URL.
func (b *RepositoryBuilder) WithURL(url string) *RepositoryBuilder {
	b.url = url
	return b
}

// WithLastCheck sets the last verification date.
func (b *RepositoryBuilder) WithLastCheck(at time.Time) *RepositoryBuilder {
	b.lastCheck = &entities.Timestamp{Time: at}
	return b
}

// WithCounts sets the number of dependencies and of pending updates.
func (b *RepositoryBuilder) WithCounts(dependencies, pending int) *RepositoryBuilder {
	b.dependencies = &dependencies
	b.pending = &pending
	return b
}

// Build creates the repository (satisfies testkit.Builder interface).
func (b *RepositoryBuilder) Build() interface{} {
	return b.BuildRepository()
}

// BuildRepository creates the repository with a concrete return type.
func (b *RepositoryBuilder) BuildRepository() entities.Repository {
	return entities.Repository{
		ID:                   b.id,
		Name:                 b.name,
		Branch:               b.branch,
		Type:                 b.repoType,
		URL:                  b.url,
		Username:             b.username,
		LastVerificationDate: b.lastCheck,
		NumberOfDependencies: b.dependencies,
		PendingUpdatesCount:  b.pending,
	}
}

// Reset clears the builder state, allowing it to be reused.
func (b *RepositoryBuilder) Reset() testkit.Builder {
	b.BaseBuilder.Reset()
	fresh := NewRepositoryBuilder()
	fresh.BaseBuilder = b.BaseBuilder
	*b = *fresh
	return b
}

// Clone creates a deep copy of the RepositoryBuilder.
func (b *RepositoryBuilder) Clone() testkit.Builder {
	clone := *b
	clone.BaseBuilder = b.BaseBuilder.Clone().(*testkit.BaseBuilder)
	if b.lastCheck != nil {
		at := *b.lastCheck
		clone.lastCheck = &at
	}
	if b.dependencies != nil {
		clone.WithCounts(*b.dependencies, *b.pending)
	}
	return &clone
}

// RepositoryInputBuilder helps create add-repository forms.
type RepositoryInputBuilder struct {
	*testkit.BaseBuilder
	input entities.RepositoryInput
}

// NewRepositoryInputBuilder creates a builder holding a valid form.
func NewRepositoryInputBuilder() *RepositoryInputBuilder {
	return &RepositoryInputBuilder{
		BaseBuilder: testkit.NewBaseBuilder(),
		input:       defaultRepositoryInput(),
	}
}

// WithName sets the repository name.
func (b *RepositoryInputBuilder) WithName(name string) *RepositoryInputBuilder {
	b.input.Name = name
	return b
}

// WithURL sets the clone URL.
func (b *RepositoryInputBuilder) WithURL(url string) *RepositoryInputBuilder {
	b.input.URL = url
	return b
}

// WithType sets the project type.
func (b *RepositoryInputBuilder) WithType(repoType string) *RepositoryInputBuilder {
	b.input.Type = repoType
	return b
}

// WithToken sets the repository access token.
func (b *RepositoryInputBuilder) WithToken(token string) *RepositoryInputBuilder {
	b.input.Token = token
	return b
}

// Build creates the input (satisfies testkit.Builder interface).
func (b *RepositoryInputBuilder) Build() interface{} {
	return b.BuildInput()
}

// BuildInput creates the input with a concrete return type.
func (b *RepositoryInputBuilder) BuildInput() entities.RepositoryInput {
	return b.input
}

// Reset clears the builder state, allowing it to be reused.
func (b *RepositoryInputBuilder) Reset() testkit.Builder {
	b.BaseBuilder.Reset()
	b.input = defaultRepositoryInput()
	return b
}

// Clone creates a deep copy of the RepositoryInputBuilder.
func (b *RepositoryInputBuilder) Clone() testkit.Builder {
	return &RepositoryInputBuilder{
		BaseBuilder: b.BaseBuilder.Clone().(*testkit.BaseBuilder),
		input:       b.input,
	}
}

func defaultRepositoryInput() entities.RepositoryInput {
	return entities.RepositoryInput{
		Name:     "r1",
		Username: "octo",
		URL:      "https://github.com/octo/r1",
		Branch:   "main",
		Token:    "",
		Type:     "maven",
	}
}
