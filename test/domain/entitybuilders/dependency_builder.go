//go:build integration || unit || test

package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/rios0rios0/depocheck/internal/domain/entities"
	testkit "github.com/rios0rios0/testkit/pkg/test"
)

// DependencyBuilder helps create test dependencies with a fluent interface.
type DependencyBuilder struct {
	*testkit.BaseBuilder
	name       string
	oldVersion string
	newVersion string
}

// NewDependencyBuilder creates a new dependency builder with an outdated default.
func NewDependencyBuilder() *DependencyBuilder {
	return &DependencyBuilder{
		BaseBuilder: testkit.NewBaseBuilder(),
		name:        "org.slf4j:slf4j-api",
		oldVersion:  "1.0",
		newVersion:  "2.0",
	}
}

// WithName sets the dependency name.
func (b *DependencyBuilder) WithName(name string) *DependencyBuilder {
	b.name = name
	return b
}

// WithOldVersion sets the version the repository pins.
func (b *DependencyBuilder) WithOldVersion(version string) *DependencyBuilder {
	b.oldVersion = version
	return b
}

// WithNewVersion sets the latest released version.
func (b *DependencyBuilder) WithNewVersion(version string) *DependencyBuilder {
	b.newVersion = version
	return b
}

// UpToDate pins the latest version.
func (b *DependencyBuilder) UpToDate() *DependencyBuilder {
	b.oldVersion = b.newVersion
	return b
}

// Build creates the dependency (satisfies testkit.Builder interface).
func (b *DependencyBuilder) Build() interface{} {
	return b.BuildDependency()
}

// BuildDependency creates the dependency with a concrete return type.
func (b *DependencyBuilder) BuildDependency() entities.Dependency {
	return entities.Dependency{
		Name:       b.name,
		OldVersion: b.oldVersion,
		NewVersion: b.newVersion,
	}
}

// Reset clears the builder state, allowing it to be reused.
func (b *DependencyBuilder) Reset() testkit.Builder {
	b.BaseBuilder.Reset()
	b.name = "org.slf4j:slf4j-api"
	b.oldVersion = "1.0"
	b.newVersion = "2.0"
	return b
}

// Clone creates a deep copy of the DependencyBuilder.
func (b *DependencyBuilder) Clone() testkit.Builder {
	return &DependencyBuilder{
		BaseBuilder: b.BaseBuilder.Clone().(*testkit.BaseBuilder),
		name:        b.name,
		oldVersion:  b.oldVersion,
		newVersion:  b.newVersion,
	}
}
