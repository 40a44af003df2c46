package entities

import (
	"encoding/json"
	"strings"

	"golang.org/x/mod/semver"
)

const (
	statusUpToDate    = "Up to Date"
	statusNotUpToDate = "Not Up to Date"

	UpgradeMajor = "major"
	UpgradeMinor = "minor"
	UpgradePatch = "patch"
)

// Dependency is one entry of a repository's dependency report.
// OldVersion is what the repository pins, NewVersion the latest release.
type Dependency struct {
	Name       string `json:"dependencie_name"`
	OldVersion string `json:"old_version,omitempty"`
	NewVersion string `json:"new_version,omitempty"`
}

// UnmarshalJSON accepts the backend's "dependencie_name" and a plain "name".
func (it *Dependency) UnmarshalJSON(data []byte) error {
	var wire struct {
		DependencieName string `json:"dependencie_name"`
		Name            string `json:"name"`
		OldVersion      string `json:"old_version"`
		NewVersion      string `json:"new_version"`
	}
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}

	it.Name = wire.DependencieName
	if it.Name == "" {
		it.Name = wire.Name
	}
	it.OldVersion = wire.OldVersion
	it.NewVersion = wire.NewVersion
	return nil
}

// UpToDate is derived at display time, never stored.
func (it Dependency) UpToDate() bool {
	return it.OldVersion == it.NewVersion
}

// Status renders UpToDate for humans.
func (it Dependency) Status() string {
	if it.UpToDate() {
		return statusUpToDate
	}
	return statusNotUpToDate
}

// CurrentVersion renders the pinned version, or "NaN" when unknown.
func (it Dependency) CurrentVersion() string {
	return versionOrNaN(it.OldVersion)
}

// LatestVersion renders the newest version, or "NaN" when unknown.
func (it Dependency) LatestVersion() string {
	return versionOrNaN(it.NewVersion)
}

// UpgradeKind classifies the gap between both versions as major, minor or
// patch. It is empty when the dependency is up to date or either version
// is not semantic.
func (it Dependency) UpgradeKind() string {
	if it.UpToDate() {
		return ""
	}

	current := normalizeVersion(it.OldVersion)
	latest := normalizeVersion(it.NewVersion)
	if !semver.IsValid(current) || !semver.IsValid(latest) {
		return ""
	}
	if semver.Compare(latest, current) <= 0 {
		return ""
	}

	switch {
	case semver.Major(current) != semver.Major(latest):
		return UpgradeMajor
	case semver.MajorMinor(current) != semver.MajorMinor(latest):
		return UpgradeMinor
	default:
		return UpgradePatch
	}
}

// RepositoryReport is the payload of the dependency-listing endpoint.
type RepositoryReport struct {
	Repository   *Repository  `json:"repository"`
	Dependencies []Dependency `json:"dependencies"`
}

// OutdatedCount counts the dependencies that are not up to date.
func (it RepositoryReport) OutdatedCount() int {
	count := 0
	for _, dep := range it.Dependencies {
		if !dep.UpToDate() {
			count++
		}
	}
	return count
}

func versionOrNaN(version string) string {
	if version == "" {
		return notANumber
	}
	return version
}

// normalizeVersion ensures version has 'v' prefix for semver compatibility
func normalizeVersion(version string) string {
	if strings.HasPrefix(version, "v") {
		return version
	}
	return "v" + version
}
