package entities

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	logger "github.com/sirupsen/logrus"
)

const (
	neverChecked     = "Never"
	notANumber       = "NaN"
	lastCheckLayout  = "2006-01-02 15:04"
	timestampNoZone  = "2006-01-02T15:04:05.999999999"
	timestampSpaced  = "2006-01-02 15:04:05"
	timestampDayOnly = "2006-01-02"
)

// ProjectTypes lists the build systems the backend knows how to scan.
var ProjectTypes = []string{"MAVEN", "GRADLE", "NPM", "PYTHON", "GO"} //nolint:gochecknoglobals // read-only table

// RepositoryID identifies a repository on the backend. The API sends it
// either as a JSON string or as a number.
type RepositoryID string

// UnmarshalJSON accepts both string and numeric identifiers.
func (it *RepositoryID) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if bytes.Equal(trimmed, []byte("null")) {
		*it = ""
		return nil
	}
	if len(trimmed) > 0 && trimmed[0] == '"' {
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return err
		}
		*it = RepositoryID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(trimmed, &n); err != nil {
		return fmt.Errorf("repository id must be a string or a number: %w", err)
	}
	*it = RepositoryID(n.String())
	return nil
}

// String returns the identifier as sent in URLs.
func (it RepositoryID) String() string {
	return string(it)
}

// Timestamp is a backend date that may or may not carry a zone.
type Timestamp struct {
	time.Time
}

// UnmarshalJSON parses the layouts the backend is known to emit. An empty
// or unreadable date is treated as absent so one bad row does not hide
// the others.
func (it *Timestamp) UnmarshalJSON(data []byte) error {
	it.Time = time.Time{}

	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		logger.Warnf("Ignoring non-string timestamp %s", data)
		return nil
	}
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	for _, layout := range []string{time.RFC3339Nano, timestampNoZone, timestampSpaced, timestampDayOnly} {
		parsed, err := time.Parse(layout, raw)
		if err == nil {
			it.Time = parsed
			return nil
		}
	}
	logger.Warnf("Ignoring unsupported timestamp %q", raw)
	return nil
}

// MarshalJSON writes the timestamp in RFC 3339.
func (it Timestamp) MarshalJSON() ([]byte, error) {
	return json.Marshal(it.Time.Format(time.RFC3339Nano))
}

// Repository is a tracked source repository as reported by the backend.
type Repository struct {
	ID                   RepositoryID `json:"id"`
	Name                 string       `json:"name"`
	Branch               string       `json:"branch"`
	Type                 string       `json:"type"`
	URL                  string       `json:"url"`
	Username             string       `json:"username"`
	LastVerificationDate *Timestamp   `json:"lastVerificationDate,omitempty"`
	NumberOfDependencies *int         `json:"numberOfDependencies,omitempty"`
	PendingUpdatesCount  *int         `json:"pendingUpdatesCount,omitempty"`
}

// LastCheck renders the last verification date, or "Never".
func (it Repository) LastCheck() string {
	if it.LastVerificationDate == nil || it.LastVerificationDate.IsZero() {
		return neverChecked
	}
	return it.LastVerificationDate.Format(lastCheckLayout)
}

// DependencyRatio renders the share of up-to-date dependencies, or "NaN"
// when the backend did not report both counts or there is nothing to count.
func (it Repository) DependencyRatio() string {
	if it.NumberOfDependencies == nil || it.PendingUpdatesCount == nil {
		return notANumber
	}
	total := *it.NumberOfDependencies
	if total == 0 {
		return notANumber
	}
	upToDate := float64(total-*it.PendingUpdatesCount) / float64(total) * 100
	return fmt.Sprintf("%.0f%%", upToDate)
}

// BrowseURL points at the tracked branch on the hosting service.
func (it Repository) BrowseURL() string {
	if it.URL == "" {
		return ""
	}
	return strings.TrimSuffix(it.URL, "/") + "/tree/" + it.Branch
}

// WithoutRepository returns repos minus the one with the given id.
func WithoutRepository(repos []Repository, id RepositoryID) []Repository {
	result := make([]Repository, 0, len(repos))
	for _, repo := range repos {
		if repo.ID != id {
			result = append(result, repo)
		}
	}
	return result
}

// RepositoryInput is the payload of the add-repository form.
type RepositoryInput struct {
	Name     string `json:"name"`
	Username string `json:"username"`
	URL      string `json:"url"`
	Branch   string `json:"branch"`
	Token    string `json:"token"`
	Type     string `json:"type"`
}

// Normalize trims every field and upper-cases the project type.
func (it RepositoryInput) Normalize() RepositoryInput {
	return RepositoryInput{
		Name:     strings.TrimSpace(it.Name),
		Username: strings.TrimSpace(it.Username),
		URL:      strings.TrimSpace(it.URL),
		Branch:   strings.TrimSpace(it.Branch),
		Token:    strings.TrimSpace(it.Token),
		Type:     strings.ToUpper(strings.TrimSpace(it.Type)),
	}
}

// Validate checks the fields the backend requires. The access token is
// optional, public repositories do not need one.
func (it RepositoryInput) Validate() error {
	required := []struct {
		field string
		value string
	}{
		{"name", it.Name},
		{"username", it.Username},
		{"url", it.URL},
		{"branch", it.Branch},
		{"type", it.Type},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			return fmt.Errorf("%w: %s is required", ErrInvalidInput, r.field)
		}
	}

	if !strings.HasPrefix(it.URL, "https://") && !strings.HasPrefix(it.URL, "http://") {
		return fmt.Errorf("%w: url must start with http:// or https://", ErrInvalidInput)
	}

	for _, known := range ProjectTypes {
		if strings.EqualFold(known, it.Type) {
			return nil
		}
	}
	return fmt.Errorf("%w: type %q is not one of %s", ErrInvalidInput, it.Type, strings.Join(ProjectTypes, ", "))
}
