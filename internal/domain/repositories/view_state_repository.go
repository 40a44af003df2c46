package repositories

import "context"

// ViewStateRepository remembers what a client's views last displayed,
// so a failed reload can render the prior state.
type ViewStateRepository interface {
	// Load decodes the state stored under key into target and reports
	// whether anything was found.
	Load(ctx context.Context, key string, target any) bool
	Save(ctx context.Context, key string, state any) error
}
