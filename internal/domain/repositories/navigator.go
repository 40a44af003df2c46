package repositories

import "context"

// Navigator moves a client to another view, e.g. an HTTP redirect for the
// web dashboard or a hint on the terminal.
type Navigator interface {
	Navigate(ctx context.Context, path string)
}
