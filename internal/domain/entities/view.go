package entities

// ViewState is the data lifecycle of a list or detail view.
type ViewState string

const (
	ViewIdle      ViewState = "idle"
	ViewLoading   ViewState = "loading"
	ViewDisplayed ViewState = "displayed"
	// ViewCleared means the last load failed and the prior data was kept.
	ViewCleared ViewState = "error-cleared"
)

// View holds what a view currently displays and where it is in its lifecycle.
// Data only changes on a successful load, so a failure keeps the prior state.
type View[T any] struct {
	State ViewState `json:"state"`
	Data  T         `json:"data"`
	// Loaded is true once Data came from at least one successful load.
	Loaded bool `json:"loaded"`
}

// Begin enters the loading state.
func (it *View[T]) Begin() {
	it.State = ViewLoading
}

// Commit assigns a fresh payload.
func (it *View[T]) Commit(data T) {
	it.Data = data
	it.Loaded = true
	it.State = ViewDisplayed
}

// Fail leaves the loading state without touching Data.
func (it *View[T]) Fail() {
	it.State = ViewCleared
}

// Loading reports whether a load is in flight.
func (it *View[T]) Loading() bool {
	return it.State == ViewLoading
}
