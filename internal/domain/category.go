package domain

// PinnedCategoryTitle labels the synthetic leading group holding pinned
// trackers. It is produced only by the filter engine and never persisted.
const PinnedCategoryTitle = "Pinned"

// TrackerCategory is a named, ordered display group of trackers. Categories
// returned by the filter engine are ephemeral and recomputed per invocation.
type TrackerCategory struct {
	Title    string
	Trackers []Tracker
}
