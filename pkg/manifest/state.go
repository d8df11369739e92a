package manifest

// StateSpec seeds the shared application state.
type StateSpec struct {
	Something string            `toml:"something"`
	Values    map[string]string `toml:"values"`
}
