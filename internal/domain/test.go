package domain

// TestFile is a discovered test asset and the URL it is served under.
type TestFile struct {
	Path string `json:"path"`
	URL  string `json:"url"`
}

// CheckReport summarizes a reachability check over the discovered test files.
type CheckReport struct {
	Total     int        `json:"total"`
	Reachable int        `json:"reachable"`
	Missing   []TestFile `json:"missing,omitempty"`
}
