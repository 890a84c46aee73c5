package cli

// Flags holds command-line flags
type Flags struct {
	NameFilter string
	TestRoot   string
}
