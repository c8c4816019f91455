package cli

import "time"

// Flags holds all command-line flag values
type Flags struct {
	// Global flags
	CfgFile     string
	Language    string
	Format      string
	Workers     int
	ProfilesDir string
	LogLevel    string
	LogFormat   string

	// analyze flags
	Output       string
	FailOnIssues bool
	WholeWords   bool

	// watch flags
	Debounce time.Duration

	// init flags
	WorkspaceDir string
}

// NewFlags creates a new Flags instance with default values
func NewFlags() *Flags {
	return &Flags{
		Language:  "es",
		Format:    "text",
		LogLevel:  "warn",
		LogFormat: "text",
		Debounce:  300 * time.Millisecond,
	}
}
