package version

var (
	// Version is the current version of icongen.
	Version = "0.1.0"
	// Revision is set via -ldflags at build time.
	Revision = "dev"
)
