package gnredlist

var (
	// Version of the gnredlist app.
	Version = "v0.1.0"

	// Build timestamp, set by the Makefile with ldflags.
	Build = "n/a"
)
