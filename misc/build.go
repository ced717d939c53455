package misc

// Set at link time.
var (
	// Build is the build time of the binary.
	Build = "now"

	// Version is the release version of the binary.
	Version = "dev"
)

// UserAgent returns the identifier of the application of the given name
// and the current Version used in outgoing requests.
func UserAgent(app string) string {
	return app + "/" + Version
}
