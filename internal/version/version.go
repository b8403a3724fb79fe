// ABOUTME: Version and product identification
// ABOUTME: Reported by the version command and the TUI header
package version

const (
	// Version is the release version
	Version = "0.1.0"

	// Product is the display name
	Product = "Sketchwave"

	// Manufacturer identifies the publisher
	Manufacturer = "Resonate"
)

// String returns the one-line version banner
func String() string {
	return Product + " " + Version
}
