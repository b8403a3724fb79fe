// ABOUTME: Encoder interface definition
// ABOUTME: Common interface for PCM sample encoders
package encode

// Encoder encodes interleaved float samples to device bytes
type Encoder interface {
	// Encode converts interleaved samples to PCM bytes
	Encode(samples []float64) ([]byte, error)

	// Close releases encoder resources
	Close() error
}
