package text

// SourceOption configures FontSource creation.
type SourceOption func(*sourceConfig)

// sourceConfig holds configuration for FontSource.
type sourceConfig struct {
	backendName string
}

// defaultSourceConfig returns the default source configuration.
func defaultSourceConfig() sourceConfig {
	return sourceConfig{
		backendName: defaultBackendName,
	}
}

// WithRasterizer selects the rasterizer backend by name.
// The default is "ximage" which uses golang.org/x/image/font/opentype.
//
// Custom backends can be registered with RegisterBackend.
func WithRasterizer(name string) SourceOption {
	return func(c *sourceConfig) {
		c.backendName = name
	}
}
