package fits

// Logger receives non-fatal builder warnings and validator diagnostics.
// *slog.Logger and the project's logger.Logger both satisfy it.
type Logger interface {
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...any) {}
func (nopLogger) Warn(string, ...any) {}

type buildConfig struct {
	extName string
	log     Logger
}

// BuildOption configures the extension builders.
type BuildOption func(*buildConfig)

// WithExtName sets EXTNAME on the extension header.
func WithExtName(name string) BuildOption {
	return func(c *buildConfig) { c.extName = name }
}

// WithLogger routes non-fatal warnings (such as TFIELDS truncation) to log.
func WithLogger(log Logger) BuildOption {
	return func(c *buildConfig) {
		if log != nil {
			c.log = log
		}
	}
}

func newBuildConfig(opts []BuildOption) buildConfig {
	cfg := buildConfig{log: nopLogger{}}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
