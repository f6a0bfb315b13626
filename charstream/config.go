package charstream

const (
	defaultTabWidth           = 4
	defaultReadAheadHighWater = 64 * 1024
	defaultByteChunkSize      = 4096
)

// Option configures a Stream at Open time.
type Option func(*config)

type config struct {
	tabWidth           int
	autoClose          bool
	readAheadHighWater int
	byteChunkSize      int
}

func newConfig(opts ...Option) config {
	c := config{
		tabWidth:           defaultTabWidth,
		autoClose:          true,
		readAheadHighWater: defaultReadAheadHighWater,
		byteChunkSize:      defaultByteChunkSize,
	}

	for _, opt := range opts {
		opt(&c)
	}

	return c
}

// WithTabWidth sets the column width a tab character advances the cursor to
// the next multiple of. The default is 4.
func WithTabWidth(width int) Option {
	return func(c *config) {
		c.tabWidth = width
	}
}

// WithAutoClose causes Close to also close the underlying ByteSource. The
// default is true.
func WithAutoClose(autoClose bool) Option {
	return func(c *config) {
		c.autoClose = autoClose
	}
}

// WithReadAheadHighWater sets the maximum number of decoded clusters the
// background producer will buffer before blocking. The default is 64 Ki.
func WithReadAheadHighWater(n int) Option {
	return func(c *config) {
		c.readAheadHighWater = n
	}
}

// WithByteChunkSize sets the size of each raw read performed against the
// ByteSource. The default is 4096.
func WithByteChunkSize(n int) Option {
	return func(c *config) {
		c.byteChunkSize = n
	}
}
