package stream

import (
	"fmt"

	"github.com/arloliu/mapitem/compress"
	"github.com/arloliu/mapitem/format"
	"github.com/arloliu/mapitem/internal/options"
	"github.com/arloliu/mapitem/item"
)

// Config holds the settings shared by decoders and encoders. Options that
// only apply to one side are ignored by the other.
type Config struct {
	maxDepth    int
	maxItems    int
	packed      bool
	packOutput  bool
	compression format.CompressionType
}

// Option configures a Decoder or an Encoder.
type Option = options.Option[*Config]

func newConfig(opts ...Option) (*Config, error) {
	cfg := &Config{
		maxDepth:    item.DefaultMaxDepth,
		compression: format.CompressionNone,
	}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) codec() item.Codec {
	return item.Codec{MaxDepth: c.maxDepth}
}

// MaxNestingDepth returns the compound nesting limit.
func (c *Config) MaxNestingDepth() int {
	return c.maxDepth
}

// MaxItems returns the decoder's item limit, 0 when unlimited.
func (c *Config) MaxItems() int {
	return c.maxItems
}

// Compression returns the encoder's envelope compression.
func (c *Config) Compression() format.CompressionType {
	return c.compression
}

// WithMaxNestingDepth bounds how deeply compound items may nest. The default
// is item.DefaultMaxDepth.
func WithMaxNestingDepth(n int) Option {
	return options.New(func(c *Config) error {
		if n < 1 {
			return fmt.Errorf("max nesting depth must be at least 1, got %d", n)
		}
		c.maxDepth = n

		return nil
	})
}

// WithMaxItems bounds the number of top-level items a decoder accepts. Zero
// means unlimited.
func WithMaxItems(n int) Option {
	return options.New(func(c *Config) error {
		if n < 0 {
			return fmt.Errorf("max items must not be negative, got %d", n)
		}
		c.maxItems = n

		return nil
	})
}

// WithPackedInput makes the decoder unwrap a packed envelope before decoding.
func WithPackedInput() Option {
	return options.NoError(func(c *Config) {
		c.packed = true
	})
}

// WithCompression makes the encoder wrap its output in a packed envelope
// compressed with comp. CompressionNone still writes the envelope.
func WithCompression(comp format.CompressionType) Option {
	return options.New(func(c *Config) error {
		if _, err := compress.GetCodec(comp); err != nil {
			return err
		}
		c.compression = comp
		c.packOutput = true

		return nil
	})
}
