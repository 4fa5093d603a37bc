package record

import (
	"fmt"

	"github.com/arloliu/unitcode/internal/options"
)

type decoderConfig struct {
	cacheSize int
}

func newDecoderConfig() *decoderConfig {
	return &decoderConfig{cacheSize: DefaultCacheSize}
}

// DecoderOption configures a Decoder.
type DecoderOption = options.Option[*decoderConfig]

// WithCacheSize sets how many converted views ValuesIn keeps. The least
// recently used view is evicted first.
func WithCacheSize(n int) DecoderOption {
	return options.New(func(c *decoderConfig) error {
		if n <= 0 {
			return fmt.Errorf("invalid cache size: %d", n)
		}
		c.cacheSize = n

		return nil
	})
}
