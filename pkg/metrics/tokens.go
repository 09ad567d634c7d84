package metrics

import (
	"strings"
	"sync"

	"github.com/pkoukk/tiktoken-go"
)

const fallbackEncoding = "o200k_base"

// TokenCounter estimates prompt sizes with the model's BPE encoding.
// When the encoding cannot be loaded it degrades to a whitespace word count.
type TokenCounter struct {
	model string

	once sync.Once
	enc  *tiktoken.Tiktoken
	load func(model string) (*tiktoken.Tiktoken, error)
}

// NewTokenCounter builds a counter for the given model name.
func NewTokenCounter(model string) *TokenCounter {
	return &TokenCounter{model: model, load: loadEncoding}
}

// Count returns the estimated number of tokens in text.
func (c *TokenCounter) Count(text string) int {
	if text == "" {
		return 0
	}
	c.once.Do(func() {
		if c.load == nil {
			return
		}
		if enc, err := c.load(c.model); err == nil {
			c.enc = enc
		}
	})
	if c.enc == nil {
		return len(strings.Fields(text))
	}
	return len(c.enc.Encode(text, nil, nil))
}

func loadEncoding(model string) (*tiktoken.Tiktoken, error) {
	if enc, err := tiktoken.EncodingForModel(model); err == nil {
		return enc, nil
	}
	return tiktoken.GetEncoding(fallbackEncoding)
}
