package counter

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/pkoukk/tiktoken-go"
)

// The cl100k_base encoding is loaded once and shared by every context;
// initialization may fetch the encoding definition on first use.
var (
	tokenEncodingOnce sync.Once
	tokenEncoding     *tiktoken.Tiktoken
	tokenEncodingErr  error
)

// TokenCount counts LLM tokens using tiktoken with the cl100k_base
// encoding, which is compatible with OpenAI's GPT models. Tokens have no
// breakdown. Returns an error when the encoding cannot be initialized.
func (c *Counter) TokenCount() (Result, error) {
	tokenEncodingOnce.Do(func() {
		slog.Debug("Initializing cl100k_base encoding")
		tokenEncoding, tokenEncodingErr = tiktoken.GetEncoding("cl100k_base")
	})
	if tokenEncodingErr != nil {
		return Result{}, fmt.Errorf("failed to initialize cl100k_base encoding: %w", tokenEncodingErr)
	}

	// nil params mean no special tokens allowed/disallowed
	tokens := tokenEncoding.Encode(c.text, nil, nil)

	slog.Debug("Token count calculated", "textLength", len(c.text), "tokenCount", len(tokens))
	return Result{
		Total:      len(tokens),
		TextLength: c.textLen,
		Options:    []string{"encoding=cl100k_base"},
	}, nil
}
