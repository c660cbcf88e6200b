package provider

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/invopop/jsonschema"

	"github.com/loupe-ai/loupe/internal/conversation"
	"github.com/loupe-ai/loupe/tools"
)

// ErrMissingAPIKey is returned by constructors when no credential is
// supplied. It surfaces before any network call is attempted.
var ErrMissingAPIKey = errors.New("API key is required")

// Error wraps a reasoning-provider failure: transport, auth, or an
// unparsable response. The run cannot continue without a reasoning decision,
// so callers propagate these instead of recovering.
type Error struct {
	Provider string
	Op       string
	Err      error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s: %v", e.Provider, e.Op, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// Reasoner is implemented by the concrete providers in this package.
type Reasoner interface {
	Complete(ctx context.Context, transcript []conversation.Message, defs []tools.ToolDefinition) (conversation.Completion, error)
}

// FromModel selects a provider by model name: claude* models route to
// Anthropic, everything else to OpenAI. Only the key for the selected
// provider is required.
func FromModel(model, openaiKey, anthropicKey string) (Reasoner, error) {
	if strings.HasPrefix(model, "claude") {
		return NewAnthropic(anthropicKey, model)
	}
	return NewOpenAI(openaiKey, model)
}

// schemaParameters flattens a derived JSON Schema into the generic map shape
// the OpenAI function-calling API expects.
func schemaParameters(s *jsonschema.Schema) (map[string]any, error) {
	b, err := json.Marshal(s)
	if err != nil {
		return nil, err
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, err
	}
	return m, nil
}
