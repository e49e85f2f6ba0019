package llm

import (
	"encoding/json"
	"fmt"
)

// SchemaInstruction renders a schema as a prompt suffix for backends
// without native structured output.
func SchemaInstruction(req Request) (string, error) {
	if req.Schema == nil {
		return "Respond with a single JSON object only.", nil
	}
	data, err := json.Marshal(req.Schema)
	if err != nil {
		return "", fmt.Errorf("marshal schema: %w", err)
	}
	return "Respond with a single JSON object only, matching this JSON schema:\n" + string(data), nil
}
