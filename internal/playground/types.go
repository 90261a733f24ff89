package playground

import (
	"bytes"
	"encoding/json"
)

// Agent is the raw agent record returned by the playground service.
// Every field is optional on the wire.
type Agent struct {
	AgentID string   `json:"agent_id,omitempty"`
	Name    string   `json:"name,omitempty"`
	Model   ModelRef `json:"model,omitempty"`
	Storage bool     `json:"storage,omitempty"`
}

// ModelRef is a model identifier. The service sends either a bare string
// or an object such as {"name": "...", "model": "...", "provider": "..."}.
type ModelRef string

func (m *ModelRef) UnmarshalJSON(data []byte) error {
	if bytes.HasPrefix(bytes.TrimSpace(data), []byte("{")) {
		var obj struct {
			Model    string `json:"model"`
			Name     string `json:"name"`
			Provider string `json:"provider"`
		}
		if err := json.Unmarshal(data, &obj); err != nil {
			return err
		}
		switch {
		case obj.Model != "":
			*m = ModelRef(obj.Model)
		case obj.Name != "":
			*m = ModelRef(obj.Name)
		default:
			*m = ModelRef(obj.Provider)
		}
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*m = ModelRef(s)
	return nil
}

// ComboboxAgent is the selection-widget projection of an Agent.
type ComboboxAgent struct {
	Value   string `json:"value"`
	Label   string `json:"label"`
	Model   string `json:"model"`
	Storage bool   `json:"storage"`
}

// ToCombobox normalizes a raw agent. Missing fields become "" or false.
func ToCombobox(a Agent) ComboboxAgent {
	return ComboboxAgent{
		Value:   a.AgentID,
		Label:   a.Name,
		Model:   string(a.Model),
		Storage: a.Storage,
	}
}

// SessionEntry is a session record exactly as the service returned it.
type SessionEntry map[string]any

// ID returns the "session_id" field, or "" when absent.
func (e SessionEntry) ID() string { return e.str("session_id") }

// Title returns the "title" field, or "" when absent.
func (e SessionEntry) Title() string { return e.str("title") }

// CreatedAt returns the "created_at" unix timestamp, or 0 when absent.
func (e SessionEntry) CreatedAt() int64 {
	switch v := e["created_at"].(type) {
	case float64:
		return int64(v)
	case json.Number:
		n, _ := v.Int64()
		return n
	default:
		return 0
	}
}

func (e SessionEntry) str(key string) string {
	s, _ := e[key].(string)
	return s
}
