package playground

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToComboboxDefaults(t *testing.T) {
	tests := []struct {
		name string
		in   Agent
		want ComboboxAgent
	}{
		{"all fields", Agent{AgentID: "a", Name: "n", Model: "m", Storage: true}, ComboboxAgent{"a", "n", "m", true}},
		{"missing id", Agent{Name: "n", Model: "m"}, ComboboxAgent{"", "n", "m", false}},
		{"missing name", Agent{AgentID: "a", Model: "m"}, ComboboxAgent{"a", "", "m", false}},
		{"missing model", Agent{AgentID: "a", Name: "n", Storage: true}, ComboboxAgent{"a", "n", "", true}},
		{"nothing", Agent{}, ComboboxAgent{"", "", "", false}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ToCombobox(tt.in))
		})
	}
}

func TestModelRefUnmarshal(t *testing.T) {
	tests := []struct {
		raw  string
		want ModelRef
	}{
		{`"gpt-4o"`, "gpt-4o"},
		{`null`, ""},
		{`{"model": "m", "name": "n", "provider": "p"}`, "m"},
		{`{"name": "n", "provider": "p"}`, "n"},
		{`{"provider": "p"}`, "p"},
		{`{}`, ""},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			var a Agent
			require.NoError(t, json.Unmarshal([]byte(`{"model": `+tt.raw+`}`), &a))
			assert.Equal(t, tt.want, a.Model)
		})
	}

	var a Agent
	assert.Error(t, json.Unmarshal([]byte(`{"model": 42}`), &a))
}

func TestComboboxAgentJSONShape(t *testing.T) {
	data, err := json.Marshal(ComboboxAgent{})
	require.NoError(t, err)
	assert.JSONEq(t, `{"value": "", "label": "", "model": "", "storage": false}`, string(data))
}

func TestSessionEntryAccessors(t *testing.T) {
	var e SessionEntry
	require.NoError(t, json.Unmarshal([]byte(`{"session_id": 7, "title": ["x"], "created_at": "yesterday"}`), &e))
	assert.Empty(t, e.ID())
	assert.Empty(t, e.Title())
	assert.Zero(t, e.CreatedAt())

	e = SessionEntry{"created_at": json.Number("1718000000")}
	assert.Equal(t, int64(1718000000), e.CreatedAt())
}

func TestStatusError(t *testing.T) {
	resp := &http.Response{StatusCode: 503, Status: "503 Service Unavailable"}
	err := newStatusError(opListAgents, resp)
	assert.Equal(t, "Service Unavailable", err.Status)
	assert.Equal(t, "list agents: failed with status 503 Service Unavailable", err.Error())

	custom := &http.Response{StatusCode: 502, Status: "502 Upstream Sleeping"}
	assert.Equal(t, "Upstream Sleeping", statusText(custom))

	bare := &http.Response{StatusCode: 404}
	assert.Equal(t, "Not Found", statusText(bare))
}

func TestIsSuccess(t *testing.T) {
	assert.True(t, isSuccess(200))
	assert.True(t, isSuccess(204))
	assert.True(t, isSuccess(299))
	assert.False(t, isSuccess(199))
	assert.False(t, isSuccess(300))
	assert.False(t, isSuccess(404))
}
