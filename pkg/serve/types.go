package serve

import "encoding/json"

// Request represents an incoming NDJSON request
type Request struct {
	Type    string          `json:"type"` // "process" | "reset" | "close"
	Payload json.RawMessage `json:"payload"`
}

// ProcessPayload is the payload for "process" requests
type ProcessPayload struct {
	Input string `json:"input"`
}

// Response represents an outgoing NDJSON response
type Response struct {
	Success bool            `json:"success"`
	Type    string          `json:"type"` // "ready" | "process" | "reset" | "error"
	Data    json.RawMessage `json:"data,omitempty"`
	Error   string          `json:"error,omitempty"`
}

// ReadyData is the data field for "ready" responses
type ReadyData struct {
	Version string `json:"version"`
}
