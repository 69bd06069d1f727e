package escolar

import "encoding/json"

// Envelope is the uniform wrapper every endpoint of the school service
// responds with. Data is decoded lazily: callers ask for the payload
// type they expect. StatusCode and Success are carried for completeness
// but error classification relies on the transport-level HTTP status.
type Envelope struct {
	StatusCode int             `json:"statusCode"`
	Success    bool            `json:"success"`
	Data       json.RawMessage `json:"data"`
	Timestamp  string          `json:"timestamp"`
}

// CountDTO is the payload of the count endpoints.
type CountDTO struct {
	Count int `json:"count"`
}
