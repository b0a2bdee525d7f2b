package server

// CombinationsResponse is the JSON shape returned by GET /v1/combinations.
type CombinationsResponse struct {
	Total int            `json:"total"`
	Seed  string         `json:"seed"`
	Slots []SlotResponse `json:"slots"`
}

// SlotResponse describes one node of the slot tree.
type SlotResponse struct {
	Name        string `json:"name"`
	Kind        string `json:"kind"`
	Cardinality int    `json:"cardinality"`
	Depth       int    `json:"depth"`
}

// ErrorResponse is the JSON body of every non-2xx response.
type ErrorResponse struct {
	Error     string `json:"error"`
	Code      string `json:"code,omitempty"`
	RequestID string `json:"request_id,omitempty"`
}
