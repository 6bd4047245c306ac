package response

// Err is the error payload, {"error": "<reason>"}.
// The frontend depends on this exact shape.
type Err struct {
	Error string `json:"error"`
}
