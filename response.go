package servant

import "encoding/json"

// Empty represents a void response. Use it for endpoints that do not return
// meaningful data; the zero value is nil, which serializes to JSON null.
type Empty *struct{}

// response is the internal envelope for successful responses,
// {"result": ...}.
type response struct {
	Result any `json:"result"`
}

// errorResponse is the internal envelope for error responses,
// {"error": {...}}.
type errorResponse struct {
	Error *Error `json:"error"`
}

// encodeResponse writes a successful response envelope.
func encodeResponse(w jsonWriter, result any) error {
	return json.NewEncoder(w).Encode(response{Result: result})
}

// encodeErrorResponse writes an error response envelope.
func encodeErrorResponse(w jsonWriter, err *Error) error {
	return json.NewEncoder(w).Encode(errorResponse{Error: err})
}

// jsonWriter is satisfied by http.ResponseWriter and allows testing.
type jsonWriter interface {
	Write([]byte) (int, error)
}
