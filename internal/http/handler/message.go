package handler

const oopsMsg = "unexpected error on the server side"

// Envelope is the uniform response wrapper: {status, code, data} on success,
// {status, message, code} on error.
type Envelope struct {
	Status  string `json:"status"`
	Code    int    `json:"code"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

func successEnvelope(code int, data any) Envelope {
	return Envelope{
		Status: "success",
		Code:   code,
		Data:   data,
	}
}

func errorEnvelope(code int, message string) Envelope {
	return Envelope{
		Status:  "error",
		Code:    code,
		Message: message,
	}
}
