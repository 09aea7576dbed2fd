package httpapi

// Envelope 与前端约定的统一响应结构
// Every endpoint answers {success, message?, data?, error?, errors?}; the
// client shows message verbatim in its banner.
type Envelope struct {
	Success bool     `json:"success"`
	Message string   `json:"message,omitempty"`
	Data    any      `json:"data,omitempty"`
	Error   string   `json:"error,omitempty"`
	Errors  []string `json:"errors,omitempty"`
}

func Ok(data any) Envelope {
	return Envelope{Success: true, Data: data}
}

func OkMessage(message string) Envelope {
	return Envelope{Success: true, Message: message}
}

func Fail(message string) Envelope {
	return Envelope{Success: false, Message: message}
}

// FailValidation carries the ordered list of rule violations.
func FailValidation(messages []string) Envelope {
	return Envelope{Success: false, Message: "Validation failed", Errors: messages}
}

// FailServer exposes the raw driver error text alongside the banner message.
func FailServer(err error) Envelope {
	return Envelope{Success: false, Message: "Error", Error: err.Error()}
}
