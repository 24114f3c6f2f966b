package operators

// Completion event statuses delivered when a deferred execution resumes.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// CompletionEvent is the payload carried back from a deferred wait: either a
// success, or an error with the failure message.
type CompletionEvent struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

func SuccessEvent() CompletionEvent {
	return CompletionEvent{Status: StatusSuccess}
}

func ErrorEvent(message string) CompletionEvent {
	return CompletionEvent{Status: StatusError, Message: message}
}
