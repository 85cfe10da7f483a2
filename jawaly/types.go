package jawaly

// ErrorNumber is a single recipient the gateway rejected inside an
// otherwise accepted request.
type ErrorNumber struct {
	Number string `json:"number"`
	Error  string `json:"error"`
}

// MessagePayload is one message entry on the send endpoint. The gateway
// echoes it back in responses, optionally annotated with error details.
type MessagePayload struct {
	Text         string        `json:"text"`
	Numbers      []string      `json:"numbers"`
	Sender       string        `json:"sender"`
	ErrText      string        `json:"err_text,omitempty"`
	ErrorNumbers []ErrorNumber `json:"error_numbers,omitempty"`
}

// SendRequest is the body of POST account/area/sms/send.
type SendRequest struct {
	Messages []MessagePayload `json:"messages"`
}

// SendResponse is the body the gateway returns for a send request.
// A 200 response may still report a per-message failure via the err_text
// field of the first message entry. Message carries the error description
// on non-200 responses.
type SendResponse struct {
	JobID    string           `json:"job_id,omitempty"`
	Messages []MessagePayload `json:"messages,omitempty"`
	Message  string           `json:"message,omitempty"`
}

// ErrText reports the message-level error of a send response, if the
// gateway flagged one. It keeps callers away from the raw response shape.
func (r *SendResponse) ErrText() (string, bool) {
	if len(r.Messages) == 0 || r.Messages[0].ErrText == "" {
		return "", false
	}
	return r.Messages[0].ErrText, true
}

// Package is one prepaid message package on the account.
type Package struct {
	ID            int    `json:"id"`
	PackagePoints int    `json:"package_points"`
	CurrentPoints int    `json:"current_points"`
	ExpireAt      string `json:"expire_at"`
	IsActive      bool   `json:"is_active"`
}

// BalanceResponse is the body of GET account/area/me/packages.
type BalanceResponse struct {
	Balance  float64   `json:"balance"`
	Packages []Package `json:"packages,omitempty"`
}

// SenderName is one approved sender name on the account.
type SenderName struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	Status    string `json:"status"`
	Note      string `json:"note,omitempty"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// SenderNamesResponse is the body of GET account/area/senders.
type SenderNamesResponse struct {
	Success bool         `json:"success"`
	Data    []SenderName `json:"data"`
	Total   int          `json:"total"`
}
