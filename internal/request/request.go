package request

// RefresherRequest represents the JSON body for refresher control.
type RefresherRequest struct {
	// Action controls the balance refresher. Allowed values:
	// - "start": start periodic balance refreshes
	// - "stop":  stop periodic balance refreshes
	Action string `json:"action"`
}

// BulkSendRequest is the JSON body for a bulk SMS send.
type BulkSendRequest struct {
	Message string   `json:"message"`
	Numbers []string `json:"numbers"`

	// Sender overrides the configured default sender name when set.
	Sender string `json:"sender,omitempty"`
}
