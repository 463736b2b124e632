package handlers

// MessageResponse is the plain message payload most routes return.
// swagger:model MessageResponse
type MessageResponse struct {
	// Message
	// example: Profile deleted successfully
	Msg string `json:"msg"`
}

const internalErrorMsg = "Internal server error"
