package http

// errorResp is the raw error body the board endpoints return.
type errorResp struct {
	Error string `json:"error"`
}
