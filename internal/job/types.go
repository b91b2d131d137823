package job

// Summary is the trimmed job shape the board endpoints return.
type Summary struct {
	ID       string `json:"id"` // job number, e.g. "SKY 017"
	Name     string `json:"name"`
	Status   string `json:"status"`
	Stage    string `json:"stage"`
	RecordID string `json:"recordId"`
}
