package faqdex

// Reply is the answer to one question.
type Reply struct {
	Answer   string   `json:"answer"`
	Outcome  string   `json:"outcome"`
	Score    int      `json:"score,omitempty"`
	Keywords []string `json:"keywords,omitempty"`
}

// Record is a stored question-answer pair.
type Record struct {
	ID       string   `json:"id,omitempty"`
	Question string   `json:"question"`
	Answer   string   `json:"answer"`
	Keywords []string `json:"keywords,omitempty"`
}

// ImportResult reports one item of a batch import.
type ImportResult struct {
	ID      string `json:"id"`
	Created bool   `json:"created"`
	Error   string `json:"error,omitempty"`
}

// Health is the server health report.
type Health struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

type importRequest struct {
	Records []Record `json:"records"`
}

type importResponse struct {
	Results []ImportResult `json:"results"`
}

type listResponse struct {
	Items []Record `json:"items"`
	Total int      `json:"total"`
}

type chatRequest struct {
	Question string `json:"question"`
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
