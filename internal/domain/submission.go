package domain

import "time"

// Submission is one side of a duel's submission set. Results stays nil
// until the judge has scored the full test-case set.
type Submission struct {
	SessionID  string
	Code       string
	Language   string
	Results    *TestRunReport
	SubmitTime time.Time
}

// TestRunReport aggregates the outcome of running code against a set of
// test cases
type TestRunReport struct {
	Passed  int              `json:"passed"`
	Total   int              `json:"total"`
	Results []TestCaseResult `json:"results"`
}

// TestCaseResult is the outcome of a single test case
type TestCaseResult struct {
	Input    string `json:"input"`
	Expected string `json:"expected"`
	Actual   string `json:"actual"`
	Passed   bool   `json:"passed"`
	Error    string `json:"error,omitempty"`
	TimeMs   int64  `json:"timeMs"`
	MemoryKb int    `json:"memoryKb"`
	Status   string `json:"status"`
}

// Judge status ids, as reported by the execution service
const (
	StatusIDAccepted      = 3
	StatusIDInternalError = 13
)

// ExecutionResult is the raw outcome of one code execution by the judge
type ExecutionResult struct {
	StatusID          int
	StatusDescription string
	Stdout            string
	Stderr            string
	CompileOutput     string
	TimeMs            int64
	MemoryKb          int
	Message           string
}

// Accepted reports whether the execution finished with the Accepted status
func (r *ExecutionResult) Accepted() bool {
	return r.StatusID == StatusIDAccepted
}

// ErrorText returns the most specific error text available, or empty
func (r *ExecutionResult) ErrorText() string {
	switch {
	case r.Stderr != "":
		return r.Stderr
	case r.CompileOutput != "":
		return r.CompileOutput
	case r.Message != "":
		return r.Message
	}
	return ""
}
