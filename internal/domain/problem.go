package domain

// Problem represents a coding problem with its test cases and per-language
// starter code
type Problem struct {
	ID          string            `json:"id"`
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Difficulty  Difficulty        `json:"difficulty"`
	Examples    []Example         `json:"examples"`
	Constraints []string          `json:"constraints"`
	TestCases   []TestCase        `json:"testCases"`
	StarterCode map[string]string `json:"starterCode"`
}

// Example is a worked example shown in the problem statement
type Example struct {
	Input       string `json:"input"`
	Output      string `json:"output"`
	Explanation string `json:"explanation,omitempty"`
}

// TestCase is a single stdin/stdout test case
type TestCase struct {
	Input          string `json:"input"`
	ExpectedOutput string `json:"expectedOutput"`
	IsHidden       bool   `json:"isHidden"`
}

// VisibleTestCases returns the non-hidden test cases, used by the
// non-scoring Run path.
func (p *Problem) VisibleTestCases() []TestCase {
	visible := make([]TestCase, 0, len(p.TestCases))
	for _, tc := range p.TestCases {
		if !tc.IsHidden {
			visible = append(visible, tc)
		}
	}
	return visible
}

// Public returns a copy of the problem safe to send to clients: hidden
// test cases are stripped so their inputs and outputs never leave the
// server.
func (p *Problem) Public() *Problem {
	out := *p
	out.TestCases = p.VisibleTestCases()
	return &out
}
