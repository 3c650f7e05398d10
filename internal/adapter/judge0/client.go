// package judge0 is the HTTP client for the external sandboxed
// code-execution service
package judge0

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"gitlab.com/codeduel-2025.net/internal/config"
	"gitlab.com/codeduel-2025.net/internal/core/ports/primary"
	"gitlab.com/codeduel-2025.net/internal/core/ports/secondary"
	"gitlab.com/codeduel-2025.net/internal/domain"
)

var _ secondary.CodeExecutor = (*Client)(nil)

// Client implements the CodeExecutor interface against a Judge0 instance.
// The request timeout bounds how long a single execution can stall; any
// transport or timeout failure comes back as an internal-error result, so
// an unreachable judge never raises past this adapter.
type Client struct {
	baseURL    string
	httpClient *http.Client
	cfg        *config.JudgeConfig
	logger     primary.Logger
}

// NewClient creates a new judge client
func NewClient(cfg *config.JudgeConfig, logger primary.Logger) *Client {
	return &Client{
		baseURL: cfg.URL,
		httpClient: &http.Client{
			Timeout: cfg.RequestTimeout,
		},
		cfg:    cfg,
		logger: logger,
	}
}

type submissionRequest struct {
	SourceCode          string `json:"source_code"`
	LanguageID          int    `json:"language_id"`
	Stdin               string `json:"stdin"`
	CPUTimeLimit        int    `json:"cpu_time_limit"`
	WallTimeLimit       int    `json:"wall_time_limit"`
	MemoryLimit         int    `json:"memory_limit"`
	MaxProcessesThreads int    `json:"max_processes_and_or_threads"`
	EnableNetwork       bool   `json:"enable_network"`
}

type submissionResponse struct {
	Status struct {
		ID          int    `json:"id"`
		Description string `json:"description"`
	} `json:"status"`
	Stdout        *string `json:"stdout"`
	Stderr        *string `json:"stderr"`
	CompileOutput *string `json:"compile_output"`
	Time          *string `json:"time"`
	Memory        *int    `json:"memory"`
	Message       *string `json:"message"`
}

// Execute runs code against one stdin input and waits for the verdict
func (c *Client) Execute(ctx context.Context, code string, languageID int, stdin string) *domain.ExecutionResult {
	reqBody := submissionRequest{
		SourceCode:          code,
		LanguageID:          languageID,
		Stdin:               stdin,
		CPUTimeLimit:        c.cfg.CPUTimeLimit,
		WallTimeLimit:       c.cfg.WallTimeLimit,
		MemoryLimit:         c.cfg.MemoryLimitKB,
		MaxProcessesThreads: 60,
		EnableNetwork:       false,
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return c.failureResult(err)
	}

	url := fmt.Sprintf("%s/submissions?base64_encoded=false&wait=true", c.baseURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return c.failureResult(err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return c.failureResult(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return c.failureResult(fmt.Errorf("judge returned status %d", resp.StatusCode))
	}

	var out submissionResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return c.failureResult(err)
	}

	return &domain.ExecutionResult{
		StatusID:          out.Status.ID,
		StatusDescription: out.Status.Description,
		Stdout:            strValue(out.Stdout),
		Stderr:            strValue(out.Stderr),
		CompileOutput:     strValue(out.CompileOutput),
		TimeMs:            timeToMs(out.Time),
		MemoryKb:          intValue(out.Memory),
		Message:           strValue(out.Message),
	}
}

// CheckHealth reports whether the judge answers on its about endpoint
func (c *Client) CheckHealth(ctx context.Context) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/about", nil)
	if err != nil {
		return false
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("Judge health check failed", "error", err)
		return false
	}
	defer resp.Body.Close()

	return resp.StatusCode == http.StatusOK
}

// failureResult converts a transport-level failure into the internal-error
// result shape
func (c *Client) failureResult(err error) *domain.ExecutionResult {
	c.logger.Error("Code execution failed", "error", err)
	return &domain.ExecutionResult{
		StatusID:          domain.StatusIDInternalError,
		StatusDescription: "Internal Error",
		Message:           err.Error(),
	}
}

// timeToMs converts the judge's seconds-as-string time to milliseconds
func timeToMs(t *string) int64 {
	if t == nil {
		return 0
	}
	seconds, err := strconv.ParseFloat(*t, 64)
	if err != nil {
		return 0
	}
	return int64(seconds * 1000)
}

func strValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func intValue(i *int) int {
	if i == nil {
		return 0
	}
	return *i
}
