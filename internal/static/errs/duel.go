package errs

import "errors"

var (
	CodeRequired        = errors.New("code is required")
	CodeTooLarge        = errors.New("code too large")
	UnsupportedLanguage = errors.New("invalid language")
	RateLimited         = errors.New("rate limit exceeded")
	ProblemNotFound     = errors.New("problem not found")
	NotInRoom           = errors.New("not in an active room")
)
