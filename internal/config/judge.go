package config

import (
	"strconv"
	"time"
)

// JudgeConfig holds the endpoint and resource limits passed to the external
// judge service
type JudgeConfig struct {
	URL            string
	RequestTimeout time.Duration
	CPUTimeLimit   int // seconds
	WallTimeLimit  int // seconds
	MemoryLimitKB  int
}

func NewJudgeConfig() *JudgeConfig {
	timeoutSec, err := strconv.Atoi(getEnv("JUDGE_TIMEOUT_SEC", "15"))
	if err != nil {
		timeoutSec = 15
	}
	return &JudgeConfig{
		URL:            getEnv("JUDGE0_URL", "http://localhost:2358"),
		RequestTimeout: time.Duration(timeoutSec) * time.Second,
		CPUTimeLimit:   5,
		WallTimeLimit:  10,
		MemoryLimitKB:  256000,
	}
}
