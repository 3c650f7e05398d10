package config

import (
	"strconv"
	"time"
)

// DuelConfig holds the duel-flow limits: submission validation, the rate
// governor window, and the idle-room sweep.
type DuelConfig struct {
	MaxCodeSize       int
	SubmitWindow      time.Duration
	SubmitLimit       int
	RoomIdleThreshold time.Duration
	SweepInterval     time.Duration
}

func NewDuelConfig() *DuelConfig {
	maxCodeSize, err := strconv.Atoi(getEnv("MAX_CODE_SIZE_BYTES", "50000"))
	if err != nil {
		maxCodeSize = 50000
	}
	submitLimit, err := strconv.Atoi(getEnv("SUBMIT_LIMIT_PER_MINUTE", "5"))
	if err != nil {
		submitLimit = 5
	}
	idleMin, err := strconv.Atoi(getEnv("ROOM_IDLE_THRESHOLD_MIN", "60"))
	if err != nil {
		idleMin = 60
	}
	sweepMin, err := strconv.Atoi(getEnv("ROOM_SWEEP_INTERVAL_MIN", "5"))
	if err != nil {
		sweepMin = 5
	}
	return &DuelConfig{
		MaxCodeSize:       maxCodeSize,
		SubmitWindow:      time.Minute,
		SubmitLimit:       submitLimit,
		RoomIdleThreshold: time.Duration(idleMin) * time.Minute,
		SweepInterval:     time.Duration(sweepMin) * time.Minute,
	}
}
