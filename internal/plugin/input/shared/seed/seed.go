// Package seed provides utilities for deterministic seed generation.
// Input plugins and generators share one seeded random source so that a run
// can be reproduced exactly.
package seed

import (
	"crypto/sha256"
	"encoding/binary"
	"fmt"
	"math/rand"
	"slices"
	"strings"
	"time"
)

// Mode determines how the random seed is generated.
type Mode string

const (
	// ModeRandom uses non-deterministic random seed (varies each run).
	ModeRandom Mode = "random"
	// ModeManual uses a user-provided seed value.
	ModeManual Mode = "manual"
	// ModeInput generates seed from a hash of the input description (deterministic by input).
	ModeInput Mode = "input"
)

// Config holds configuration for seed generation.
type Config struct {
	Mode  Mode   // Seed mode
	Value *int64 // Seed value (only used when Mode is ModeManual)
}

// Calculate determines the seed value based on the seed mode.
// key describes the input (e.g. "mood:calm") and is required for ModeInput.
func Calculate(key string, config Config) (int64, error) {
	switch config.Mode {
	case ModeInput:
		if key == "" {
			return 0, fmt.Errorf("input key is required for input-based seed mode")
		}
		return CalculateInputSeed(key), nil
	case ModeManual:
		if config.Value == nil {
			return 0, fmt.Errorf("seed value is required for manual seed mode")
		}
		return *config.Value, nil
	case ModeRandom:
		return GenerateRandomSeed(), nil
	default:
		return 0, fmt.Errorf("unknown seed mode: %s", config.Mode)
	}
}

// CalculateInputSeed generates a deterministic seed from an input description.
// Keys are case-folded and trimmed so "Calm" and "calm " seed alike.
func CalculateInputSeed(key string) int64 {
	hasher := sha256.New()
	hasher.Write([]byte(strings.ToLower(strings.TrimSpace(key))))
	hash := hasher.Sum(nil)
	return int64(binary.LittleEndian.Uint64(hash[:8])) // #nosec G115 -- hash conversion is safe
}

// GenerateRandomSeed generates a non-deterministic random seed.
func GenerateRandomSeed() int64 {
	// #nosec G404 -- Random seed generation is intentionally non-deterministic
	return time.Now().UnixNano() + int64(rand.Intn(1000000))
}

// NewRand returns a random source seeded with seed.
func NewRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed)) // #nosec G404 -- colour sampling, not security sensitive
}

// ValidModes returns a list of valid seed modes.
func ValidModes() []Mode {
	return []Mode{ModeRandom, ModeManual, ModeInput}
}

// ParseMode converts a string to a Mode.
// Returns an error if the string is not a valid mode.
func ParseMode(s string) (Mode, error) {
	mode := Mode(s)
	if slices.Contains(ValidModes(), mode) {
		return mode, nil
	}
	return "", fmt.Errorf("invalid seed mode: %s (valid: random, manual, input)", s)
}
