package config

import (
	"fmt"
	"os"
	"strconv"
)

const (
	defaultPort       = ":8080"
	defaultHideChance = 0.5
)

func BasePath() string {
	return os.Getenv("APP_BASE_PATH")
}

func Port() string {
	port, ok := os.LookupEnv("APP_PORT")
	if !ok || port == "" {
		return defaultPort
	}
	return port
}

// LogFile is the path of the rotated log file; empty disables file logging.
func LogFile() string {
	return os.Getenv("LOG_FILE")
}

// HideChance is the probability of hiding all letters of a word that shares
// letters with the revealed squares.
func HideChance() (float64, error) {
	s, ok := os.LookupEnv("CODEWORD_HIDE_CHANCE")
	if !ok || s == "" {
		return defaultHideChance, nil
	}
	chance, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("unable to parse CODEWORD_HIDE_CHANCE: %w", err)
	}
	if chance < 0 || chance > 1 {
		return 0, fmt.Errorf("CODEWORD_HIDE_CHANCE must be within [0, 1], got %v", chance)
	}
	return chance, nil
}
