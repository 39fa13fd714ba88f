package utils

import (
	"os"
	"os/signal"
	"strings"
	"syscall"
)

func ContainsString(targetString string, sliceOfStrings []string) bool {
	for i := range sliceOfStrings {
		if sliceOfStrings[i] == targetString {
			return true
		}
	}
	return false
}

// NormalizeInput lowercases the user input and removes surrounding whitespace
func NormalizeInput(input string) string {
	return strings.ToLower(strings.TrimSpace(input))
}

// GetSignalChannel returns a channel that receive interrupt or termination signals
func GetSignalChannel() chan os.Signal {
	signalChannel := make(chan os.Signal, 1)
	signal.Notify(signalChannel, os.Interrupt, syscall.SIGTERM)
	return signalChannel
}
