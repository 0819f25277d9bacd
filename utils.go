package main

import (
	"strconv"
	"strings"
)

// IntAbs returns the absolute value of n
func IntAbs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// IntMax returns the larger of a and b
func IntMax(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// CleanSplit splits str on sep and removes empty entries
func CleanSplit(str, sep string) []string {
	lines := strings.Split(str, sep)
	clean := make([]string, 0, len(lines))
	for s := range lines {
		if strings.TrimSpace(lines[s]) != "" {
			clean = append(clean, lines[s])
		}
	}
	return clean
}

// atof parses a float field, panicking with context on failure
func atof(str string) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(str), 64)
	if err != nil {
		kwpanic(str, err)
	}
	return f
}

// atoi parses an integer field, panicking with context on failure
func atoi(str string) int {
	n, err := strconv.Atoi(strings.TrimSpace(str))
	if err != nil {
		kwpanic(str, err)
	}
	return n
}
