package main

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// parseTarget turns the optional positional argument into a target score.
// Anything that is not a positive integer falls back to def; the returned
// notice explains why and is empty when raw was accepted or absent.
func parseTarget(raw string, def int) (int, string) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return def, ""
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return def, fmt.Sprintf("Invalid target score %q. Using default target score of %d.", raw, def)
	}
	if n <= 0 {
		return def, fmt.Sprintf("Target score must be positive, got %d. Using default target score of %d.", n, def)
	}
	return n, ""
}

// valueFlags take the following token as their value.
var valueFlags = map[string]bool{
	"-c":           true,
	"--config":     true,
	"--log-file":   true,
	"-p":           true,
	"--player":     true,
	"--seed":       true,
	"--score-file": true,
}

// normalizeArgs lets a negative target such as "-5" reach the play command's
// positional argument instead of being parsed as an unknown short flag. The
// token is moved behind "--", and "play" is made explicit when it was implied.
func normalizeArgs(args []string) []string {
	idx := -1
	for i, a := range args {
		if a == "--" || a == "scores" {
			return args
		}
		if idx < 0 && isNegativeNumber(a) && (i == 0 || !valueFlags[args[i-1]]) {
			idx = i
		}
	}
	if idx < 0 {
		return args
	}

	out := make([]string, 0, len(args)+2)
	if !slices.Contains(args, "play") {
		out = append(out, "play")
	}
	out = append(out, args[:idx]...)
	out = append(out, args[idx+1:]...)
	return append(out, "--", args[idx])
}

func isNegativeNumber(s string) bool {
	if len(s) < 2 || s[0] != '-' {
		return false
	}
	_, err := strconv.Atoi(s[1:])
	return err == nil && !strings.ContainsAny(s[1:], "+-")
}
