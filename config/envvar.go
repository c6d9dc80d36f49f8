package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// lookupString returns the trimmed value of the environment variable, treating an empty value as unset.
func lookupString(varName string) (string, bool) {
	val, ok := os.LookupEnv(varName)
	if !ok {
		return "", false
	}

	val = strings.TrimSpace(val)

	return val, val != ""
}

// lookupUint64 returns the uint64 value of the environment variable, unlike 'lookupString' a value which can't be
// parsed is reported as an error rather than silently ignored.
func lookupUint64(varName string) (uint64, bool, error) {
	env, ok := lookupString(varName)
	if !ok {
		return 0, false, nil
	}

	val, err := strconv.ParseUint(env, 10, 64)
	if err != nil {
		return 0, false, fmt.Errorf("'%s' must be an unsigned 64-bit integer, got '%s'", varName, env)
	}

	return val, true, nil
}
