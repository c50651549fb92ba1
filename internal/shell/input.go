package shell

import (
	"errors"
	"strconv"
	"strings"
)

// MaxLineBytes bounds an input line, newline included. Longer lines are
// rejected whatever they contain.
const MaxLineBytes = 23

// InvalidInput is printed whenever a menu choice or amount is rejected
const InvalidInput = "Correct input only, please"

var errInvalidInput = errors.New("invalid input")

// ParseChoice accepts exactly one digit between lo and hi
func ParseChoice(line string, lo, hi int) (int, error) {
	text, err := trimLine(line)
	if err != nil {
		return 0, err
	}
	if len(text) != 1 || text[0] < '0' || text[0] > '9' {
		return 0, errInvalidInput
	}
	n := int(text[0] - '0')
	if n < lo || n > hi {
		return 0, errInvalidInput
	}
	return n, nil
}

// ParseAmount accepts a whole number of dollars between lo and hi
func ParseAmount(line string, lo, hi int) (int, error) {
	text, err := trimLine(line)
	if err != nil {
		return 0, err
	}
	if text == "" || strings.TrimLeft(text, "0123456789") != "" {
		return 0, errInvalidInput
	}
	n, err := strconv.Atoi(text)
	if err != nil || n < lo || n > hi {
		return 0, errInvalidInput
	}
	return n, nil
}

// trimLine strips the line terminator after checking the length limit
func trimLine(line string) (string, error) {
	text := strings.TrimSuffix(line, "\n")
	if len(text)+1 > MaxLineBytes {
		return "", errInvalidInput
	}
	return strings.TrimSuffix(text, "\r"), nil
}
