package classifier

import (
	"regexp"
	"strings"
)

const asciiSpace = " \t\n\v\f\r"

// numeralRegex is the accepted numeral grammar: optional sign followed by ASCII digits.
var numeralRegex = regexp.MustCompile(`^[+-]?[0-9]+$`)

type Result struct {
	Numbers         []string
	Alphabets       []string
	HighestAlphabet []string
}

// Classify partitions tokens into numbers and alphabets, keeping the input order
// inside each bucket. HighestAlphabet is empty when there are no alphabets.
func Classify(tokens []string) Result {
	res := Result{
		Numbers:         make([]string, 0, len(tokens)),
		Alphabets:       make([]string, 0, len(tokens)),
		HighestAlphabet: make([]string, 0, 1),
	}

	for _, t := range tokens {
		if IsNumeral(t) {
			res.Numbers = append(res.Numbers, t)
		} else {
			res.Alphabets = append(res.Alphabets, t)
		}
	}

	if h, ok := Highest(res.Alphabets); ok {
		res.HighestAlphabet = append(res.HighestAlphabet, h)
	}

	return res
}

// IsNumeral reports whether token is a decimal integer, ignoring surrounding ASCII whitespace.
// Empty and whitespace-only tokens are not numerals.
func IsNumeral(token string) bool {
	return numeralRegex.MatchString(strings.Trim(token, asciiSpace))
}

// Highest returns the greatest token under byte-wise ordering.
func Highest(alphabets []string) (string, bool) {
	if len(alphabets) == 0 {
		return "", false
	}

	highest := alphabets[0]
	for _, a := range alphabets[1:] {
		if a > highest {
			highest = a
		}
	}
	return highest, true
}
