package core

import (
	"errors"
	"strconv"
	"strings"

	"degree_flowchart/pkg"
)

var errEmptyCredits = errors.New("empty value")

// ParseCredits parses a credit-hours string as an integer
func ParseCredits(course, field, value string) (int, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return 0, &ParseError{Course: course, Field: field, Value: value, Err: errEmptyCredits}
	}

	n, err := strconv.Atoi(trimmed)
	if err != nil {
		return 0, &ParseError{Course: course, Field: field, Value: value, Err: err}
	}
	return n, nil
}

// SemesterCredits computes the (taken, total) credit pair for a group of placements.
// Total sums every placement's own credits; taken sums the linked definition's
// credits of checked placements only.
func SemesterCredits(placements []pkg.CoursePlacement) (pkg.CreditPair, error) {
	var pair pkg.CreditPair

	for _, p := range placements {
		total, err := ParseCredits(p.Name, "credits", p.Credits)
		if err != nil {
			return pkg.CreditPair{}, err
		}
		pair.Total += total

		if !p.Checked {
			continue
		}
		if p.Definition == nil {
			return pkg.CreditPair{}, &MissingReferenceError{Course: p.Name}
		}
		taken, err := ParseCredits(p.Name, "definition.credits", p.Definition.Credits)
		if err != nil {
			return pkg.CreditPair{}, err
		}
		pair.Taken += taken
	}

	return pair, nil
}
