package core

import "strings"

// SemesterDelimiter separates the semester name from its year
const SemesterDelimiter = "-"

// SplitSemesterKey splits a key such as "Fall-1" once on the delimiter into
// its name ("Fall") and year ("1").
func SplitSemesterKey(key string) (name, year string, err error) {
	name, year, found := strings.Cut(key, SemesterDelimiter)
	if !found {
		return "", "", &MalformedKeyError{Key: key}
	}
	return name, year, nil
}
