package pkg

import "fmt"

// Label renders the semester credit pair as shown under the semester header
func (s SemesterGroup) Label() string {
	return fmt.Sprintf("%d / %d credits taken", s.Credits.Taken, s.Credits.Total)
}
