package testutil

import "time"

// MustTime analyse une date AAAA-MM-JJ en UTC.
func MustTime(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}
