package application

import "time"

// Clock interface supaya gampang ditest
type Clock interface {
	Now() time.Time
}

// SystemClock implementasi default, pakai time.Now()
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// FixedClock always returns the same instant. Used by aggregation tests so
// trailing-bucket series are reproducible.
type FixedClock struct {
	T time.Time
}

func (f FixedClock) Now() time.Time { return f.T }
