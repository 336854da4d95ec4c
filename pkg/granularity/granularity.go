package granularity

import (
	"fmt"
	"strings"
	"time"
)

// Granularity is the width of a candle bucket.
type Granularity string

// Supported granularities.
const (
	Sec    Granularity = "Sec"
	Minute Granularity = "Minute"
	Hour   Granularity = "Hour"
	Day    Granularity = "Day"
	Month  Granularity = "Month"
)

// All lists every granularity from the finest to the coarsest.
var All = []Granularity{Sec, Minute, Hour, Day, Month}

var registry = make(map[string]Granularity)

func init() {
	for _, g := range All {
		registry[strings.ToLower(string(g))] = g
	}
}

// Parse returns the granularity with the given name, case insensitive.
func Parse(name string) (Granularity, error) {
	g, exists := registry[strings.ToLower(strings.TrimSpace(name))]
	if !exists {
		return "", fmt.Errorf("unsupported granularity: %s", name)
	}
	return g, nil
}

// ParseList parses every name, failing on the first unknown one.
func ParseList(names []string) ([]Granularity, error) {
	list := make([]Granularity, 0, len(names))
	for _, name := range names {
		g, err := Parse(name)
		if err != nil {
			return nil, err
		}
		list = append(list, g)
	}
	return list, nil
}

// IsValid reports whether g is one of All.
func (g Granularity) IsValid() bool {
	_, exists := registry[strings.ToLower(string(g))]
	return exists
}

func (g Granularity) String() string {
	return string(g)
}

// BucketStart returns the start of the bucket containing t, in UTC.
func (g Granularity) BucketStart(t time.Time) time.Time {
	t = t.UTC()
	switch g {
	case Sec:
		return t.Truncate(time.Second)
	case Minute:
		return t.Truncate(time.Minute)
	case Hour:
		return t.Truncate(time.Hour)
	case Day:
		return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	case Month:
		return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
	default:
		return t
	}
}

// Set is an accepted subset of granularities.
type Set map[Granularity]struct{}

// NewSet builds a Set from list.
func NewSet(list ...Granularity) Set {
	s := make(Set, len(list))
	for _, g := range list {
		s[g] = struct{}{}
	}
	return s
}

// Contains reports whether g is accepted.
func (s Set) Contains(g Granularity) bool {
	_, ok := s[g]
	return ok
}

// Names returns the accepted names in All order.
func (s Set) Names() []string {
	names := make([]string, 0, len(s))
	for _, g := range All {
		if s.Contains(g) {
			names = append(names, string(g))
		}
	}
	return names
}
