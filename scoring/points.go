// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package scoring

import (
	"fmt"
	"strconv"
	"strings"
)

// Slots is the number of ranked picks on a ballot.
const Slots = 10

// PointValue is one of the ten canonical weights a voter hands out.
type PointValue int

// PointValues lists the canonical weights in position order.
// PointValues[0] is first place, PointValues[9] is tenth.
var PointValues = [Slots]PointValue{12, 10, 8, 7, 6, 5, 4, 3, 2, 1}

// Position returns the 1-indexed rank implied by p (12 -> 1, 1 -> 10).
func (p PointValue) Position() (int, bool) {
	for i, v := range PointValues {
		if v == p {
			return i + 1, true
		}
	}
	return 0, false
}

func (p PointValue) String() string {
	return strconv.Itoa(int(p))
}

// ParsePointValue converts a JSON object key or path segment like "12"
// into a PointValue.
func ParsePointValue(s string) (PointValue, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("invalid point value %q", s)
	}
	p := PointValue(n)
	if _, ok := p.Position(); !ok {
		return 0, fmt.Errorf("invalid point value %d", n)
	}
	return p, nil
}

// Picks holds the entry code awarded at each position.
// Picks[0] received 12 points; an empty string is an unfilled slot.
type Picks [Slots]string

// Set assigns entry to the slot for points. A slot can only be filled once.
func (p *Picks) Set(points PointValue, entry string) error {
	pos, ok := points.Position()
	if !ok {
		return fmt.Errorf("invalid point value %d", points)
	}
	if p[pos-1] != "" {
		return fmt.Errorf("%d points already assigned to %s", points, p[pos-1])
	}
	p[pos-1] = entry
	return nil
}

// Get returns the entry that received points, or "" if none did.
func (p Picks) Get(points PointValue) string {
	pos, ok := points.Position()
	if !ok {
		return ""
	}
	return p[pos-1]
}

// Filled counts the non-empty slots.
func (p Picks) Filled() int {
	n := 0
	for _, entry := range p {
		if entry != "" {
			n++
		}
	}
	return n
}

// validate reports the first reason the picks are not a complete
// one-to-one assignment of point values to entries.
func (p Picks) validate() string {
	var missing []string
	seen := make(map[string]PointValue, Slots)
	for i, entry := range p {
		if entry == "" {
			missing = append(missing, PointValues[i].String())
			continue
		}
		if prev, dup := seen[entry]; dup {
			return fmt.Sprintf("entry %s received both %d and %d points", entry, prev, PointValues[i])
		}
		seen[entry] = PointValues[i]
	}
	if len(missing) > 0 {
		return "missing picks for " + strings.Join(missing, ", ") + " points"
	}
	return ""
}
