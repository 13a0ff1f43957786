package model

import (
	"sort"

	"github.com/jsphweid/bmsdex/fraction"
)

// Chart is a decoded timeline: header tags, raw per-measure entries,
// measure-length overrides and the initial tempo.
type Chart struct {
	Tags           Tags                      `json:"tags"`
	Entries        []Entry                   `json:"entries"`
	MeasureLengths map[int]fraction.Fraction `json:"measure_lengths"`
	DefaultBPM     fraction.Fraction         `json:"default_bpm"`
}

func NewChart() *Chart {
	return &Chart{
		MeasureLengths: make(map[int]fraction.Fraction),
		DefaultBPM:     fraction.New(0, 1),
	}
}

// AddEntry appends e unless it is Invalid.
func (c *Chart) AddEntry(e Entry) bool {
	if e.Type == Invalid {
		return false
	}
	c.Entries = append(c.Entries, e)
	return true
}

func (c *Chart) SetMeasureLength(measure int, length fraction.Fraction) {
	if c.MeasureLengths == nil {
		c.MeasureLengths = make(map[int]fraction.Fraction)
	}
	c.MeasureLengths[measure] = length
}

// MeasureLength is the multiplier for a measure, 1 unless overridden.
func (c *Chart) MeasureLength(measure int) fraction.Fraction {
	if l, ok := c.MeasureLengths[measure]; ok {
		return l
	}
	return fraction.One
}

// Measures counts measures up to and including the last one that holds
// an entry or a length override.
func (c *Chart) Measures() int {
	count := 0
	for _, e := range c.Entries {
		if e.Measure+1 > count {
			count = e.Measure + 1
		}
	}
	for m := range c.MeasureLengths {
		if m+1 > count {
			count = m + 1
		}
	}
	return count
}

// NoteCount counts playable markers for a player.
func (c *Chart) NoteCount(player int) int {
	var n int
	for _, e := range c.Entries {
		if e.Type == Marker && e.Player == player {
			n += 1
		}
	}
	return n
}

// SortEntries orders entries by measure, then offset, keeping file order for ties.
func (c *Chart) SortEntries() {
	sortEntries(c.Entries)
}

func sortEntries(entries []Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Measure != entries[j].Measure {
			return entries[i].Measure < entries[j].Measure
		}
		return entries[i].Offset.Less(entries[j].Offset)
	})
}

// SortedEntries returns a sorted copy, leaving the chart untouched.
func (c *Chart) SortedEntries() []Entry {
	res := make([]Entry, len(c.Entries))
	copy(res, c.Entries)
	sortEntries(res)
	return res
}
