package model

import (
	"fmt"

	"github.com/jsphweid/bmsdex/fraction"
)

type EntryType int

const (
	Invalid EntryType = iota
	Marker
	Tempo
	BGA
	Sample
	Freeze
)

var entryTypeNames = map[EntryType]string{
	Invalid: "invalid",
	Marker:  "marker",
	Tempo:   "tempo",
	BGA:     "bga",
	Sample:  "sample",
	Freeze:  "freeze",
}

func (t EntryType) String() string {
	if name, ok := entryTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("EntryType(%d)", int(t))
}

func (t EntryType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *EntryType) UnmarshalText(text []byte) error {
	for k, v := range entryTypeNames {
		if v == string(text) {
			*t = k
			return nil
		}
	}
	return fmt.Errorf("unknown entry type %q", string(text))
}

// Entry is one event on the timeline.
type Entry struct {
	Measure int       `json:"measure"`
	Player  int       `json:"player"`
	Type    EntryType `json:"type"`
	Column  int       `json:"column"`

	// position within the measure, in [0, 1)
	Offset fraction.Fraction `json:"offset"`

	// object reference for markers, samples, BGA and freezes; BPM for tempo
	Value fraction.Fraction `json:"value"`
}

// NoteDef is a raw "#KEY:VALUE" record as it appeared in the file.
type NoteDef struct {
	Key   string
	Value string
}

// NoteDefs keeps repeats and file order.
type NoteDefs = []NoteDef
