package bms

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/jsphweid/bmsdex/fraction"
	"github.com/jsphweid/bmsdex/model"
	"github.com/jsphweid/bmsdex/quantize"
	"github.com/jsphweid/bmsdex/util"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

const newline = "\r\n"

// a measure line never needs more slots than this
const maxResolution = 1 << 20

type chartWriter struct {
	header   bytes.Buffer
	body     bytes.Buffer
	bpmCount int
}

func (w *chartWriter) headerLine(s string) {
	w.header.WriteString(s)
	w.header.WriteString(newline)
}

func (w *chartWriter) bodyLine(s string) {
	w.body.WriteString(s)
	w.body.WriteString(newline)
}

// Write serializes chart as BMS text. The BPM tag of the chart is set from
// its default tempo; nothing else on the chart is modified.
func Write(target io.Writer, chart *model.Chart) error {
	w := &chartWriter{}

	// note counts help people tagging the file
	w.headerLine(fmt.Sprintf("; 1P = %d", chart.NoteCount(1)))
	w.headerLine(fmt.Sprintf("; 2P = %d", chart.NoteCount(2)))
	w.headerLine("")

	chart.Tags.Set(tagBPM, formatDecimal(round3(chart.DefaultBPM.Float64())))
	for _, key := range chart.Tags.Keys() {
		val, _ := chart.Tags.Get(key)
		if val != "" {
			w.headerLine("#" + key + " " + val)
		} else {
			w.headerLine("#" + key)
		}
	}

	entries := chart.SortedEntries()
	measureCount := chart.Measures()
	for measure := 0; measure < measureCount; measure++ {
		for _, s := range writeSlots {
			if s.reserved() {
				continue
			}
			if err := w.writeSlot(entries, measure, s); err != nil {
				return errors.Wrapf(err, "measure %d lane %s", measure, s.lane)
			}
		}
	}

	measures := util.GetKeys(chart.MeasureLengths)
	sort.Ints(measures)
	for _, m := range measures {
		length := chart.MeasureLengths[m].Float64()
		if length != 1 {
			w.headerLine(fmt.Sprintf("#%03d%s:%s", m, laneMeasureLength, formatDecimal(length)))
		}
	}

	if _, err := target.Write(w.header.Bytes()); err != nil {
		return errors.Wrap(err, "could not write chart header")
	}
	if _, err := target.Write(w.body.Bytes()); err != nil {
		return errors.Wrap(err, "could not write chart body")
	}

	log.Debug().Int("measures", measureCount).Int("tempoChanges", w.bpmCount).Msg("wrote bms chart")
	return nil
}

func matchingEntries(entries []model.Entry, measure int, s slot) []model.Entry {
	var res []model.Entry
	for _, e := range entries {
		if e.Measure == measure && e.Player == s.player && e.Type == s.kind && e.Column == s.column {
			res = append(res, e)
		}
		if e.Measure > measure {
			break
		}
	}
	return res
}

func (w *chartWriter) writeSlot(all []model.Entry, measure int, s slot) error {
	entries := matchingEntries(all, measure, s)
	if len(entries) == 0 {
		return nil
	}

	// offsets are rewritten as the common denominator grows, so the second
	// pass brings the early ones up to the final denominator
	common := fraction.One
	for pass := 0; pass < 2; pass++ {
		for i := range entries {
			entries[i].Offset, common = fraction.Commonize(entries[i].Offset, common)
		}
	}

	if common.Denominator <= 0 || common.Denominator > maxResolution {
		return errors.Errorf("offsets need %d slots per measure", common.Denominator)
	}
	values := make([]int, common.Denominator)

	for _, e := range entries {
		offset := e.Offset.Numerator * common.Denominator / e.Offset.Denominator
		if offset < 0 || offset >= int64(len(values)) {
			continue
		}

		switch s.kind {
		case model.Marker:
			values[offset] = int(e.Value.Float64())
		case model.Tempo:
			w.bpmCount++
			// skip identifiers whose low digit would be a letter
			if w.bpmCount%36 == 10 {
				w.bpmCount += 26
			}
			id, err := encodePair(w.bpmCount)
			if err != nil {
				return errors.Wrap(err, "too many tempo changes")
			}
			values[offset] = w.bpmCount
			w.headerLine("#" + bpmTablePrefix + id + " " + formatDecimal(round3(e.Value.Float64())))
		default:
			values[offset] = int(e.Value.Int())
		}
	}

	values = quantize.Reduce(values)

	var builder strings.Builder
	builder.WriteString(fmt.Sprintf("#%03d%s:", measure, s.lane))
	for _, v := range values {
		pair, err := encodePair(v)
		if err != nil {
			return err
		}
		builder.WriteString(pair)
	}
	w.bodyLine(builder.String())
	return nil
}

// round3 rounds half to even at three decimals.
func round3(v float64) float64 {
	return math.RoundToEven(v*1000) / 1000
}

func formatDecimal(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
