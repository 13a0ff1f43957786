package bms

import (
	"bufio"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/jsphweid/bmsdex/fraction"
	"github.com/jsphweid/bmsdex/model"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

const utf8BOM = "\uFEFF"

// Read parses a BMS chart. Loose lines are skipped rather than rejected;
// only numbers the timeline depends on (tempo, measure numbers, measure
// lengths) fail the read when they do not parse.
func Read(source io.Reader) (*model.Chart, error) {
	chart := model.NewChart()

	noteDefs, err := scanLines(source, chart)
	if err != nil {
		return nil, err
	}

	if bpm, ok := chart.Tags.Get(tagBPM); ok {
		v, err := parseDecimal(bpm)
		if err != nil {
			return nil, errors.Wrap(err, "invalid BPM tag")
		}
		chart.DefaultBPM = fraction.Rationalize(v)
	}

	for _, def := range noteDefs {
		if err := decodeNoteDef(chart, def); err != nil {
			return nil, err
		}
	}

	log.Debug().
		Int("tags", chart.Tags.Len()).
		Int("noteLines", len(noteDefs)).
		Int("entries", len(chart.Entries)).
		Msg("read bms chart")
	return chart, nil
}

func scanLines(source io.Reader, chart *model.Chart) (model.NoteDefs, error) {
	var noteDefs model.NoteDefs
	reader := bufio.NewReader(source)
	first := true

	for {
		line, err := reader.ReadString('\n')
		if err != nil && err != io.EOF {
			return nil, errors.Wrap(err, "could not read chart")
		}
		if len(line) > 0 {
			line = strings.TrimSuffix(line, "\n")
			line = strings.TrimSuffix(line, "\r")
			if first {
				line = strings.TrimPrefix(line, utf8BOM)
				first = false
			}
			classifyLine(line, chart, &noteDefs)
		}
		if err == io.EOF {
			return noteDefs, nil
		}
	}
}

// classifyLine puts "#KEY VALUE" lines into the tag map and "#KEY:VALUE"
// lines into the ordered note definitions. A space anywhere wins over a colon.
func classifyLine(line string, chart *model.Chart, noteDefs *model.NoteDefs) {
	if !strings.HasPrefix(line, "#") {
		return
	}
	line = strings.ReplaceAll(line[1:], "\t", " ")

	if sep := strings.Index(line, " "); sep >= 0 {
		key := strings.ToUpper(strings.TrimSpace(line[:sep]))
		val := strings.TrimSpace(line[sep+1:])
		if key != "" {
			chart.Tags.Set(key, val)
		}
		return
	}

	if sep := strings.Index(line, ":"); sep >= 0 {
		key := strings.ToUpper(strings.TrimSpace(line[:sep]))
		val := strings.TrimSpace(line[sep+1:])
		if key != "" {
			*noteDefs = append(*noteDefs, model.NoteDef{Key: key, Value: val})
		}
	}
}

func decodeNoteDef(chart *model.Chart, def model.NoteDef) error {
	if utf8.RuneCountInString(def.Key) != 5 {
		return nil
	}
	key := []rune(def.Key)
	measureText, laneCode := string(key[:3]), string(key[3:])

	measure, err := strconv.Atoi(measureText)
	if err != nil || measure < 0 {
		return errors.Errorf("invalid measure number %q in #%s", measureText, def.Key)
	}

	if laneCode == laneMeasureLength {
		v, err := parseDecimal(def.Value)
		if err != nil {
			return errors.Wrapf(err, "invalid length for measure %d", measure)
		}
		chart.SetMeasureLength(measure, fraction.Rationalize(v))
		return nil
	}

	l, ok := readLanes[laneCode]
	if !ok {
		// keep unknown lines around verbatim; they are written back as "#KEY:VALUE"
		chart.Tags.Set(def.Key+":"+def.Value, "")
		return nil
	}

	alphabet := l.coding.alphabet()
	value := []rune(def.Value)
	valueLength := len(value) &^ 1

	for i := 0; i < valueLength; i += 2 {
		val := decodePair(alphabet, value[i], value[i+1])
		if val == 0 {
			continue
		}

		entry := model.Entry{
			Measure: measure,
			Player:  l.player,
			Type:    l.kind,
			Column:  l.column,
			Offset:  fraction.New(int64(i), int64(valueLength)),
		}

		if l.coding == codingBPMTable {
			pair := string(value[i : i+2])
			if bpm, ok := chart.Tags.Get(bpmTablePrefix + pair); ok {
				v, err := parseDecimal(bpm)
				if err != nil {
					return errors.Wrapf(err, "invalid tempo for #%s%s", bpmTablePrefix, pair)
				}
				entry.Value = fraction.Rationalize(v)
			} else {
				entry.Type = model.Invalid
			}
		} else {
			entry.Value = fraction.New(int64(val), 1)
		}

		chart.AddEntry(entry)
	}
	return nil
}

func parseDecimal(s string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(s), 64)
}
