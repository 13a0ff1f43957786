package midi

import (
	"io"
	"math"
	"os"
	"sort"

	"github.com/jsphweid/bmsdex/model"
	"github.com/pkg/errors"
	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

const TicksPerQuarter = 960

const (
	ticksPerMeasure = 4 * TicksPerQuarter
	noteLength      = 120
	velocity        = 100

	player1BaseKey = 36
	player2BaseKey = 60
)

// at equal ticks tempo goes first, then releases, then presses
const (
	orderTempo = iota
	orderNoteOff
	orderNoteOn
)

type timedMessage struct {
	tick  uint32
	order int
	msg   []byte
}

// measureStarts returns the starting tick of every measure, with length overrides applied.
func measureStarts(chart *model.Chart, count int) []float64 {
	starts := make([]float64, count+1)
	for m := 0; m < count; m++ {
		starts[m+1] = starts[m] + ticksPerMeasure*chart.MeasureLength(m).Float64()
	}
	return starts
}

func tickAt(chart *model.Chart, starts []float64, e model.Entry) uint32 {
	pos := starts[e.Measure] + e.Offset.Float64()*ticksPerMeasure*chart.MeasureLength(e.Measure).Float64()
	if pos < 0 {
		return 0
	}
	return uint32(math.Round(pos))
}

func baseKey(player int) (uint8, bool) {
	switch player {
	case 1:
		return player1BaseKey, true
	case 2:
		return player2BaseKey, true
	}
	return 0, false
}

func collect(chart *model.Chart) []timedMessage {
	var res []timedMessage
	if bpm := chart.DefaultBPM.Float64(); bpm > 0 {
		res = append(res, timedMessage{0, orderTempo, smf.MetaTempo(bpm)})
	}

	starts := measureStarts(chart, chart.Measures())
	for _, e := range chart.Entries {
		tick := tickAt(chart, starts, e)
		switch e.Type {
		case model.Tempo:
			if bpm := e.Value.Float64(); bpm > 0 {
				res = append(res, timedMessage{tick, orderTempo, smf.MetaTempo(bpm)})
			}
		case model.Marker:
			base, ok := baseKey(e.Player)
			if !ok || e.Column < 0 || e.Column > 23 {
				continue
			}
			channel := uint8(e.Player - 1)
			key := base + uint8(e.Column)
			res = append(res,
				timedMessage{tick, orderNoteOn, midi.NoteOn(channel, key, velocity)},
				timedMessage{tick + noteLength, orderNoteOff, midi.NoteOff(channel, key)},
			)
		}
	}

	sort.SliceStable(res, func(i, j int) bool {
		if res[i].tick != res[j].tick {
			return res[i].tick < res[j].tick
		}
		return res[i].order < res[j].order
	})
	return res
}

// WriteChart renders the chart's tempo changes and playable markers as a
// single-track Standard MIDI File.
func WriteChart(target io.Writer, chart *model.Chart) error {
	var track smf.Track
	track.Add(0, smf.MetaMeter(4, 4))

	var last uint32
	for _, tm := range collect(chart) {
		track.Add(tm.tick-last, tm.msg)
		last = tm.tick
	}
	track.Close(0)

	s := smf.New()
	s.TimeFormat = smf.MetricTicks(TicksPerQuarter)
	if err := s.Add(track); err != nil {
		return errors.Wrap(err, "could not add midi track")
	}
	if _, err := s.WriteTo(target); err != nil {
		return errors.Wrap(err, "could not write midi file")
	}
	return nil
}

func WriteChartFile(path string, chart *model.Chart) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "could not create %s", path)
	}
	defer f.Close()

	if err := WriteChart(f, chart); err != nil {
		return err
	}
	return f.Close()
}
