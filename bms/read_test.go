package bms

import (
	"fmt"
	"strings"
	"testing"

	"github.com/jsphweid/bmsdex/fraction"
	"github.com/jsphweid/bmsdex/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readString(t *testing.T, s string) *model.Chart {
	chart, err := Read(strings.NewReader(s))
	require.NoError(t, err)
	return chart
}

type laneCase struct {
	lane   string
	player int
	kind   model.EntryType
	column int
}

var expectedLanes = []laneCase{
	{"01", 0, model.Marker, 0},
	{"03", 0, model.Tempo, 0},
	{"04", 0, model.BGA, 0},
	{"05", 0, model.BGA, 1},
	{"06", 0, model.BGA, 2},
	{"07", 0, model.BGA, 3},
	{"08", 0, model.Tempo, 0},
	{"11", 1, model.Marker, 0},
	{"12", 1, model.Marker, 1},
	{"13", 1, model.Marker, 2},
	{"14", 1, model.Marker, 3},
	{"15", 1, model.Marker, 4},
	{"16", 1, model.Marker, 5},
	{"17", 1, model.Marker, 8},
	{"18", 1, model.Marker, 6},
	{"19", 1, model.Marker, 7},
	{"21", 2, model.Marker, 0},
	{"22", 2, model.Marker, 1},
	{"23", 2, model.Marker, 2},
	{"24", 2, model.Marker, 3},
	{"25", 2, model.Marker, 4},
	{"26", 2, model.Marker, 5},
	{"27", 2, model.Marker, 8},
	{"28", 2, model.Marker, 6},
	{"29", 2, model.Marker, 7},
	{"31", 1, model.Sample, 0},
	{"32", 1, model.Sample, 1},
	{"33", 1, model.Sample, 2},
	{"34", 1, model.Sample, 3},
	{"35", 1, model.Sample, 4},
	{"36", 1, model.Sample, 5},
	{"37", 1, model.Sample, 8},
	{"38", 1, model.Sample, 6},
	{"39", 1, model.Sample, 7},
	{"41", 2, model.Sample, 0},
	{"42", 2, model.Sample, 1},
	{"43", 2, model.Sample, 2},
	{"44", 2, model.Sample, 3},
	{"45", 2, model.Sample, 4},
	{"46", 2, model.Sample, 5},
	{"47", 2, model.Sample, 8},
	{"48", 2, model.Sample, 6},
	{"49", 2, model.Sample, 7},
}

func TestLaneTableIsComplete(t *testing.T) {
	assert.Len(t, readLanes, len(expectedLanes))
}

func TestEveryLaneDecodesOneEntry(t *testing.T) {
	for _, c := range expectedLanes {
		t.Run(fmt.Sprintf("lane %s", c.lane), func(t *testing.T) {
			// the BPM-table lane needs its tempo declared
			chart := readString(t, "#BPM0A 10\n#000"+c.lane+":0A\n")

			assert := assert.New(t)
			require.Len(t, chart.Entries, 1)
			e := chart.Entries[0]
			assert.Equal(0, e.Measure)
			assert.Equal(c.player, e.Player)
			assert.Equal(c.kind, e.Type)
			assert.Equal(c.column, e.Column)
			assert.True(e.Offset.Equal(fraction.New(0, 1)))
			assert.True(e.Value.Equal(fraction.New(10, 1)), "value %v", e.Value)
		})
	}
}

func TestPlayerOneMarkerExample(t *testing.T) {
	chart := readString(t, "#00111:0A\n")

	assert := assert.New(t)
	require.Len(t, chart.Entries, 1)
	assert.Equal(model.Entry{
		Measure: 1,
		Player:  1,
		Type:    model.Marker,
		Column:  0,
		Offset:  fraction.New(0, 2),
		Value:   fraction.New(10, 1),
	}, chart.Entries[0])
}

func TestHeaderTags(t *testing.T) {
	chart := readString(t, strings.Join([]string{
		"#title\tSome Song  ",
		"#ARTIST  Someone",
		"#TITLE Another",
		"# orphan",
		"#PLAYER 1",
		"comment line",
		"  #GENRE leading space is not a tag",
		"#NOSEPARATOR",
		"*---------------------- HEADER FIELD",
	}, "\n"))

	assert := assert.New(t)
	assert.Equal([]string{"TITLE", "ARTIST", "PLAYER"}, chart.Tags.Keys())
	title, _ := chart.Tags.Get("TITLE")
	assert.Equal("Another", title)
	artist, _ := chart.Tags.Get("ARTIST")
	assert.Equal("Someone", artist)
	assert.Empty(chart.Entries)
}

func TestSpaceWinsOverColon(t *testing.T) {
	chart := readString(t, "#00111:01 02\n")

	assert := assert.New(t)
	assert.Empty(chart.Entries)
	v, ok := chart.Tags.Get("00111:01")
	assert.True(ok)
	assert.Equal("02", v)
}

func TestDefaultTempo(t *testing.T) {
	chart := readString(t, "#BPM 145.5\r\n")
	assert.Equal(t, fraction.New(291, 2), chart.DefaultBPM)
}

func TestBOMAndCRLF(t *testing.T) {
	chart := readString(t, "\uFEFF#TITLE x\r\n#00011:01\r\n")

	assert := assert.New(t)
	assert.True(chart.Tags.Has("TITLE"))
	assert.Len(chart.Entries, 1)
}

func TestValueOffsetsAndOddLength(t *testing.T) {
	chart := readString(t, "#00011:01000203X\n")

	assert := assert.New(t)
	require.Len(t, chart.Entries, 3)
	assert.True(chart.Entries[0].Offset.Equal(fraction.New(0, 8)))
	assert.True(chart.Entries[1].Offset.Equal(fraction.New(4, 8)))
	assert.True(chart.Entries[2].Offset.Equal(fraction.New(6, 8)))
	assert.Equal(int64(8), chart.Entries[2].Offset.Denominator)
	assert.Equal(int64(3), chart.Entries[2].Value.Int())
}

func TestAlphabetTolerance(t *testing.T) {
	cases := []struct {
		value string
		want  []int64
	}{
		{"Z0", []int64{35 * 36}},
		{"?1", []int64{1}},
		{"0a", nil},
		{"a1b2", []int64{1, 2}},
		{"ZZ", []int64{1295}},
		{"00", nil},
	}

	for _, c := range cases {
		t.Run(c.value, func(t *testing.T) {
			chart := readString(t, "#00011:"+c.value+"\n")
			var got []int64
			for _, e := range chart.Entries {
				got = append(got, e.Value.Int())
			}
			assert.Equal(t, c.want, got)
		})
	}
}

func TestHexTempoLane(t *testing.T) {
	chart := readString(t, "#00003:FF0G\n")

	assert := assert.New(t)
	require.Len(t, chart.Entries, 1)
	assert.Equal(model.Tempo, chart.Entries[0].Type)
	assert.Equal(int64(255), chart.Entries[0].Value.Int())
}

func TestBPMTableLane(t *testing.T) {
	chart := readString(t, "#BPM01 150.5\n#00008:01000200\n")

	assert := assert.New(t)
	require.Len(t, chart.Entries, 1)
	e := chart.Entries[0]
	assert.Equal(model.Tempo, e.Type)
	assert.Equal(fraction.New(301, 2), e.Value)
	assert.True(e.Offset.Equal(fraction.New(0, 1)))
}

func TestBPMTableLookupKeepsCase(t *testing.T) {
	// tag keys are uppercased, the raw pair is not
	chart := readString(t, "#bpm1a 120\n#00008:1a1A\n")

	assert := assert.New(t)
	require.Len(t, chart.Entries, 1)
	assert.True(chart.Entries[0].Offset.Equal(fraction.New(2, 4)))
}

func TestMeasureLength(t *testing.T) {
	chart := readString(t, "#00202:2\n#00102:0.75\n")

	assert := assert.New(t)
	assert.Equal(fraction.New(2, 1), chart.MeasureLength(2))
	assert.Equal(fraction.New(3, 4), chart.MeasureLength(1))
	assert.Empty(chart.Entries)
}

func TestUnknownLaneIsPreserved(t *testing.T) {
	chart := readString(t, "#00199:0102\n#001A1:01\n")

	assert := assert.New(t)
	assert.Empty(chart.Entries)
	assert.True(chart.Tags.Has("00199:0102"))
	assert.True(chart.Tags.Has("001A1:01"))
}

func TestNonFiveCharacterKeysIgnored(t *testing.T) {
	chart := readString(t, "#0011:01\n#000111:01\n")

	assert := assert.New(t)
	assert.Empty(chart.Entries)
	assert.Equal(0, chart.Tags.Len())
}

func TestNoteDefsKeepRepeats(t *testing.T) {
	chart := readString(t, "#00011:01\n#00011:0002\n")

	assert := assert.New(t)
	require.Len(t, chart.Entries, 2)
	assert.Equal(int64(1), chart.Entries[0].Value.Int())
	assert.Equal(int64(2), chart.Entries[1].Value.Int())
	assert.True(chart.Entries[1].Offset.Equal(fraction.New(1, 2)))
}

func TestNoteDefsSeeTagsDeclaredLater(t *testing.T) {
	chart := readString(t, "#00008:01\n#BPM01 99\n")

	assert := assert.New(t)
	require.Len(t, chart.Entries, 1)
	assert.Equal(int64(99), chart.Entries[0].Value.Int())
}

func TestReadErrors(t *testing.T) {
	cases := map[string]string{
		"bad bpm":            "#BPM fast\n",
		"bad measure":        "#0X111:01\n",
		"negative measure":   "#-0111:01\n",
		"bad measure length": "#00102:long\n",
		"bad table bpm":      "#BPM01 x\n#00008:01\n",
	}

	for name, input := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Read(strings.NewReader(input))
			assert.Error(t, err)
		})
	}
}

func TestUndefinedTableTempoOnlyDropsThatEntry(t *testing.T) {
	chart := readString(t, "#00008:01\n#00011:01\n")

	assert := assert.New(t)
	require.Len(t, chart.Entries, 1)
	assert.Equal(model.Marker, chart.Entries[0].Type)
}
