package bms

import "github.com/jsphweid/bmsdex/model"

type valueCoding int

const (
	codingBME valueCoding = iota
	codingHex
	codingDecimal
	codingBPMTable
)

const (
	alphabetBME     = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	alphabetHex     = "0123456789ABCDEF"
	alphabetDecimal = "0123456789"
)

func (c valueCoding) alphabet() string {
	switch c {
	case codingHex:
		return alphabetHex
	case codingDecimal:
		return alphabetDecimal
	default:
		return alphabetBME
	}
}

// lane codes used outside the tables
const (
	laneMeasureLength = "02"
	bpmTablePrefix    = "BPM"
	tagBPM            = "BPM"
)

type lane struct {
	player int
	kind   model.EntryType
	column int
	coding valueCoding
}

// readLanes maps the two-character lane code of a note line to what it carries.
var readLanes = map[string]lane{
	"01": {0, model.Marker, 0, codingBME},
	"03": {0, model.Tempo, 0, codingHex},
	"04": {0, model.BGA, 0, codingBME},
	"05": {0, model.BGA, 1, codingBME},
	"06": {0, model.BGA, 2, codingBME},
	"07": {0, model.BGA, 3, codingBME},
	"08": {0, model.Tempo, 0, codingBPMTable},

	"11": {1, model.Marker, 0, codingBME},
	"12": {1, model.Marker, 1, codingBME},
	"13": {1, model.Marker, 2, codingBME},
	"14": {1, model.Marker, 3, codingBME},
	"15": {1, model.Marker, 4, codingBME},
	"16": {1, model.Marker, 5, codingBME},
	"17": {1, model.Marker, 8, codingBME},
	"18": {1, model.Marker, 6, codingBME},
	"19": {1, model.Marker, 7, codingBME},

	"21": {2, model.Marker, 0, codingBME},
	"22": {2, model.Marker, 1, codingBME},
	"23": {2, model.Marker, 2, codingBME},
	"24": {2, model.Marker, 3, codingBME},
	"25": {2, model.Marker, 4, codingBME},
	"26": {2, model.Marker, 5, codingBME},
	"27": {2, model.Marker, 8, codingBME},
	"28": {2, model.Marker, 6, codingBME},
	"29": {2, model.Marker, 7, codingBME},

	"31": {1, model.Sample, 0, codingBME},
	"32": {1, model.Sample, 1, codingBME},
	"33": {1, model.Sample, 2, codingBME},
	"34": {1, model.Sample, 3, codingBME},
	"35": {1, model.Sample, 4, codingBME},
	"36": {1, model.Sample, 5, codingBME},
	"37": {1, model.Sample, 8, codingBME},
	"38": {1, model.Sample, 6, codingBME},
	"39": {1, model.Sample, 7, codingBME},

	"41": {2, model.Sample, 0, codingBME},
	"42": {2, model.Sample, 1, codingBME},
	"43": {2, model.Sample, 2, codingBME},
	"44": {2, model.Sample, 3, codingBME},
	"45": {2, model.Sample, 4, codingBME},
	"46": {2, model.Sample, 5, codingBME},
	"47": {2, model.Sample, 8, codingBME},
	"48": {2, model.Sample, 6, codingBME},
	"49": {2, model.Sample, 7, codingBME},
}

type slot struct {
	kind   model.EntryType
	player int
	column int
	lane   string
}

// reserved slots keep the numbering of the list stable
func (s slot) reserved() bool {
	return s.lane == ""
}

// writeSlots is the order lines are emitted in for every measure.
// Samples are not written back.
var writeSlots = []slot{
	{model.Tempo, 0, 0, "08"},
	{model.BGA, 0, 0, "04"},
	{model.BGA, 0, 1, "05"},
	{model.BGA, 0, 2, "06"},
	{model.BGA, 0, 3, "07"},
	{model.Marker, 0, 0, "01"},
	{},
	{},
	{},
	{},

	{model.Marker, 1, 0, "11"},
	{model.Marker, 1, 1, "12"},
	{model.Marker, 1, 2, "13"},
	{model.Marker, 1, 3, "14"},
	{model.Marker, 1, 4, "15"},
	{model.Marker, 1, 5, "18"},
	{model.Marker, 1, 6, "19"},
	{model.Marker, 1, 7, "16"},
	{model.Marker, 1, 8, "17"},

	{model.Marker, 2, 0, "21"},
	{model.Marker, 2, 1, "22"},
	{model.Marker, 2, 2, "23"},
	{model.Marker, 2, 3, "24"},
	{model.Marker, 2, 4, "25"},
	{model.Marker, 2, 5, "28"},
	{model.Marker, 2, 6, "29"},
	{model.Marker, 2, 7, "26"},
	{model.Marker, 2, 8, "27"},

	{model.Freeze, 1, 0, "51"},
	{model.Freeze, 1, 1, "52"},
	{model.Freeze, 1, 2, "53"},
	{model.Freeze, 1, 3, "54"},
	{model.Freeze, 1, 4, "55"},
	{model.Freeze, 1, 5, "58"},
	{model.Freeze, 1, 6, "59"},
	{model.Freeze, 1, 7, "56"},

	{model.Freeze, 2, 0, "61"},
	{model.Freeze, 2, 1, "62"},
	{model.Freeze, 2, 2, "63"},
	{model.Freeze, 2, 3, "64"},
	{model.Freeze, 2, 4, "65"},
	{model.Freeze, 2, 5, "68"},
	{model.Freeze, 2, 6, "69"},
	{model.Freeze, 2, 7, "66"},
}
