package cmd

import (
	"os"

	"github.com/jsphweid/bmsdex/bms"
	"github.com/jsphweid/bmsdex/model"
	"github.com/pkg/errors"
)

func readChartFile(path string) (*model.Chart, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "could not open chart")
	}
	defer f.Close()

	chart, err := bms.Read(f)
	if err != nil {
		return nil, errors.Wrapf(err, "could not read %s", path)
	}
	return chart, nil
}

func writeChartFile(path string, chart *model.Chart) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "could not create %s", path)
	}
	defer f.Close()

	if err := bms.Write(f, chart); err != nil {
		return errors.Wrapf(err, "could not write %s", path)
	}
	return f.Close()
}
