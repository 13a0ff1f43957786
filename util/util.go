package util

import (
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/jsphweid/bmsdex/constants"
	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"
)

func IsChartPath(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range constants.ChartExtensions {
		if ext == e {
			return true
		}
	}
	return false
}

// GatherAllChartPaths walks root for chart files. maxNum of 0 means no limit.
func GatherAllChartPaths(root string, maxNum int) ([]string, error) {
	var res []string
	walk := func(s string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && IsChartPath(s) {
			if maxNum == 0 || len(res) < maxNum {
				res = append(res, s)
			}
		}
		return nil
	}
	if err := filepath.WalkDir(root, walk); err != nil {
		return nil, errors.Wrapf(err, "could not walk %s", root)
	}
	sort.Strings(res)
	return res, nil
}

func GetKeys[A constraints.Ordered, B any](m map[A]B) []A {
	keys := make([]A, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	return keys
}

func Sum[A constraints.Integer](nums []A) uint64 {
	var total uint64
	for _, v := range nums {
		total += uint64(v)
	}
	return total
}
