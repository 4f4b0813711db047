/*
Package csv provides methods to read datasets from delimited text
streams in which the last column holds the class label and the
preceding columns hold continuous feature values.
*/
package csv

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/marc-chan/sapling/dataset"
)

/*
Read takes an io.Reader for a CSV stream and returns the dataset parsed
from it together with the names of its feature columns, or an error.

The header or first row of the CSV content is expected to consist of
the column names, with the label column last. Every following row must
consist of one real number per column; the last one is taken as the
sample's class label.
*/
func Read(reader io.Reader) (*dataset.Dataset, []string, error) {
	r := csv.NewReader(reader)
	header, err := r.Read()
	if err != nil {
		return nil, nil, fmt.Errorf("reading header: %v", err)
	}
	if len(header) < 2 {
		return nil, nil, fmt.Errorf("reading header: want at least 1 feature column and a label column, got %d columns", len(header))
	}
	var features [][]float64
	var labels []float64
	for l := 2; ; l++ {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("reading body: %v", err)
		}
		fv, label, err := parseSampleFromCSVRow(row)
		if err != nil {
			return nil, nil, fmt.Errorf("parsing line %d: %v", l, err)
		}
		features = append(features, fv)
		labels = append(labels, label)
	}
	ds, err := dataset.New(features, labels)
	if err != nil {
		return nil, nil, err
	}
	return ds, header[:len(header)-1], nil
}

/*
ReadFromFilePath takes a filepath string, opens the file it points to
and uses Read to return the dataset and feature column names read from
it or an error. An empty filepath reads from os.Stdin instead.
*/
func ReadFromFilePath(filepath string) (*dataset.Dataset, []string, error) {
	var f *os.File
	var err error
	if filepath == "" {
		f = os.Stdin
	} else {
		f, err = os.Open(filepath)
		if err != nil {
			return nil, nil, fmt.Errorf("reading dataset: %v", err)
		}
		defer f.Close()
	}
	ds, names, err := Read(f)
	if err != nil {
		err = fmt.Errorf("parsing CSV file %s: %v", filepath, err)
	}
	return ds, names, err
}

func parseSampleFromCSVRow(row []string) ([]float64, float64, error) {
	values := make([]float64, len(row))
	for i, v := range row {
		value, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, 0, fmt.Errorf("converting %s to float64: %v", v, err)
		}
		values[i] = value
	}
	return values[:len(values)-1], values[len(values)-1], nil
}
