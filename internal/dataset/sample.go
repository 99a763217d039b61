package dataset

import (
	"bytes"
	_ "embed"
)

//go:embed sample_marks.csv
var sampleCSV []byte

// Sample returns the bundled demo marks table.
func Sample() (*Dataset, error) {
	return ParseCSV(bytes.NewReader(sampleCSV))
}
