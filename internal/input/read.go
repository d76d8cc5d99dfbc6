package input

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	tabint "github.com/Maxime2/tabulated-integral"
)

var (
	ErrFileFormat      = errors.New("unsupported file format: expected .txt or .csv")
	ErrIllegalContents = errors.New("illegal file contents")
)

// ReadSamples reads one "x,f(x)" pair per line. Blank lines and lines
// starting with '#' are skipped.
func ReadSamples(r io.Reader) (*tabint.SampleSet, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = 2
	reader.TrimLeadingSpace = true
	reader.Comment = '#'

	s := tabint.New()
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrIllegalContents, err)
		}
		line, _ := reader.FieldPos(0)

		x, err := ParseValue(row[0])
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: x: %v", ErrIllegalContents, line, err)
		}
		y, err := ParseValue(row[1])
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: f(x): %v", ErrIllegalContents, line, err)
		}
		s.AddPoint(x, y)
	}

	if s.GetNdots() < tabint.MinSamples {
		return nil, fmt.Errorf("%w: have %d", tabint.ErrInsufficientData, s.GetNdots())
	}
	return s, nil
}

// ReadFile reads samples from a .txt or .csv file.
func ReadFile(path string) (*tabint.SampleSet, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".txt", ".csv":
	default:
		return nil, fmt.Errorf("%w: %s", ErrFileFormat, path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	s, err := ReadSamples(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}
