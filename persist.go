package tabulatedintegral

import (
	"encoding/json"
	"slices"
)

// Dump is a serializable representation of a SampleSet.
type Dump struct {
	Points []Point `json:"points"`
}

// FromDump restores a sample set from a dump.
// Points go through AddPoint, so the result is sorted and duplicate X merged.
func (s *SampleSet) FromDump(d *Dump) {
	s.Clear()
	for _, p := range d.Points {
		s.AddPoint(p.X, p.Y)
	}
}

// Dump generates a serializable dump for a sample set.
func (s *SampleSet) Dump() *Dump {
	return &Dump{
		Points: slices.Clone(s.P),
	}
}

// MarshalJSON implements the json.Marshaler interface for SampleSet.
func (s *SampleSet) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Dump())
}

// UnmarshalJSON implements the json.Unmarshaler interface for SampleSet.
func (s *SampleSet) UnmarshalJSON(bytes []byte) error {
	var dump Dump
	if err := json.Unmarshal(bytes, &dump); err != nil {
		return err
	}
	s.FromDump(&dump)
	return nil
}
