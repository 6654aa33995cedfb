package cities

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

//go:embed dataset.json
var defaultDataset []byte

// ErrInvalidDataset is returned when a dataset fails ValidateGraphData.
var ErrInvalidDataset = errors.New("invalid city dataset")

// EdgeSpec is one undirected edge in a dataset.
type EdgeSpec struct {
	From     string  `json:"from"`
	To       string  `json:"to"`
	Distance float64 `json:"distance"`
}

// Dataset is a validated list of cities and the roads between them.
type Dataset struct {
	Cities []string   `json:"cities"`
	Edges  []EdgeSpec `json:"edges"`
}

// Build constructs the graph for the dataset.
func (d *Dataset) Build() (*Graph, error) {
	return BuildGraph(d.Cities, d.Edges)
}

// ParseDataset decodes and validates a JSON dataset.
func ParseDataset(data []byte) (*Dataset, error) {
	var raw RawDataset
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decoding city dataset: %w", err)
	}

	if v := ValidateGraphData(raw); !v.OK {
		return nil, fmt.Errorf("%w: %s", ErrInvalidDataset, v.Reason)
	}

	var ds Dataset
	if err := json.Unmarshal(data, &ds); err != nil {
		return nil, fmt.Errorf("decoding city dataset: %w", err)
	}

	return &ds, nil
}

// LoadDataset reads and validates a JSON dataset file.
func LoadDataset(path string) (*Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading city dataset: %w", err)
	}

	return ParseDataset(data)
}

// DefaultDataset returns the embedded sample dataset.
func DefaultDataset() (*Dataset, error) {
	return ParseDataset(defaultDataset)
}
