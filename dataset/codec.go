// SPDX-License-Identifier: MIT

package dataset

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// idColumn is the CSV header that holds molecule ids.
const idColumn = "id"

// ReadJSON decodes and validates a JSON dataset. Unknown fields are rejected.
func ReadJSON(r io.Reader) (*Dataset, error) {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	var d Dataset
	if err := dec.Decode(&d); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if err := d.Validate(); err != nil {
		return nil, err
	}

	return &d, nil
}

// ReadYAML decodes and validates a YAML dataset. Unknown fields are rejected.
func ReadYAML(r io.Reader) (*Dataset, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var d Dataset
	if err := dec.Decode(&d); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrMalformed)
		}
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if err := d.Validate(); err != nil {
		return nil, err
	}

	return &d, nil
}

// ReadCSV reads a headed CSV table. Every listed signal column must exist.
func ReadCSV(r io.Reader, signalColumns ...string) (*Dataset, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	cr.Comment = '#'
	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("%w: header: %v", ErrMalformed, err)
	}

	isSignal := make(map[string]bool, len(signalColumns))
	for _, s := range signalColumns {
		isSignal[s] = true
	}
	idIdx := -1
	var featIdx []int
	sigIdx := make(map[string]int, len(signalColumns))
	for i, h := range header {
		h = strings.TrimSpace(h)
		switch {
		case strings.EqualFold(h, idColumn):
			idIdx = i
		case isSignal[h]:
			sigIdx[h] = i
		default:
			featIdx = append(featIdx, i)
		}
	}
	for _, s := range signalColumns {
		if _, ok := sigIdx[s]; !ok {
			return nil, fmt.Errorf("%w: signal column %q not in header", ErrMalformed, s)
		}
	}

	d := &Dataset{Signals: make(map[string][]float64, len(sigIdx))}
	for line := 2; ; line++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
		}
		row := make([]float64, len(featIdx))
		for k, i := range featIdx {
			if row[k], err = parseCell(rec[i]); err != nil {
				return nil, fmt.Errorf("%w: line %d column %q: %v", ErrMalformed, line, header[i], err)
			}
		}
		d.Features = append(d.Features, row)
		for name, i := range sigIdx {
			v, err := parseCell(rec[i])
			if err != nil {
				return nil, fmt.Errorf("%w: line %d column %q: %v", ErrMalformed, line, name, err)
			}
			d.Signals[name] = append(d.Signals[name], v)
		}
		if idIdx >= 0 {
			d.IDs = append(d.IDs, strings.TrimSpace(rec[idIdx]))
		}
	}
	if err = d.Validate(); err != nil {
		return nil, err
	}

	return d, nil
}

func parseCell(s string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(s), 64)
}
