package config

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

// ImportReport describes the outcome of a configuration import. Partial
// success is allowed: rows that cannot be parsed are skipped and counted,
// never silently swallowed.
type ImportReport struct {
	OK       bool   `json:"ok"`
	Imported int    `json:"imported"`
	Skipped  int    `json:"skipped"`
	Message  string `json:"message"`
}

// ExportCSV serializes the parameter set as Parameter,Value,Description
// rows in canonical key order. Unknown keys follow the known set in map
// order.
func ExportCSV(p Parameters) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)

	if err := w.Write([]string{"Parameter", "Value", "Description"}); err != nil {
		return nil, err
	}

	known := make(map[string]bool, len(parameterKeys))
	for _, key := range parameterKeys {
		known[key] = true
		v, ok := p[key]
		if !ok {
			continue
		}
		if err := w.Write([]string{key, formatValue(v), Describe(key)}); err != nil {
			return nil, err
		}
	}
	for key, v := range p {
		if known[key] {
			continue
		}
		if err := w.Write([]string{key, formatValue(v), Describe(key)}); err != nil {
			return nil, err
		}
	}

	w.Flush()
	return buf.Bytes(), w.Error()
}

// ImportCSV parses Parameter,Value,Description content back into a
// parameter set. Numeric-looking values are coerced to int or float,
// everything else stays a string. Malformed rows are skipped and reported.
func ImportCSV(data []byte) (Parameters, ImportReport) {
	r := csv.NewReader(bytes.NewReader(data))
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err != nil || len(header) < 2 || !strings.EqualFold(header[0], "Parameter") {
		return nil, ImportReport{Message: "error importing CSV: missing Parameter,Value header"}
	}

	params := Parameters{}
	skipped := 0
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			skipped++
			continue
		}
		if len(record) < 2 || strings.TrimSpace(record[0]) == "" {
			skipped++
			continue
		}
		params[strings.TrimSpace(record[0])] = coerceValue(record[1])
	}

	return params, ImportReport{
		OK:       true,
		Imported: len(params),
		Skipped:  skipped,
		Message:  fmt.Sprintf("successfully imported %d parameters (%d rows skipped)", len(params), skipped),
	}
}
