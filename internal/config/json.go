package config

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
)

// exportVersion is stamped into JSON export metadata.
const exportVersion = "1.6"

// ExportMetadata is the envelope header written around a JSON export.
type ExportMetadata struct {
	ExportDate string `json:"export_date"`
	ExportID   string `json:"export_id"`
	Version    string `json:"version"`
	Tool       string `json:"tool"`
}

type jsonExport struct {
	Metadata      ExportMetadata `json:"metadata"`
	Configuration Parameters     `json:"configuration"`
}

// ExportJSON serializes the parameter set as
// {metadata, configuration} with a timestamp and a fresh export ID.
func ExportJSON(p Parameters) ([]byte, error) {
	out := jsonExport{
		Metadata: ExportMetadata{
			ExportDate: time.Now().Format(time.RFC3339),
			ExportID:   uuid.NewString(),
			Version:    exportVersion,
			Tool:       "BVA Business Value Assessment",
		},
		Configuration: p,
	}
	return json.MarshalIndent(out, "", "  ")
}

// ImportJSON parses a JSON export back into a parameter set. Content with
// a "configuration" member uses it; otherwise the whole document is taken
// as the configuration. Integer-looking numbers come back as ints so a
// CSV and a JSON round trip agree on types.
func ImportJSON(data []byte) (Parameters, ImportReport) {
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, ImportReport{Message: fmt.Sprintf("error importing JSON: %v", err)}
	}

	raw := data
	if cfg, ok := doc["configuration"]; ok {
		raw = cfg
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var values map[string]any
	if err := dec.Decode(&values); err != nil {
		return nil, ImportReport{Message: fmt.Sprintf("error importing JSON: %v", err)}
	}

	params := Parameters{}
	skipped := 0
	for key, v := range values {
		switch x := v.(type) {
		case json.Number:
			params[key] = coerceNumber(x)
		case string:
			params[key] = x
		case bool:
			params[key] = x
		default:
			// Nested objects and arrays are not parameters.
			skipped++
		}
	}

	return params, ImportReport{
		OK:       true,
		Imported: len(params),
		Skipped:  skipped,
		Message:  fmt.Sprintf("successfully imported %d parameters (%d entries skipped)", len(params), skipped),
	}
}

// coerceNumber keeps integers integral and everything else float.
func coerceNumber(n json.Number) any {
	s := n.String()
	if !strings.ContainsAny(s, ".eE") {
		if i, err := n.Int64(); err == nil {
			return i
		}
	}
	f, err := n.Float64()
	if err != nil {
		return s
	}
	return f
}
