package loader

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

type format int

const (
	formatJSON format = iota
	formatYAML
)

// formatOf picks the decoder from the file extension; JSON unless YAML.
func formatOf(path string) format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return formatYAML
	default:
		return formatJSON
	}
}

// decodeDocument decodes b into generic values. JSON numbers stay json.Number
// so epoch seconds keep their full textual precision.
func decodeDocument(f format, b []byte) (any, error) {
	var doc any
	switch f {
	case formatYAML:
		if err := yaml.Unmarshal(b, &doc); err != nil {
			return nil, err
		}
		return doc, nil
	default:
		dec := json.NewDecoder(bytes.NewReader(b))
		dec.UseNumber()
		if err := dec.Decode(&doc); err != nil {
			return nil, err
		}
		if _, err := dec.Token(); !errors.Is(err, io.EOF) {
			return nil, errors.New("unexpected data after top-level value")
		}
		return doc, nil
	}
}
