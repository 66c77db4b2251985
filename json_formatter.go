package slatelog

import (
	"strings"

	"github.com/tidwall/sjson"
)

// JSONFormatterConfig configures JSONFormatter's output shape.
type JSONFormatterConfig struct {
	// NameMapping renames an attribute in the output: NameMapping["message"]
	// = "@message" emits the message attribute under the key "@message".
	NameMapping map[string]string
	// FieldHierarchy nests an attribute under the given object path:
	// FieldHierarchy["timestamp"] = []string{"fields", "aux"} emits the
	// timestamp attribute at fields.aux.timestamp, creating the
	// intermediate objects as needed.
	FieldHierarchy map[string][]string
	// Newline appends "\n" to the emitted string when set.
	Newline bool
}

// JSONFormatter is the JSON-emitting alternative to StringFormatter. It
// ignores patterns entirely and instead walks a Record's attributes in
// order, placing each one according to NameMapping/FieldHierarchy.
type JSONFormatter struct {
	cfg JSONFormatterConfig
}

// NewJSONFormatter builds a JSONFormatter from cfg.
func NewJSONFormatter(cfg JSONFormatterConfig) *JSONFormatter {
	return &JSONFormatter{cfg: cfg}
}

// Format emits rec's attributes as a single-line JSON object.
func (f *JSONFormatter) Format(rec *Record) (string, error) {
	doc := []byte("{}")
	for _, attr := range rec.Attributes() {
		key := attr.Name
		if mapped, ok := f.cfg.NameMapping[attr.Name]; ok {
			key = mapped
		}

		path := key
		if hierarchy, ok := f.cfg.FieldHierarchy[attr.Name]; ok && len(hierarchy) > 0 {
			segments := append(append([]string{}, hierarchy...), key)
			path = strings.Join(segments, ".")
		}

		var err error
		doc, err = sjson.SetBytes(doc, path, attr.Value.Interface())
		if err != nil {
			return "", err
		}
	}

	out := string(doc)
	if f.cfg.Newline {
		out += "\n"
	}
	return out, nil
}
