package types

import "fmt"

// Position identifies a location inside a source file. Offset is the byte
// offset from the start of the file; Line and Column are 1-based.
type Position struct {
	Offset int
	Line   int
	Column int
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Issue represents a rewrite opportunity found in the code base.
// Suggestion holds the replacement text for the Start..End byte range;
// an empty Suggestion on a matched issue means the range is deleted.
type Issue struct {
	Rule       string
	Filename   string
	Message    string
	Suggestion string
	Note       string
	Start      Position
	End        Position
	Confidence float64
	Severity   Severity
}

// Severity controls how an issue is reported and whether its rule runs at all.
type Severity int

const (
	SeverityOff Severity = iota
	SeverityInfo
	SeverityWarning
	SeverityError
)

var severityNames = map[Severity]string{
	SeverityOff:     "off",
	SeverityInfo:    "info",
	SeverityWarning: "warning",
	SeverityError:   "error",
}

func (s Severity) String() string {
	if name, ok := severityNames[s]; ok {
		return name
	}
	return "unknown"
}

// MarshalYAML implements yaml.Marshaler.
func (s Severity) MarshalYAML() (interface{}, error) {
	return s.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (s *Severity) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var raw string
	if err := unmarshal(&raw); err != nil {
		return err
	}
	for sev, name := range severityNames {
		if name == raw {
			*s = sev
			return nil
		}
	}
	return fmt.Errorf("unknown severity %q", raw)
}

// ConfigRule is the per-rule configuration surface.
type ConfigRule struct {
	Severity   Severity `yaml:"severity"`
	Confidence float64  `yaml:"confidence,omitempty"`
}
