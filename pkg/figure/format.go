package figure

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"
)

// Format is a figure file encoding
type Format int

const (
	FormatYAML Format = iota
	FormatJSON
	FormatText
)

func (f Format) String() string {
	switch f {
	case FormatYAML:
		return "yaml"
	case FormatJSON:
		return "json"
	case FormatText:
		return "text"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// ParseFormat parses a format name as used on the command line
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(name) {
	case "yaml", "yml":
		return FormatYAML, nil
	case "json":
		return FormatJSON, nil
	case "text", "txt", "sig":
		return FormatText, nil
	}
	return 0, fmt.Errorf("unknown figure format %q", name)
}

// DetectFormat picks the format from the file extension, falling back to
// looking at the first bytes of the content
func DetectFormat(filename string, data []byte) Format {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".yaml", ".yml":
		return FormatYAML
	case ".json":
		return FormatJSON
	case ".sig", ".txt":
		return FormatText
	}

	trimmed := bytes.TrimSpace(data)
	if bytes.HasPrefix(trimmed, []byte("{")) {
		return FormatJSON
	}
	for _, keyword := range []string{"figure", "segment", "arc", "circle"} {
		if bytes.HasPrefix(trimmed, []byte(keyword+" ")) {
			return FormatText
		}
	}
	return FormatYAML
}
