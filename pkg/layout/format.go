package layout

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Format is the format of a layout file.
type Format int

// Supported formats.
const (
	YAML Format = iota
	TOML
)

// ErrUnknownFormat is returned for an unsupported format or file extension.
var ErrUnknownFormat = errors.New("unknown layout format")

func (f Format) String() string {
	switch f {
	case YAML:
		return "YAML"
	case TOML:
		return "TOML"
	}
	return fmt.Sprintf("Format(%d)", int(f))
}

// Decode decodes a Spec. Keys that don't correspond to any field of Spec or
// Node are errors.
func Decode(data []byte, f Format) (*Spec, error) {
	var spec Spec
	switch f {
	case YAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&spec); err != nil && err != io.EOF {
			return nil, fmt.Errorf("parse YAML: %w", err)
		}
	case TOML:
		md, err := toml.Decode(string(data), &spec)
		if err != nil {
			return nil, fmt.Errorf("parse TOML: %w", err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			keys := make([]string, len(undecoded))
			for i, key := range undecoded {
				keys[i] = key.String()
			}
			sort.Strings(keys)
			return nil, fmt.Errorf("parse TOML: unknown keys %s", strings.Join(keys, ", "))
		}
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownFormat, f)
	}
	return &spec, nil
}
