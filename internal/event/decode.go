package event

import (
	"bytes"
	"encoding/json"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v2"

	"github.com/javiermolinar/slotfinder/internal/slot"
)

// decodeJSON accepts either a bare array of events or a Calendar object.
func decodeJSON(data []byte) (*Calendar, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var events []slot.Event
		if err := json.Unmarshal(trimmed, &events); err != nil {
			return nil, err
		}
		return &Calendar{Events: events}, nil
	}

	var cal Calendar
	if err := json.Unmarshal(trimmed, &cal); err != nil {
		return nil, err
	}
	return &cal, nil
}

func decodeTOML(data []byte) (*Calendar, error) {
	var cal Calendar
	if err := toml.Unmarshal(data, &cal); err != nil {
		return nil, err
	}
	return &cal, nil
}

// decodeYAML accepts either a top-level sequence of events or a Calendar mapping.
func decodeYAML(data []byte) (*Calendar, error) {
	var events []slot.Event
	if err := yaml.Unmarshal(data, &events); err == nil {
		return &Calendar{Events: events}, nil
	}

	var cal Calendar
	if err := yaml.Unmarshal(data, &cal); err != nil {
		return nil, err
	}
	return &cal, nil
}
