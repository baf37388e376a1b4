package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/MKhiriev/go-utils/dates"
)

type StructuredJSONConfig struct {
	Fetch struct {
		Timeout dates.Duration `json:"timeout"`
	} `json:"fetch,omitempty"`

	Output struct {
		Format string `json:"format"`
		Indent int    `json:"indent"`
	} `json:"output,omitempty"`

	Watch struct {
		Interval dates.Duration `json:"interval"`
	} `json:"watch,omitempty"`

	Log struct {
		Level string `json:"level"`
	} `json:"log,omitempty"`
}

func parseJSON(jsonFilePath string) (*Config, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &Config{
		Fetch: Fetch{
			Timeout: time.Duration(jsonCfg.Fetch.Timeout),
		},
		Output: Output{
			Format: jsonCfg.Output.Format,
			Indent: jsonCfg.Output.Indent,
		},
		Watch: Watch{
			Interval: time.Duration(jsonCfg.Watch.Interval),
		},
		Log: Log{
			Level: jsonCfg.Log.Level,
		},
		JSONFilePath: "",
	}

	return cfg, nil
}
