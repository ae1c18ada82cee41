package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// StructuredJSONConfig is the on-disk layout of the optional JSON config file.
type StructuredJSONConfig struct {
	Render struct {
		Locale      string `json:"locale"`
		Format      string `json:"format"`
		OnlyEnabled bool   `json:"only_enabled"`
	} `json:"render,omitempty"`

	Output struct {
		Path      string `json:"path"`
		Clipboard bool   `json:"clipboard"`
	} `json:"output,omitempty"`

	Log struct {
		Level string `json:"level"`
	} `json:"log,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	decoder := json.NewDecoder(jsonFile)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		Render: Render{
			Locale:      jsonCfg.Render.Locale,
			Format:      jsonCfg.Render.Format,
			OnlyEnabled: jsonCfg.Render.OnlyEnabled,
		},
		Output: Output{
			Path:      jsonCfg.Output.Path,
			Clipboard: jsonCfg.Output.Clipboard,
		},
		Log: Log{
			Level: jsonCfg.Log.Level,
		},
	}

	return cfg, nil
}
