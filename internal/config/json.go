package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// StructuredJSONConfig mirrors [StructuredConfig] with JSON field names.
type StructuredJSONConfig struct {
	App struct {
		KDF            string `json:"kdf"`
		Clipboard      bool   `json:"clipboard"`
		LogFile        string `json:"log_file"`
		PasswordLength int    `json:"password_length"`
	} `json:"app,omitempty"`

	Storage struct {
		Files struct {
			Dir         string `json:"dir"`
			Fingerprint string `json:"fingerprint"`
			Vault       string `json:"vault"`
		} `json:"files,omitempty"`
	} `json:"storage,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			KDF:            jsonCfg.App.KDF,
			Clipboard:      jsonCfg.App.Clipboard,
			LogFile:        jsonCfg.App.LogFile,
			PasswordLength: jsonCfg.App.PasswordLength,
		},
		Storage: Storage{
			Files: Files{
				Dir:         jsonCfg.Storage.Files.Dir,
				Fingerprint: jsonCfg.Storage.Files.Fingerprint,
				Vault:       jsonCfg.Storage.Files.Vault,
			},
		},
		JSONFilePath: "",
	}

	return cfg, nil
}
