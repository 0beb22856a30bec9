package config

import (
	"bytes"
	"encoding/json"
	"io"
	"path/filepath"
	"strings"

	"github.com/a8m/envsubst"
	"github.com/pkg/errors"
	"github.com/yosuke-furukawa/json5"
	"gopkg.in/yaml.v3"

	"go.viam.com/vehiclekin/logging"
)

// Read reads a config from the given file, substituting environment variables first.
// Files ending in .yaml or .yml are read as YAML, anything else as JSON.
func Read(filePath string, logger logging.Logger) (*Config, error) {
	buf, err := envsubst.ReadFile(filePath)
	if err != nil {
		return nil, err
	}

	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".yaml", ".yml":
		if buf, err = yamlToJSON(buf); err != nil {
			return nil, err
		}
	}

	return FromReader(filePath, bytes.NewReader(buf), logger)
}

// FromReader reads a config from the given reader and specifies
// where, if applicable, the file the reader originated from.
// The config is JSON5, so it may carry comments.
func FromReader(originalPath string, r io.Reader, logger logging.Logger) (*Config, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	var doc map[string]interface{}
	if err := json5.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrapf(err, "failed to decode Config from json")
	}
	normalized, err := json.Marshal(doc)
	if err != nil {
		return nil, err
	}

	cfg := Config{
		ConfigFilePath: originalPath,
	}
	if err := json.Unmarshal(normalized, &cfg); err != nil {
		return nil, errors.Wrapf(err, "failed to decode Config from json")
	}
	if err := cfg.Validate("config"); err != nil {
		return nil, err
	}
	logger.Debugw("read config", "path", originalPath, "description", cfg.DescriptionPath(), "base_link", cfg.BaseLink)
	return &cfg, nil
}

// yamlToJSON re-encodes a YAML document as JSON so both formats share the json tags of Config.
func yamlToJSON(buf []byte) ([]byte, error) {
	var doc map[string]interface{}
	if err := yaml.Unmarshal(buf, &doc); err != nil {
		return nil, errors.Wrap(err, "failed to decode Config from yaml")
	}
	if doc == nil {
		doc = map[string]interface{}{}
	}
	return json.Marshal(doc)
}
