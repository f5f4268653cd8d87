// Copyright (c) 2026 Phil Davis <phildavis17@gmail.com>.
// SPDX-License-Identifier: MIT

// Package config reads optional settings from a weatherpls.yaml file found
// in a standard location. Every accessor takes a default, so a missing file
// or key is never an error for callers that supply one.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/apex/log"
	"gopkg.in/yaml.v3"
)

type Type struct {
	Source string
	Data   map[string]interface{}
}

var Config Type

// Load reads the config file. With no argument it searches the standard
// locations; tests pass an explicit path.
func Load(cfgFilePath ...string) (Type, error) {
	path := ""
	if len(cfgFilePath) > 0 {
		path = cfgFilePath[0]
	} else {
		p, err := findConfigPath()
		if err != nil {
			return Type{}, err
		}
		path = p
	}

	bytes, err := os.ReadFile(path)
	if err != nil {
		return Type{}, err
	}

	var data map[string]interface{}
	if err := yaml.Unmarshal(bytes, &data); err != nil {
		return Type{}, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	Config = Type{
		Source: path,
		Data:   data}

	return Config, nil
}

// get traverses the map using a dotted key path
func (cfg *Type) get(kspec string) (any, error) {
	if len(cfg.Data) == 0 {
		_, _ = Load()
	}

	keys := strings.Split(kspec, ".")
	var current interface{} = Config.Data

	for _, key := range keys {
		m, ok := current.(map[string]interface{})
		if !ok {
			return nil, fmt.Errorf("no value at path '%s'", kspec)
		}
		current, ok = m[key]
		if !ok {
			return nil, fmt.Errorf("no value at path '%s'", kspec)
		}
	}

	return current, nil
}

func GetString(key string, defaultValue ...string) (string, error) {
	val, err := Config.get(key)
	if err != nil {
		if len(defaultValue) == 1 {
			return defaultValue[0], nil
		}
		return "", err
	}

	s, ok := val.(string)
	if !ok {
		return "", errors.New("value is not a string")
	}

	return s, nil
}

func GetInt(key string, defaultValue ...int) (int, error) {
	val, err := Config.get(key)
	if err != nil {
		if len(defaultValue) == 1 {
			return defaultValue[0], nil
		}
		return 0, err
	}

	// YAML numbers may be unmarshaled as int/float64 depending on content.
	switch v := val.(type) {
	case int:
		return v, nil
	case int64:
		return int(v), nil
	case float64:
		return int(v), nil
	default:
		return 0, errors.New("value is not an int")
	}
}

func GetFloat(key string, defaultValue ...float64) (float64, error) {
	val, err := Config.get(key)
	if err != nil {
		if len(defaultValue) == 1 {
			return defaultValue[0], nil
		}
		return 0, err
	}

	switch v := val.(type) {
	case float64:
		return v, nil
	case int:
		return float64(v), nil
	case int64:
		return float64(v), nil
	default:
		return 0, errors.New("value is not a number")
	}
}

func findConfigPath() (string, error) {

	if path := os.Getenv("WEATHERPLS_CFG"); path != "" {
		fileInfo, err := os.Stat(path)
		if err != nil {
			return "", fmt.Errorf("config file not found: %s", path)
		}
		if fileInfo.IsDir() {
			return "", fmt.Errorf("WEATHERPLS_CFG points to a directory: %s", path)
		}
		return path, nil
	}

	var candidates []string = []string{
		os.Getenv("XDG_CONFIG_HOME"),
		os.Getenv("APPDATA"),
		os.Getenv("HOME"),
	}

	for _, c := range candidates {
		if c == "" {
			continue
		}
		file := filepath.Join(c, "weatherpls.yaml")
		if fileInfo, err := os.Stat(file); err == nil {
			if !fileInfo.IsDir() {
				log.Debugf("using config file: %s", file)
				return file, nil
			}
		}
	}
	return "", fmt.Errorf("no config file found in standard locations")
}
