package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/zoobzio/roster"
	"gopkg.in/yaml.v3"
)

// batchFile is the on-disk layout of a batch:
//
//	users:
//	  - {id: 1, name: Alice, age: 25}
//	  - {id: 2, name: Bob, age: thirty}
type batchFile struct {
	Users []roster.RawRecord `yaml:"users" toml:"users"`
}

// loadBatch reads the records of a YAML or TOML batch file, picking the
// decoder from the file extension.
func loadBatch(path string) ([]roster.RawRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read batch: %w", err)
	}
	return decodeBatch(filepath.Ext(path), data)
}

func decodeBatch(ext string, data []byte) ([]roster.RawRecord, error) {
	var file batchFile
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&file); err != nil {
			return nil, fmt.Errorf("decode yaml batch: %w", err)
		}
	case ".toml":
		if _, err := toml.Decode(string(data), &file); err != nil {
			return nil, fmt.Errorf("decode toml batch: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported batch format %q", ext)
	}
	return file.Users, nil
}
