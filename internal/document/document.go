// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package document reads and writes the plain data trees the merge engine
// operates on, in JSON and TOML, together with per-path strategy tables.
package document

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// Format of an on-disk document.
type Format string

const (
	FormatJSON Format = "json"
	FormatTOML Format = "toml"
)

// ParseFormat maps a user-supplied format name onto a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "json":
		return FormatJSON, nil
	case "toml":
		return FormatTOML, nil
	default:
		return "", fmt.Errorf("unknown document format %q", s)
	}
}

// DetectFormat infers a document format from the file extension of path.
// Unrecognized extensions fall back to JSON.
func DetectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML
	default:
		return FormatJSON
	}
}

// Load reads a document from path, decoding by the file's extension.
func Load(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading document file: %w", err)
	}

	return Decode(data, DetectFormat(path))
}

// Decode parses raw document bytes in the given format.
func Decode(data []byte, format Format) (map[string]any, error) {
	doc := map[string]any{}

	switch format {
	case FormatTOML:
		if err := toml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("error decoding toml document: %w", err)
		}
	default:
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("error decoding json document: %w", err)
		}
	}

	return doc, nil
}

// Save writes doc to w in the given format. Indent sets the number of
// spaces per nesting level.
func Save(w io.Writer, doc map[string]any, format Format, indent int) error {
	switch format {
	case FormatTOML:
		enc := toml.NewEncoder(w)
		enc.SetIndentSymbol(strings.Repeat(" ", indent))
		enc.SetIndentTables(true)
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("error encoding toml document: %w", err)
		}
	default:
		enc := json.NewEncoder(w)
		enc.SetIndent("", strings.Repeat(" ", indent))
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("error encoding json document: %w", err)
		}
	}

	return nil
}

// SaveFile writes doc to a file at path, creating or truncating it.
func SaveFile(path string, doc map[string]any, format Format, indent int) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error creating output file: %w", err)
	}

	if err := Save(f, doc, format, indent); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}
