// File: serialize.go
// Title: Object Serialization Helpers
// Description: Implements structured-data codecs around arbitrary values:
//              JSON, XML, gob binary, YAML, and TOML encoding and decoding
//              with uniform error classification.
// Author: msto63
// Version: v0.1.0
// Created: 2025-03-07
// Modified: 2025-03-07
//
// Change History:
// - 2025-03-07 v0.1.0: Initial implementation with five codecs

package objectx

import (
	"bytes"
	"encoding/gob"
	"encoding/json"
	"encoding/xml"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/msto63/gox/core/errx"
)

// serializationError wraps a codec failure with the standard classification
func serializationError(err error, codec, direction string) *errx.Error {
	return errx.Wrapf(err, "%s %s failed", codec, direction).
		WithCode(errx.CodeSerialization).
		WithDetail("codec", codec)
}

// ===============================
// JSON
// ===============================

// ToJSON encodes a value as compact JSON
func ToJSON(value interface{}) ([]byte, error) {
	data, err := json.Marshal(value)
	if err != nil {
		return nil, serializationError(err, "json", "encode")
	}
	return data, nil
}

// ToJSONIndent encodes a value as indented JSON for human consumption
func ToJSONIndent(value interface{}) ([]byte, error) {
	data, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return nil, serializationError(err, "json", "encode")
	}
	return data, nil
}

// FromJSON decodes JSON data into the target, which must be a pointer
func FromJSON(data []byte, target interface{}) error {
	if err := json.Unmarshal(data, target); err != nil {
		return serializationError(err, "json", "decode")
	}
	return nil
}

// ===============================
// XML
// ===============================

// ToXML encodes a value as XML
func ToXML(value interface{}) ([]byte, error) {
	data, err := xml.Marshal(value)
	if err != nil {
		return nil, serializationError(err, "xml", "encode")
	}
	return data, nil
}

// FromXML decodes XML data into the target, which must be a pointer
func FromXML(data []byte, target interface{}) error {
	if err := xml.Unmarshal(data, target); err != nil {
		return serializationError(err, "xml", "decode")
	}
	return nil
}

// ===============================
// Binary (gob)
// ===============================

// ToBinary encodes a value in the gob binary format
func ToBinary(value interface{}) ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(value); err != nil {
		return nil, serializationError(err, "gob", "encode")
	}
	return buf.Bytes(), nil
}

// FromBinary decodes gob data into the target, which must be a pointer
func FromBinary(data []byte, target interface{}) error {
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(target); err != nil {
		return serializationError(err, "gob", "decode")
	}
	return nil
}

// ===============================
// YAML
// ===============================

// ToYAML encodes a value as YAML
func ToYAML(value interface{}) ([]byte, error) {
	data, err := yaml.Marshal(value)
	if err != nil {
		return nil, serializationError(err, "yaml", "encode")
	}
	return data, nil
}

// FromYAML decodes YAML data into the target, which must be a pointer
func FromYAML(data []byte, target interface{}) error {
	if err := yaml.Unmarshal(data, target); err != nil {
		return serializationError(err, "yaml", "decode")
	}
	return nil
}

// ===============================
// TOML
// ===============================

// ToTOML encodes a value as TOML
func ToTOML(value interface{}) ([]byte, error) {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(value); err != nil {
		return nil, serializationError(err, "toml", "encode")
	}
	return buf.Bytes(), nil
}

// FromTOML decodes TOML data into the target, which must be a pointer
func FromTOML(data []byte, target interface{}) error {
	if err := toml.Unmarshal(data, target); err != nil {
		return serializationError(err, "toml", "decode")
	}
	return nil
}
