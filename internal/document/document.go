// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package document parses a Jeti model file into an ordered tree of
// records and sequences and provides lenient typed access to it.
package document

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrNotAModel is returned when the input is valid JSON but lacks a
// top-level record every model file carries.
var ErrNotAModel = errors.New("not a valid model")

// Top-level records the resolution pipeline cannot work without.
var requiredKeys = []string{
	"Global",
	"Type-Specific",
	"Common",
	"Functions",
	"Servos",
	"Flight-Modes",
	"Timers",
}

// ParseError describes input that is not well-formed JSON.
type ParseError struct {
	Offset int64 // Byte offset where decoding stopped
	Err    error // Underlying decoder error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid JSON at offset %d: %v", e.Offset, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Document is one parsed model file.
type Document struct {
	Root Node   // Top-level record
	Raw  string // Input text with invalid UTF-8 replaced
}

// Parse decodes data and checks the required top-level records. Invalid
// UTF-8 sequences are replaced before decoding, as some sensors store
// Latin-1 unit strings.
func Parse(data []byte) (*Document, error) {
	raw := strings.ToValidUTF8(string(data), "�")

	dec := json.NewDecoder(strings.NewReader(raw))
	dec.UseNumber()

	v, err := decodeValue(dec)
	if err != nil {
		return nil, &ParseError{Offset: dec.InputOffset(), Err: err}
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, &ParseError{Offset: dec.InputOffset(), Err: errors.New("trailing data after top-level value")}
	}

	root := Node{v: v}
	if root.Kind() != KindObject {
		return nil, fmt.Errorf("%w: top level is not a record", ErrNotAModel)
	}
	for _, key := range requiredKeys {
		if !root.Has(key) {
			return nil, fmt.Errorf("%w: missing %q", ErrNotAModel, key)
		}
	}

	return &Document{Root: root, Raw: raw}, nil
}

// decodeValue reads one JSON value from dec, keeping object key order.
func decodeValue(dec *json.Decoder) (any, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}

	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			obj := &object{vals: make(map[string]any)}
			for dec.More() {
				keyTok, err := dec.Token()
				if err != nil {
					return nil, err
				}
				key, ok := keyTok.(string)
				if !ok {
					return nil, fmt.Errorf("object key is %T, not string", keyTok)
				}
				val, err := decodeValue(dec)
				if err != nil {
					return nil, err
				}
				if _, dup := obj.vals[key]; !dup {
					obj.keys = append(obj.keys, key)
				}
				obj.vals[key] = val
			}
			if _, err := dec.Token(); err != nil {
				return nil, err
			}
			return obj, nil
		case '[':
			arr := []any{}
			for dec.More() {
				val, err := decodeValue(dec)
				if err != nil {
					return nil, err
				}
				arr = append(arr, val)
			}
			if _, err := dec.Token(); err != nil {
				return nil, err
			}
			return arr, nil
		default:
			return nil, fmt.Errorf("unexpected delimiter %q", t)
		}
	default:
		return tok, nil
	}
}

// object is a JSON record that remembers the order of its keys.
type object struct {
	keys []string
	vals map[string]any
}

// MarshalJSON lets a Node be re-encoded with its original key order.
func (o *object) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range o.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		vb, err := json.Marshal(o.vals[k])
		if err != nil {
			return nil, err
		}
		buf.Write(kb)
		buf.WriteByte(':')
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
