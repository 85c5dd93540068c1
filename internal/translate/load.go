package translate

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

type tableFile struct {
	Name string            `yaml:"name"`
	Map  map[string]string `yaml:"map"`
}

// LoadTable reads a YAML table:
//
//	name: greek
//	map:
//	  a: α
//	  b: β
//
// Keys and values must be single characters.
func LoadTable(r io.Reader) (*Table, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc tableFile
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("translate: empty table file")
		}
		return nil, fmt.Errorf("translate: parse table: %w", err)
	}
	if len(doc.Map) == 0 {
		return nil, errors.New("translate: table has no mappings")
	}

	runes := make(map[rune]rune, len(doc.Map))
	for from, to := range doc.Map {
		k, err := singleRune(from)
		if err != nil {
			return nil, fmt.Errorf("translate: key %q: %w", from, err)
		}
		v, err := singleRune(to)
		if err != nil {
			return nil, fmt.Errorf("translate: value for %q: %w", from, err)
		}
		runes[k] = v
	}

	name := doc.Name
	if name == "" {
		name = "custom"
	}
	return &Table{name: name, runes: runes}, nil
}

// LoadTableFile reads a YAML table from path.
func LoadTableFile(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("translate: %w", err)
	}
	return LoadTable(bytes.NewReader(data))
}

func singleRune(s string) (rune, error) {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 || size != len(s) {
		return 0, errors.New("must be a single character")
	}
	if r == utf8.RuneError {
		return 0, errors.New("invalid UTF-8")
	}
	return r, nil
}
