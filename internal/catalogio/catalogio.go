// Package catalogio loads external lesson packs from JSON files. A pack is
// validated against a JSON schema before decoding, so a malformed file fails
// with a pointed error instead of producing a half-empty catalog.
package catalogio

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/abhisek/codecompanion/internal/content"
)

const schemaURL = "schema://lessonpack.json"

var (
	compileOnce sync.Once
	compiled    *jsonschema.Schema
	compileErr  error
)

// pack is the top-level shape of a lesson-pack file.
type pack struct {
	Name    string           `json:"name"`
	Lessons []content.Lesson `json:"lessons"`
}

// LoadPath loads a lesson pack from path. A directory loads every .json file
// in it, in name order, concatenating their lessons.
func LoadPath(path string) ([]content.Lesson, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		return LoadDir(path)
	}
	return LoadFile(path)
}

// LoadFile reads, validates, and decodes a lesson pack from path.
func LoadFile(path string) ([]content.Lesson, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Load(f)
}

// LoadDir loads every .json pack file in dir, in name order.
func LoadDir(dir string) ([]content.Lesson, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		return nil, err
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no .json lesson packs in %s", dir)
	}
	sort.Strings(paths)

	var lessons []content.Lesson
	for _, p := range paths {
		ls, err := LoadFile(p)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", filepath.Base(p), err)
		}
		lessons = append(lessons, ls...)
	}
	return lessons, nil
}

// Load reads, validates, and decodes a lesson pack from r.
func Load(r io.Reader) ([]content.Lesson, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read lesson pack: %w", err)
	}

	// The jsonschema library validates a parsed JSON value, not raw bytes.
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}

	schema, err := packSchema()
	if err != nil {
		return nil, fmt.Errorf("compile lesson pack schema: %w", err)
	}
	if err := schema.Validate(parsed); err != nil {
		return nil, fmt.Errorf("lesson pack rejected: %w", err)
	}

	var p pack
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, fmt.Errorf("decode lesson pack: %w", err)
	}
	return p.Lessons, nil
}

// packSchema compiles the lesson-pack schema once and caches it.
func packSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		var def any
		if err := json.Unmarshal([]byte(packSchemaJSON), &def); err != nil {
			compileErr = fmt.Errorf("parse schema definition: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource(schemaURL, def); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiled, compileErr = c.Compile(schemaURL)
	})
	return compiled, compileErr
}
