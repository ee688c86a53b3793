// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package gen generates compile-time checked visitors for registries of
// types declared in a Go package.
//
// A registry is read from visitgen.yaml or from command-line flags,
// resolved against the package with go/packages, and rendered into a single
// Go file. For each registry the file declares:
//
//   - <Name>Types: the registry as a visit.List
//   - <Name>Visitor: an interface with one Visit<T>(*T) method per type
//   - <Name>Visitable: the interface of types accepting a <Name>Visitor
//   - Accept<Name> methods on every registered type
//   - <Name>Funcs: a struct of per-type funcs implementing <Name>Visitor
//   - <Name>Runtime: the bridge to a visit.Visitor of <Name>Types
//
// Because the output is plain Go, a missing type, an incomplete visitor or
// a handler of the wrong type fails the build of the package.
//
// Example visitgen.yaml:
//
//	package: ./shapes
//	output: visit_gen.go
//	registries:
//	  - name: Shape
//	    types: [Circle, Square, Triangle]
//	  - name: Solid
//	    types: [Cube]
//	    accept: AcceptSolid
package gen

import (
	"bytes"
	"go/token"
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"
)

const (
	// DefaultConfigFile is the config file looked up when none is given.
	DefaultConfigFile = "visitgen.yaml"
	// DefaultOutput is the generated file name.
	DefaultOutput = "visit_gen.go"
	// DefaultVisitPrefix prefixes the type name in visitor method names.
	DefaultVisitPrefix = "Visit"
)

var (
	// ErrInvalidConfig reports a config that fails validation.
	ErrInvalidConfig = errors.New("invalid visitgen config")
	// ErrUnknownType reports a registered name that is not a usable type
	// of the target package.
	ErrUnknownType = errors.New("unknown type")
	// ErrStale reports generated output that differs from a fresh render.
	ErrStale = errors.New("generated file is out of date")
)

// Config is the top-level visitgen.yaml document.
type Config struct {
	// Package is the package pattern to load, relative to the working
	// directory. Defaults to ".".
	Package string `yaml:"package,omitempty"`

	// Output is the generated file name inside the package directory.
	// Defaults to visit_gen.go.
	Output string `yaml:"output,omitempty"`

	// Registries lists the registries to generate, in output order.
	Registries []Registry `yaml:"registries"`
}

// Registry declares one closed set of visitable types.
type Registry struct {
	// Name prefixes every generated identifier (e.g. "Shape" → ShapeVisitor).
	Name string `yaml:"name"`

	// Types lists type names of the package in registry order.
	// Each must be a named, non-interface, non-generic type.
	Types []string `yaml:"types"`

	// Accept is the name of the generated accept method.
	// Defaults to "Accept" + Name.
	Accept string `yaml:"accept,omitempty"`

	// VisitPrefix prefixes type names to form visitor method names.
	// Defaults to "Visit".
	VisitPrefix string `yaml:"visit_prefix,omitempty"`
}

// AcceptMethod returns the accept method name.
func (r Registry) AcceptMethod() string {
	if r.Accept != "" {
		return r.Accept
	}
	return "Accept" + r.Name
}

// VisitMethod returns the visitor method name for typ.
func (r Registry) VisitMethod(typ string) string {
	prefix := r.VisitPrefix
	if prefix == "" {
		prefix = DefaultVisitPrefix
	}
	return prefix + typ
}

// LoadConfig reads and validates the config file at path.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read %s", path)
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		return nil, errors.Wrapf(err, "in %s", path)
	}
	return cfg, nil
}

// ParseConfig decodes and validates a YAML config. Unknown keys are errors.
func ParseConfig(data []byte) (*Config, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	var cfg Config
	if err := dec.Decode(&cfg); err != nil {
		return nil, errors.Wrapf(ErrInvalidConfig, "failed to parse config: %v", err)
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Inline returns the single-registry config used when visitgen runs from
// flags instead of a file.
func Inline(pkg, output, name string, types []string, accept string) (*Config, error) {
	cfg := &Config{
		Package:    pkg,
		Output:     output,
		Registries: []Registry{{Name: name, Types: types, Accept: accept}},
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Package == "" {
		c.Package = "."
	}
	if c.Output == "" {
		c.Output = DefaultOutput
	}
}

// Validate checks the whole config. Registry names and accept methods must
// be unique across registries, since accept methods share receiver types.
func (c *Config) Validate() error {
	if len(c.Registries) == 0 {
		return errors.WithHint(
			errors.Wrap(ErrInvalidConfig, "no registries"),
			"declare at least one entry under registries:",
		)
	}
	if filepath.Base(c.Output) != c.Output || filepath.Ext(c.Output) != ".go" {
		return errors.Wrapf(ErrInvalidConfig, "output %q must be a plain .go file name", c.Output)
	}
	names := make(map[string]bool, len(c.Registries))
	accepts := make(map[string]string, len(c.Registries))
	for i := range c.Registries {
		r := &c.Registries[i]
		if err := r.Validate(); err != nil {
			return err
		}
		if names[r.Name] {
			return errors.Wrapf(ErrInvalidConfig, "duplicate registry %q", r.Name)
		}
		names[r.Name] = true
		if other, ok := accepts[r.AcceptMethod()]; ok {
			return errors.Wrapf(ErrInvalidConfig, "registries %q and %q both use accept method %s",
				other, r.Name, r.AcceptMethod())
		}
		accepts[r.AcceptMethod()] = r.Name
	}
	return nil
}

// Validate checks one registry. Duplicate types are rejected: their
// generated visitor methods would collide.
func (r *Registry) Validate() error {
	if !token.IsIdentifier(r.Name) {
		return errors.Wrapf(ErrInvalidConfig, "registry name %q is not an identifier", r.Name)
	}
	if len(r.Types) == 0 {
		return errors.Wrapf(ErrInvalidConfig, "registry %q has no types", r.Name)
	}
	if r.Accept != "" && !token.IsIdentifier(r.Accept) {
		return errors.Wrapf(ErrInvalidConfig, "registry %q: accept %q is not an identifier", r.Name, r.Accept)
	}
	if r.VisitPrefix != "" && !token.IsIdentifier(r.VisitPrefix) {
		return errors.Wrapf(ErrInvalidConfig, "registry %q: visit_prefix %q is not an identifier", r.Name, r.VisitPrefix)
	}
	seen := make(map[string]bool, len(r.Types))
	for _, t := range r.Types {
		if !token.IsIdentifier(t) {
			return errors.WithHint(
				errors.Wrapf(ErrInvalidConfig, "registry %q: type %q is not an identifier", r.Name, t),
				"types must be declared in the target package; qualified names cannot receive methods",
			)
		}
		if seen[t] {
			return errors.Wrapf(ErrInvalidConfig, "registry %q lists %s twice", r.Name, t)
		}
		seen[t] = true
	}
	return nil
}
