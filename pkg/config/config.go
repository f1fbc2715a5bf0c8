// Package config loads the generator configuration from YAML.
//
// A minimal configuration names the registry and the API:
//
//	registry: gl.xml
//	api: gl
//	version: "4.6"
//	profile: core
//	output: gl/gl.go
//
// Optional words, types and names maps extend the translation tables.
package config

import (
	"errors"
	"fmt"
	"go/token"
	"os"
	"sort"

	"github.com/hashicorp/go-multierror"
	"gopkg.in/yaml.v3"

	"github.com/isncg/glad-go/pkg/translate"
	"github.com/isncg/glad-go/pkg/version"
)

// ErrInvalid is wrapped by every validation problem.
var ErrInvalid = errors.New("invalid configuration")

// Profiles lists the accepted profile names. The empty profile keeps every
// command that was ever required.
var Profiles = []string{"", "core", "compatibility", "common", "common-lite"}

// Config is the generator configuration.
type Config struct {
	// Registry is the path of the registry XML file.
	Registry string `yaml:"registry"`

	API     string `yaml:"api"`
	Version string `yaml:"version"`
	Profile string `yaml:"profile"`

	// Package is the package name of the generated file.
	Package string `yaml:"package"`

	// Output is the path of the generated file.
	Output string `yaml:"output"`

	// Runtime overrides the import path of the loader support package.
	Runtime string `yaml:"runtime"`

	// Diagnostics is an optional path for the CBOR diagnostics log.
	Diagnostics string `yaml:"diagnostics"`

	Words map[string]string `yaml:"words"`
	Types map[string]string `yaml:"types"`
	Names map[string]string `yaml:"names"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Registry: "gl.xml",
		API:      "gl",
		Package:  "gl",
		Output:   "gl.go",
	}
}

// Parse parses a configuration from YAML bytes on top of Default.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, nil
}

// Load loads and parses a configuration file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return Parse(data)
}

// Validate reports every problem of the configuration at once. Each
// problem wraps ErrInvalid.
func (c *Config) Validate() error {
	var result *multierror.Error
	add := func(format string, args ...any) {
		result = multierror.Append(result, fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...))
	}

	if c.Registry == "" {
		add("registry path is required")
	}
	if c.API == "" {
		add("api is required")
	}
	if _, err := c.APIVersion(); err != nil {
		result = multierror.Append(result, err)
	}
	if !validProfile(c.Profile) {
		add("unknown profile %q", c.Profile)
	}
	if !token.IsIdentifier(c.Package) {
		add("package %q is not a valid Go package name", c.Package)
	}
	if c.Output == "" {
		add("output path is required")
	}

	for _, k := range sortedKeys(c.Words) {
		if !translate.IsIdentifier(c.Words[k]) {
			add("words[%s]: %q is not an identifier fragment", k, c.Words[k])
		}
	}
	for _, k := range sortedKeys(c.Types) {
		if c.Types[k] == "" {
			add("types[%s]: empty Go type", k)
		}
	}
	for _, k := range sortedKeys(c.Names) {
		if !token.IsIdentifier(c.Names[k]) {
			add("names[%s]: %q is not a valid Go identifier", k, c.Names[k])
		}
	}

	return result.ErrorOrNil()
}

// APIVersion returns the parsed version, the zero version when none is set.
func (c *Config) APIVersion() (version.APIVersion, error) {
	v, err := version.ParseOptional(c.Version)
	if err != nil {
		return version.APIVersion{}, fmt.Errorf("%w: version: %v", ErrInvalid, err)
	}
	return v, nil
}

// Overrides returns the translation table overrides of the configuration.
func (c *Config) Overrides() translate.Overrides {
	return translate.Overrides{Words: c.Words, Types: c.Types, Names: c.Names}
}

func validProfile(p string) bool {
	for _, v := range Profiles {
		if p == v {
			return true
		}
	}
	return false
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
