// Package config describes what a generation run produces and where.
//
// A GenerationConfig is normally assembled from command-line flags. It can
// also be read from a YAML file so that build scripts do not have to repeat
// the same flags:
//
//	application_id: com.example.app
//	class_name: com.example.app.gen.Strings
//	src_dir: build/generated/source
//	strict: true
//	inputs:
//	  - src/main/res/values/strings.xml
//	  - src/main/res/values/brand.xml
//
// Values given on the command line override values from the file.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"resloader-generator/internal/common"
	"resloader-generator/internal/errors"
)

// SourceExt is the extension of the generated source file.
const SourceExt = ".java"

// GenerationConfig holds configuration for one generation run.
type GenerationConfig struct {
	// ApplicationID is copied verbatim into the generated class.
	ApplicationID string `yaml:"application_id"`
	// ClassName is the dotted name of the generated class (e.g., "com.example.Strings").
	ClassName string `yaml:"class_name"`
	// SrcDir is the source root under which the package directories are created.
	SrcDir string `yaml:"src_dir"`
	// Inputs are the resource files, in merge order.
	Inputs []string `yaml:"inputs"`
	// Strict makes any per-file extraction failure fatal.
	Strict bool `yaml:"strict"`
}

// LoadFile loads a GenerationConfig from a YAML file.
// Relative paths in the file are resolved against the file's directory.
func LoadFile(path string) (*GenerationConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Config(errors.Wrapf(err, "failed to read config file %s", path))
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, "config file %s", path)
	}

	base := filepath.Dir(path)
	if cfg.SrcDir != "" && !filepath.IsAbs(cfg.SrcDir) {
		cfg.SrcDir = filepath.Join(base, cfg.SrcDir)
	}

	for i, in := range cfg.Inputs {
		if !filepath.IsAbs(in) {
			cfg.Inputs[i] = filepath.Join(base, in)
		}
	}

	return cfg, nil
}

// Parse parses YAML data into a GenerationConfig.
func Parse(data []byte) (*GenerationConfig, error) {
	var cfg GenerationConfig

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.Config(errors.Wrap(err, "failed to parse config YAML"))
	}

	return &cfg, nil
}

// Override copies every non-empty value of other onto c.
// Inputs from other are appended after the ones already present.
func (c *GenerationConfig) Override(other GenerationConfig) {
	if other.ApplicationID != "" {
		c.ApplicationID = other.ApplicationID
	}

	if other.ClassName != "" {
		c.ClassName = other.ClassName
	}

	if other.SrcDir != "" {
		c.SrcDir = other.SrcDir
	}

	if other.Strict {
		c.Strict = true
	}

	c.Inputs = append(c.Inputs, other.Inputs...)
}

// Validate reports the first missing or malformed setting as a config error.
func (c *GenerationConfig) Validate() error {
	switch {
	case c.ApplicationID == "":
		return errors.Config(errors.WithHint(
			errors.New("application id is required"), "pass -a/--application-id"))
	case c.ClassName == "":
		return errors.Config(errors.WithHint(
			errors.New("class name is required"), "pass -n/--class-name"))
	case c.SrcDir == "":
		return errors.Config(errors.WithHint(
			errors.New("source directory is required"), "pass -s/--src-dir"))
	case common.IsEmpty(c.Inputs):
		return errors.Config(errors.WithHint(
			errors.New("at least one resource file is required"), "list resource files as arguments"))
	}

	_, _, err := c.SplitClassName()

	return err
}

// SplitClassName splits ClassName on its last dot into package and simple class name.
func (c *GenerationConfig) SplitClassName() (pkg, name string, err error) {
	pkg, name, ok := common.SplitLast(c.ClassName, ".")
	if !ok {
		return "", "", errors.Config(errors.WithHintf(
			errors.Newf("class name %q has no package", c.ClassName),
			"use a dotted name such as com.example.%s", c.ClassName))
	}

	if pkg == "" || name == "" || strings.Contains(pkg, "..") ||
		strings.HasPrefix(pkg, ".") || strings.HasSuffix(pkg, ".") {
		return "", "", errors.Config(errors.Newf("class name %q has an empty segment", c.ClassName))
	}

	return pkg, name, nil
}

// TargetPath returns the file the generated class is written to:
// SrcDir, one directory per package segment, then the class file.
func (c *GenerationConfig) TargetPath() (string, error) {
	pkg, name, err := c.SplitClassName()
	if err != nil {
		return "", err
	}

	parts := append([]string{c.SrcDir}, strings.Split(pkg, ".")...)
	parts = append(parts, name+SourceExt)

	return filepath.Join(parts...), nil
}
