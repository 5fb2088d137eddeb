// Package config loads the optional PakSeek HCL configuration file.
//
// Every block and attribute is optional; command line flags override
// whatever the file provides. Attribute expressions may reference process
// environment variables through the env object, e.g.
//
//	scan {
//	  path = env.PAKSEEK_SCAN_PATH
//	}
package config

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"

	"github.com/AreyMadhav/PakSeek/internal/ctxlog"
)

// File is the decoded configuration file.
type File struct {
	Scan   *ScanBlock   `hcl:"scan,block"`
	Server *ServerBlock `hcl:"server,block"`
	Log    *LogBlock    `hcl:"log,block"`
	Export *ExportBlock `hcl:"export,block"`
}

// ScanBlock configures archive discovery.
type ScanBlock struct {
	Path    string `hcl:"path,optional"`
	Workers int    `hcl:"workers,optional"`
}

// ServerBlock configures the HTTP API.
type ServerBlock struct {
	Enabled bool `hcl:"enabled,optional"`
	Port    int  `hcl:"port,optional"`
}

// LogBlock configures logging output.
type LogBlock struct {
	Level  string `hcl:"level,optional"`
	Format string `hcl:"format,optional"`
}

// ExportBlock configures the dependency map export.
type ExportBlock struct {
	Format string `hcl:"format,optional"`
}

// Load parses and decodes the configuration file at path. A missing file
// is not an error; it decodes as an empty File so callers can layer
// defaults and flags on top uniformly.
func Load(ctx context.Context, path string) (*File, error) {
	logger := ctxlog.FromContext(ctx)

	if path == "" {
		return &File{}, nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		logger.Debug("No configuration file present", "path", path)
		return &File{}, nil
	}

	logger.Debug("Loading configuration file", "path", path)
	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, diags)
	}

	var file File
	diags = gohcl.DecodeBody(hclFile.Body, envEvalContext(), &file)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode config file %s: %w", path, diags)
	}
	return &file, nil
}

// envEvalContext exposes the process environment to attribute expressions
// as the env object.
func envEvalContext() *hcl.EvalContext {
	env := make(map[string]cty.Value)
	for _, kv := range os.Environ() {
		key, value, ok := strings.Cut(kv, "=")
		if !ok || key == "" {
			continue
		}
		env[key] = cty.StringVal(value)
	}
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"env": cty.ObjectVal(env),
		},
	}
}
