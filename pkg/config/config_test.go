// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walteh/sharedfile/pkg/host"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name        string
		filename    string
		config      string
		errContains string
		check       func(t *testing.T, cfg *Config)
	}{
		{
			name:     "hcl_full",
			filename: ".sharedfile.hcl",
			config: `
ribbon {
  tab   = "BIM"
  panel = "Publish"
  button {
    name    = "PublishShared"
    label   = "${defaults.label} (beta)"
    tooltip = "Publish to SHARED"
  }
}

log {
  level = "debug"
}
`,
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "BIM", cfg.Ribbon.Tab, "tab should match")
				assert.Equal(t, "Publish", cfg.Ribbon.Panel, "panel should match")
				assert.Equal(t, "PublishShared", cfg.Ribbon.Button.Name, "button name should match")
				assert.Equal(t, DefaultLabel+" (beta)", cfg.Ribbon.Button.Label, "label should interpolate defaults")
				assert.Equal(t, "Publish to SHARED", cfg.Ribbon.Button.ToolTip, "tooltip should match")
				assert.Equal(t, DefaultImage, cfg.Ribbon.Button.Image, "image should have default value")
				assert.Equal(t, zerolog.DebugLevel, cfg.LogLevel(), "log level should match")
			},
		},
		{
			name:     "hcl_empty",
			filename: "manifest.hcl",
			config:   ``,
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, Default(), cfg, "empty config should equal defaults")
			},
		},
		{
			name:     "yaml_partial",
			filename: "manifest.yaml",
			config: `
ribbon:
  panel: Tools
  button:
    large_image: big.png
`,
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, DefaultTab, cfg.Ribbon.Tab, "tab should have default value")
				assert.Equal(t, "Tools", cfg.Ribbon.Panel, "panel should match")
				assert.Equal(t, "big.png", cfg.Ribbon.Button.LargeImage, "large image should match")
				assert.Equal(t, zerolog.InfoLevel, cfg.LogLevel(), "log level should have default value")
			},
		},
		{
			name:     "yaml_empty",
			filename: "manifest.yml",
			config:   "",
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, Default(), cfg)
			},
		},
		{
			name:     "json",
			filename: "manifest.json",
			config:   `{"ribbon": {"tab": "PI2"}, "log": {"level": "warn"}}`,
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "PI2", cfg.Ribbon.Tab, "tab should match")
				assert.Equal(t, DefaultPanel, cfg.Ribbon.Panel, "panel should have default value")
				assert.Equal(t, zerolog.WarnLevel, cfg.LogLevel(), "log level should match")
			},
		},
		{
			name:        "yaml_unknown_field",
			filename:    "manifest.yaml",
			config:      "ribbon:\n  shared_folder: 03_PUBLISHED\n",
			errContains: "parsing YAML",
		},
		{
			name:        "json_unknown_field",
			filename:    "manifest.json",
			config:      `{"tokens": {"work": "_W1"}}`,
			errContains: "parsing JSON",
		},
		{
			name:        "hcl_unknown_block",
			filename:    "manifest.hcl",
			config:      "tokens {\n  work = \"_W1\"\n}\n",
			errContains: "decoding HCL",
		},
		{
			name:        "hcl_syntax_error",
			filename:    "manifest.hcl",
			config:      "ribbon {",
			errContains: "parsing HCL",
		},
		{
			name:        "bad_log_level",
			filename:    "manifest.yaml",
			config:      "log:\n  level: loud\n",
			errContains: "validating config: log.level",
		},
		{
			name:        "unsupported_extension",
			filename:    "manifest.toml",
			config:      "tab = \"PI1\"",
			errContains: "no parser found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), tt.filename)
			require.NoError(t, os.WriteFile(path, []byte(tt.config), 0644), "writing config file")

			cfg, err := Load(context.Background(), path)
			if tt.errContains != "" {
				require.Error(t, err, "Load should return error")
				assert.Contains(t, err.Error(), tt.errContains, "error should contain expected message")
				return
			}

			require.NoError(t, err, "Load should succeed")
			if tt.check != nil {
				tt.check(t, cfg)
			}
		})
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(context.Background(), filepath.Join(t.TempDir(), ".sharedfile.hcl"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestManifest(t *testing.T) {
	m := Default().Manifest()
	assert.Equal(t, DefaultTab, m.Tab)
	assert.Equal(t, DefaultPanel, m.Panel)
	assert.Equal(t, host.CommandID, m.Button.CommandID, "button should be bound to the publish command")
	assert.Equal(t, DefaultLabel, m.Button.Label)
	assert.Equal(t, DefaultToolTip, m.Button.ToolTip)
	assert.Equal(t, DefaultImage, m.Button.Image)
	assert.Equal(t, DefaultLargeImage, m.Button.LargeImage)
	assert.Equal(t, "PI1/Instruments/SharedFile -> SharedFile.Command", Default().String())
}
