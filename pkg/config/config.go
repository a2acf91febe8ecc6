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
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/walteh/sharedfile/pkg/host"
	"github.com/walteh/sharedfile/pkg/ribbon"
	"gitlab.com/tozd/go/errors"
)

// 🏷️ Defaults used when the manifest leaves a field out
const (
	DefaultTab        = "PI1"
	DefaultPanel      = "Instruments"
	DefaultButtonName = "SharedFile"
	DefaultLabel      = "Публикация в\nSHARED"
	DefaultToolTip    = "Публикует текущий файл в папку SHARED проекта, отправляя старый опубликованный файл в папку ARCHIVE"
	DefaultImage      = "icon_PI1_SharedFile_16x16.png"
	DefaultLargeImage = "icon_PI1_SharedFile_32x32.png"
	DefaultLogLevel   = "info"
)

// 🔌 Parser is the interface for config parsers
type Parser interface {
	// 📝 Parse parses the config from bytes
	Parse(ctx context.Context, data []byte) (*Config, error)

	// 🔍 CanParse checks if this parser can handle the given file
	CanParse(filename string) bool
}

var (
	// 🗺️ parsers is a list of available parsers
	parsers []Parser
)

// 📝 Register registers a parser
func Register(p Parser) {
	parsers = append(parsers, p)
}

// 🎯 GetParser returns a parser that can handle the given file
func GetParser(filename string) Parser {
	for _, p := range parsers {
		if p.CanParse(filename) {
			return p
		}
	}
	return nil
}

// 🔘 ButtonConfig describes the publish button
type ButtonConfig struct {
	Name       string `json:"name,omitempty" yaml:"name,omitempty" hcl:"name,optional"`
	Label      string `json:"label,omitempty" yaml:"label,omitempty" hcl:"label,optional"`
	ToolTip    string `json:"tooltip,omitempty" yaml:"tooltip,omitempty" hcl:"tooltip,optional"`
	Image      string `json:"image,omitempty" yaml:"image,omitempty" hcl:"image,optional"`
	LargeImage string `json:"large_image,omitempty" yaml:"large_image,omitempty" hcl:"large_image,optional"`
}

// 🎀 RibbonConfig describes where the button goes
type RibbonConfig struct {
	Tab    string        `json:"tab,omitempty" yaml:"tab,omitempty" hcl:"tab,optional"`
	Panel  string        `json:"panel,omitempty" yaml:"panel,omitempty" hcl:"panel,optional"`
	Button *ButtonConfig `json:"button,omitempty" yaml:"button,omitempty" hcl:"button,block"`
}

// 📝 LogConfig holds logging defaults
type LogConfig struct {
	Level string `json:"level,omitempty" yaml:"level,omitempty" hcl:"level,optional"`
}

// 📚 Config represents the complete manifest
type Config struct {
	Ribbon *RibbonConfig `json:"ribbon,omitempty" yaml:"ribbon,omitempty" hcl:"ribbon,block"`
	Log    *LogConfig    `json:"log,omitempty" yaml:"log,omitempty" hcl:"log,block"`
}

// Default returns a validated config with every default filled in
func Default() *Config {
	cfg := &Config{}
	if err := cfg.Validate(); err != nil {
		panic(err)
	}
	return cfg
}

// 🎯 Load loads the configuration from a file. A missing file yields Default().
func Load(ctx context.Context, path string) (*Config, error) {
	logger := zerolog.Ctx(ctx)
	logger.Debug().Str("path", path).Msg("loading configuration")

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		logger.Debug().Str("path", path).Msg("no configuration file, using defaults")
		return Default(), nil
	}
	if err != nil {
		return nil, errors.Errorf("reading config file: %w", err)
	}

	p := GetParser(path)
	if p == nil {
		return nil, errors.Errorf("no parser found for file: %s", path)
	}

	cfg, err := p.Parse(ctx, data)
	if err != nil {
		return nil, errors.Errorf("parsing config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// 🔍 Validate fills defaults and checks the log level
func (cfg *Config) Validate() error {
	if cfg.Ribbon == nil {
		cfg.Ribbon = &RibbonConfig{}
	}
	if cfg.Ribbon.Button == nil {
		cfg.Ribbon.Button = &ButtonConfig{}
	}
	if cfg.Log == nil {
		cfg.Log = &LogConfig{}
	}

	setDefault(&cfg.Ribbon.Tab, DefaultTab)
	setDefault(&cfg.Ribbon.Panel, DefaultPanel)
	setDefault(&cfg.Ribbon.Button.Name, DefaultButtonName)
	setDefault(&cfg.Ribbon.Button.Label, DefaultLabel)
	setDefault(&cfg.Ribbon.Button.ToolTip, DefaultToolTip)
	setDefault(&cfg.Ribbon.Button.Image, DefaultImage)
	setDefault(&cfg.Ribbon.Button.LargeImage, DefaultLargeImage)
	setDefault(&cfg.Log.Level, DefaultLogLevel)

	if _, err := zerolog.ParseLevel(cfg.Log.Level); err != nil {
		return errors.Errorf("log.level: %w", err)
	}

	return nil
}

func setDefault(field *string, value string) {
	if *field == "" {
		*field = value
	}
}

// LogLevel returns the configured zerolog level
func (cfg *Config) LogLevel() zerolog.Level {
	level, err := zerolog.ParseLevel(cfg.Log.Level)
	if err != nil {
		return zerolog.InfoLevel
	}
	return level
}

// 🎀 Manifest converts the config into a ribbon manifest bound to the publish command
func (cfg *Config) Manifest() ribbon.Manifest {
	b := cfg.Ribbon.Button
	return ribbon.Manifest{
		Tab:   cfg.Ribbon.Tab,
		Panel: cfg.Ribbon.Panel,
		Button: ribbon.PushButton{
			Name:       b.Name,
			Label:      b.Label,
			ToolTip:    b.ToolTip,
			CommandID:  host.CommandID,
			Image:      b.Image,
			LargeImage: b.LargeImage,
		},
	}
}

// 📝 String returns a string representation of the config
func (cfg *Config) String() string {
	return fmt.Sprintf("%s/%s/%s -> %s", cfg.Ribbon.Tab, cfg.Ribbon.Panel, cfg.Ribbon.Button.Name, host.CommandID)
}
