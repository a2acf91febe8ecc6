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

// Package ribbon registers the publish button on a host's command ribbon.
package ribbon

import (
	"context"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// 🔘 PushButton is a ribbon button bound to a command
type PushButton struct {
	Name       string
	Label      string
	ToolTip    string
	CommandID  string
	Image      string // 16x16 icon
	LargeImage string // 32x32 icon
}

// Panel is a named group of buttons inside a tab
type Panel struct {
	Tab     string
	Name    string
	Buttons []*PushButton
}

// 🖥️ Application is the part of the host UI the add-in touches on startup
type Application interface {
	CreateRibbonTab(name string) error
	CreateRibbonPanel(tab, name string) (*Panel, error)
	GetRibbonPanels(tab string) ([]*Panel, error)
	AddPushButton(panel *Panel, button PushButton) (*PushButton, error)
}

// 📐 Manifest describes where the button goes and how it looks
type Manifest struct {
	Tab    string
	Panel  string
	Button PushButton
}

// 🚀 Register creates the tab and panel when missing and adds the button.
// A tab that already exists is fine. A panel that cannot be created is looked
// up among the tab's existing panels.
func Register(ctx context.Context, app Application, m Manifest) (*PushButton, error) {
	logger := zerolog.Ctx(ctx)

	if err := app.CreateRibbonTab(m.Tab); err != nil {
		logger.Debug().Err(err).Str("tab", m.Tab).Msg("ribbon tab not created, assuming it exists")
	}

	panel, err := app.CreateRibbonPanel(m.Tab, m.Panel)
	if err != nil {
		logger.Debug().Err(err).Str("panel", m.Panel).Msg("ribbon panel not created, looking up existing")
		panel, err = findPanel(app, m.Tab, m.Panel)
		if err != nil {
			return nil, err
		}
	}

	button, err := app.AddPushButton(panel, m.Button)
	if err != nil {
		return nil, errors.Errorf("adding button %s: %w", m.Button.Name, err)
	}

	logger.Debug().
		Str("tab", m.Tab).
		Str("panel", panel.Name).
		Str("command", button.CommandID).
		Msg("registered ribbon button")
	return button, nil
}

func findPanel(app Application, tab, name string) (*Panel, error) {
	panels, err := app.GetRibbonPanels(tab)
	if err != nil {
		return nil, errors.Errorf("listing panels of %s: %w", tab, err)
	}
	for _, p := range panels {
		if p.Name == name {
			return p, nil
		}
	}
	return nil, errors.Errorf("panel %q not found in tab %q", name, tab)
}

// Shutdown runs at host shutdown. It fails only without an application.
func Shutdown(ctx context.Context, app Application) error {
	if app == nil {
		return errors.New("no ribbon application")
	}
	zerolog.Ctx(ctx).Debug().Type("application", app).Msg("ribbon shut down")
	return nil
}
