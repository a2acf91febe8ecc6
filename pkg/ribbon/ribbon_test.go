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

package ribbon

import (
	"context"
	"testing"

	"github.com/pterm/pterm"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.com/tozd/go/errors"
)

const publishCommand = "SharedFile.Command"

func testManifest(name string) Manifest {
	return Manifest{
		Tab:   "PI1",
		Panel: "Instruments",
		Button: PushButton{
			Name:       name,
			Label:      "Публикация в\nSHARED",
			ToolTip:    "publish",
			CommandID:  publishCommand,
			Image:      "icon_16.png",
			LargeImage: "icon_32.png",
		},
	}
}

func testContext(t *testing.T) context.Context {
	logger := zerolog.New(zerolog.NewTestWriter(t)).Level(zerolog.DebugLevel)
	return logger.WithContext(context.Background())
}

// 🧪 brokenPanels refuses new panels and cannot list existing ones either
type brokenPanels struct {
	*Memory
}

func (b *brokenPanels) CreateRibbonPanel(tab, name string) (*Panel, error) {
	return nil, errors.New("panel limit reached")
}

func (b *brokenPanels) GetRibbonPanels(tab string) ([]*Panel, error) {
	return nil, nil
}

func TestRegister(t *testing.T) {
	ctx := testContext(t)
	app := NewMemory()

	button, err := Register(ctx, app, testManifest("SharedFile"))
	require.NoError(t, err)
	assert.Equal(t, publishCommand, button.CommandID, "button should be wired to the publish command")
	assert.Equal(t, "icon_16.png", button.Image)
	assert.Equal(t, "icon_32.png", button.LargeImage)

	panels, err := app.GetRibbonPanels("PI1")
	require.NoError(t, err)
	require.Len(t, panels, 1)
	assert.Equal(t, "Instruments", panels[0].Name)
	require.Len(t, panels[0].Buttons, 1)
	assert.Equal(t, "SharedFile", panels[0].Buttons[0].Name)
}

func TestRegisterReusesExistingTabAndPanel(t *testing.T) {
	ctx := testContext(t)
	app := NewMemory()

	// another add-in got there first
	require.NoError(t, app.CreateRibbonTab("PI1"))
	_, err := app.CreateRibbonPanel("PI1", "Instruments")
	require.NoError(t, err)

	_, err = Register(ctx, app, testManifest("SharedFile"))
	require.NoError(t, err)
	_, err = Register(ctx, app, testManifest("SharedFileCopy"))
	require.NoError(t, err)

	panels, err := app.GetRibbonPanels("PI1")
	require.NoError(t, err)
	require.Len(t, panels, 1, "panel should be reused, not duplicated")
	assert.Len(t, panels[0].Buttons, 2)
}

func TestRegisterFailures(t *testing.T) {
	ctx := testContext(t)

	t.Run("panel_not_found", func(t *testing.T) {
		_, err := Register(ctx, &brokenPanels{Memory: NewMemory()}, testManifest("SharedFile"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), `panel "Instruments" not found in tab "PI1"`)
	})

	t.Run("duplicate_button", func(t *testing.T) {
		app := NewMemory()
		_, err := Register(ctx, app, testManifest("SharedFile"))
		require.NoError(t, err)
		_, err = Register(ctx, app, testManifest("SharedFile"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "adding button SharedFile")
	})

	t.Run("button_without_command", func(t *testing.T) {
		m := testManifest("SharedFile")
		m.Button.CommandID = ""
		_, err := Register(ctx, NewMemory(), m)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "button has no command")
	})
}

func TestMemoryDuplicates(t *testing.T) {
	app := NewMemory()
	require.NoError(t, app.CreateRibbonTab("PI1"))
	assert.True(t, errors.Is(app.CreateRibbonTab("PI1"), ErrTabExists))

	_, err := app.CreateRibbonPanel("missing", "Instruments")
	assert.True(t, errors.Is(err, ErrNoTab))

	_, err = app.CreateRibbonPanel("PI1", "Instruments")
	require.NoError(t, err)
	_, err = app.CreateRibbonPanel("PI1", "Instruments")
	assert.True(t, errors.Is(err, ErrPanelExists))

	_, err = app.GetRibbonPanels("missing")
	assert.True(t, errors.Is(err, ErrNoTab))
}

func TestRender(t *testing.T) {
	pterm.DisableStyling()
	defer pterm.EnableStyling()

	app := NewMemory()
	_, err := Register(testContext(t), app, testManifest("SharedFile"))
	require.NoError(t, err)

	out, err := app.Render()
	require.NoError(t, err)
	assert.Contains(t, out, "PI1")
	assert.Contains(t, out, "Instruments")
	assert.Contains(t, out, "Публикация в SHARED → "+publishCommand)
}

func TestShutdown(t *testing.T) {
	tests := []struct {
		name    string
		app     Application
		wantErr bool
	}{
		{name: "registered_ribbon", app: NewMemory()},
		{name: "no_application", app: nil, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Shutdown(testContext(t), tt.app)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}
