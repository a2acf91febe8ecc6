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
	"strings"
	"sync"

	"github.com/pterm/pterm"
	"gitlab.com/tozd/go/errors"
)

var (
	ErrTabExists   = errors.Base("ribbon tab already exists")
	ErrPanelExists = errors.Base("ribbon panel already exists")
	ErrNoTab       = errors.Base("ribbon tab does not exist")
)

// 🧠 Memory is an in-process ribbon. It rejects duplicates the way a host does.
type Memory struct {
	mu     sync.Mutex
	tabs   []string
	panels map[string][]*Panel
}

// NewMemory creates an empty ribbon
func NewMemory() *Memory {
	return &Memory{panels: map[string][]*Panel{}}
}

func (m *Memory) hasTab(name string) bool {
	for _, t := range m.tabs {
		if t == name {
			return true
		}
	}
	return false
}

func (m *Memory) CreateRibbonTab(name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.hasTab(name) {
		return errors.Errorf("%w: %s", ErrTabExists, name)
	}
	m.tabs = append(m.tabs, name)
	return nil
}

func (m *Memory) CreateRibbonPanel(tab, name string) (*Panel, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.hasTab(tab) {
		return nil, errors.Errorf("%w: %s", ErrNoTab, tab)
	}
	for _, p := range m.panels[tab] {
		if p.Name == name {
			return nil, errors.Errorf("%w: %s", ErrPanelExists, name)
		}
	}
	p := &Panel{Tab: tab, Name: name}
	m.panels[tab] = append(m.panels[tab], p)
	return p, nil
}

func (m *Memory) GetRibbonPanels(tab string) ([]*Panel, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.hasTab(tab) {
		return nil, errors.Errorf("%w: %s", ErrNoTab, tab)
	}
	return append([]*Panel(nil), m.panels[tab]...), nil
}

func (m *Memory) AddPushButton(panel *Panel, button PushButton) (*PushButton, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if panel == nil {
		return nil, errors.New("panel is required")
	}
	if button.CommandID == "" {
		return nil, errors.New("button has no command")
	}
	for _, b := range panel.Buttons {
		if b.Name == button.Name {
			return nil, errors.Errorf("button %q already exists in panel %q", button.Name, panel.Name)
		}
	}
	b := button
	panel.Buttons = append(panel.Buttons, &b)
	return &b, nil
}

// Render draws the ribbon as a tree
func (m *Memory) Render() (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	root := pterm.TreeNode{Text: "ribbon"}
	for _, tab := range m.tabs {
		tabNode := pterm.TreeNode{Text: tab}
		for _, p := range m.panels[tab] {
			panelNode := pterm.TreeNode{Text: p.Name}
			for _, b := range p.Buttons {
				panelNode.Children = append(panelNode.Children, pterm.TreeNode{
					Text: strings.ReplaceAll(b.Label, "\n", " ") + " → " + b.CommandID,
				})
			}
			tabNode.Children = append(tabNode.Children, panelNode)
		}
		root.Children = append(root.Children, tabNode)
	}

	out, err := pterm.DefaultTree.WithRoot(root).Srender()
	if err != nil {
		return "", errors.Errorf("rendering ribbon: %w", err)
	}
	return out, nil
}
