// Package model provides Bubble Tea models for CLI commands.
package model

import (
	"github.com/bnema/sitepanel/internal/domain/entity"
	"github.com/bnema/sitepanel/internal/ui/panel"
)

// textContainer is a terminal-backed panel.SlotContainer: each handle
// stores the visual state the binder projects onto it, and the model
// renders rows from that state. User key presses drive the installed
// callbacks the same way widget signals would.
type textContainer struct {
	labels   map[entity.Feature]*textLabel
	statuses map[entity.Feature]*textStatus
	autoplay *textSelector
}

func newTextContainer() *textContainer {
	c := &textContainer{
		labels:   make(map[entity.Feature]*textLabel, len(entity.Features())),
		statuses: make(map[entity.Feature]*textStatus, len(entity.Features())),
		autoplay: &textSelector{selected: -1},
	}
	for _, f := range entity.Features() {
		c.labels[f] = &textLabel{}
		if f != entity.FeatureAutoplay {
			c.statuses[f] = &textStatus{}
		}
	}
	return c
}

// Label implements panel.SlotContainer.
func (c *textContainer) Label(f entity.Feature) panel.LabelHandle {
	label, ok := c.labels[f]
	if !ok {
		return nil
	}
	return label
}

// Status implements panel.SlotContainer.
func (c *textContainer) Status(f entity.Feature) panel.StatusHandle {
	status, ok := c.statuses[f]
	if !ok {
		return nil
	}
	return status
}

// Selector implements panel.SlotContainer.
func (c *textContainer) Selector(f entity.Feature) panel.SelectorHandle {
	if f != entity.FeatureAutoplay {
		return nil
	}
	return c.autoplay
}

type textLabel struct {
	enabled bool
	visible bool
}

func (l *textLabel) SetEnabled(enabled bool) { l.enabled = enabled }
func (l *textLabel) SetVisible(visible bool) { l.visible = visible }

type textStatus struct {
	visible    bool
	text       string
	onActivate func()
}

func (s *textStatus) SetVisible(visible bool) { s.visible = visible }
func (s *textStatus) SetText(text string)     { s.text = text }
func (s *textStatus) SetOnActivate(fn func()) { s.onActivate = fn }

// activate simulates a user click on the status control.
func (s *textStatus) activate() {
	if s.onActivate != nil {
		s.onActivate()
	}
}

type textSelector struct {
	visible    bool
	options    []string
	selected   int
	onSelected func(index int)
}

func (s *textSelector) SetVisible(visible bool) { s.visible = visible }

func (s *textSelector) SetOptions(labels []string) {
	s.options = append(s.options[:0], labels...)
}

func (s *textSelector) SelectSilently(index int) { s.selected = index }

func (s *textSelector) SetOnSelected(fn func(index int)) { s.onSelected = fn }

// userSelect simulates a user-driven selection change.
func (s *textSelector) userSelect(index int) {
	if index < 0 || index >= len(s.options) {
		return
	}
	s.selected = index
	if s.onSelected != nil {
		s.onSelected(index)
	}
}
