package panel_test

import (
	"github.com/bnema/sitepanel/internal/domain/entity"
	"github.com/bnema/sitepanel/internal/ui/panel"
)

// fakeLabel records the projection the binder applies to a name label.
type fakeLabel struct {
	enabled bool
	visible bool
}

func (l *fakeLabel) SetEnabled(enabled bool) { l.enabled = enabled }
func (l *fakeLabel) SetVisible(visible bool) { l.visible = visible }

// fakeStatus records status projection and counts listener installs.
type fakeStatus struct {
	visible    bool
	text       string
	installs   int
	onActivate func()
}

func (s *fakeStatus) SetVisible(visible bool) { s.visible = visible }
func (s *fakeStatus) SetText(text string)     { s.text = text }

func (s *fakeStatus) SetOnActivate(fn func()) {
	s.installs++
	s.onActivate = fn
}

// click simulates a user activation of the status control.
func (s *fakeStatus) click() {
	if s.onActivate != nil {
		s.onActivate()
	}
}

// fakeSelector records option projection, silent selections, and
// listener installs.
type fakeSelector struct {
	visible     bool
	options     []string
	selected    int
	silentCalls int
	installs    int
	onSelected  func(index int)
}

func (s *fakeSelector) SetVisible(visible bool) { s.visible = visible }

func (s *fakeSelector) SetOptions(labels []string) {
	s.options = append([]string(nil), labels...)
}

func (s *fakeSelector) SelectSilently(index int) {
	s.selected = index
	s.silentCalls++
}

func (s *fakeSelector) SetOnSelected(fn func(index int)) {
	s.installs++
	s.onSelected = fn
}

// userSelect simulates a user-driven selection change.
func (s *fakeSelector) userSelect(index int) {
	s.selected = index
	if s.onSelected != nil {
		s.onSelected(index)
	}
}

// fakeContainer yields one fake handle per feature.
type fakeContainer struct {
	labels   map[entity.Feature]*fakeLabel
	statuses map[entity.Feature]*fakeStatus
	selector *fakeSelector

	// dropLabel simulates a container that cannot yield a handle.
	dropLabel entity.Feature
}

func newFakeContainer() *fakeContainer {
	c := &fakeContainer{
		labels:   make(map[entity.Feature]*fakeLabel),
		statuses: make(map[entity.Feature]*fakeStatus),
		selector: &fakeSelector{selected: -1},
	}
	for _, f := range entity.Features() {
		c.labels[f] = &fakeLabel{}
		if f != entity.FeatureAutoplay {
			c.statuses[f] = &fakeStatus{}
		}
	}
	return c
}

func (c *fakeContainer) Label(f entity.Feature) panel.LabelHandle {
	if f == c.dropLabel {
		return nil
	}
	return c.labels[f]
}

func (c *fakeContainer) Status(f entity.Feature) panel.StatusHandle {
	status, ok := c.statuses[f]
	if !ok {
		return nil
	}
	return status
}

func (c *fakeContainer) Selector(f entity.Feature) panel.SelectorHandle {
	if f != entity.FeatureAutoplay {
		return nil
	}
	return c.selector
}

// recordingInteractor captures every outgoing event.
type recordingInteractor struct {
	shown    int
	toggled  []entity.WebsitePermission
	autoplay []entity.AutoplayOption
}

func (i *recordingInteractor) OnPermissionsShown() { i.shown++ }

func (i *recordingInteractor) OnPermissionToggled(perm entity.WebsitePermission) {
	i.toggled = append(i.toggled, perm)
}

func (i *recordingInteractor) OnAutoplayChanged(option entity.AutoplayOption) {
	i.autoplay = append(i.autoplay, option)
}

// hiddenState returns a complete state with every row invisible.
func hiddenState() entity.State {
	state := make(entity.State, len(entity.Features()))
	for _, f := range entity.Features() {
		if f == entity.FeatureAutoplay {
			state[f] = entity.AutoplayPermission{
				StatusText: "Allow audio and video",
				Options:    entity.AutoplayOptions(),
				Current:    entity.AutoplayAllowAll,
			}
			continue
		}
		state[f] = entity.TogglePermission{
			ForFeature: f,
			StatusText: "Blocked",
		}
	}
	return state
}
