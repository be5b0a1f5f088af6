package component

import (
	"sync"

	"github.com/jwijenbergh/puregotk/v4/gtk"

	"github.com/bnema/sitepanel/internal/domain/entity"
	"github.com/bnema/sitepanel/internal/ui/panel"
)

// rowSpacing is the spacing between the name label and status control.
const rowSpacing = 12

// SitePermissionsPanel is a GTK container listing one row per tracked
// permission feature: a name label plus a clickable status control, and
// a single-selection list for the autoplay modes.
//
// It implements panel.SlotContainer; the binding engine drives all
// visual state through the handles. Click and row-selected signals are
// connected once at construction to a swappable callback cell, which
// gives the binder its replace-not-append listener guarantee.
type SitePermissionsPanel struct {
	outerBox *gtk.Box

	labels   map[entity.Feature]*gtkLabel
	statuses map[entity.Feature]*gtkStatus
	autoplay *gtkSelector

	retainedCallbacks []interface{}
}

// NewSitePermissionsPanel creates the panel widget tree.
func NewSitePermissionsPanel() (*SitePermissionsPanel, error) {
	p := &SitePermissionsPanel{
		labels:   make(map[entity.Feature]*gtkLabel, len(entity.Features())),
		statuses: make(map[entity.Feature]*gtkStatus, len(entity.Features())),
	}

	p.outerBox = gtk.NewBox(gtk.OrientationVerticalValue, 0)
	if p.outerBox == nil {
		return nil, errNilWidget("sitePermissionsOuterBox")
	}
	p.outerBox.AddCssClass("site-permissions-panel")

	for _, feature := range entity.Features() {
		if feature == entity.FeatureAutoplay {
			if err := p.buildAutoplayRow(feature); err != nil {
				return nil, err
			}
			continue
		}
		if err := p.buildToggleRow(feature); err != nil {
			return nil, err
		}
	}

	return p, nil
}

// Widget returns the outer GTK widget for embedding.
func (p *SitePermissionsPanel) Widget() *gtk.Widget {
	return &p.outerBox.Widget
}

// Label implements panel.SlotContainer.
func (p *SitePermissionsPanel) Label(f entity.Feature) panel.LabelHandle {
	label, ok := p.labels[f]
	if !ok {
		return nil
	}
	return label
}

// Status implements panel.SlotContainer.
func (p *SitePermissionsPanel) Status(f entity.Feature) panel.StatusHandle {
	status, ok := p.statuses[f]
	if !ok {
		return nil
	}
	return status
}

// Selector implements panel.SlotContainer.
func (p *SitePermissionsPanel) Selector(f entity.Feature) panel.SelectorHandle {
	if f != entity.FeatureAutoplay || p.autoplay == nil {
		return nil
	}
	return p.autoplay
}

func (p *SitePermissionsPanel) buildToggleRow(feature entity.Feature) error {
	row := gtk.NewBox(gtk.OrientationHorizontalValue, rowSpacing)
	if row == nil {
		return errNilWidget("sitePermissionsRow_" + string(feature))
	}
	row.AddCssClass("site-permissions-row")

	nameLabel, err := p.buildNameLabel(feature)
	if err != nil {
		return err
	}

	statusButton := gtk.NewButton()
	if statusButton == nil {
		return errNilWidget("sitePermissionsStatus_" + string(feature))
	}
	statusButton.AddCssClass("site-permissions-status")
	statusButton.SetFocusOnClick(false)
	statusButton.SetHalign(gtk.AlignEndValue)
	statusButton.SetHexpand(true)

	emptyText := ""
	statusLabel := gtk.NewLabel(emptyText)
	if statusLabel == nil {
		return errNilWidget("sitePermissionsStatusLabel_" + string(feature))
	}
	statusButton.SetChild(&statusLabel.Widget)

	status := &gtkStatus{button: statusButton, label: statusLabel}
	clickCb := func(_ gtk.Button) {
		status.mu.Lock()
		fn := status.onActivate
		status.mu.Unlock()
		if fn != nil {
			fn()
		}
	}
	p.retainedCallbacks = append(p.retainedCallbacks, clickCb)
	statusButton.ConnectClicked(&clickCb)

	row.Append(&nameLabel.label.Widget)
	row.Append(&statusButton.Widget)
	p.outerBox.Append(&row.Widget)

	p.labels[feature] = nameLabel
	p.statuses[feature] = status
	return nil
}

func (p *SitePermissionsPanel) buildAutoplayRow(feature entity.Feature) error {
	row := gtk.NewBox(gtk.OrientationVerticalValue, 0)
	if row == nil {
		return errNilWidget("sitePermissionsRow_" + string(feature))
	}
	row.AddCssClass("site-permissions-row")
	row.AddCssClass("site-permissions-autoplay")

	nameLabel, err := p.buildNameLabel(feature)
	if err != nil {
		return err
	}

	listBox := gtk.NewListBox()
	if listBox == nil {
		return errNilWidget("sitePermissionsAutoplayList")
	}
	listBox.AddCssClass("site-permissions-autoplay-list")
	listBox.SetSelectionMode(gtk.SelectionSingleValue)

	selector := &gtkSelector{listBox: listBox}
	rowSelectedCb := func(_ gtk.ListBox, rowPtr uintptr) {
		if rowPtr == 0 {
			return
		}
		selected := gtk.ListBoxRowNewFromInternalPtr(rowPtr)
		if selected == nil {
			return
		}
		idx := selected.GetIndex()

		selector.mu.Lock()
		suppressed := selector.suppress
		fn := selector.onSelected
		selector.mu.Unlock()
		if suppressed || fn == nil {
			return
		}
		fn(int(idx))
	}
	p.retainedCallbacks = append(p.retainedCallbacks, rowSelectedCb)
	listBox.ConnectRowSelected(&rowSelectedCb)

	row.Append(&nameLabel.label.Widget)
	row.Append(&listBox.Widget)
	p.outerBox.Append(&row.Widget)

	p.labels[feature] = nameLabel
	p.autoplay = selector
	return nil
}

func (p *SitePermissionsPanel) buildNameLabel(feature entity.Feature) (*gtkLabel, error) {
	text := feature.DisplayName()
	label := gtk.NewLabel(text)
	if label == nil {
		return nil, errNilWidget("sitePermissionsLabel_" + string(feature))
	}
	label.AddCssClass("site-permissions-label")
	label.SetHalign(gtk.AlignStartValue)
	return &gtkLabel{label: label}, nil
}

// gtkLabel adapts a gtk.Label to panel.LabelHandle.
type gtkLabel struct {
	label *gtk.Label
}

func (l *gtkLabel) SetEnabled(enabled bool) {
	l.label.SetSensitive(enabled)
}

func (l *gtkLabel) SetVisible(visible bool) {
	l.label.SetVisible(visible)
}

// gtkStatus adapts a gtk.Button with a label child to panel.StatusHandle.
// The clicked signal is connected once; SetOnActivate swaps the target.
type gtkStatus struct {
	button *gtk.Button
	label  *gtk.Label

	mu         sync.Mutex
	onActivate func()
}

func (s *gtkStatus) SetVisible(visible bool) {
	s.button.SetVisible(visible)
}

func (s *gtkStatus) SetText(text string) {
	s.label.SetText(text)
}

func (s *gtkStatus) SetOnActivate(fn func()) {
	s.mu.Lock()
	s.onActivate = fn
	s.mu.Unlock()
}

// gtkSelector adapts a single-selection gtk.ListBox to
// panel.SelectorHandle. Programmatic selection re-triggers the
// row-selected signal, so SelectSilently and SetOptions raise a suppress
// flag around any call that can fire it.
type gtkSelector struct {
	listBox *gtk.ListBox
	rows    []*gtk.ListBoxRow

	mu         sync.Mutex
	suppress   bool
	onSelected func(index int)
}

func (s *gtkSelector) SetVisible(visible bool) {
	s.listBox.SetVisible(visible)
}

func (s *gtkSelector) SetOptions(labels []string) {
	s.mu.Lock()
	s.suppress = true
	s.mu.Unlock()

	for _, row := range s.rows {
		s.listBox.Remove(&row.Widget)
	}
	s.rows = s.rows[:0]

	for _, text := range labels {
		row := gtk.NewListBoxRow()
		if row == nil {
			continue
		}
		label := gtk.NewLabel(text)
		if label == nil {
			continue
		}
		label.SetHalign(gtk.AlignStartValue)
		row.SetChild(&label.Widget)
		s.listBox.Append(&row.Widget)
		s.rows = append(s.rows, row)
	}

	s.mu.Lock()
	s.suppress = false
	s.mu.Unlock()
}

func (s *gtkSelector) SelectSilently(index int) {
	// Note: don't hold the mutex across SelectRow - it triggers the
	// row-selected callback synchronously, which also takes the mutex.
	s.mu.Lock()
	s.suppress = true
	s.mu.Unlock()

	if row := s.listBox.GetRowAtIndex(int32(index)); row != nil {
		s.listBox.SelectRow(row)
	}

	s.mu.Lock()
	s.suppress = false
	s.mu.Unlock()
}

func (s *gtkSelector) SetOnSelected(fn func(index int)) {
	s.mu.Lock()
	s.onSelected = fn
	s.mu.Unlock()
}
