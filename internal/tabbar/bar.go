package tabbar

import (
	"fmt"
	"time"
)

const (
	// PressDuration is the length of each half of the press pulse.
	PressDuration = 150 * time.Millisecond
	// PressedScale is the icon scale at the bottom of the pulse.
	PressedScale = 0.9
)

// PressScale maps pulse progress in [0, 1] to the icon scale, 1 at rest and PressedScale fully pressed.
func PressScale(progress float64) float64 {
	if progress <= 0 {
		return 1
	}
	if progress >= 1 {
		return PressedScale
	}
	return 1 + (PressedScale-1)*progress
}

// Item is a tab as rendered for the current focus.
type Item struct {
	Tab     Tab    `json:"-"`
	Label   string `json:"label"`
	Icon    string `json:"icon"`
	Focused bool   `json:"focused"`
}

// Bar holds the focused tab and per-tab press pulses. It is owned by a single view and is not safe for concurrent use.
type Bar struct {
	tabs    []Tab
	focused int
	pulses  []int
}

// NewBar creates a bar over tabs with the first tab focused.
func NewBar(tabs ...Tab) *Bar {
	if len(tabs) == 0 {
		tabs = Tabs
	}
	return &Bar{
		tabs:   tabs,
		pulses: make([]int, len(tabs)),
	}
}

// Focused returns the focused tab.
func (b *Bar) Focused() Tab {
	return b.tabs[b.focused]
}

// Focus moves focus to tab. It returns false if the tab is not on the bar.
func (b *Bar) Focus(tab Tab) bool {
	for i, t := range b.tabs {
		if t == tab {
			b.focused = i
			return true
		}
	}
	return false
}

// Press handles a tap on the tab at index. It reports whether navigation should happen,
// which is only when the tab is not already focused and the press was not prevented.
// Every press starts a pulse on the tab.
func (b *Bar) Press(index int, prevented bool) (bool, error) {
	if index < 0 || index >= len(b.tabs) {
		return false, fmt.Errorf("tabbar: no tab at index %d", index)
	}

	b.pulses[index]++

	if index == b.focused || prevented {
		return false, nil
	}
	b.focused = index
	return true, nil
}

// Pulses returns how many press pulses the tab at index has started.
func (b *Bar) Pulses(index int) int {
	if index < 0 || index >= len(b.pulses) {
		return 0
	}
	return b.pulses[index]
}

// Items lists the tabs in bar order with icons for the current focus.
func (b *Bar) Items() []Item {
	items := make([]Item, 0, len(b.tabs))
	for i, t := range b.tabs {
		focused := i == b.focused
		items = append(items, Item{
			Tab:     t,
			Label:   t.Label(),
			Icon:    t.Icon(focused),
			Focused: focused,
		})
	}
	return items
}
