// Package tabbar describes the bottom tab bar: which tabs exist, which icon each shows,
// and the press pulse played when a tab is tapped.
package tabbar

import (
	"fmt"
	"strings"
)

// Tab identifies a bottom tab.
type Tab int

const (
	Home Tab = iota
	Search
	Chat
	Profile
)

// Tabs is the bar order.
var Tabs = []Tab{Home, Search, Chat, Profile}

const iconDir = "assets/icons/bottomtab"

var tabNames = map[Tab]struct {
	label string
	icon  string
}{
	Home:    {label: "Home", icon: "home"},
	Search:  {label: "Search", icon: "search"},
	Chat:    {label: "Chat", icon: "chat"},
	Profile: {label: "Profile", icon: "person"},
}

// ParseTab maps a route label to its tab. Unknown labels are treated as Profile.
func ParseTab(label string) Tab {
	for _, t := range Tabs {
		if strings.EqualFold(tabNames[t].label, label) {
			return t
		}
	}
	return Profile
}

// Label returns the route name of the tab.
func (t Tab) Label() string {
	if n, ok := tabNames[t]; ok {
		return n.label
	}
	return tabNames[Profile].label
}

// Icon returns the asset path of the tab icon in its focused or unfocused state.
func (t Tab) Icon(focused bool) string {
	n, ok := tabNames[t]
	if !ok {
		n = tabNames[Profile]
	}

	state := "off"
	if focused {
		state = "on"
	}
	return fmt.Sprintf("%s/%s_%s.png", iconDir, n.icon, state)
}

func (t Tab) String() string {
	return t.Label()
}
