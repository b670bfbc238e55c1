package domain

import "strings"

// MenuState is the visibility of the mobile navigation block.
// The zero value is MenuClosed.
type MenuState bool

const (
	MenuClosed MenuState = false
	MenuOpen   MenuState = true
)

// MenuParam is the query parameter selecting the state a page is first
// rendered in. Toggling afterwards happens in the browser.
const MenuParam = "menu"

// Toggle is the only transition: closed -> open, open -> closed.
func (m MenuState) Toggle() MenuState { return !m }

func (m MenuState) IsOpen() bool { return bool(m) }

func (m MenuState) String() string {
	if m {
		return "open"
	}
	return "closed"
}

// ParseMenuState never fails; anything other than "open" is closed.
func ParseMenuState(s string) MenuState {
	return MenuState(strings.EqualFold(strings.TrimSpace(s), "open"))
}
