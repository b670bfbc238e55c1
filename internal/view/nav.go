package view

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"leisure_park/internal/domain"
)

// Navigation renders the fixed top bar. The desktop links never depend on
// menu. The mobile block is driven by a hidden checkbox and its label, so
// toggling happens in the browser without a request or history entry; menu
// only decides whether the box starts checked. Following a mobile link
// leaves it open.
func Navigation(brand string, items []domain.NavItem, menu domain.MenuState) g.Node {
	return Nav(
		Class("fixed w-full bg-white shadow-sm z-50"),
		Div(
			Class("container mx-auto px-4 py-4"),
			Input(
				Type("checkbox"),
				ID("menu-state"),
				Class("menu-state sr-only"),
				AutoComplete("off"),
				Aria("controls", "mobile-nav"),
				Aria("label", "Toggle menu"),
				g.If(menu.IsOpen(), Checked()),
			),

			Div(
				Class("menu-bar flex justify-between items-center"),
				Logo(brand),

				Div(
					ID("desktop-nav"),
					Class("hidden md:flex gap-8"),
					g.Group(g.Map(items, NavLink)),
				),

				Label(
					ID("menu-toggle"),
					For("menu-state"),
					Class("menu-toggle md:hidden"),
					Span(Class("menu-icon-open"), Icon("menu", "w-6 h-6", "Open menu")),
					Span(Class("menu-icon-close"), Icon("x", "w-6 h-6", "Close menu")),
				),
			),

			Div(
				ID("mobile-nav"),
				Class("mobile-nav md:hidden mt-4 pb-4"),
				Div(
					Class("flex flex-col gap-4"),
					g.Group(g.Map(items, NavLink)),
				),
			),
		),
	)
}
