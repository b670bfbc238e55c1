package view

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"leisure_park/internal/domain"
)

type PageProps struct {
	Hotel domain.Hotel
	Menu  domain.MenuState
}

// Page is the landing page root. Sections appear in a fixed order.
func Page(p PageProps) g.Node {
	h := p.Hotel
	return Layout(
		PageConfig{
			Title:       h.Name,
			Description: h.Tagline,
		},
		Div(
			Class("min-h-screen bg-gray-50"),
			Navigation(h.Brand, h.Nav, p.Menu),
			HeroSection(h),
			AboutSection(h),
			RoomsSection(h.Rooms),
			ReviewsSection(h.Reviews),
			ContactSection(h.Contact),
			PageFooter(h),
		),
	)
}
