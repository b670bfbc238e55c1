package view

import (
	"fmt"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"leisure_park/internal/domain"
)

// NavLink is an in-page scroll link. The target anchor is not checked.
func NavLink(item domain.NavItem) g.Node {
	return A(
		Href(item.Target),
		Class("nav-link text-gray-600 hover:text-primary transition-colors"),
		g.Text(item.Label),
	)
}

// ReviewCard always shows domain.ReviewStars stars; there is no rating input.
func ReviewCard(r domain.Review) g.Node {
	stars := make([]g.Node, domain.ReviewStars)
	for i := range stars {
		stars[i] = Icon("star", "rating-star w-4 h-4 text-yellow-400", "")
	}

	return Div(
		Class("review-card bg-white p-6 rounded-lg shadow-md"),
		Div(
			Class("flex gap-1 mb-2"),
			g.Attr("role", "img"),
			g.Attr("aria-label", fmt.Sprintf("%d out of %d stars", domain.ReviewStars, domain.ReviewStars)),
			g.Group(stars),
		),
		P(Class("text-gray-600 mb-4"), g.Text(r.Text)),
		P(Class("font-semibold"), g.Text(r.Author)),
	)
}

// RoomCard renders a room. Its "Book Now" button has no handler.
func RoomCard(r domain.Room) g.Node {
	return Div(
		Class("room-card bg-white rounded-lg overflow-hidden shadow-md"),
		Img(Src(r.Image), Alt(r.Title), Class("w-full h-48 object-cover"), g.Attr("loading", "lazy")),
		Div(
			Class("p-6"),
			H3(Class("text-xl font-semibold mb-2"), g.Text(r.Title)),
			P(Class("text-gray-600 mb-4"), g.Text(r.Description)),
			Div(
				Class("flex justify-between items-center"),
				Span(Class("room-price text-primary font-bold"), g.Text(r.Price)),
				inertButton(
					"bg-primary text-white px-4 py-2 rounded-md hover:bg-primary/90 transition-colors flex items-center gap-2",
					g.Text("Book Now "),
					Icon("calendar", "w-4 h-4", ""),
				),
			),
		),
	)
}
