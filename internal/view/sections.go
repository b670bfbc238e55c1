package view

import (
	"fmt"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"leisure_park/internal/domain"
)

func HeroSection(h domain.Hotel) g.Node {
	background := fmt.Sprintf("background-image: linear-gradient(rgba(0, 0, 0, 0.5), rgba(0, 0, 0, 0.5)), url(%s)", h.HeroImage)

	return Section(
		ID("hero"),
		Class("pt-24 pb-12 md:pt-32 md:pb-24 bg-cover bg-center"),
		g.Attr("style", background),
		Div(
			Class("container mx-auto px-4 text-center text-white"),
			H1(Class("text-4xl md:text-6xl font-bold mb-6"), g.Textf("Welcome to %s", h.Name)),
			P(Class("text-xl md:text-2xl mb-8"), g.Text(h.Tagline)),
			inertButton(
				"bg-primary text-white px-8 py-3 rounded-md text-lg font-semibold hover:bg-primary/90 transition-colors",
				g.Text("Book Now"),
			),
		),
	)
}

func AboutSection(h domain.Hotel) g.Node {
	return Section(
		ID("about"),
		Class("py-16 bg-white"),
		Div(
			Class("container mx-auto px-4"),
			sectionHeading("About Us"),
			Div(
				Class("grid md:grid-cols-2 gap-8 items-center"),
				Div(
					Img(Src(h.AboutImage), Alt("Hotel Lobby"), Class("rounded-lg shadow-md")),
				),
				Div(
					H3(Class("text-2xl font-semibold mb-4"), g.Text(h.AboutTitle)),
					P(Class("text-gray-600 mb-6"), g.Text(h.AboutBody)),
					Ul(
						Class("space-y-4"),
						g.Group(g.Map(h.Highlights, func(hl domain.Highlight) g.Node {
							return Li(
								Class("flex items-center gap-2"),
								Icon("chevron-right", "w-5 h-5 text-primary", ""),
								Span(g.Text(hl.Text)),
							)
						})),
					),
				),
			),
		),
	)
}

func RoomsSection(rooms []domain.Room) g.Node {
	return Section(
		ID("rooms"),
		Class("py-16 bg-gray-50"),
		Div(
			Class("container mx-auto px-4"),
			sectionHeading("Our Rooms"),
			Div(
				Class("grid md:grid-cols-2 lg:grid-cols-3 gap-8"),
				g.Group(g.Map(rooms, RoomCard)),
			),
		),
	)
}

func ReviewsSection(reviews []domain.Review) g.Node {
	return Section(
		ID("reviews"),
		Class("py-16 bg-white"),
		Div(
			Class("container mx-auto px-4"),
			sectionHeading("Guest Reviews"),
			Div(
				Class("grid md:grid-cols-3 gap-8"),
				g.Group(g.Map(reviews, ReviewCard)),
			),
		),
	)
}

const inputClasses = "w-full px-4 py-2 rounded-md border border-gray-300 focus:outline-none focus:ring-2 focus:ring-primary"

func formField(id, label string, control g.Node) g.Node {
	return Div(
		Label(g.Attr("for", id), Class("block text-gray-700 mb-2"), g.Text(label)),
		control,
	)
}

// contactForm is a visual placeholder: no action, no method, and the button
// does not submit.
func contactForm() g.Node {
	return g.El("form",
		ID("contact-form"),
		Class("space-y-4"),
		formField("contact-name", "Name", Input(ID("contact-name"), Name("name"), Type("text"), Class(inputClasses))),
		formField("contact-email", "Email", Input(ID("contact-email"), Name("email"), Type("email"), Class(inputClasses))),
		formField("contact-message", "Message", Textarea(ID("contact-message"), Name("message"), g.Attr("rows", "4"), Class(inputClasses))),
		inertButton("bg-primary text-white px-6 py-2 rounded-md hover:bg-primary/90 transition-colors", g.Text("Send Message")),
	)
}

func ContactSection(c domain.ContactInfo) g.Node {
	return Section(
		ID("contact"),
		Class("py-16 bg-gray-50"),
		Div(
			Class("container mx-auto px-4"),
			sectionHeading("Contact Us"),
			Div(
				Class("grid md:grid-cols-2 gap-8"),
				Div(
					H3(Class("text-xl font-semibold mb-4"), g.Text("Get in Touch")),
					contactForm(),
				),
				Div(
					H3(Class("text-xl font-semibold mb-4"), g.Text("Location & Contact Info")),
					Div(
						Class("space-y-4"),
						P(
							Class("flex items-center gap-2"),
							Icon("map-pin", "w-5 h-5 text-primary", ""),
							Span(g.Text(c.Location)),
						),
						P(
							Class("flex items-center gap-2"),
							Icon("phone", "w-5 h-5 text-primary", ""),
							A(Href(c.PhoneLink), Class("hover:text-primary"), g.Text(c.PhoneDisplay)),
						),
						P(
							Class("flex items-center gap-2"),
							Icon("message-circle", "w-5 h-5 text-primary", ""),
							A(Href(c.WhatsAppLink), Class("hover:text-primary"), g.Text("WhatsApp Chat")),
						),
					),
					Div(
						Class("mt-8"),
						g.El("iframe",
							Src(c.MapEmbedURL),
							g.Attr("title", "Map of "+c.Location),
							g.Attr("width", "100%"),
							g.Attr("height", "300"),
							g.Attr("style", "border: 0"),
							g.Attr("allowfullscreen", ""),
							g.Attr("loading", "lazy"),
							Class("rounded-lg"),
						),
					),
				),
			),
		),
	)
}

func PageFooter(h domain.Hotel) g.Node {
	return Footer(
		Class("bg-gray-900 text-white py-8"),
		Div(
			Class("container mx-auto px-4"),
			Div(
				Class("grid md:grid-cols-3 gap-8"),
				Div(
					H3(Class("text-xl font-semibold mb-4"), g.Text(h.Brand)),
					P(Class("text-gray-400"), g.Text(h.FooterBlurb)),
				),
				Div(
					H3(Class("text-xl font-semibold mb-4"), g.Text("Quick Links")),
					Ul(
						ID("footer-links"),
						Class("space-y-2"),
						g.Group(g.Map(h.Nav, func(item domain.NavItem) g.Node {
							return Li(A(Href(item.Target), Class("text-gray-400 hover:text-white"), g.Text(item.Label)))
						})),
					),
				),
				Div(
					H3(Class("text-xl font-semibold mb-4"), g.Text("Connect With Us")),
					Div(
						Class("flex gap-4"),
						A(Href("#"), Class("text-gray-400 hover:text-white"), Icon("phone", "w-6 h-6", "Phone")),
						A(Href("#"), Class("text-gray-400 hover:text-white"), Icon("message-circle", "w-6 h-6", "WhatsApp")),
					),
				),
			),
			Div(
				Class("mt-8 pt-8 border-t border-gray-800 text-center text-gray-400"),
				P(g.Text(h.Copyright)),
			),
		),
	)
}
