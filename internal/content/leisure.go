// Package content holds the literal text and image references of the
// Leisure Park landing page.
package content

import "leisure_park/internal/domain"

const DefaultHeroImage = "/static/images/leisure.svg"

const mapEmbedURL = "https://www.google.com/maps/embed?pb=!1m18!1m12!1m3!1d15959.880772389!2d30.6543!3d-0.6167!2m3!1f0!2f0!3f0!3m2!1i1024!2i768!4f13.1!3m3!1m2!1s0x19d93b5c7f7c6e6d%3A0x7f6b5c7f6b5c7f6b!2sMbarara%2C%20Uganda!5e0!3m2!1sen!2s!4v1620000000000!5m2!1sen!2s"

func unsplash(photo string) string {
	return "https://images.unsplash.com/" + photo + "?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80"
}

// NavItems returns the four section links shared by every menu on the page.
func NavItems() []domain.NavItem {
	return []domain.NavItem{
		{Label: "About", Target: "#about"},
		{Label: "Rooms", Target: "#rooms"},
		{Label: "Reviews", Target: "#reviews"},
		{Label: "Contact", Target: "#contact"},
	}
}

func Rooms() []domain.Room {
	return []domain.Room{
		{
			Title:       "Standard Room",
			Price:       "From $50/night",
			Image:       unsplash("photo-1631049307264-da0ec9d70304"),
			Description: "Comfortable room with essential amenities, perfect for solo travelers or couples.",
		},
		{
			Title:       "Deluxe Room",
			Price:       "From $75/night",
			Image:       unsplash("photo-1618773928121-c32242e63f39"),
			Description: "Spacious room with upgraded amenities and city views.",
		},
		{
			Title:       "Family Suite",
			Price:       "From $100/night",
			Image:       unsplash("photo-1566665797739-1674de7a421a"),
			Description: "Perfect for families, featuring separate living area and multiple beds.",
		},
	}
}

func Reviews() []domain.Review {
	return []domain.Review{
		{Text: "Clean rooms, hot water, and very friendly staff. Great value for money!", Author: "Sarah M."},
		{Text: "Perfect location and excellent service. The rooms are well-maintained.", Author: "John D."},
		{Text: "Comfortable stay with all necessary amenities. Will definitely return!", Author: "Michael R."},
	}
}

// LeisurePark returns a fresh copy of the full page content.
// heroImage overrides the hero background when non-empty.
func LeisurePark(heroImage string) domain.Hotel {
	if heroImage == "" {
		heroImage = DefaultHeroImage
	}
	return domain.Hotel{
		Brand:      "Leisure Park",
		Name:       "Leisure Park International Hotel",
		Tagline:    "Affordable Comfort & Convenience in Mbarara",
		HeroImage:  heroImage,
		Nav:        NavItems(),
		AboutTitle: "Your Home Away From Home",
		AboutBody: "At Leisure Park International Hotel, we pride ourselves on providing comfortable, " +
			"well-maintained accommodations with exceptional customer service. Our family-friendly " +
			"environment and accessible facilities make us the perfect choice for all travelers " +
			"visiting Mbarara.",
		AboutImage: unsplash("photo-1582719478250-c89cae4dc85b"),
		Highlights: []domain.Highlight{
			{Text: "Modern, comfortable rooms with essential amenities"},
			{Text: "Wheelchair-accessible facilities"},
			{Text: "Friendly, professional staff available 24/7"},
			{Text: "Prime location near Mbarara's attractions"},
		},
		Rooms:   Rooms(),
		Reviews: Reviews(),
		Contact: domain.ContactInfo{
			Location:     "Mbarara, Uganda",
			PhoneDisplay: "+256 123 456 789",
			PhoneLink:    "tel:+256123456789",
			WhatsAppLink: "https://wa.me/256123456789",
			MapEmbedURL:  mapEmbedURL,
		},
		FooterBlurb: "Your comfortable and affordable stay in Mbarara.",
		Copyright:   "© 2024 Leisure Park International Hotel. All rights reserved.",
	}
}
