package domain

// ReviewStars is the rating shown on every review card. It is not data.
const ReviewStars = 5

type NavItem struct {
	Label  string
	Target string // in-page anchor, e.g. "#about"
}

type Room struct {
	Title       string
	Price       string // display string, e.g. "From $50/night"
	Image       string
	Description string
}

type Review struct {
	Text   string
	Author string
}

type Highlight struct {
	Text string
}

type ContactInfo struct {
	Location     string
	PhoneDisplay string
	PhoneLink    string // tel: URI
	WhatsAppLink string
	MapEmbedURL  string
}

// Hotel is everything the landing page shows. All of it is literal content.
type Hotel struct {
	Brand       string
	Name        string
	Tagline     string
	HeroImage   string
	Nav         []NavItem
	AboutTitle  string
	AboutBody   string
	AboutImage  string
	Highlights  []Highlight
	Rooms       []Room
	Reviews     []Review
	Contact     ContactInfo
	FooterBlurb string
	Copyright   string
}
