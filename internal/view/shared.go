package view

import (
	"fmt"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// Icon renders a lucide glyph through iconify. An empty ariaLabel hides it
// from assistive technology.
func Icon(name, sizeClasses, ariaLabel string) g.Node {
	classes := "iconify inline-block"
	if sizeClasses != "" {
		classes = fmt.Sprintf("iconify inline-block %s", sizeClasses)
	}

	if ariaLabel != "" {
		return Span(
			Class(classes),
			g.Attr("data-icon", "lucide:"+name),
			g.Attr("role", "img"),
			g.Attr("aria-label", ariaLabel),
		)
	}

	return Span(
		Class(classes),
		g.Attr("data-icon", "lucide:"+name),
		g.Attr("aria-hidden", "true"),
	)
}

func Logo(brand string) g.Node {
	return A(
		Href("#"),
		Class("text-2xl font-bold text-primary"),
		g.Text(brand),
	)
}

func sectionHeading(text string) g.Node {
	return H2(Class("text-3xl font-bold text-center mb-12"), g.Text(text))
}

// inertButton is a call-to-action with no behaviour attached.
func inertButton(classes string, children ...g.Node) g.Node {
	return Button(
		Type("button"),
		Class(classes),
		g.Group(children),
	)
}
