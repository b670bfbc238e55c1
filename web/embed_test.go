package web_test

import (
	"io/fs"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"leisure_park/web"
)

func readCSS(t *testing.T) string {
	t.Helper()
	b, err := fs.ReadFile(web.Static(), "styles.css")
	require.NoError(t, err)
	return string(b)
}

func TestStatic_Assets(t *testing.T) {
	for _, name := range []string{"styles.css", "images/leisure.svg"} {
		_, err := fs.Stat(web.Static(), name)
		assert.NoError(t, err, name)
	}
}

// The breakpoint and the mobile menu must work from the shipped stylesheet
// alone, without the Tailwind CDN.
func TestStyles_BreakpointRules(t *testing.T) {
	css := readCSS(t)

	assert.Regexp(t, `(?m)^\.hidden\s*\{\s*display:\s*none`, css)
	assert.Contains(t, css, ".sr-only")

	i := strings.Index(css, "@media (min-width: 768px)")
	require.GreaterOrEqual(t, i, 0, "md breakpoint missing")
	media := css[i:]
	assert.Regexp(t, `\.md\\:flex\s*\{\s*display:\s*flex`, media)
	assert.Regexp(t, `\.md\\:hidden[^{]*\{\s*display:\s*none`, media)
	assert.Regexp(t, `\.menu-state:checked ~ \.mobile-nav\s*\{\s*display:\s*none`, media)

	// .hidden must come before md:flex so the media rule wins at md and up
	assert.Less(t, strings.Index(css, ".hidden"), i)
}

func TestStyles_MenuFollowsCheckbox(t *testing.T) {
	css := readCSS(t)
	before := css[:strings.Index(css, "@media")]

	hidden := regexp.MustCompile(`(?s)\.mobile-nav,\s*\.menu-icon-close\s*\{\s*display:\s*none`)
	assert.Regexp(t, hidden, before)
	assert.Regexp(t, `\.menu-state:checked ~ \.mobile-nav\s*\{\s*display:\s*block`, before)
	assert.Regexp(t, `\.menu-state:checked ~ \.menu-bar \.menu-icon-open\s*\{\s*display:\s*none`, before)
}
