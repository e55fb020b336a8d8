// Package i18n serves the site's translated strings, picked from the visitor's
// Accept-Language header.
package i18n

import (
	"embed"
	"fmt"
	"path"
	"sort"
	"strings"

	"github.com/leonelquinteros/gotext"
	"golang.org/x/text/language"
)

//go:embed locales/*.po
var locales embed.FS

// DefaultLanguage is served when nothing in the request matches.
const DefaultLanguage = "en"

// Catalog holds one gettext catalog per supported language.
type Catalog struct {
	tags     []language.Tag
	catalogs []*gotext.Po
	matcher  language.Matcher
}

// Translator resolves message ids for one language.
type Translator struct {
	tag language.Tag
	po  *gotext.Po
}

// Load parses the embedded catalogs. The default language is always first so the
// matcher falls back to it.
func Load() (*Catalog, error) {
	entries, err := locales.ReadDir("locales")
	if err != nil {
		return nil, fmt.Errorf("read locales: %w", err)
	}
	var names []string
	for _, e := range entries {
		if strings.HasSuffix(e.Name(), ".po") {
			names = append(names, strings.TrimSuffix(e.Name(), ".po"))
		}
	}
	sort.Slice(names, func(i, j int) bool {
		if names[i] == DefaultLanguage || names[j] == DefaultLanguage {
			return names[i] == DefaultLanguage
		}
		return names[i] < names[j]
	})

	c := &Catalog{}
	for _, name := range names {
		tag, err := language.Parse(name)
		if err != nil {
			return nil, fmt.Errorf("locale %s: %w", name, err)
		}
		data, err := locales.ReadFile(path.Join("locales", name+".po"))
		if err != nil {
			return nil, fmt.Errorf("read locale %s: %w", name, err)
		}
		po := gotext.NewPo()
		po.Parse(data)
		c.tags = append(c.tags, tag)
		c.catalogs = append(c.catalogs, po)
	}
	if len(c.tags) == 0 {
		return nil, fmt.Errorf("no locales embedded")
	}
	c.matcher = language.NewMatcher(c.tags)
	return c, nil
}

// Languages lists the supported languages, default first.
func (c *Catalog) Languages() []string {
	out := make([]string, len(c.tags))
	for i, t := range c.tags {
		out[i] = t.String()
	}
	return out
}

// Match picks the translator for an Accept-Language header value.
func (c *Catalog) Match(acceptLanguage string) Translator {
	idx := 0
	if tags, _, err := language.ParseAcceptLanguage(acceptLanguage); err == nil && len(tags) > 0 {
		_, idx, _ = c.matcher.Match(tags...)
	}
	return Translator{tag: c.tags[idx], po: c.catalogs[idx]}
}

// Get returns the translation of id, or id itself when it is missing.
func (t Translator) Get(id string, vars ...any) string {
	return t.po.Get(id, vars...)
}

// Lang is the BCP 47 tag of the translator's language.
func (t Translator) Lang() string {
	return t.tag.String()
}
