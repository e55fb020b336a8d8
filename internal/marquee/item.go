package marquee

// Item is one entry of the content sequence: a text node or an image reference,
// optionally linked. Items are immutable once handed to the loop.
type Item struct {
	// Node is the text content of a non-image item.
	Node string `json:"node,omitempty"`

	Src    string `json:"src,omitempty"`
	SrcSet string `json:"srcSet,omitempty"`
	Sizes  string `json:"sizes,omitempty"`
	Alt    string `json:"alt,omitempty"`
	Width  int    `json:"width,omitempty"`
	Height int    `json:"height,omitempty"`

	Href      string `json:"href,omitempty"`
	Title     string `json:"title,omitempty"`
	AriaLabel string `json:"ariaLabel,omitempty"`
}

// IsImage reports whether the item renders as an <img>.
func (it Item) IsImage() bool {
	return it.Src != ""
}

// Label is the accessible name used for the item's link: aria label or title for
// nodes, alt or title for images.
func (it Item) Label() string {
	if it.IsImage() {
		if it.Alt != "" {
			return it.Alt
		}
		return it.Title
	}
	if it.AriaLabel != "" {
		return it.AriaLabel
	}
	return it.Title
}

// Images returns the sources of every image item, in sequence order.
func Images(items []Item) []string {
	var srcs []string
	for _, it := range items {
		if it.IsImage() {
			srcs = append(srcs, it.Src)
		}
	}
	return srcs
}
