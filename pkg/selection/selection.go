package selection

// Rect is an axis-aligned rectangle in viewport pixels, as reported by
// the browser for the selection range and the content container.
type Rect struct {
	Left   float64 `json:"left"`
	Top    float64 `json:"top"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// RawSelection is the browser-side snapshot forwarded on pointer-up.
// AncestorSectionKeys is the chain of section-key attributes walking
// upward from the selection's start node; untagged ancestors appear as
// empty strings so the chain order is preserved.
type RawSelection struct {
	Text                string   `json:"text"`
	Collapsed           bool     `json:"collapsed"`
	ContainerID         string   `json:"container_id"`
	InsideContainer     bool     `json:"inside_container"`
	AncestorSectionKeys []string `json:"ancestor_section_keys"`
	Rect                Rect     `json:"rect"`
	ContainerRect       Rect     `json:"container_rect"`
}

// Anchor is the floating toolbar position, relative to the content
// container so it survives scrolling.
type Anchor struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Descriptor is the committed selection state exposed to the UI. It is
// recomputed wholesale on every committed gesture and zeroed on
// dismissal.
type Descriptor struct {
	Text       string `json:"text"`
	SectionKey string `json:"section_key"`
	Active     bool   `json:"active"`
	Anchor     Anchor `json:"anchor"`
	Mode       string `json:"mode"`
}

// resolveSectionKey walks the ancestor chain from the selection start
// upward and returns the first tagged section, or "" when the
// selection sits outside any section.
func resolveSectionKey(ancestors []string) string {
	for _, key := range ancestors {
		if key != "" {
			return key
		}
	}
	return ""
}
