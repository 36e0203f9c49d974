package video

import (
	"net/url"
	"regexp"
	"strings"
)

// Handler is the interface each video provider implements.
type Handler interface {
	// Provider returns the provider this handler serves.
	Provider() Provider

	// Name is the label shown in the provider select.
	Name() string

	// Signature matches the lower-cased host+path of an embed URL.
	// Generic handlers return nil.
	Signature() *regexp.Regexp

	// Parse extracts fields from a source or embed URL. It never fails.
	Parse(src string) FieldSet

	// Build renders the embed URL for a field set.
	Build(fs FieldSet) string

	// Traits returns the editor traits, with the shared provider trait
	// placed where the provider wants it.
	Traits(providerTrait Trait) []Trait

	// Hint returns the element the rendering side should create.
	Hint() RenderHint
}

// shareMatcher is implemented by handlers that also recognize share-style
// (non-embed) URLs.
type shareMatcher interface {
	MatchShare(hostPath string) bool
}

// Codec dispatches detect, parse, build and traits to the registered
// handlers. It is immutable once built.
type Codec struct {
	handlers []Handler
	byName   map[Provider]Handler
	fallback Handler
}

// NewCodec builds a codec. Handlers are consulted in the given order during
// detection. The generic handler is always registered first.
func NewCodec(handlers ...Handler) *Codec {
	c := &Codec{
		byName:   make(map[Provider]Handler),
		fallback: genericHandler{},
	}
	c.register(c.fallback)
	for _, h := range handlers {
		c.register(h)
	}
	return c
}

func (c *Codec) register(h Handler) {
	if _, ok := c.byName[h.Provider()]; ok {
		return
	}
	c.handlers = append(c.handlers, h)
	c.byName[h.Provider()] = h
}

// DefaultCodec returns a codec with YouTube, Vimeo and SproutVideo using
// their standard embed hosts.
func DefaultCodec() *Codec {
	return NewCodec(
		NewYouTube(DefaultYouTubeBase),
		NewVimeo(DefaultVimeoBase),
		NewSproutVideo(DefaultSproutVideoBase, false),
	)
}

// Handler returns the handler for p, or the generic handler when p is not
// registered.
func (c *Codec) Handler(p Provider) Handler {
	if h, ok := c.byName[p]; ok {
		return h
	}
	return c.fallback
}

// Providers lists the registered providers in registration order.
func (c *Codec) Providers() []Provider {
	out := make([]Provider, 0, len(c.handlers))
	for _, h := range c.handlers {
		out = append(out, h.Provider())
	}
	return out
}

// Detect classifies a raw URL. The first matching embed signature wins, then
// share-style URLs are tried. Anything else is generic.
func (c *Codec) Detect(src string) Provider {
	hp := hostPath(src)
	if hp == "" {
		return Generic
	}
	if p, ok := c.matchSignature(hp); ok {
		return p
	}
	for _, h := range c.handlers {
		if sm, ok := h.(shareMatcher); ok && sm.MatchShare(hp) {
			return h.Provider()
		}
	}
	return Generic
}

// DetectElement reports whether an element is a video and, if so, which
// provider serves it. Only native video tags and iframes whose src carries a
// provider embed signature qualify.
func (c *Codec) DetectElement(el Element) (Detection, bool) {
	tag := strings.ToUpper(strings.TrimSpace(el.TagName))
	p, matched := c.matchSignature(hostPath(el.Src))

	switch {
	case tag == "VIDEO":
	case tag == "IFRAME" && matched:
	default:
		return Detection{}, false
	}

	d := Detection{Provider: Generic, Src: el.Src}
	if matched {
		d.Provider = p
	}
	return d, true
}

func (c *Codec) matchSignature(hp string) (Provider, bool) {
	if hp == "" {
		return "", false
	}
	for _, h := range c.handlers {
		if sig := h.Signature(); sig != nil && sig.MatchString(hp) {
			return h.Provider(), true
		}
	}
	return "", false
}

// Parse extracts a field set from src using the handler for p.
func (c *Codec) Parse(p Provider, src string) FieldSet {
	return c.Handler(p).Parse(src)
}

// Build renders the embed URL for fs.
func (c *Codec) Build(fs FieldSet) string {
	return c.Handler(fs.Provider).Build(fs)
}

// TraitsFor returns the ordered traits for p and the render hint that goes
// with them.
func (c *Codec) TraitsFor(p Provider) ([]Trait, RenderHint) {
	h := c.Handler(p)
	return h.Traits(c.ProviderTrait()), h.Hint()
}

// ProviderTrait is the provider select, with one option per registered
// handler.
func (c *Codec) ProviderTrait() Trait {
	opts := make([]Option, 0, len(c.handlers))
	for _, h := range c.handlers {
		opts = append(opts, Option{Value: string(h.Provider()), Name: h.Name()})
	}
	return Trait{Label: "Provider", Name: FieldProvider, Kind: KindSelect, Options: opts}
}

var defaultCodec = DefaultCodec()

// Detect classifies src with the default codec.
func Detect(src string) Provider { return defaultCodec.Detect(src) }

// DetectElement classifies el with the default codec.
func DetectElement(el Element) (Detection, bool) { return defaultCodec.DetectElement(el) }

// Parse parses src with the default codec.
func Parse(p Provider, src string) FieldSet { return defaultCodec.Parse(p, src) }

// Build renders fs with the default codec.
func Build(fs FieldSet) string { return defaultCodec.Build(fs) }

// TraitsFor resolves traits with the default codec.
func TraitsFor(p Provider) ([]Trait, RenderHint) { return defaultCodec.TraitsFor(p) }

// hostPath reduces a URL to its lower-cased host and path, without scheme,
// query or fragment. Protocol-relative and scheme-less inputs are accepted.
func hostPath(raw string) string {
	s := strings.TrimSpace(raw)
	if i := strings.IndexAny(s, "?#"); i >= 0 {
		s = s[:i]
	}
	if s == "" {
		return ""
	}

	if !strings.HasPrefix(s, "//") && !strings.Contains(s, "://") {
		s = "//" + s
	}
	u, err := url.Parse(s)
	if err != nil || u.Hostname() == "" {
		return ""
	}
	return strings.ToLower(u.Hostname() + u.Path)
}
