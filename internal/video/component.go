package video

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/net/html"
)

// Video is the state a page-builder video component keeps: one field set
// plus the traits and render hint of its current provider. Every mutation
// rebuilds the source URL. A Video is not safe for concurrent use.
type Video struct {
	codec  *Codec
	fields FieldSet
	traits []Trait
	hint   RenderHint
}

// New creates a component from a host-supplied source URL. The provider is
// detected from the URL. Share links (youtu.be, watch pages, vimeo.com) are
// rewritten to the provider's embed URL; embed URLs are kept as given.
func New(codec *Codec, src string) *Video {
	p := codec.Detect(src)
	v := &Video{codec: codec}
	v.fields = codec.Parse(p, src)
	v.loadTraits()
	if sig := codec.Handler(p).Signature(); sig != nil && !sig.MatchString(hostPath(src)) {
		v.rebuild()
	}
	return v
}

// FromElement creates a component for an element the host found in its
// document. ok is false when the element is not a video.
func FromElement(codec *Codec, el Element) (*Video, bool) {
	d, ok := codec.DetectElement(el)
	if !ok {
		return nil, false
	}
	v := &Video{codec: codec}
	v.fields = codec.Parse(d.Provider, d.Src)
	v.loadTraits()
	return v, true
}

// Fields returns a copy of the current field set.
func (v *Video) Fields() FieldSet { return v.fields }

// Traits returns the traits of the current provider.
func (v *Video) Traits() []Trait { return v.traits }

// Hint returns the element the current provider renders into.
func (v *Video) Hint() RenderHint { return v.hint }

// EmbedURL is the URL to place in the element's src.
func (v *Video) EmbedURL() string { return v.fields.SourceURL }

// SetSource replaces the source URL and re-parses it with the current
// provider.
func (v *Video) SetSource(src string) {
	v.fields = v.codec.Parse(v.fields.Provider, src)
}

// SetProvider switches provider, keeping ids and flags, and reloads traits.
func (v *Video) SetProvider(p Provider) {
	if p == v.fields.Provider {
		return
	}
	v.fields.Provider = v.codec.Handler(p).Provider()
	if v.fields.Provider == SproutVideo && v.fields.SecondaryID == "" {
		v.fields.SecondaryID = v.fields.PrimaryID
	}
	v.loadTraits()
	v.rebuild()
}

// Set assigns a field by trait name. Checkbox values must be valid booleans.
func (v *Video) Set(name, value string) error {
	switch name {
	case FieldProvider:
		p, err := ParseProvider(value)
		if err != nil {
			return err
		}
		v.SetProvider(p)
		return nil
	case FieldSrc:
		v.SetSource(value)
		return nil
	case FieldVideoID:
		v.setID(value)
	case FieldAutoplay, FieldLoop, FieldControls:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid value %q for %s: %w", value, name, err)
		}
		*v.flag(name) = b
	default:
		return fmt.Errorf("unknown field %q", name)
	}
	v.rebuild()
	return nil
}

// Toggle flips a checkbox field.
func (v *Video) Toggle(name string) error {
	f := v.flag(name)
	if f == nil {
		return fmt.Errorf("field %q is not a checkbox", name)
	}
	*f = !*f
	v.rebuild()
	return nil
}

// Value returns the current value of a trait field as text.
func (v *Video) Value(name string) string {
	switch name {
	case FieldProvider:
		return string(v.fields.Provider)
	case FieldSrc:
		return v.fields.SourceURL
	case FieldVideoID:
		if v.fields.Provider == SproutVideo && v.fields.SecondaryID != v.fields.PrimaryID {
			return v.fields.PrimaryID + "/" + v.fields.SecondaryID
		}
		return v.fields.PrimaryID
	}
	if f := v.flag(name); f != nil {
		return strconv.FormatBool(*f)
	}
	return ""
}

// Attributes returns the element attributes for the current state.
func (v *Video) Attributes() []html.Attribute {
	return Attributes(v.fields, v.hint)
}

// setID assigns the video id trait. SproutVideo ids typed as "a/b" fill
// both ids; a single id is used for both, as Parse does.
func (v *Video) setID(value string) {
	if v.fields.Provider != SproutVideo {
		v.fields.PrimaryID = value
		return
	}
	if i := strings.LastIndexByte(value, '/'); i >= 0 {
		v.fields.PrimaryID, v.fields.SecondaryID = value[:i], value[i+1:]
		return
	}
	v.fields.PrimaryID, v.fields.SecondaryID = value, value
}

func (v *Video) flag(name string) *bool {
	switch name {
	case FieldAutoplay:
		return &v.fields.Autoplay
	case FieldLoop:
		return &v.fields.Loop
	case FieldControls:
		return &v.fields.Controls
	}
	return nil
}

func (v *Video) loadTraits() {
	v.traits, v.hint = v.codec.TraitsFor(v.fields.Provider)
}

// rebuild re-derives the source URL. Generic sources are kept as typed.
func (v *Video) rebuild() {
	if v.fields.Provider == Generic {
		return
	}
	v.fields.SourceURL = v.codec.Build(v.fields)
}
