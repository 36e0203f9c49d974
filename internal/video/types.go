// Package video implements provider detection and the embed URL codec for
// page-builder video components.
package video

import (
	"fmt"
	"strings"
)

// Provider identifies the hosting service behind a video source.
type Provider string

const (
	Generic     = Provider("generic")
	YouTube     = Provider("youtube")
	Vimeo       = Provider("vimeo")
	SproutVideo = Provider("sproutvideo")
)

// providerAliases maps accepted spellings to providers. The two-letter codes
// are the option values page builders use for the provider select.
var providerAliases = map[string]Provider{
	"":            Generic,
	"generic":     Generic,
	"so":          Generic,
	"html5":       Generic,
	"youtube":     YouTube,
	"yt":          YouTube,
	"vimeo":       Vimeo,
	"vi":          Vimeo,
	"sproutvideo": SproutVideo,
	"sprout":      SproutVideo,
	"sv":          SproutVideo,
}

// ParseProvider resolves a provider name or alias.
func ParseProvider(name string) (Provider, error) {
	p, ok := providerAliases[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return "", fmt.Errorf("unknown provider %q (valid: generic, youtube, vimeo, sproutvideo)", name)
	}
	return p, nil
}

func (p Provider) String() string {
	return string(p)
}

// RenderHint tells the rendering side which element to build.
type RenderHint string

const (
	TagVideo  = RenderHint("video")
	TagIframe = RenderHint("iframe")
)

// FieldSet is the parsed state of one video instance.
type FieldSet struct {
	Provider    Provider `json:"provider"`
	PrimaryID   string   `json:"primaryId"`
	SecondaryID string   `json:"secondaryId"`
	Autoplay    bool     `json:"autoplay"`
	Loop        bool     `json:"loop"`
	Controls    bool     `json:"controls"`
	SourceURL   string   `json:"sourceUrl"`
}

// NewFieldSet returns the default field set for a provider.
func NewFieldSet(p Provider) FieldSet {
	return FieldSet{Provider: p, Controls: true}
}

// Element is the minimal description of a DOM element a host hands over
// for classification.
type Element struct {
	TagName string
	Src     string
}

// Detection is the result of classifying an element as a video.
type Detection struct {
	Provider Provider `json:"provider"`
	Src      string   `json:"src,omitempty"`
}

// TraitKind is the input widget a trait is edited with.
type TraitKind string

const (
	KindText     = TraitKind("text")
	KindCheckbox = TraitKind("checkbox")
	KindSelect   = TraitKind("select")
)

// Option is one choice of a select trait.
type Option struct {
	Value string `json:"value"`
	Name  string `json:"name"`
}

// Trait describes one editor-facing field.
type Trait struct {
	Label       string    `json:"label"`
	Name        string    `json:"name"`
	Kind        TraitKind `json:"kind"`
	Placeholder string    `json:"placeholder,omitempty"`
	Options     []Option  `json:"options,omitempty"`
}

// Trait field names shared across providers.
const (
	FieldProvider = "provider"
	FieldSrc      = "src"
	FieldVideoID  = "videoId"
	FieldAutoplay = "autoplay"
	FieldLoop     = "loop"
	FieldControls = "controls"
)

func autoplayTrait() Trait {
	return Trait{Label: "Autoplay", Name: FieldAutoplay, Kind: KindCheckbox}
}

func loopTrait() Trait {
	return Trait{Label: "Loop", Name: FieldLoop, Kind: KindCheckbox}
}

func controlsTrait() Trait {
	return Trait{Label: "Controls", Name: FieldControls, Kind: KindCheckbox}
}

func videoIDTrait(placeholder string) Trait {
	return Trait{Label: "Video ID", Name: FieldVideoID, Kind: KindText, Placeholder: placeholder}
}
