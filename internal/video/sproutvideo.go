package video

import (
	"regexp"
	"strings"
)

// DefaultSproutVideoBase is the SproutVideo embed host template.
const DefaultSproutVideoBase = "//videos.sproutvideo.com/embed/"

var sproutVideoSignature = regexp.MustCompile(`^videos\.sproutvideo\.com/embed(/|$)`)

// SproutVideoHandler implements Handler for SproutVideo embeds, which carry
// two path ids: /embed/<videoId>/<securityToken>.
type SproutVideoHandler struct {
	base      string
	splitPath bool
}

// NewSproutVideo creates a SproutVideo handler rooted at base.
//
// With splitPath false, the trailing path segment is stored as both the
// primary and the secondary id, which is how existing page-builder content
// was parsed. With splitPath true the last two segments are used.
func NewSproutVideo(base string, splitPath bool) *SproutVideoHandler {
	return &SproutVideoHandler{base: base, splitPath: splitPath}
}

func (h *SproutVideoHandler) Provider() Provider        { return SproutVideo }
func (h *SproutVideoHandler) Name() string              { return "Sprout Video" }
func (h *SproutVideoHandler) Signature() *regexp.Regexp { return sproutVideoSignature }
func (h *SproutVideoHandler) Hint() RenderHint          { return TagIframe }

// Parse reads ids from the path and the autoPlay, loop and bigPlayButton
// flags from the query. Flags must be JSON booleans; anything else falls
// back to the default.
func (h *SproutVideoHandler) Parse(src string) FieldSet {
	path, q := splitSource(src)

	fs := NewFieldSet(SproutVideo)
	fs.SourceURL = src

	if h.splitPath {
		ids := lastSegments(path, 2)
		fs.PrimaryID, fs.SecondaryID = ids[0], ids[1]
	} else {
		id := lastSegments(path, 1)[0]
		fs.PrimaryID, fs.SecondaryID = id, id
	}

	fs.Autoplay = flagTrue(q, "autoPlay")
	fs.Loop = flagTrue(q, "loop")
	// bigPlayButton=false hides the player chrome.
	fs.Controls = flagNotFalse(q, "bigPlayButton")
	return fs
}

// Build renders <base><primary>/<secondary>? followed by the flags that
// differ from their defaults. The "?" is always present.
func (h *SproutVideoHandler) Build(fs FieldSet) string {
	var frags []string
	if fs.Autoplay {
		frags = append(frags, "autoPlay=true")
	}
	if !fs.Controls {
		frags = append(frags, "bigPlayButton=false")
	}
	if fs.Loop {
		frags = append(frags, "loop=true")
	}
	return h.base + fs.PrimaryID + "/" + fs.SecondaryID + "?" + strings.Join(frags, "&")
}

func (h *SproutVideoHandler) Traits(providerTrait Trait) []Trait {
	return []Trait{
		providerTrait,
		videoIDTrait("eg. 01234/56789"),
		autoplayTrait(),
		loopTrait(),
		controlsTrait(),
	}
}
