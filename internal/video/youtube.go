package video

import (
	"regexp"
	"strings"
)

// DefaultYouTubeBase is the YouTube embed host template.
const DefaultYouTubeBase = "https://www.youtube.com/embed/"

var (
	youTubeSignature = regexp.MustCompile(`^([a-z0-9-]+\.)?youtube(-nocookie)?\.com/embed(/|$)`)
	youTubeWatch     = regexp.MustCompile(`^([a-z0-9-]+\.)?youtube\.com/(watch|shorts/)`)
	youTubeShort     = regexp.MustCompile(`^youtu\.be/[^/]+`)
)

// YouTubeHandler implements Handler for YouTube embeds.
type YouTubeHandler struct {
	base string
}

// NewYouTube creates a YouTube handler rooted at base.
func NewYouTube(base string) *YouTubeHandler {
	return &YouTubeHandler{base: base}
}

func (h *YouTubeHandler) Provider() Provider        { return YouTube }
func (h *YouTubeHandler) Name() string              { return "Youtube" }
func (h *YouTubeHandler) Signature() *regexp.Regexp { return youTubeSignature }
func (h *YouTubeHandler) Hint() RenderHint          { return TagIframe }

// MatchShare recognizes watch, shorts and youtu.be links.
func (h *YouTubeHandler) MatchShare(hp string) bool {
	return youTubeWatch.MatchString(hp) || youTubeShort.MatchString(hp)
}

// Parse accepts embed URLs as well as watch and youtu.be links.
func (h *YouTubeHandler) Parse(src string) FieldSet {
	path, q := splitSource(src)

	fs := NewFieldSet(YouTube)
	fs.SourceURL = src

	if v := q.Get("v"); v != "" && strings.HasSuffix(path, "/watch") {
		fs.PrimaryID = v
	} else {
		fs.PrimaryID = lastSegments(path, 1)[0]
	}

	fs.Autoplay = numericFlag(q, "autoplay", false)
	fs.Loop = numericFlag(q, "loop", false)
	fs.Controls = numericFlag(q, "controls", true)
	return fs
}

// Build renders the embed URL. Looping a single video needs the playlist
// parameter set to the same id.
func (h *YouTubeHandler) Build(fs FieldSet) string {
	var autoplay, controls, loop string
	if fs.Autoplay {
		autoplay = "autoplay=1"
	}
	if !fs.Controls {
		controls = "controls=0"
	}
	if fs.Loop {
		loop = "loop=1&playlist=" + fs.PrimaryID
	}
	return joinQuery(h.base+fs.PrimaryID, autoplay, controls, loop)
}

func (h *YouTubeHandler) Traits(providerTrait Trait) []Trait {
	return []Trait{
		providerTrait,
		videoIDTrait("eg. jNQXAC9IVRw"),
		autoplayTrait(),
		controlsTrait(),
		loopTrait(),
	}
}
