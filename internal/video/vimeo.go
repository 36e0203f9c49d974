package video

import (
	"net/url"
	"regexp"
)

// DefaultVimeoBase is the Vimeo player host template.
const DefaultVimeoBase = "https://player.vimeo.com/video/"

var (
	vimeoSignature = regexp.MustCompile(`^player\.vimeo\.com/video(/|$)`)
	vimeoShare     = regexp.MustCompile(`^(www\.)?vimeo\.com/[0-9]+(/|$)`)
)

// VimeoHandler implements Handler for Vimeo player embeds. Unlisted videos
// carry a privacy hash, kept as the secondary id.
type VimeoHandler struct {
	base string
}

// NewVimeo creates a Vimeo handler rooted at base.
func NewVimeo(base string) *VimeoHandler {
	return &VimeoHandler{base: base}
}

func (h *VimeoHandler) Provider() Provider        { return Vimeo }
func (h *VimeoHandler) Name() string              { return "Vimeo" }
func (h *VimeoHandler) Signature() *regexp.Regexp { return vimeoSignature }
func (h *VimeoHandler) Hint() RenderHint          { return TagIframe }

// MatchShare recognizes vimeo.com/<id> links.
func (h *VimeoHandler) MatchShare(hp string) bool {
	return vimeoShare.MatchString(hp)
}

func (h *VimeoHandler) Parse(src string) FieldSet {
	path, q := splitSource(src)

	fs := NewFieldSet(Vimeo)
	fs.SourceURL = src

	if vimeoShare.MatchString(hostPath(src)) {
		// vimeo.com/<id>/<hash>
		segs := lastSegments(path, 2)
		if isDigits(segs[1]) {
			fs.PrimaryID = segs[1]
		} else {
			fs.PrimaryID, fs.SecondaryID = segs[0], segs[1]
		}
	} else {
		fs.PrimaryID = lastSegments(path, 1)[0]
		fs.SecondaryID = q.Get("h")
	}

	fs.Autoplay = numericFlag(q, "autoplay", false)
	fs.Loop = numericFlag(q, "loop", false)
	fs.Controls = numericFlag(q, "controls", true)
	return fs
}

func (h *VimeoHandler) Build(fs FieldSet) string {
	var hash, autoplay, loop, controls string
	if fs.SecondaryID != "" {
		hash = "h=" + url.QueryEscape(fs.SecondaryID)
	}
	if fs.Autoplay {
		autoplay = "autoplay=1"
	}
	if fs.Loop {
		loop = "loop=1"
	}
	if !fs.Controls {
		controls = "controls=0"
	}
	return joinQuery(h.base+fs.PrimaryID, hash, autoplay, loop, controls)
}

func (h *VimeoHandler) Traits(providerTrait Trait) []Trait {
	return []Trait{
		providerTrait,
		videoIDTrait("eg. 123456789"),
		autoplayTrait(),
		loopTrait(),
		controlsTrait(),
	}
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
