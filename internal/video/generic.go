package video

import "regexp"

// genericHandler covers plain video files played by a native <video> tag.
// It has no signature; the codec falls back to it.
type genericHandler struct{}

func (genericHandler) Provider() Provider        { return Generic }
func (genericHandler) Name() string              { return "HTML5 Source" }
func (genericHandler) Signature() *regexp.Regexp { return nil }
func (genericHandler) Hint() RenderHint          { return TagVideo }

func (genericHandler) Parse(src string) FieldSet {
	fs := NewFieldSet(Generic)
	fs.SourceURL = src
	return fs
}

// Build returns the source unchanged.
func (genericHandler) Build(fs FieldSet) string {
	return fs.SourceURL
}

func (genericHandler) Traits(providerTrait Trait) []Trait {
	return []Trait{
		providerTrait,
		{Label: "Source", Name: FieldSrc, Kind: KindText, Placeholder: "eg. ./media/video.mp4"},
	}
}
