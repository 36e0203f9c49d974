package video

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Attributes returns the attributes of the element a field set renders to.
// Iframes never carry playback attributes: the provider reads those from the
// embed URL. Native videos get them as boolean attributes.
func Attributes(fs FieldSet, hint RenderHint) []html.Attribute {
	if hint == TagIframe {
		return []html.Attribute{
			{Key: "src", Val: fs.SourceURL},
			{Key: "frameborder", Val: "0"},
			{Key: "allowfullscreen", Val: "true"},
		}
	}

	var attrs []html.Attribute
	if fs.SourceURL != "" {
		attrs = append(attrs, html.Attribute{Key: "src", Val: fs.SourceURL})
	}
	if fs.Autoplay {
		attrs = append(attrs, html.Attribute{Key: "autoplay"})
	}
	if fs.Loop {
		attrs = append(attrs, html.Attribute{Key: "loop"})
	}
	if fs.Controls {
		attrs = append(attrs, html.Attribute{Key: "controls"})
	}
	return attrs
}

// Node builds the element for a field set.
func Node(fs FieldSet, hint RenderHint) *html.Node {
	n := &html.Node{
		Type:     html.ElementNode,
		Data:     "video",
		DataAtom: atom.Video,
		Attr:     Attributes(fs, hint),
	}
	if hint == TagIframe {
		n.Data, n.DataAtom = "iframe", atom.Iframe
	}
	return n
}

// RenderHTML serializes the element for a field set.
func RenderHTML(fs FieldSet, hint RenderHint) (string, error) {
	var b strings.Builder
	if err := html.Render(&b, Node(fs, hint)); err != nil {
		return "", fmt.Errorf("rendering %s element: %w", hint, err)
	}
	return b.String(), nil
}

// HTML serializes the component's element.
func (v *Video) HTML() (string, error) {
	return RenderHTML(v.fields, v.hint)
}
