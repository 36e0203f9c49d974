// Package scan finds video elements in HTML documents and classifies them
// with the video codec.
package scan

import (
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"vidembed/internal/httputil"
	"vidembed/internal/video"
)

// Found is one video element discovered in a document.
type Found struct {
	Index     int              `json:"index"`
	Tag       string           `json:"tag"`
	Detection video.Detection  `json:"detection"`
	Fields    video.FieldSet   `json:"fields"`
	Hint      video.RenderHint `json:"hint"`
}

// Scanner classifies elements with a codec.
type Scanner struct {
	codec  *video.Codec
	client *http.Client
}

// New creates a scanner. A nil codec means video.DefaultCodec and a nil
// client means httputil.NewClient.
func New(codec *video.Codec, client *http.Client) *Scanner {
	if codec == nil {
		codec = video.DefaultCodec()
	}
	if client == nil {
		client = httputil.NewClient()
	}
	return &Scanner{codec: codec, client: client}
}

// Document walks every video and iframe element in document order.
// Elements that are not videos (iframes without a provider signature) are
// skipped.
func (s *Scanner) Document(doc *goquery.Document) []Found {
	var found []Found

	doc.Find("video, iframe").Each(func(i int, sel *goquery.Selection) {
		el := video.Element{
			TagName: strings.ToUpper(goquery.NodeName(sel)),
			Src:     elementSrc(sel),
		}

		d, ok := s.codec.DetectElement(el)
		if !ok {
			return
		}

		fs := s.codec.Parse(d.Provider, d.Src)
		_, hint := s.codec.TraitsFor(d.Provider)
		found = append(found, Found{
			Index:     i,
			Tag:       strings.ToLower(el.TagName),
			Detection: d,
			Fields:    fs,
			Hint:      hint,
		})
	})

	return found
}

// Reader parses HTML from r and scans it.
func (s *Scanner) Reader(r io.Reader) ([]Found, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}
	return s.Document(doc), nil
}

// URL fetches an HTTPS page and scans it.
func (s *Scanner) URL(rawURL string) ([]Found, error) {
	resp, err := httputil.Get(s.client, rawURL)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", rawURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d for %s", resp.StatusCode, rawURL)
	}

	return s.Reader(io.LimitReader(resp.Body, httputil.MaxBodySize))
}

// elementSrc returns the src attribute, falling back to the first <source>
// child for <video> elements.
func elementSrc(sel *goquery.Selection) string {
	if src, ok := sel.Attr("src"); ok {
		return strings.TrimSpace(src)
	}
	if goquery.NodeName(sel) == "video" {
		return strings.TrimSpace(sel.Find("source[src]").First().AttrOr("src", ""))
	}
	return ""
}
