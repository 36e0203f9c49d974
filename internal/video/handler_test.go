package video

import "testing"

func TestDetect(t *testing.T) {
	tests := []struct {
		url  string
		want Provider
	}{
		{"//videos.sproutvideo.com/embed/1234/5678?autoPlay=true", SproutVideo},
		{"https://videos.sproutvideo.com/embed/1234/5678", SproutVideo},
		{"videos.sproutvideo.com/embed/1234/5678", SproutVideo},
		{"https://VIDEOS.SproutVideo.com/embed/abc/def", SproutVideo},
		{"https://videos.sproutvideo.com:443/embed/abc/def", SproutVideo},
		{"https://www.youtube.com/embed/jNQXAC9IVRw", YouTube},
		{"https://youtube.com/embed/jNQXAC9IVRw?autoplay=1", YouTube},
		{"https://www.youtube-nocookie.com/embed/jNQXAC9IVRw", YouTube},
		{"https://player.vimeo.com/video/76979871", Vimeo},
		{"https://www.youtube.com/watch?v=jNQXAC9IVRw", YouTube},
		{"https://youtu.be/jNQXAC9IVRw", YouTube},
		{"https://vimeo.com/76979871", Vimeo},
		{"./media/video.mp4", Generic},
		{"/media/video.mp4", Generic},
		{"https://cdn.example.com/clip.webm", Generic},
		{"https://sproutvideo.com/videos/1234", Generic},
		{"https://example.com/videos.sproutvideo.com/embed/1/2", Generic},
		{"", Generic},
		{"%%%", Generic},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			if got := Detect(tt.url); got != tt.want {
				t.Errorf("Detect(%q) = %s, want %s", tt.url, got, tt.want)
			}
		})
	}
}

func TestDetectDisjoint(t *testing.T) {
	// Provider names in the query or path must not leak into detection.
	urls := []string{
		"//videos.sproutvideo.com/embed/1234/5678?ref=youtube.com/embed/x",
		"//videos.sproutvideo.com/embed/player.vimeo.com/video",
		"https://videos.sproutvideo.com/embed/youtube.com/embed?next=player.vimeo.com/video/1",
	}
	for _, u := range urls {
		if got := Detect(u); got != SproutVideo {
			t.Errorf("Detect(%q) = %s, want sproutvideo", u, got)
		}
		d, ok := DetectElement(Element{TagName: "IFRAME", Src: u})
		if !ok || d.Provider != SproutVideo {
			t.Errorf("DetectElement(%q) = %+v, %v", u, d, ok)
		}
	}
}

func TestDetectElement(t *testing.T) {
	tests := []struct {
		name    string
		el      Element
		wantOK  bool
		wantPrv Provider
	}{
		{"native video", Element{TagName: "VIDEO", Src: "./media/video.mp4"}, true, Generic},
		{"native video without src", Element{TagName: "VIDEO"}, true, Generic},
		{"lower case tag", Element{TagName: "video", Src: "a.mp4"}, true, Generic},
		{"sproutvideo iframe", Element{TagName: "IFRAME", Src: "//videos.sproutvideo.com/embed/1/2"}, true, SproutVideo},
		{"youtube iframe", Element{TagName: "IFRAME", Src: "https://www.youtube.com/embed/abc"}, true, YouTube},
		{"vimeo iframe", Element{TagName: "iframe", Src: "https://player.vimeo.com/video/1"}, true, Vimeo},
		{"video tag with provider src", Element{TagName: "VIDEO", Src: "https://www.youtube.com/embed/abc"}, true, YouTube},
		{"unrelated iframe", Element{TagName: "IFRAME", Src: "https://maps.example.com/embed"}, false, ""},
		{"iframe with share url", Element{TagName: "IFRAME", Src: "https://youtu.be/abc"}, false, ""},
		{"div with provider src", Element{TagName: "DIV", Src: "//videos.sproutvideo.com/embed/1/2"}, false, ""},
		{"div with video file", Element{TagName: "DIV", Src: "./media/video.mp4"}, false, ""},
		{"img", Element{TagName: "IMG", Src: "https://www.youtube.com/embed/abc"}, false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, ok := DetectElement(tt.el)
			if ok != tt.wantOK {
				t.Fatalf("DetectElement() ok = %v, want %v", ok, tt.wantOK)
			}
			if !ok {
				return
			}
			if d.Provider != tt.wantPrv {
				t.Errorf("Provider = %s, want %s", d.Provider, tt.wantPrv)
			}
			if d.Src != tt.el.Src {
				t.Errorf("Src = %q, want %q", d.Src, tt.el.Src)
			}
		})
	}
}

func TestParseUnknownProvider(t *testing.T) {
	fs := Parse(Provider("dailymotion"), "https://www.dailymotion.com/embed/video/x7")
	want := FieldSet{Provider: Generic, Controls: true, SourceURL: "https://www.dailymotion.com/embed/video/x7"}
	if fs != want {
		t.Errorf("Parse() = %+v, want %+v", fs, want)
	}
}

func TestTraitsFor(t *testing.T) {
	tests := []struct {
		provider Provider
		names    []string
		hint     RenderHint
	}{
		{Generic, []string{FieldProvider, FieldSrc}, TagVideo},
		{YouTube, []string{FieldProvider, FieldVideoID, FieldAutoplay, FieldControls, FieldLoop}, TagIframe},
		{Vimeo, []string{FieldProvider, FieldVideoID, FieldAutoplay, FieldLoop, FieldControls}, TagIframe},
		{SproutVideo, []string{FieldProvider, FieldVideoID, FieldAutoplay, FieldLoop, FieldControls}, TagIframe},
		{Provider("unknown"), []string{FieldProvider, FieldSrc}, TagVideo},
	}

	for _, tt := range tests {
		t.Run(string(tt.provider), func(t *testing.T) {
			traits, hint := TraitsFor(tt.provider)
			if hint != tt.hint {
				t.Errorf("hint = %s, want %s", hint, tt.hint)
			}
			if len(traits) != len(tt.names) {
				t.Fatalf("got %d traits, want %d", len(traits), len(tt.names))
			}
			for i, name := range tt.names {
				if traits[i].Name != name {
					t.Errorf("traits[%d] = %q, want %q", i, traits[i].Name, name)
				}
			}
		})
	}
}

func TestProviderTraitOptions(t *testing.T) {
	pt := DefaultCodec().ProviderTrait()
	if pt.Kind != KindSelect {
		t.Errorf("kind = %s, want select", pt.Kind)
	}

	want := []Provider{Generic, YouTube, Vimeo, SproutVideo}
	if len(pt.Options) != len(want) {
		t.Fatalf("got %d options, want %d", len(pt.Options), len(want))
	}
	for i, p := range want {
		if pt.Options[i].Value != string(p) {
			t.Errorf("option[%d] = %q, want %q", i, pt.Options[i].Value, p)
		}
	}
}

func TestNewCodecIgnoresDuplicates(t *testing.T) {
	c := NewCodec(NewSproutVideo("//a/", false), NewSproutVideo("//b/", false))
	if got := len(c.Providers()); got != 2 {
		t.Fatalf("providers = %d, want 2", got)
	}
	got := c.Build(FieldSet{Provider: SproutVideo, PrimaryID: "x", SecondaryID: "y", Controls: true})
	if got != "//a/x/y?" {
		t.Errorf("Build() = %q, want first registered handler", got)
	}
}

func TestParseProvider(t *testing.T) {
	tests := []struct {
		in      string
		want    Provider
		wantErr bool
	}{
		{"sv", SproutVideo, false},
		{"SproutVideo", SproutVideo, false},
		{"yt", YouTube, false},
		{"vi", Vimeo, false},
		{"so", Generic, false},
		{"", Generic, false},
		{" vimeo ", Vimeo, false},
		{"dailymotion", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseProvider(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseProvider(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseProvider(%q) = %s, want %s", tt.in, got, tt.want)
			}
		})
	}
}
