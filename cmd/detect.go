package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"vidembed/internal/video"
)

var flagTag string

var detectCmd = &cobra.Command{
	Use:   "detect <url>",
	Short: "Detect the provider of a video URL",
	Long: `Detect the hosting provider of a URL. With --tag the URL is treated as
the src of an element and the element gate applies: only <video> tags and
<iframe> tags carrying a provider embed URL are videos.`,
	Args: cobra.ExactArgs(1),
	RunE: detectRun,
}

func init() {
	detectCmd.Flags().StringVar(&flagTag, "tag", "", "Element tag name (video, iframe, ...)")
}

func detectRun(cmd *cobra.Command, args []string) error {
	src := args[0]

	if flagTag == "" {
		p := codec.Detect(src)
		debugf("detected %s for %s", p, src)
		if flagJSON {
			return printJSON(video.Detection{Provider: p, Src: src})
		}
		fmt.Println(p)
		return nil
	}

	d, ok := codec.DetectElement(video.Element{TagName: flagTag, Src: src})
	if flagJSON {
		return printJSON(struct {
			Video     bool             `json:"video"`
			Detection *video.Detection `json:"detection,omitempty"`
		}{ok, detectionOrNil(d, ok)})
	}
	if !ok {
		fmt.Println("not a video")
		return nil
	}
	fmt.Println(d.Provider)
	return nil
}

func detectionOrNil(d video.Detection, ok bool) *video.Detection {
	if !ok {
		return nil
	}
	return &d
}
