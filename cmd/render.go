package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"vidembed/internal/video"
)

var renderCmd = &cobra.Command{
	Use:   "render <url>",
	Short: "Render the HTML element for a video URL",
	Args:  cobra.ExactArgs(1),
	RunE:  renderRun,
}

func renderRun(cmd *cobra.Command, args []string) error {
	v := video.New(codec, args[0])
	debugf("rendering %s as <%s>", v.Fields().Provider, v.Hint())

	out, err := v.HTML()
	if err != nil {
		return err
	}

	if flagJSON {
		return printJSON(struct {
			Hint video.RenderHint `json:"hint"`
			HTML string           `json:"html"`
		}{v.Hint(), out})
	}
	fmt.Println(out)
	return nil
}
