package cmd

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"vidembed/internal/ui"
	"vidembed/internal/video"
)

var editCmd = &cobra.Command{
	Use:   "edit [url]",
	Short: "Edit a video's settings interactively",
	Long: `Open the video settings panel for a URL (or an empty SproutVideo embed)
and print the resulting embed URL and element when done. Leaving with esc
prints nothing.`,
	Args: cobra.MaximumNArgs(1),
	RunE: editRun,
}

func editRun(cmd *cobra.Command, args []string) error {
	if !isTerminal(os.Stdin) || !isTerminal(os.Stdout) {
		return fmt.Errorf("edit needs an interactive terminal")
	}

	var v *video.Video
	if len(args) == 1 {
		v = video.New(codec, args[0])
	} else {
		v = video.New(codec, "")
		v.SetProvider(video.SproutVideo)
	}
	debugf("editing %+v", v.Fields())

	final, err := tea.NewProgram(ui.NewEditor(v, styles())).Run()
	if err != nil {
		return fmt.Errorf("running editor: %w", err)
	}

	ed := final.(ui.Editor)
	if ed.Cancelled() {
		debugf("edit cancelled")
		return nil
	}
	v = ed.Video()
	out, err := v.HTML()
	if err != nil {
		return err
	}

	if flagJSON {
		return printJSON(struct {
			Fields video.FieldSet   `json:"fields"`
			Hint   video.RenderHint `json:"hint"`
			HTML   string           `json:"html"`
		}{v.Fields(), v.Hint(), out})
	}
	fmt.Println(v.EmbedURL())
	fmt.Println(out)
	return nil
}
