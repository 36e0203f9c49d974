package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"vidembed/internal/video"
)

var traitsCmd = &cobra.Command{
	Use:   "traits <provider>",
	Short: "List the editor traits and render hint for a provider",
	Args:  cobra.ExactArgs(1),
	RunE:  traitsRun,
}

func traitsRun(cmd *cobra.Command, args []string) error {
	p, err := video.ParseProvider(args[0])
	if err != nil {
		return err
	}

	traits, hint := codec.TraitsFor(p)

	if flagJSON {
		return printJSON(struct {
			Provider video.Provider   `json:"provider"`
			Hint     video.RenderHint `json:"hint"`
			Traits   []video.Trait    `json:"traits"`
		}{p, hint, traits})
	}

	s := styles()
	fmt.Println(s.Title.Render(fmt.Sprintf("%s <%s>", p, hint)))
	rows := make([][2]string, 0, len(traits))
	for _, t := range traits {
		desc := fmt.Sprintf("%s (%s)", t.Label, t.Kind)
		switch {
		case len(t.Options) > 0:
			names := make([]string, len(t.Options))
			for i, o := range t.Options {
				names[i] = o.Value
			}
			desc += " " + strings.Join(names, "|")
		case t.Placeholder != "":
			desc += " " + s.Muted.Render(t.Placeholder)
		}
		rows = append(rows, [2]string{t.Name, desc})
	}
	fmt.Print(s.Pairs(rows))
	return nil
}
