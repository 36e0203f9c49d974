package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"vidembed/internal/video"
)

var flagParseProvider string

var parseCmd = &cobra.Command{
	Use:   "parse <url>",
	Short: "Parse ids and playback flags from a video URL",
	Args:  cobra.ExactArgs(1),
	RunE:  parseRun,
}

func init() {
	parseCmd.Flags().StringVarP(&flagParseProvider, "provider", "p", "", "Provider to parse as (default: detected)")
}

func parseRun(cmd *cobra.Command, args []string) error {
	src := args[0]

	p := codec.Detect(src)
	if flagParseProvider != "" {
		var err error
		if p, err = video.ParseProvider(flagParseProvider); err != nil {
			return err
		}
	}
	debugf("parsing %s as %s", src, p)

	fs := codec.Parse(p, src)
	embed := codec.Build(fs)

	if flagJSON {
		return printJSON(struct {
			Fields   video.FieldSet `json:"fields"`
			EmbedURL string         `json:"embedUrl"`
		}{fs, embed})
	}

	fmt.Print(fieldRows(fs, embed))
	return nil
}

// fieldRows formats a field set for the terminal.
func fieldRows(fs video.FieldSet, embed string) string {
	rows := [][2]string{{"provider", string(fs.Provider)}}
	if fs.Provider != video.Generic {
		rows = append(rows,
			[2]string{"primary id", fs.PrimaryID},
			[2]string{"secondary id", fs.SecondaryID},
			[2]string{"autoplay", strconv.FormatBool(fs.Autoplay)},
			[2]string{"loop", strconv.FormatBool(fs.Loop)},
			[2]string{"controls", strconv.FormatBool(fs.Controls)},
		)
	}
	rows = append(rows, [2]string{"source", fs.SourceURL}, [2]string{"embed", embed})
	return styles().Pairs(rows)
}
