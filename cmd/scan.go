package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"vidembed/internal/scan"
)

var scanCmd = &cobra.Command{
	Use:   "scan <file|https-url|->",
	Short: "Find and classify every video element in an HTML page",
	Args:  cobra.ExactArgs(1),
	RunE:  scanRun,
}

func scanRun(cmd *cobra.Command, args []string) error {
	target := args[0]
	s := scan.New(codec, nil)

	var (
		found []scan.Found
		err   error
	)
	switch {
	case strings.Contains(target, "://"):
		debugf("fetching %s", target)
		found, err = s.URL(target)
	case target == "-":
		found, err = s.Reader(os.Stdin)
	default:
		found, err = scanFile(s, target)
	}
	if err != nil {
		return err
	}
	debugf("found %d video elements", len(found))

	if flagJSON {
		if found == nil {
			found = []scan.Found{}
		}
		return printJSON(found)
	}

	if len(found) == 0 {
		fmt.Println("No video elements found.")
		return nil
	}

	st := styles()
	for i, f := range found {
		if i > 0 {
			fmt.Println()
		}
		fmt.Println(st.Title.Render(fmt.Sprintf("#%d <%s>", f.Index, f.Tag)))
		fmt.Print(fieldRows(f.Fields, codec.Build(f.Fields)))
	}
	return nil
}

func scanFile(s *scan.Scanner, path string) ([]scan.Found, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	return s.Reader(f)
}
