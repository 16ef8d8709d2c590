package cmd

import (
	"github.com/spf13/cobra"

	"github.com/kailas-cloud/skillmatch/internal/domain/text"
	"github.com/kailas-cloud/skillmatch/internal/matcher"
)

type extractOutput struct {
	Skills      []string             `json:"skills"`
	Tokens      int                  `json:"tokens,omitempty"`
	Occurrences []matcher.Occurrence `json:"occurrences,omitempty"`
}

func newExtractCmd(root *rootOptions) *cobra.Command {
	var explain bool

	cmd := &cobra.Command{
		Use:   "extract [file|-]",
		Short: "List the vocabulary skills found in a text",
		Long:  "Reads a file (or stdin when the argument is missing or \"-\") and prints the skills it mentions, sorted.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, m, _, err := root.service()
			if err != nil {
				return err
			}

			path := ""
			if len(args) == 1 {
				path = args[0]
			}
			raw, err := readInput(cmd, path)
			if err != nil {
				return err
			}

			skills, err := svc.ExtractSkills(raw)
			if err != nil {
				return err
			}
			out := extractOutput{Skills: skills}
			if explain {
				normalized := text.Normalize(raw)
				out.Tokens = len(text.Tokens(normalized))
				out.Occurrences = m.Occurrences(normalized)
			}
			return printJSON(cmd, out)
		},
	}
	cmd.Flags().BoolVar(&explain, "explain", false, "include token count and match positions in the normalized text")
	return cmd
}
