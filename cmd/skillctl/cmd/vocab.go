package cmd

import "github.com/spf13/cobra"

type vocabOutput struct {
	Version string   `json:"version"`
	Count   int      `json:"count"`
	Skills  []string `json:"skills"`
}

func newVocabCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "vocab",
		Short: "Validate and print the skill vocabulary",
		Long:  "Loads the vocabulary (--vocab or the built-in list), exits non-zero on a configuration error, and prints the canonical phrases.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, _, vocab, err := root.service()
			if err != nil {
				return err
			}
			return printJSON(cmd, vocabOutput{
				Version: vocab.Version(),
				Count:   vocab.Len(),
				Skills:  vocab.Phrases(),
			})
		},
	}
}
