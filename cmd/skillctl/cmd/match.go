package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

type matchOutput struct {
	File            string   `json:"file"`
	ExtractedSkills []string `json:"extracted_skills"`
	MatchedSkills   []string `json:"matched_skills"`
	MissingSkills   []string `json:"missing_skills"`
	MatchPercentage int      `json:"match_percentage"`
}

func newMatchCmd(root *rootOptions) *cobra.Command {
	var (
		referencePath string
		jobs          int
	)

	cmd := &cobra.Command{
		Use:   "match --reference FILE CANDIDATE...",
		Short: "Score candidate texts against a reference text",
		Long:  "Extracts skills from the reference and from every candidate file, then prints one result per candidate in argument order.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, _, _, err := root.service()
			if err != nil {
				return err
			}

			refText, err := readInput(cmd, referencePath)
			if err != nil {
				return err
			}
			reference, err := svc.ExtractSkills(refText)
			if err != nil {
				return err
			}

			results := make([]matchOutput, len(args))
			g, ctx := errgroup.WithContext(cmd.Context())
			if jobs > 0 {
				g.SetLimit(jobs)
			}
			for i, path := range args {
				g.Go(func() error {
					// Skip remaining files once one has failed.
					if err := ctx.Err(); err != nil {
						return err
					}
					raw, err := readInput(cmd, path)
					if err != nil {
						return err
					}
					candidate, err := svc.ExtractSkills(raw)
					if err != nil {
						return fmt.Errorf("%s: %w", path, err)
					}
					r := svc.CalculateMatch(candidate, reference)
					results[i] = matchOutput{
						File:            path,
						ExtractedSkills: candidate,
						MatchedSkills:   r.Matched(),
						MissingSkills:   r.Missing(),
						MatchPercentage: r.Percentage(),
					}
					return nil
				})
			}
			if err := g.Wait(); err != nil {
				return err
			}

			return printJSON(cmd, results)
		},
	}
	cmd.Flags().StringVarP(&referencePath, "reference", "r", "", "reference text file, e.g. a job description (\"-\" for stdin)")
	cmd.Flags().IntVarP(&jobs, "jobs", "j", 4, "candidate files processed in parallel")
	_ = cmd.MarkFlagRequired("reference")
	return cmd
}
