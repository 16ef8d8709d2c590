package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/kailas-cloud/skillmatch/internal/config"
	"github.com/kailas-cloud/skillmatch/internal/domain/skill"
	"github.com/kailas-cloud/skillmatch/internal/matcher"
	skilluc "github.com/kailas-cloud/skillmatch/internal/usecase/skill"
	"github.com/kailas-cloud/skillmatch/internal/version"
)

// vocabEnv overrides the default of the --vocab flag.
const vocabEnv = "SKILLMATCH_VOCABULARY"

type rootOptions struct {
	vocabPath string
}

// Execute runs the root command.
func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:           "skillctl",
		Short:         "Extract skills from text and score skill coverage",
		Long:          "Offline skill extraction and matching over local text files, using the same vocabulary as the skillmatch service.",
		Version:       version.String(),
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.PersistentFlags().StringVar(&opts.vocabPath, "vocab", os.Getenv(vocabEnv),
		"vocabulary YAML file (default: built-in list, env "+vocabEnv+")")

	root.AddCommand(newExtractCmd(opts))
	root.AddCommand(newMatchCmd(opts))
	root.AddCommand(newVocabCmd(opts))
	return root
}

// service loads the vocabulary and builds the extraction service.
func (o *rootOptions) service() (*skilluc.Service, *matcher.Matcher, *skill.Vocabulary, error) {
	vocab, err := config.LoadVocabulary(o.vocabPath)
	if err != nil {
		return nil, nil, nil, err
	}
	m := matcher.New(vocab)
	return skilluc.New(vocab, m), m, vocab, nil
}

// readInput reads a file, or stdin when path is "" or "-".
func readInput(cmd *cobra.Command, path string) (string, error) {
	if path == "" || path == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	return string(data), nil
}

func printJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}
