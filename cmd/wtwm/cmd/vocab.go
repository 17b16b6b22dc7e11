package cmd

import (
	"encoding/json"
	"fmt"

	"wtwm/internal/core/vocab"
	"wtwm/internal/platform/config"

	"github.com/spf13/cobra"
)

func newVocabCmd() *cobra.Command {
	var (
		path   string
		format string
	)
	c := &cobra.Command{
		Use:   "vocab",
		Short: "Print the effective vocabulary after normalization",
		Long:  "Loads the vocabulary the way scan does (folded, deduplicated, short patterns dropped) and prints it.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if path == "" {
				path = envVocabPath()
			}
			v, err := vocab.LoadFile(path)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			if format == "json" {
				return json.NewEncoder(w).Encode(v)
			}
			for _, p := range v {
				if _, err := fmt.Fprintf(w, "%s\t%s\n", p.Text, p.Category); err != nil {
					return err
				}
			}
			return nil
		},
	}
	c.Flags().StringVar(&path, "vocab", "", "vocabulary file (.txt or .yaml); built-in when empty")
	c.Flags().StringVarP(&format, "format", "f", "text", "output format: text|json")
	return c
}

func envVocabPath() string {
	return config.New().Prefix("CORE_RECOGNIZE_").MayString("VOCAB_PATH", "")
}
