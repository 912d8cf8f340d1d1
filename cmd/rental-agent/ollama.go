package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joestump/rental-agent/internal/listing"
	"github.com/joestump/rental-agent/internal/ollama"
	"github.com/joestump/rental-agent/internal/posts"
)

func newOllamaCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ollama",
		Short: "Inspect the optional Ollama service",
		Long:  "Ollama is never required: posts always come from templates. These commands only report on it.",
	}
	cmd.AddCommand(newOllamaStatusCmd(), newOllamaModelsCmd(), newOllamaGenerateCmd())
	return cmd
}

func newOllamaStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Check whether Ollama is reachable",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c := ollama.New(cfg)
			up := c.Reachable(cmd.Context())

			out := cmd.OutOrStdout()
			if isJSON() {
				return printJSON(out, map[string]any{"url": c.BaseURL(), "model": c.Model(), "reachable": up})
			}
			if up {
				fmt.Fprintf(out, "✅ Ollama is running at %s\n", c.BaseURL())
			} else {
				fmt.Fprintf(out, "❌ Ollama is not reachable at %s\n", c.BaseURL())
				fmt.Fprintln(out, "Posts are generated from templates either way.")
			}
			return nil
		},
	}
}

func newOllamaModelsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "models",
		Short: "List installed Ollama models",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			models := ollama.New(cfg).ListModels(cmd.Context())
			if models == nil {
				models = []string{}
			}

			out := cmd.OutOrStdout()
			if isJSON() {
				return printJSON(out, models)
			}
			if len(models) == 0 {
				fmt.Fprintln(out, "No models found.")
				return nil
			}
			for _, m := range models {
				fmt.Fprintf(out, "• %s\n", m)
			}
			return nil
		},
	}
}

func newOllamaGenerateCmd() *cobra.Command {
	var (
		prompt string
		theme  string
		campus string
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Send a prompt to Ollama and print the reply",
		Long: "Without --prompt, the embedded listing prompt is rendered for --theme and --campus. " +
			"The reply is printed as-is and never becomes a saved post.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c := ollama.New(cfg)
			if prompt == "" {
				t := posts.CampusProximity
				if theme != "" {
					parsed, err := posts.ParseTheme(theme)
					if err != nil {
						return err
					}
					t = parsed
				}
				var err error
				prompt, err = c.RenderPrompt(ollama.NewPromptData(listing.Default(), t, campus))
				if err != nil {
					return fmt.Errorf("render prompt: %w", err)
				}
			}

			reply := c.Generate(cmd.Context(), prompt)
			if reply == "" {
				return errors.New("no reply from Ollama")
			}

			out := cmd.OutOrStdout()
			if isJSON() {
				return printJSON(out, map[string]string{"model": c.Model(), "prompt": prompt, "response": reply})
			}
			fmt.Fprintln(out, reply)
			return nil
		},
	}

	cmd.Flags().StringVar(&prompt, "prompt", "", "prompt text (default: rendered listing prompt)")
	cmd.Flags().StringVar(&theme, "theme", "", "theme for the rendered prompt")
	cmd.Flags().StringVar(&campus, "campus", listing.CampusUCSB, "campus for the rendered prompt")
	return cmd
}
