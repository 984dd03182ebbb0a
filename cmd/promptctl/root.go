package main

import (
	"fmt"
	"strings"

	"github.com/dennysfredericci/gosu-prompt-generator/config"
	"github.com/dennysfredericci/gosu-prompt-generator/internal/bootstrap"
	"github.com/dennysfredericci/gosu-prompt-generator/internal/generator/service"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "promptctl",
		Short:        "Render Gosu expert prompts from the command line",
		SilenceUsage: true,
	}
	root.AddCommand(newGenerateCmd())
	return root
}

func newGenerateCmd() *cobra.Command {
	var backend string

	cmd := &cobra.Command{
		Use:   "generate <question>",
		Short: "Render the prompt for a question using the configured augmentor",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if backend != "" {
				cfg.Augmentor.Backend = strings.ToLower(backend)
				if err := cfg.Validate(); err != nil {
					return err
				}
			}

			aug, err := bootstrap.NewAugmentor(cfg.Augmentor)
			if err != nil {
				return err
			}

			prompt, err := service.NewPromptService(aug).Generate(cmd.Context(), strings.Join(args, " "))
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), prompt)
			return err
		},
	}
	cmd.Flags().StringVar(&backend, "backend", "", "override AUGMENTOR_BACKEND (remote or snippets)")
	return cmd
}
