package commands

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/AnTengye/contratos/generator"
	"github.com/AnTengye/contratos/layout"
	"github.com/AnTengye/contratos/model"
	"github.com/AnTengye/contratos/service"
	"github.com/spf13/cobra"
)

func renderCmd(s *settings) *cobra.Command {
	var (
		input      string
		output     string
		asText     bool
		date       string
		skipChecks bool
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a contract aggregate (JSON) as PDF or plain text",
		RunE: func(cmd *cobra.Command, args []string) error {
			agg, err := readAggregate(cmd, input)
			if err != nil {
				return err
			}
			if !skipChecks {
				if err := agg.Validate(); err != nil {
					return fmt.Errorf("invalid contract: %w", err)
				}
				if err := model.ValidateOverrideKeys(agg.ClauseOverrides, generator.IsStandardLabel); err != nil {
					return fmt.Errorf("invalid clause_overrides: %w", err)
				}
			}
			opts, err := s.options(date)
			if err != nil {
				return err
			}

			doc := generator.Compose(agg, opts)
			if asText {
				return writeOutput(cmd, output, func(w io.Writer) error {
					_, err := io.WriteString(w, doc.Text())
					return err
				})
			}

			if output == "" {
				output = generator.SuggestFilename(agg)
			}
			cfg := service.LayoutConfig(&s.document)
			pages := layout.NewEngine(cfg, nil).Layout(doc)
			err = writeOutput(cmd, output, func(w io.Writer) error {
				return layout.Render(w, pages, cfg, layout.Metadata{
					Title:     doc.Title,
					Subject:   generator.PropertyAddress(agg.Property),
					Creator:   "contractgen",
					CreatedAt: opts.Today,
				})
			})
			if err != nil {
				return err
			}
			if output != "-" {
				fmt.Fprintf(cmd.ErrOrStderr(), "wrote %s (%d pages)\n", output, len(pages))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "-", "aggregate JSON file, - for stdin")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file, - for stdout (default: suggested file name, or stdout with --text)")
	cmd.Flags().BoolVar(&asText, "text", false, "print the plain-text rendition instead of a PDF")
	cmd.Flags().StringVar(&date, "date", "", "generation date YYYY-MM-DD (default: today)")
	cmd.Flags().BoolVar(&skipChecks, "no-validate", false, "render even when the contract fails validation")
	return cmd
}

// writeOutput runs write against path, or stdout when path is "" or "-"
func writeOutput(cmd *cobra.Command, path string, write func(io.Writer) error) error {
	if path == "" || path == "-" {
		return write(cmd.OutOrStdout())
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
