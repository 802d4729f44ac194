package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/AnTengye/contratos/config"
	"github.com/AnTengye/contratos/generator"
	"github.com/AnTengye/contratos/model"
	"github.com/AnTengye/contratos/pkg/logger"
	"github.com/spf13/cobra"
)

// settings shared by every subcommand
type settings struct {
	configPath string
	logLevel   string
	document   config.DocumentConfig
}

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	s := &settings{}
	root := &cobra.Command{
		Use:          "contractgen",
		Short:        "Generate Spanish residential lease contracts offline",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger.InitWriter(cmd.ErrOrStderr(), &logger.Config{Level: s.logLevel})
			if s.configPath == "" {
				s.document = config.DocumentConfig{Timezone: "America/Argentina/Buenos_Aires"}
				return nil
			}
			cfg, err := config.Load(s.configPath)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			s.document = cfg.Document
			return nil
		},
	}

	root.PersistentFlags().StringVarP(&s.configPath, "config", "c", "", "YAML config with the document section (optional)")
	root.PersistentFlags().StringVar(&s.logLevel, "log-level", "warn", "debug, info, warn or error")

	root.AddCommand(renderCmd(s), clausesCmd(), filenameCmd())
	return root
}

// readAggregate decodes a contract aggregate from path, "-" meaning stdin
func readAggregate(cmd *cobra.Command, path string) (*model.ContractAggregate, error) {
	var r io.Reader
	if path == "" || path == "-" {
		r = cmd.InOrStdin()
	} else {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}

	var agg model.ContractAggregate
	if err := json.NewDecoder(r).Decode(&agg); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return &agg, nil
}

// options builds generator options for the given date ("" means now)
func (s *settings) options(date string) (generator.Options, error) {
	loc, err := time.LoadLocation(s.document.Timezone)
	if err != nil {
		loc = time.UTC
	}
	today := time.Now().In(loc)
	if date != "" {
		today, err = time.ParseInLocation("2006-01-02", date, loc)
		if err != nil {
			return generator.Options{}, fmt.Errorf("invalid --date %q: %w", date, err)
		}
	}
	return generator.Options{
		Today:         today,
		AgencyName:    s.document.AgencyName,
		AgencyAddress: s.document.AgencyAddress,
		Jurisdiction:  s.document.Jurisdiction,
		DefaultCity:   s.document.DefaultCity,
	}, nil
}
