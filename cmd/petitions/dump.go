package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"petitions/internal/domain"
	"petitions/internal/petitions"
)

func newDumpCmd(f *flags) *cobra.Command {
	var withBody bool

	cmd := &cobra.Command{
		Use:   "dump",
		Short: "Fetch one feed and print the petition titles",
		Long: `dump runs the same fetch and decode as the interactive list and prints
one title per line. It exits non-zero if the feed cannot be loaded.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*f)
			if err != nil {
				return err
			}
			logger, closeLog, err := newLogger(cfg)
			if err != nil {
				return err
			}
			defer closeLog()

			res := petitions.Load(cmd.Context(), newClient(cfg, logger), cfg.StartMode())
			if res.Err != nil {
				return res.Err
			}
			return writePetitions(cmd.OutOrStdout(), res.Petitions, withBody)
		},
	}

	cmd.Flags().BoolVar(&withBody, "body", false, "Print each petition's body under its title")
	return cmd
}

func writePetitions(w io.Writer, list []domain.Petition, withBody bool) error {
	for _, p := range list {
		if _, err := fmt.Fprintln(w, p.Title); err != nil {
			return err
		}
		if withBody {
			if _, err := fmt.Fprintf(w, "%s\n\n", p.Body); err != nil {
				return err
			}
		}
	}
	return nil
}
