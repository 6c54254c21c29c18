package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/andrescamacho/spacerush-go/internal/application/game/commands"
)

// NewSaveCommand creates the save command with subcommands
func NewSaveCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "save",
		Short: "Write and inspect saves",
		Long: `Write the world to the configured backend or list past saves.

History is only kept by the database backend.

Examples:
  spacerush save now
  spacerush save history --limit 5`,
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "now",
		Short: "Save the world immediately",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			s, err := openSession(ctx, nil)
			if err != nil {
				return err
			}
			defer s.close()

			if s.store == nil {
				return fmt.Errorf("persistence backend is %q, nothing to save to", s.cfg.Persistence.Backend)
			}
			_, err = s.send(ctx, &commands.SaveGameCommand{})
			if errors.Is(err, commands.ErrDeclined) {
				return fmt.Errorf("save failed; run with -v for details")
			}
			if err != nil {
				return err
			}
			fmt.Println("✓ World saved")
			return nil
		},
	})

	var limit int
	history := &cobra.Command{
		Use:   "history",
		Short: "List recent saves",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			s, err := openSession(ctx, nil)
			if err != nil {
				return err
			}
			defer s.close()

			if s.history == nil {
				return fmt.Errorf("save history needs the database backend (current: %s)", s.cfg.Persistence.Backend)
			}
			records, err := s.history.History(ctx, limit)
			if err != nil {
				return err
			}
			if len(records) == 0 {
				fmt.Println("No saves yet")
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "SAVED AT\tCREDITS\tCIV\tSIZE\tCHECKSUM")
			for _, r := range records {
				fmt.Fprintf(w, "%s\t%.0f\t%d\t%d B\t%.12s\n",
					r.SavedAt.Format("2006-01-02 15:04:05"), r.Credits, r.CivLevel, r.SizeBytes, r.Checksum)
			}
			return w.Flush()
		},
	}
	history.Flags().IntVar(&limit, "limit", 10, "Number of saves to list")
	cmd.AddCommand(history)

	return cmd
}
