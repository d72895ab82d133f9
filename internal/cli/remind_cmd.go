package cli

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alexanderramin/lexibox/internal/remind"
	"github.com/spf13/cobra"
)

func newRemindCmd(app *App) *cobra.Command {
	var every time.Duration
	var once bool

	cmd := &cobra.Command{
		Use:   "remind",
		Short: "Print the number of due words on an interval until interrupted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("every") && app.RemindEvery > 0 {
				every = app.RemindEvery
			}
			if every < time.Minute && !once {
				return fmt.Errorf("--every must be at least 1m, got %s", every)
			}

			r := remind.New(app.Study, cmd.OutOrStdout(), every, app.logger())
			if once {
				_, err := r.Check(cmd.Context())
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return r.Run(ctx)
		},
	}

	cmd.Flags().DurationVar(&every, "every", time.Hour, "How often to check")
	cmd.Flags().BoolVar(&once, "once", false, "Check once and exit")
	return cmd
}
