package cmd

import (
	"kitties/worker"
	"kitties/worker/notifier"

	"github.com/fox-one/pkg/logger"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var workerCmd = &cobra.Command{
	Use:   "worker",
	Short: "kitties job worker",
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()
		log := logger.FromContext(ctx)
		ctx = logger.WithContext(ctx, log)

		database := provideDatabase()
		defer database.Close()

		propertyStore := providePropertyStore(database)
		eventStore := provideEventStore(database)
		sink := provideNotifyService()

		workers := []worker.Worker{
			notifier.New(cfg.App.Location, eventStore, sink, propertyStore),
		}

		g, ctx := errgroup.WithContext(ctx)
		for _, w := range workers {
			w := w
			g.Go(func() error {
				return w.Run(ctx)
			})
		}

		if err := g.Wait(); err != nil {
			log.WithError(err).Infoln("workers stopped")
		}
	},
}

func init() {
	rootCmd.AddCommand(workerCmd)
}
