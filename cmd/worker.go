package cmd

import (
	"context"
	"lending/worker"
	"lending/worker/monitor"
	"lending/worker/publisher"
	"sync"

	"github.com/drone/signal"
	"github.com/fox-one/pkg/logger"
	"github.com/spf13/cobra"
)

var workerCmd = &cobra.Command{
	Use:   "worker",
	Short: "lending job worker",
	Run: func(cmd *cobra.Command, args []string) {
		ctx := signal.WithContext(cmd.Context())
		log := logger.FromContext(ctx)
		ctx = logger.WithContext(ctx, log)

		database := provideDatabase()
		defer database.Close()

		redisClient := provideRedis()
		defer redisClient.Close()

		ledgerz := provideLedgerService(database)
		accountz := provideAccountService(ledgerz, provideRatioStore(redisClient))
		propertyStore := providePropertyStore(database)

		spec, _ := cmd.Flags().GetString("monitor.spec")
		jobs := []worker.IJob{
			monitor.New(cfg.App.Location, spec, accountz),
		}

		workers := []worker.Worker{
			publisher.New(provideEventStore(database), provideEventPublisher(), publisher.PropertyCheckpoint(propertyStore)),
		}

		wg := sync.WaitGroup{}
		for _, j := range jobs {
			wg.Add(1)

			go func(job worker.IJob) {
				defer wg.Done()
				if err := worker.Serve(ctx, job); err != nil {
					log.WithError(err).Errorln("job stopped")
				}
			}(j)
		}

		for _, w := range workers {
			wg.Add(1)

			go func(w worker.Worker) {
				defer wg.Done()
				if err := w.Run(ctx); err != nil && err != context.Canceled {
					log.WithError(err).Errorln("worker stopped")
				}
			}(w)
		}

		wg.Wait()
	},
}

func init() {
	rootCmd.AddCommand(workerCmd)
	workerCmd.Flags().String("monitor.spec", monitor.DefaultSpec, "cron spec of the ratio monitor")
}
