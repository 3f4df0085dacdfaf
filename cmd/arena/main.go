package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"agentarena/cmd"
	"agentarena/internal/logger"

	_ "github.com/lib/pq"
	"github.com/robfig/cron/v3"
	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "arena",
		Short: "run and manage the trading agent arena",
	}
	rootCmd.AddCommand(serveCmd(), workerCmd(), seedCmd(), cycleCmd(), evolveCmd())

	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}

func serveCmd() *cobra.Command {
	var port int
	c := &cobra.Command{
		Use:   "serve",
		Short: "start the http api",
		RunE: func(_ *cobra.Command, _ []string) error {
			handler, err := cmd.InitializeDependencies()
			if err != nil {
				return err
			}
			defer cmd.CloseDependencies(handler)
			return handler.StartApi(port)
		},
	}
	c.Flags().IntVar(&port, "port", 3009, "port to listen on")
	return c
}

// workerCmd runs the scheduler loop: market cycles every five minutes,
// evolution once a week after Friday close.
func workerCmd() *cobra.Command {
	var cycleSpec, evolveSpec string
	c := &cobra.Command{
		Use:   "worker",
		Short: "run the cycle and evolution scheduler",
		RunE: func(_ *cobra.Command, _ []string) error {
			handler, err := cmd.InitializeDependencies()
			if err != nil {
				return err
			}
			defer cmd.CloseDependencies(handler)

			log := logger.New()
			ctx := context.WithValue(context.Background(), logger.ContextKey, log)

			scheduler := cron.New()
			_, err = scheduler.AddFunc(cycleSpec, func() {
				if _, err := handler.ArenaService.RunCycle(ctx); err != nil {
					log.Errorf("market cycle failed: %v", err)
				}
			})
			if err != nil {
				return err
			}
			_, err = scheduler.AddFunc(evolveSpec, func() {
				if _, err := handler.ArenaService.RunEvolution(ctx); err != nil {
					log.Errorf("evolution failed: %v", err)
				}
			})
			if err != nil {
				return err
			}

			scheduler.Start()
			log.Info("scheduler started")

			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
			<-sigCh

			<-scheduler.Stop().Done()
			log.Info("scheduler stopped")
			return nil
		},
	}
	c.Flags().StringVar(&cycleSpec, "cycle-schedule", "*/5 * * * *", "cron schedule for market cycles")
	c.Flags().StringVar(&evolveSpec, "evolve-schedule", "0 21 * * FRI", "cron schedule for evolution runs")
	return c
}

func seedCmd() *cobra.Command {
	var count int
	c := &cobra.Command{
		Use:   "seed",
		Short: "seed the arena with a starting roster",
		RunE: func(_ *cobra.Command, _ []string) error {
			handler, err := cmd.InitializeDependencies()
			if err != nil {
				return err
			}
			defer cmd.CloseDependencies(handler)

			log := logger.New()
			ctx := context.WithValue(context.Background(), logger.ContextKey, log)

			agents, err := handler.SeedService.Seed(ctx, count)
			if err != nil {
				return err
			}
			log.Infof("seeded %d agents", len(agents))
			return nil
		},
	}
	c.Flags().IntVar(&count, "count", 20, "number of agents to create")
	return c
}

func cycleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cycle",
		Short: "run a single market cycle",
		RunE: func(_ *cobra.Command, _ []string) error {
			handler, err := cmd.InitializeDependencies()
			if err != nil {
				return err
			}
			defer cmd.CloseDependencies(handler)

			log := logger.New()
			ctx := context.WithValue(context.Background(), logger.ContextKey, log)

			result, err := handler.ArenaService.RunCycle(ctx)
			if err != nil {
				return err
			}
			log.Infof("cycle complete: %d agents evaluated, %d trades", len(result.UpdatedStates), len(result.Trades))
			return nil
		},
	}
}

func evolveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "evolve",
		Short: "run a single evolution round",
		RunE: func(_ *cobra.Command, _ []string) error {
			handler, err := cmd.InitializeDependencies()
			if err != nil {
				return err
			}
			defer cmd.CloseDependencies(handler)

			log := logger.New()
			ctx := context.WithValue(context.Background(), logger.ContextKey, log)

			result, err := handler.ArenaService.RunEvolution(ctx)
			if err != nil {
				return err
			}
			if result.IsEmpty() {
				log.Info("evolution skipped: population below minimum")
				return nil
			}
			log.Infof("evolution complete: %d terminated, %d spawned", len(result.TerminatedIDs), len(result.Spawned))
			return nil
		},
	}
}
