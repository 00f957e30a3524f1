package cmd

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/watchask/watchask/internal/log"
	"github.com/watchask/watchask/watchask"
	"github.com/watchask/watchask/watchask/api"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "run the quiz HTTP API",
	RunE:  runServeCmd,
}

func init() {
	flag := "host"
	serveCmd.Flags().String(flag, "", "host interface to bind the API to")
	if err := viper.BindPFlag("serve.host", serveCmd.Flags().Lookup(flag)); err != nil {
		fmt.Printf("unable to bind flag '%s': %+v", flag, err)
		os.Exit(1)
	}

	flag = "port"
	serveCmd.Flags().IntP(flag, "p", 0, "port to bind the API to")
	if err := viper.BindPFlag("serve.port", serveCmd.Flags().Lookup(flag)); err != nil {
		fmt.Printf("unable to bind flag '%s': %+v", flag, err)
		os.Exit(1)
	}

	rootCmd.AddCommand(serveCmd)
}

func runServeCmd(_ *cobra.Command, _ []string) error {
	fetcher, curator, generator, err := newPipeline()
	if err != nil {
		return err
	}

	generate := func(ctx context.Context, userInput string) (watchask.Result, error) {
		return watchask.GenerateQuestions(
			ctx,
			fetcher,
			curator,
			generator,
			userInput,
			appConfig.Generate.ToGenerateConfig(appConfig.Fetch.Languages),
		)
	}

	// no terminal UI is attached in serve mode, so drain the progress events the pipeline publishes
	go func() {
		for e := range eventSubscription.Events() {
			log.Debugf("event: %s", e.Type)
		}
	}()

	server := api.NewServer(api.Config{
		Host: appConfig.Serve.Host,
		Port: appConfig.Serve.Port,
	}, generate)

	signals := setupSignals()
	serverErrs := make(chan error, 1)
	go func() {
		serverErrs <- server.Start()
	}()

	select {
	case err := <-serverErrs:
		if err != nil && err != http.ErrServerClosed {
			return err
		}
	case sig := <-signals:
		log.Infof("received %s, shutting down", sig)
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			return err
		}
	}

	return nil
}
