package cmd

import (
	"context"
	"fmt"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"
	"github.com/wagoodman/go-partybus"

	"github.com/watchask/watchask/internal"
	"github.com/watchask/watchask/internal/bus"
	"github.com/watchask/watchask/internal/format"
	"github.com/watchask/watchask/internal/log"
	"github.com/watchask/watchask/internal/ui"
	"github.com/watchask/watchask/internal/version"
	"github.com/watchask/watchask/watchask"
	"github.com/watchask/watchask/watchask/event"
	"github.com/watchask/watchask/watchask/presenter"
	"github.com/watchask/watchask/watchask/presenter/models"
	"github.com/watchask/watchask/watchask/qgen"
	"github.com/watchask/watchask/watchask/transcript"
	"github.com/watchask/watchask/watchask/transcript/cache"
)

var rootCmd = &cobra.Command{
	Use:   fmt.Sprintf("%s [VIDEO]", internal.ApplicationName),
	Short: "Generate comprehension questions from a video's captions",
	Long: format.Tprintf(`Supports the following video references:
    {{.appName}} https://www.youtube.com/watch?v=dQw4w9WgXcQ    full watch URL
    {{.appName}} https://youtu.be/dQw4w9WgXcQ                   short URL
    {{.appName}} dQw4w9WgXcQ                                    bare video ID
`, map[string]interface{}{
		"appName": internal.ApplicationName,
	}),
	Args: cobra.ExactArgs(1),
	RunE: rootExec,
}

func init() {
	setCliOptions()
}

func rootExec(_ *cobra.Command, args []string) error {
	reporter, closer, err := reportWriter()
	defer func() {
		if err := closer(); err != nil {
			log.Warnf("unable to write to report destination: %+v", err)
		}
	}()
	if err != nil {
		return err
	}

	return eventLoop(
		startWorker(args[0]),
		setupSignals(),
		eventSubscription,
		func() {},
		ui.Select(isVerbose(), appConfig.Quiet, reporter)...,
	)
}

func isVerbose() (result bool) {
	isPipedInput, err := internal.IsPipedInput()
	if err != nil {
		// since we can't tell if there was piped input we assume that there could be to disable the ETUI
		log.Warnf("unable to determine if there is piped input: %+v", err)
		return true
	}
	// verbosity should consider if there is piped input (in which case we should not show the ETUI)
	return appConfig.CliOptions.Verbosity > 0 || isPipedInput
}

func newPipeline() (*transcript.Fetcher, *cache.Curator, *qgen.Generator, error) {
	if appConfig.Gemini.APIKey == "" {
		return nil, nil, nil, fmt.Errorf("no Gemini API key configured (set WATCHASK_GEMINI_API_KEY or GEMINI_API_KEY)")
	}

	fetcher := transcript.NewFetcher(appConfig.Fetch.ToFetcherConfig())
	curator := cache.NewCurator(appConfig.Cache.ToCuratorConfig())
	client := qgen.NewClient(appConfig.Gemini.ToClientConfig())

	return fetcher, &curator, qgen.NewGenerator(client), nil
}

func startWorker(userInput string) <-chan error {
	errs := make(chan error)
	go func() {
		defer close(errs)

		if appConfig.Dev.ProfileCPU {
			defer profile.Start(profile.CPUProfile).Stop()
		} else if appConfig.Dev.ProfileMem {
			defer profile.Start(profile.MemProfile).Stop()
		}

		checkForAppUpdate()

		presenterOption := presenter.ParseOption(appConfig.Output)
		if presenterOption == presenter.UnknownPresenter {
			errs <- fmt.Errorf("bad --output value '%s'", appConfig.Output)
			return
		}

		fetcher, curator, generator, err := newPipeline()
		if err != nil {
			errs <- err
			return
		}

		result, err := watchask.GenerateQuestions(
			context.Background(),
			fetcher,
			curator,
			generator,
			userInput,
			appConfig.Generate.ToGenerateConfig(appConfig.Fetch.Languages),
		)
		if err != nil {
			errs <- err
			return
		}

		doc := models.NewDocument(result.VideoID, result.Language, result.Questions)

		bus.Publish(partybus.Event{
			Type:  event.QuestionGenerationFinished,
			Value: presenter.GetPresenter(presenterOption, appConfig.OutputTemplateFile, doc),
		})
	}()
	return errs
}

func checkForAppUpdate() {
	if !appConfig.CheckForAppUpdate {
		return
	}

	isAvailable, newVersion, err := version.IsUpdateAvailable()
	if err != nil {
		// this should never stop the application
		log.Errorf(err.Error())
	}
	if isAvailable {
		log.Infof("new version of %s is available: %s (currently running: %s)", internal.ApplicationName, newVersion, version.FromBuild().Version)

		bus.Publish(partybus.Event{
			Type:  event.AppUpdateAvailable,
			Value: newVersion,
		})
	} else {
		log.Debugf("no new %s update available", internal.ApplicationName)
	}
}
