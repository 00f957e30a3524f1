package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/spf13/cobra"
	"github.com/wagoodman/go-partybus"

	"github.com/watchask/watchask/internal"
	"github.com/watchask/watchask/internal/bus"
	"github.com/watchask/watchask/internal/file"
	"github.com/watchask/watchask/internal/log"
	"github.com/watchask/watchask/internal/ui"
	"github.com/watchask/watchask/internal/version"
	"github.com/watchask/watchask/watchask/event"
)

var downloadURLTemplate = "https://watchask.dev/releases/download/v%s/watchask_%s_%s_%s"

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "updates watchask to the latest released version",
	RunE:  runUpdate,
}

func init() {
	rootCmd.AddCommand(updateCmd)
}

func runUpdate(_ *cobra.Command, _ []string) error {
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
		startSelfUpdate(),
		setupSignals(),
		eventSubscription,
		func() {},
		ui.Select(isVerbose(), appConfig.Quiet, reporter)...,
	)
}

func startSelfUpdate() <-chan error {
	errs := make(chan error)
	go func() {
		defer close(errs)

		newerVersionAvailable, desiredVersion, err := version.IsUpdateAvailable()
		if err != nil {
			log.Errorf("error while checking for a newer version: %s", err)
			errs <- err
			return
		}

		result := fmt.Sprintf("You are already running the latest %s version\n", internal.ApplicationName)
		if newerVersionAvailable {
			binaryPath, err := downloadRelease(desiredVersion)
			if err != nil {
				errs <- err
				return
			}
			if err := replaceBinary(binaryPath); err != nil {
				errs <- err
				return
			}
			result = fmt.Sprintf("%s updated to %s! Run '%s version' to get more info\n", internal.ApplicationName, desiredVersion, internal.ApplicationName)
		}

		bus.Publish(partybus.Event{
			Type:  event.NonRootCommandFinished,
			Value: result,
		})
	}()
	return errs
}

func downloadRelease(desiredVersion string) (string, error) {
	url := fmt.Sprintf(downloadURLTemplate, desiredVersion, desiredVersion, runtime.GOOS, runtime.GOARCH)

	tmp, err := os.CreateTemp("", internal.ApplicationName+"-update-*")
	if err != nil {
		return "", err
	}
	tmpPath := tmp.Name()
	_ = tmp.Close()

	log.Debugf("downloading release from %s", url)
	if err := file.NewGetter(nil).GetFile(tmpPath, url); err != nil {
		return "", fmt.Errorf("unable to download release: %w", err)
	}

	if err := os.Chmod(tmpPath, 0755); err != nil {
		return "", err
	}
	return tmpPath, nil
}

func replaceBinary(newBinaryPath string) error {
	currentPath, err := os.Executable()
	if err != nil {
		return err
	}
	currentPath, err = filepath.EvalSymlinks(currentPath)
	if err != nil {
		return err
	}

	// rename within the same filesystem first, fall back to a copy via the destination directory
	if err := os.Rename(newBinaryPath, currentPath); err == nil {
		return nil
	}

	contents, err := os.ReadFile(newBinaryPath)
	if err != nil {
		return err
	}
	defer os.Remove(newBinaryPath)

	staging := currentPath + ".new"
	if err := os.WriteFile(staging, contents, 0755); err != nil {
		return err
	}
	return os.Rename(staging, currentPath)
}
