package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/watchask/watchask/internal/config"
	"github.com/watchask/watchask/watchask/presenter"
)

var cliOpts = config.CliOnlyOptions{}

func setCliOptions() {
	rootCmd.PersistentFlags().StringVarP(&cliOpts.ConfigPath, "config", "c", "", "application config file")
	rootCmd.PersistentFlags().CountVarP(&cliOpts.Verbosity, "verbose", "v", "increase verbosity (-v = info, -vv = debug)")

	flag := "quiet"
	rootCmd.PersistentFlags().BoolP(
		flag, "q", false,
		"suppress all logging output",
	)
	if err := viper.BindPFlag(flag, rootCmd.PersistentFlags().Lookup(flag)); err != nil {
		fmt.Printf("unable to bind flag '%s': %+v", flag, err)
		os.Exit(1)
	}

	setRootFlags(rootCmd.Flags())
}

func setRootFlags(flags *pflag.FlagSet) {
	// output & formatting options
	flag := "output"
	flags.StringP(
		flag, "o", presenter.TablePresenter.String(),
		fmt.Sprintf("report output formatter, formats=%v", presenter.Options),
	)
	if err := viper.BindPFlag(flag, flags.Lookup(flag)); err != nil {
		fmt.Printf("unable to bind flag '%s': %+v", flag, err)
		os.Exit(1)
	}

	flag = "file"
	flags.StringP(
		flag, "", "",
		"file to write the report output to (default is STDOUT)",
	)
	if err := viper.BindPFlag(flag, flags.Lookup(flag)); err != nil {
		fmt.Printf("unable to bind flag '%s': %+v", flag, err)
		os.Exit(1)
	}

	flag = "template"
	flags.StringP(
		flag, "t", "",
		"specify the path to a Go template file (requires 'template' output to be selected)",
	)
	if err := viper.BindPFlag("output-template-file", flags.Lookup(flag)); err != nil {
		fmt.Printf("unable to bind flag '%s': %+v", flag, err)
		os.Exit(1)
	}

	flag = "language"
	flags.StringSliceP(
		flag, "l", nil,
		"caption languages to try, in preference order (e.g. -l en -l lv)",
	)
	if err := viper.BindPFlag("fetch.languages", flags.Lookup(flag)); err != nil {
		fmt.Printf("unable to bind flag '%s': %+v", flag, err)
		os.Exit(1)
	}
}
