package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/watchask/watchask/internal/log"
	"github.com/watchask/watchask/watchask/transcript/cache"
)

var cacheClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "delete all cached transcripts",
	Run: func(cmd *cobra.Command, args []string) {
		os.Exit(runCacheClearCmd(cmd, args))
	},
}

func init() {
	cacheCmd.AddCommand(cacheClearCmd)
}

func runCacheClearCmd(_ *cobra.Command, _ []string) int {
	curator := cache.NewCurator(appConfig.Cache.ToCuratorConfig())

	if err := curator.Purge(); err != nil {
		log.Errorf("unable to clear transcript cache: %+v", err)
		return 1
	}

	fmt.Println("Transcript cache cleared")
	return 0
}
