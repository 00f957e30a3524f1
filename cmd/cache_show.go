package cmd

import (
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/watchask/watchask/internal/log"
	"github.com/watchask/watchask/watchask/transcript/cache"
)

var cacheShowCmd = &cobra.Command{
	Use:   "show",
	Short: "show cached video transcripts",
	Run: func(cmd *cobra.Command, args []string) {
		os.Exit(runCacheShowCmd(cmd, args))
	},
}

func init() {
	cacheCmd.AddCommand(cacheShowCmd)
}

func runCacheShowCmd(_ *cobra.Command, _ []string) int {
	curator := cache.NewCurator(appConfig.Cache.ToCuratorConfig())

	status := curator.Status()
	if status.Err != nil {
		log.Errorf("unable to show transcript cache: %+v", status.Err)
		return 1
	}

	fmt.Println("Location: ", status.Location)
	fmt.Println("Entries:  ", status.Count)

	if status.Count == 0 {
		return 0
	}

	rows := make([][]string, 0, len(status.Entries))
	for _, entry := range status.Entries {
		rows = append(rows, []string{
			entry.VideoID,
			entry.Language,
			humanize.Bytes(uint64(entry.Size)),
			humanize.Time(entry.Fetched),
		})
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Video", "Language", "Size", "Fetched"})

	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetTablePadding("  ")
	table.SetNoWhiteSpace(true)

	table.AppendBulk(rows)
	table.Render()

	return 0
}
