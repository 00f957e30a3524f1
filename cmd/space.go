package cmd

import (
	"fmt"
	"os"

	"github.com/gookit/color"
	"github.com/spf13/cobra"

	"github.com/watchask/watchask/internal/log"
	"github.com/watchask/watchask/watchask/space"
)

var spaceCmd = &cobra.Command{
	Use:   "space",
	Short: "operate on a Hugging Face Space README",
}

var spaceCheckCmd = &cobra.Command{
	Use:   "check [README]",
	Short: "validate the Space configuration block of a README",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		os.Exit(runSpaceCheckCmd(cmd, args))
	},
}

var spaceRenderCmd = &cobra.Command{
	Use:   "render [README]",
	Short: "print the normalized Space configuration block of a README",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		os.Exit(runSpaceRenderCmd(cmd, args))
	},
}

func init() {
	spaceCmd.AddCommand(spaceCheckCmd)
	spaceCmd.AddCommand(spaceRenderCmd)
	rootCmd.AddCommand(spaceCmd)
}

func readmePathArg(args []string) string {
	if len(args) == 1 {
		return args[0]
	}
	return "README.md"
}

func loadDescriptor(path string) (*space.Descriptor, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("unable to open %q: %w", path, err)
	}
	defer f.Close()

	return space.Parse(f)
}

func runSpaceCheckCmd(_ *cobra.Command, args []string) int {
	path := readmePathArg(args)

	descriptor, err := loadDescriptor(path)
	if err != nil {
		log.Errorf("unable to read Space configuration: %+v", err)
		return 1
	}

	warnings, err := descriptor.Validate()
	for _, warning := range warnings {
		fmt.Println(color.Yellow.Sprint("warning: "), warning)
	}
	if err != nil {
		fmt.Println(color.Red.Sprint("invalid:  "), err)
		return 1
	}

	fmt.Printf("%s %s (sdk=%s", color.Green.Sprint("valid:   "), descriptor.Title, descriptor.SDK)
	if descriptor.SDKVersion != "" {
		fmt.Printf(" %s", descriptor.SDKVersion)
	}
	fmt.Println(")")
	return 0
}

func runSpaceRenderCmd(_ *cobra.Command, args []string) int {
	path := readmePathArg(args)

	descriptor, err := loadDescriptor(path)
	if err != nil {
		log.Errorf("unable to read Space configuration: %+v", err)
		return 1
	}

	if err := descriptor.Render(os.Stdout); err != nil {
		log.Errorf("unable to render Space configuration: %+v", err)
		return 1
	}
	return 0
}
