package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/OpenListTeam/gofile-uploader/internal/conf"
	"github.com/spf13/cobra"
)

// errReported is returned by commands that already told the user what went wrong.
var errReported = errors.New("reported")

var RootCmd = &cobra.Command{
	Use:   "gofile-up <path> [path...]",
	Short: "Upload files and directories to Gofile.",
	Long: `Upload files and directories to Gofile, one file at a time,
showing the progress of every transfer and the download links at the end.

Configuration is read from GOFILE_* environment variables,
optionally from a .env file in the working directory.`,
	Args:          cobra.MinimumNArgs(1),
	Version:       conf.Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          upload,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		if !errors.Is(err, errReported) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}
