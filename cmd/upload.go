package cmd

import (
	"context"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"runtime/debug"
	"syscall"

	"github.com/OpenListTeam/gofile-uploader/drivers/gofile"
	"github.com/OpenListTeam/gofile-uploader/internal/bootstrap"
	"github.com/OpenListTeam/gofile-uploader/internal/conf"
	"github.com/OpenListTeam/gofile-uploader/internal/errs"
	"github.com/OpenListTeam/gofile-uploader/internal/model"
	"github.com/OpenListTeam/gofile-uploader/internal/op"
	"github.com/OpenListTeam/gofile-uploader/internal/progress"
	"github.com/OpenListTeam/gofile-uploader/internal/report"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

func upload(cmd *cobra.Command, args []string) error {
	stderr := report.NewPrinter(cmd.ErrOrStderr())
	if err := bootstrap.InitConfig(conf.EnvFile); err != nil {
		stderr.Error("Config Error: %v", err)
		return errReported
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	d := &gofile.Gofile{Addition: gofile.AdditionFromConf(conf.Conf)}
	if err := d.Init(ctx); err != nil {
		stderr.Error("Config Error: %v", err)
		return errReported
	}
	return run(ctx, d, afero.NewOsFs(), args, cmd.OutOrStdout(), cmd.ErrOrStderr())
}

// run uploads paths and always prints the collected results to stdout.
// Progress and status lines go to stderr.
func run(ctx context.Context, up op.Uploader, fs afero.Fs, paths []string, stdout, stderr io.Writer) (err error) {
	out, errOut := report.NewPrinter(stdout), report.NewPrinter(stderr)
	results := &op.Results{}
	defer func() {
		if r := recover(); r != nil {
			log.Errorf("unexpected panic: %v\n%s", r, debug.Stack())
			out.Results(results.List())
			errOut.Error("Fatal Error: %v", r)
			err = errReported
		}
	}()

	failures := 0
	s := op.Session{
		Uploader: up,
		Fs:       fs,
		Board:    progress.NewBoard(progress.NewTerminal(stderr)),
		Results:  results,
		OnFailure: func(o model.Outcome) {
			failures++
			errOut.Error("Error uploading %s: %v", filepath.Base(o.Path), o.Err)
		},
	}
	_, err = op.Upload(ctx, s, paths)
	out.Results(results.List())
	switch {
	case err == nil:
		if results.Len() == 0 && failures == 0 {
			errOut.Warn("No files found to upload")
		}
		return nil
	case errs.IsCancelled(err):
		errOut.Error("\nUpload cancelled by user!")
		return nil
	case errs.IsServerUnavailable(err):
		errOut.Error("Server Error: %v", err)
	default:
		errOut.Error("Fatal Error: %v", err)
	}
	return errReported
}
