package op

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/OpenListTeam/gofile-uploader/internal/errs"
	"github.com/OpenListTeam/gofile-uploader/internal/model"
	"github.com/OpenListTeam/gofile-uploader/internal/progress"
	"github.com/OpenListTeam/gofile-uploader/internal/walk"
	"github.com/OpenListTeam/gofile-uploader/pkg/utils"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/afero"
)

// Uploader is the remote side of a run.
type Uploader interface {
	GetServer(ctx context.Context) (model.ServerAssignment, error)
	Put(ctx context.Context, server model.ServerAssignment, path string, up model.UpdateProgress) (*model.UploadResult, error)
}

// Session is what every file upload of a run shares.
type Session struct {
	Uploader Uploader
	Server   model.ServerAssignment
	Fs       afero.Fs
	Board    *progress.Board
	Results  *Results
	// OnFailure is told about every file that could not be uploaded.
	OnFailure func(out model.Outcome)
}

// Upload selects a server once, then uploads every file below paths one at a
// time. A failed file is reported and skipped. The results collected so far
// are returned even when err is not nil.
func Upload(ctx context.Context, s Session, paths []string) (*Results, error) {
	if s.Results == nil {
		s.Results = &Results{}
	}
	if s.Fs == nil {
		s.Fs = afero.NewOsFs()
	}
	if s.Board == nil {
		s.Board = progress.NewBoard()
	}

	server, err := s.Uploader.GetServer(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return s.Results, cancelled(ctx)
		}
		return s.Results, errors.WithMessage(err, "failed get upload server")
	}
	s.Server = server
	log.Infof("uploading to server %s", server)

	for path, err := range walk.Files(s.Fs, paths) {
		if ctx.Err() != nil {
			return s.Results, cancelled(ctx)
		}
		if err != nil {
			s.failed(model.Outcome{Path: path, Err: err})
			continue
		}
		out := UploadFile(ctx, s, path)
		if out.OK() {
			s.Results.Append(*out.Result)
			continue
		}
		if ctx.Err() != nil {
			return s.Results, cancelled(ctx)
		}
		s.failed(out)
	}
	if ctx.Err() != nil {
		return s.Results, cancelled(ctx)
	}
	return s.Results, nil
}

// UploadFile uploads one file. The progress task is created before anything
// can fail and always ended.
func UploadFile(ctx context.Context, s Session, path string) model.Outcome {
	size, statErr := utils.FileSize(s.Fs, path)
	task := s.Board.Add(filepath.Base(path), size)
	if statErr != nil {
		err := fmt.Errorf("%w: %s: %w", errs.TransferFailure, filepath.Base(path), statErr)
		task.Fail(err)
		return model.Outcome{Path: path, Err: err}
	}

	res, err := s.Uploader.Put(ctx, s.Server, path, task.Update)
	if err != nil {
		task.Fail(err)
		return model.Outcome{Path: path, Err: err}
	}
	task.Finish()
	log.Infof("uploaded %s: %s", path, res.DownloadPage)
	return model.Outcome{Path: path, Result: res}
}

func (s Session) failed(out model.Outcome) {
	log.WithError(out.Err).WithField("path", out.Path).Debug("file skipped")
	if s.OnFailure != nil {
		s.OnFailure(out)
		return
	}
	log.Errorf("Error uploading %s: %v", out.Path, out.Err)
}

func cancelled(ctx context.Context) error {
	return fmt.Errorf("%w: %w", errs.Cancelled, context.Cause(ctx))
}
