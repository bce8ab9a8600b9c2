package gofile

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/OpenListTeam/gofile-uploader/drivers/base"
	"github.com/OpenListTeam/gofile-uploader/internal/conf"
	"github.com/OpenListTeam/gofile-uploader/internal/errs"
	"github.com/OpenListTeam/gofile-uploader/internal/model"
	"github.com/OpenListTeam/gofile-uploader/internal/stream"
	"github.com/go-resty/resty/v2"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/afero"
)

// Gofile talks to the Gofile REST API: server discovery and file upload.
type Gofile struct {
	Addition
	// Fs is where local files are read from, the OS filesystem when nil.
	Fs afero.Fs
	// Discovery and Transfer default to base.RestyClient and base.TransferClient.
	Discovery *resty.Client
	Transfer  *resty.Client

	limiter stream.Limiter
}

func (d *Gofile) Init(ctx context.Context) error {
	d.APIURL = strings.TrimSuffix(d.APIURL, "/")
	if d.APIURL == "" {
		d.APIURL = conf.DefaultAPIURL
	}
	if d.UploadURL == "" {
		d.UploadURL = conf.DefaultUploadURL
	}
	if !strings.Contains(d.UploadURL, conf.ServerPlaceholder) {
		return errs.NewErr(errs.InvalidURL, "%s has no %s placeholder", d.UploadURL, conf.ServerPlaceholder)
	}
	if d.Fs == nil {
		d.Fs = afero.NewOsFs()
	}
	if d.Discovery == nil {
		if base.RestyClient == nil {
			base.InitClient()
		}
		d.Discovery = base.RestyClient
	}
	if d.Transfer == nil {
		if base.TransferClient == nil {
			base.InitClient()
		}
		d.Transfer = base.TransferClient
	}
	d.limiter = stream.NewUploadLimiter(d.UploadLimit)
	return nil
}

// GetServer asks the API for the servers accepting uploads and picks one.
func (d *Gofile) GetServer(ctx context.Context) (model.ServerAssignment, error) {
	servers, err := d.getServers(ctx)
	if err != nil {
		return model.ServerAssignment{}, err
	}
	s := pickServer(servers, d.Zone)
	log.Debugf("selected server %s (zone %q) out of %d", s.Name, s.Zone, len(servers))
	return model.ServerAssignment{Name: s.Name, Zone: s.Zone}, nil
}

// Put streams the file at path to server. up receives the count of file
// bytes handed to the network so far.
func (d *Gofile) Put(ctx context.Context, server model.ServerAssignment, path string, up model.UpdateProgress) (*model.UploadResult, error) {
	if server.IsZero() {
		return nil, errs.NoServer
	}
	res, err := d.upload(ctx, server, path, filepath.Base(path), up)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", errs.TransferFailure, filepath.Base(path), err)
	}
	return res, nil
}
