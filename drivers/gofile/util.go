package gofile

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/textproto"
	"path/filepath"
	"strconv"

	"github.com/OpenListTeam/gofile-uploader/drivers/base"
	"github.com/OpenListTeam/gofile-uploader/internal/conf"
	"github.com/OpenListTeam/gofile-uploader/internal/errs"
	"github.com/OpenListTeam/gofile-uploader/internal/model"
	"github.com/OpenListTeam/gofile-uploader/internal/stream"
	"github.com/OpenListTeam/gofile-uploader/pkg/utils"
	"github.com/OpenListTeam/gofile-uploader/pkg/utils/random"
	"github.com/gabriel-vasile/mimetype"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/afero"
)

func (d *Gofile) getServers(ctx context.Context) ([]Server, error) {
	res, err := d.Discovery.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json").
		Get(d.APIURL + "/servers")
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errs.ServerUnavailable, err)
	}
	if !res.IsSuccess() {
		return nil, errs.NewErr(errs.ServerUnavailable, "discovery returned %s", res.Status())
	}
	var resp ServersResp
	if err = utils.Json.Unmarshal(res.Body(), &resp); err != nil {
		return nil, fmt.Errorf("%w: %w: %v", errs.ServerUnavailable, errs.ParseError, err)
	}
	if resp.Status != conf.StatusOK {
		return nil, errs.NewErr(errs.ServerUnavailable, "discovery status %q", resp.Status)
	}
	servers := make([]Server, 0, len(resp.Data.Servers))
	for _, s := range resp.Data.Servers {
		if s.Name == "" {
			return nil, fmt.Errorf("%w: %w: server without name", errs.ServerUnavailable, errs.ParseError)
		}
		servers = append(servers, s)
	}
	if len(servers) == 0 {
		return nil, errs.NewErr(errs.ServerUnavailable, "empty server list")
	}
	return servers, nil
}

// pickServer returns the first server of zone, or the first one at all.
func pickServer(servers []Server, zone string) Server {
	if zone != "" {
		for _, s := range servers {
			if s.Zone == zone {
				return s
			}
		}
		log.Debugf("no server in zone %q, falling back to %s", zone, servers[0].Name)
	}
	return servers[0]
}

func (d *Gofile) upload(ctx context.Context, server model.ServerAssignment, path, name string, up model.UpdateProgress) (*model.UploadResult, error) {
	uploadURL, err := utils.ReplaceServer(d.UploadURL, conf.ServerPlaceholder, server.Name)
	if err != nil {
		return nil, errs.NewErr(errs.InvalidURL, "%v", err)
	}
	f, err := d.Fs.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	fi, err := f.Stat()
	if err != nil {
		return nil, err
	}
	if !fi.Mode().IsRegular() {
		return nil, errs.NotFile
	}
	size := fi.Size()
	contentType := detectContentType(f, name)

	reader := &stream.ReaderUpdatingProgress{
		Reader:         stream.NewLimitedUploadStream(ctx, io.LimitReader(f, size), d.limiter),
		Size:           size,
		UpdateProgress: up,
	}
	body, err := newMultipartBody(name, contentType, d.Token, reader, size)
	if err != nil {
		return nil, err
	}

	log.Debugf("uploading %s (%d bytes, %s) to %s", path, size, contentType, uploadURL)
	res, err := d.Transfer.R().
		SetContext(ctx).
		SetHeader("Content-Type", body.contentType).
		SetHeader("Accept", "application/json").
		SetHeader(base.HeaderBodyLength, strconv.FormatInt(body.length, 10)).
		SetBody(body.reader).
		Post(uploadURL)
	if err != nil {
		return nil, err
	}
	if !res.IsSuccess() {
		return nil, fmt.Errorf("server returned %s: %s", res.Status(), truncate(res.String(), 200))
	}
	if reader.Offset() < size {
		return nil, fmt.Errorf("server answered after %d of %d bytes", reader.Offset(), size)
	}
	var resp UploadResp
	if err = utils.Json.Unmarshal(res.Body(), &resp); err != nil {
		return nil, fmt.Errorf("%w: %v", errs.ParseError, err)
	}
	if resp.Status != conf.StatusOK {
		return nil, fmt.Errorf("api status %q", resp.Status)
	}
	if resp.Data == nil || resp.Data.Name == "" || resp.Data.DownloadPage == "" {
		return nil, fmt.Errorf("%w: missing name or downloadPage", errs.ParseError)
	}
	return resp.Data, nil
}

type multipartBody struct {
	reader      io.Reader
	contentType string
	length      int64
}

// newMultipartBody lays out the optional token field and the file part
// around file without buffering it, so the exact length is known upfront.
func newMultipartBody(name, contentType, token string, file io.Reader, size int64) (*multipartBody, error) {
	head := &bytes.Buffer{}
	mw := multipart.NewWriter(head)
	if err := mw.SetBoundary(random.Boundary()); err != nil {
		return nil, err
	}
	if token != "" {
		if err := mw.WriteField("token", token); err != nil {
			return nil, err
		}
	}
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", utils.FormDataDisposition("file", name))
	h.Set("Content-Type", contentType)
	if _, err := mw.CreatePart(h); err != nil {
		return nil, err
	}
	tail := []byte(fmt.Sprintf("\r\n--%s--\r\n", mw.Boundary()))
	return &multipartBody{
		reader:      io.MultiReader(bytes.NewReader(head.Bytes()), file, bytes.NewReader(tail)),
		contentType: mw.FormDataContentType(),
		length:      int64(head.Len()) + size + int64(len(tail)),
	}, nil
}

// detectContentType sniffs the head of f, falling back to the extension of name.
func detectContentType(f afero.File, name string) string {
	buf := make([]byte, 512)
	n, _ := f.ReadAt(buf, 0)
	if n > 0 {
		return mimetype.Detect(buf[:n]).String()
	}
	if t := mime.TypeByExtension(filepath.Ext(name)); t != "" {
		return t
	}
	return "application/octet-stream"
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
