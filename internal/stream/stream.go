package stream

import (
	"context"
	"io"

	"github.com/OpenListTeam/gofile-uploader/internal/model"
)

// ReaderUpdatingProgress reports the bytes pulled through Reader.
// Reported values never decrease and never exceed Size.
type ReaderUpdatingProgress struct {
	Reader io.Reader
	Size   int64
	model.UpdateProgress
	offset int64
}

func (r *ReaderUpdatingProgress) Read(p []byte) (n int, err error) {
	n, err = r.Reader.Read(p)
	if n > 0 {
		r.offset += int64(n)
		if r.UpdateProgress != nil {
			r.UpdateProgress(min(r.offset, r.Size))
		}
	}
	return n, err
}

func (r *ReaderUpdatingProgress) Offset() int64 {
	return r.offset
}

func (r *ReaderUpdatingProgress) Close() error {
	if c, ok := r.Reader.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

// ReaderWithCtx stops reading once Ctx is done.
type ReaderWithCtx struct {
	io.Reader
	Ctx context.Context
}

func (r *ReaderWithCtx) Read(p []byte) (n int, err error) {
	if err = r.Ctx.Err(); err != nil {
		return 0, err
	}
	return r.Reader.Read(p)
}

func (r *ReaderWithCtx) Close() error {
	if c, ok := r.Reader.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
