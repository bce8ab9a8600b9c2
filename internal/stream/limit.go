package stream

import (
	"context"
	"io"

	"golang.org/x/time/rate"
)

type Limiter interface {
	Limit() rate.Limit
	Burst() int
	WaitN(context.Context, int) error
}

type RateLimitReader struct {
	io.Reader
	Limiter Limiter
	Ctx     context.Context
}

func (r *RateLimitReader) Read(p []byte) (n int, err error) {
	if err = r.Ctx.Err(); err != nil {
		return 0, err
	}
	n, err = r.Reader.Read(p)
	if err != nil {
		return
	}
	if r.Limiter != nil {
		err = r.Limiter.WaitN(r.Ctx, n)
	}
	return
}

func (r *RateLimitReader) Close() error {
	if c, ok := r.Reader.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

// blockBurstLimiter splits waits larger than the burst into several.
type blockBurstLimiter struct {
	*rate.Limiter
}

func (l blockBurstLimiter) WaitN(ctx context.Context, total int) error {
	for total > 0 {
		n := l.Burst()
		if l.Limiter.Limit() == rate.Inf || n > total {
			n = total
		}
		err := l.Limiter.WaitN(ctx, n)
		if err != nil {
			return err
		}
		total -= n
	}
	return nil
}

// NewUploadLimiter returns a limiter for kib KiB/s, or nil when kib is not positive.
func NewUploadLimiter(kib int) Limiter {
	if kib <= 0 {
		return nil
	}
	return blockBurstLimiter{Limiter: rate.NewLimiter(rate.Limit(kib)*1024.0, kib*1024)}
}

// NewLimitedUploadStream wraps r with limiter. With a nil limiter only ctx cancellation is added.
func NewLimitedUploadStream(ctx context.Context, r io.Reader, limiter Limiter) io.Reader {
	if limiter == nil {
		return &ReaderWithCtx{Reader: r, Ctx: ctx}
	}
	return &RateLimitReader{
		Reader:  r,
		Limiter: limiter,
		Ctx:     ctx,
	}
}
