package base

import (
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/OpenListTeam/gofile-uploader/internal/conf"
	"github.com/OpenListTeam/gofile-uploader/pkg/utils"
	"github.com/go-resty/resty/v2"
)

var (
	RestyClient    *resty.Client
	TransferClient *resty.Client
)

var (
	DefaultTimeout       = time.Second * 10
	DefaultUploadTimeout = time.Second * 30
)

var UserAgent = "gofile-uploader/" + conf.Version

// HeaderBodyLength carries the exact length of a streamed request body.
// It is moved into http.Request.ContentLength before the request is sent.
const HeaderBodyLength = "X-Body-Length"

type ReqCallback func(req *resty.Request)

func InitClient() {
	discovery, upload := DefaultTimeout, DefaultUploadTimeout
	if conf.Conf != nil {
		if conf.Conf.DiscoveryTimeout > 0 {
			discovery = conf.Conf.DiscoveryTimeout
		}
		if conf.Conf.UploadTimeout > 0 {
			upload = conf.Conf.UploadTimeout
		}
	}
	RestyClient = NewRestyClient(discovery)
	TransferClient = NewTransferClient(upload)
}

// NewRestyClient returns a client whose requests are bounded by timeout as a whole.
func NewRestyClient(timeout time.Duration) *resty.Client {
	return resty.New().
		SetHeader("user-agent", UserAgent).
		SetTimeout(timeout).
		SetJSONUnmarshaler(utils.Json.Unmarshal)
}

// NewTransferClient returns a client for large bodies: timeout bounds dialing,
// the TLS handshake and the wait for response headers, never the body transfer.
func NewTransferClient(timeout time.Duration) *resty.Client {
	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   timeout,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		ForceAttemptHTTP2:     true,
		MaxIdleConns:          10,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   timeout,
		ResponseHeaderTimeout: timeout,
		ExpectContinueTimeout: 1 * time.Second,
	}
	return resty.New().
		SetTransport(transport).
		SetHeader("user-agent", UserAgent).
		SetJSONUnmarshaler(utils.Json.Unmarshal).
		SetPreRequestHook(setBodyLength)
}

func setBodyLength(_ *resty.Client, req *http.Request) error {
	v := req.Header.Get(HeaderBodyLength)
	if v == "" {
		return nil
	}
	req.Header.Del(HeaderBodyLength)
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return err
	}
	req.ContentLength = n
	return nil
}
