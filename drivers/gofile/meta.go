package gofile

import (
	"github.com/OpenListTeam/gofile-uploader/internal/conf"
)

type Addition struct {
	// Token is optional, uploads are anonymous without it.
	Token     string
	APIURL    string
	UploadURL string
	// Zone prefers servers of that zone when set, e.g. "eu" or "na".
	Zone string
	// UploadLimit in KiB/s, not positive means unlimited.
	UploadLimit int
}

func AdditionFromConf(c *conf.Config) Addition {
	return Addition{
		Token:       c.Token,
		APIURL:      c.APIURL,
		UploadURL:   c.UploadURL,
		Zone:        c.Zone,
		UploadLimit: c.UploadLimit,
	}
}
