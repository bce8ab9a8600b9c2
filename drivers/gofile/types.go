package gofile

import (
	"github.com/OpenListTeam/gofile-uploader/internal/model"
)

type Server struct {
	Name string `json:"name"`
	Zone string `json:"zone"`
}

type ServersResp struct {
	Status string `json:"status"`
	Data   struct {
		Servers []Server `json:"servers"`
	} `json:"data"`
}

type UploadResp struct {
	Status string              `json:"status"`
	Data   *model.UploadResult `json:"data"`
}
