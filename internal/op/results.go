package op

import (
	"github.com/OpenListTeam/gofile-uploader/internal/model"
)

// Results is the append-only list of successful uploads, in completion order.
type Results struct {
	list []model.UploadResult
}

func (r *Results) Append(res model.UploadResult) {
	r.list = append(r.list, res)
}

// List returns a copy of the results.
func (r *Results) List() []model.UploadResult {
	if r == nil {
		return nil
	}
	return append([]model.UploadResult(nil), r.list...)
}

func (r *Results) Len() int {
	if r == nil {
		return 0
	}
	return len(r.list)
}
