// Package testutil provides an in-process fake of the Gofile API for tests.
package testutil

import (
	"io"
	"net/http"
	"net/http/httptest"
	"sync"

	"github.com/OpenListTeam/gofile-uploader/pkg/utils"
	"github.com/OpenListTeam/gofile-uploader/pkg/utils/random"
	"github.com/go-chi/chi/v5"
)

type Server struct {
	Name string `json:"name"`
	Zone string `json:"zone"`
}

// Upload is one request received by the fake upload endpoint.
type Upload struct {
	Server   string
	FileName string
	// ContentType is the header of the file part.
	ContentType string
	Content     []byte
	Token    string
	// Fields lists the multipart field names in the order they arrived.
	Fields        []string
	ContentLength int64
}

// FakeGofile serves /servers and /{server}/uploadFile.
type FakeGofile struct {
	*httptest.Server

	mu sync.Mutex
	// ServersStatus and Servers shape the discovery answer.
	ServersStatus string
	Servers       []Server
	// ServersBody replaces the discovery answer entirely when set.
	ServersBody string
	// Fail holds file names whose upload answers with FailStatus.
	Fail       map[string]bool
	FailStatus int
	// UploadBody replaces the upload answer entirely when set.
	UploadBody string
	// OnUpload runs before an upload is answered.
	OnUpload func(u Upload)

	uploads        []Upload
	discoveryCalls int
}

func NewFakeGofile() *FakeGofile {
	f := &FakeGofile{
		ServersStatus: "ok",
		Servers:       []Server{{Name: "store1", Zone: "eu"}},
		Fail:          map[string]bool{},
		FailStatus:    http.StatusInternalServerError,
	}
	r := chi.NewRouter()
	r.Get("/servers", f.handleServers)
	r.Post("/{server}/uploadFile", f.handleUpload)
	f.Server = httptest.NewServer(r)
	return f
}

// Set changes the fake's answers while holding its lock.
func (f *FakeGofile) Set(fn func(f *FakeGofile)) {
	f.mu.Lock()
	defer f.mu.Unlock()
	fn(f)
}

// UploadURL is the upload url template pointing at the fake.
func (f *FakeGofile) UploadURL() string {
	return f.URL + "/{server}/uploadFile"
}

func (f *FakeGofile) Uploads() []Upload {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]Upload(nil), f.uploads...)
}

func (f *FakeGofile) DiscoveryCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.discoveryCalls
}

func (f *FakeGofile) handleServers(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	f.discoveryCalls++
	body := f.ServersBody
	status, servers := f.ServersStatus, f.Servers
	f.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	if body != "" {
		_, _ = io.WriteString(w, body)
		return
	}
	resp := map[string]any{"status": status}
	if status == "ok" {
		resp["data"] = map[string]any{"servers": servers}
	}
	_ = utils.Json.NewEncoder(w).Encode(resp)
}

func (f *FakeGofile) handleUpload(w http.ResponseWriter, r *http.Request) {
	u := Upload{
		Server:        chi.URLParam(r, "server"),
		ContentLength: r.ContentLength,
	}
	mr, err := r.MultipartReader()
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	for {
		part, err := mr.NextPart()
		if err == io.EOF {
			break
		}
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		b, err := io.ReadAll(part)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		u.Fields = append(u.Fields, part.FormName())
		switch part.FormName() {
		case "token":
			u.Token = string(b)
		case "file":
			u.FileName = part.FileName()
			u.ContentType = part.Header.Get("Content-Type")
			u.Content = b
		}
	}

	f.mu.Lock()
	f.uploads = append(f.uploads, u)
	fail, failStatus, body, hook := f.Fail[u.FileName], f.FailStatus, f.UploadBody, f.OnUpload
	f.mu.Unlock()

	if hook != nil {
		hook(u)
	}
	w.Header().Set("Content-Type", "application/json")
	if fail {
		w.WriteHeader(failStatus)
		_, _ = io.WriteString(w, `{"status":"error-upload"}`)
		return
	}
	if body != "" {
		_, _ = io.WriteString(w, body)
		return
	}
	code := random.Code()
	_ = utils.Json.NewEncoder(w).Encode(map[string]any{
		"status": "ok",
		"data": map[string]any{
			"name":         u.FileName,
			"downloadPage": "https://gofile.io/d/" + code,
			"code":         code,
			"id":           random.String(12),
			"parentFolder": random.String(12),
			"size":         len(u.Content),
		},
	})
}
