package model

// ServerAssignment names the upload server picked for the whole run.
type ServerAssignment struct {
	Name string
	Zone string
}

func (s ServerAssignment) IsZero() bool {
	return s.Name == ""
}

func (s ServerAssignment) String() string {
	return s.Name
}

// UploadResult is what the service returns for a stored file.
type UploadResult struct {
	Name         string `json:"name"`
	DownloadPage string `json:"downloadPage"`
	Code         string `json:"code,omitempty"`
	FileID       string `json:"id,omitempty"`
	ParentFolder string `json:"parentFolder,omitempty"`
	MD5          string `json:"md5,omitempty"`
	Size         int64  `json:"size,omitempty"`
}

// Outcome is the result of processing one file, exactly one of Result and Err is set.
type Outcome struct {
	Path   string
	Result *UploadResult
	Err    error
}

func (o Outcome) OK() bool {
	return o.Err == nil && o.Result != nil
}

// UpdateProgress receives the number of file bytes sent so far.
type UpdateProgress func(done int64)
