package conf

const (
	EnvPrefix = "GOFILE_"
	EnvFile   = ".env"

	DefaultAPIURL    = "https://api.gofile.io"
	DefaultUploadURL = "https://{server}.gofile.io/uploadFile"

	// ServerPlaceholder is replaced by the selected server name in UploadURL.
	ServerPlaceholder = "{server}"
)

const (
	StatusOK = "ok"
)
