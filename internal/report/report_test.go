package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/OpenListTeam/gofile-uploader/internal/model"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
)

func TestResults(t *testing.T) {
	buf := &bytes.Buffer{}
	p := NewPrinter(buf)
	p.Results([]model.UploadResult{
		{Name: "a.txt", DownloadPage: "https://gofile.io/d/abc"},
		{Name: "b.txt", DownloadPage: "https://gofile.io/d/def"},
	})
	out := ansi.Strip(buf.String())
	assert.Equal(t, 2, strings.Count(out, "✓ Upload Complete"))
	assert.Contains(t, out, "File: a.txt")
	assert.Contains(t, out, "Download: https://gofile.io/d/def")
	assert.Less(t, strings.Index(out, "a.txt"), strings.Index(out, "b.txt"))
}

func TestResults_Empty(t *testing.T) {
	buf := &bytes.Buffer{}
	NewPrinter(buf).Results(nil)
	assert.Empty(t, buf.String())
}

func TestError(t *testing.T) {
	buf := &bytes.Buffer{}
	NewPrinter(buf).Error("Error uploading %s: %v", "a.txt", "boom")
	assert.Equal(t, "Error uploading a.txt: boom\n", ansi.Strip(buf.String()))
}
