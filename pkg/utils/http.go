package utils

import (
	"fmt"
	"net/url"
	"strings"
)

// FormDataDisposition builds the Content-Disposition of a multipart file part.
// Non-ASCII names get an extra RFC 5987 filename* parameter.
func FormDataDisposition(fieldName, fileName string) string {
	disposition := fmt.Sprintf(`form-data; name="%s"; filename="%s"`,
		quoteEscaper.Replace(fieldName), quoteEscaper.Replace(fileName))
	if isASCII(fileName) {
		return disposition
	}
	return disposition + "; filename*=utf-8''" + encodeRFC5987(fileName)
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"", "\r", "%0D", "\n", "%0A")

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= 0x80 {
			return false
		}
	}
	return true
}

// encodeRFC5987 percent-encodes everything except letters, digits and -._~
func encodeRFC5987(s string) string {
	var buf strings.Builder
	for _, r := range []byte(s) {
		if (r >= 'a' && r <= 'z') ||
			(r >= 'A' && r <= 'Z') ||
			(r >= '0' && r <= '9') ||
			r == '-' || r == '.' || r == '_' || r == '~' {
			buf.WriteByte(r)
		} else {
			fmt.Fprintf(&buf, "%%%02X", r)
		}
	}
	return buf.String()
}

// ReplaceServer substitutes the server name into an upload url template.
func ReplaceServer(template, placeholder, server string) (string, error) {
	raw := strings.ReplaceAll(template, placeholder, url.PathEscape(server))
	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("missing scheme or host in %q", raw)
	}
	return u.String(), nil
}
