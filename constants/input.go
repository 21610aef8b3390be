package constants

import (
	"net/url"
	"strings"
)

// InputType classifies a raw capture before enrichment.
type InputType string

const (
	InputWeb      InputType = "WEB"
	InputText     InputType = "TEXT"
	InputImage    InputType = "IMAGE"
	InputDocument InputType = "DOCUMENT"
	InputMedia    InputType = "MEDIA"
	InputProduct  InputType = "PRODUCT"
	InputPlace    InputType = "PLACE"
	InputQRCode   InputType = "QR_CODE"
)

// InputTypes holds the allowed values for the input_type field on capture_inputs.
var InputTypes = []string{
	string(InputWeb),
	string(InputText),
	string(InputImage),
	string(InputDocument),
	string(InputMedia),
	string(InputProduct),
	string(InputPlace),
	string(InputQRCode),
}

// internalSchemes are app-private URL schemes that must never be sent to
// the link-metadata provider.
var internalSchemes = map[string]struct{}{
	"file":     {},
	"data":     {},
	"about":    {},
	"captured": {},
}

// IsEnrichableURL reports whether raw is an absolute http(s)-style URL
// worth handing to the link-metadata provider.
func IsEnrichableURL(raw string) bool {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return false
	}
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return false
	}
	scheme := strings.ToLower(u.Scheme)
	if _, internal := internalSchemes[scheme]; internal {
		return false
	}
	return scheme == "http" || scheme == "https"
}

// CanonicalURL normalizes a URL for identity hashing: lowercased scheme
// and host, default port and trailing slash stripped, fragment dropped.
// Query order is preserved; two links differing only in fragment or case
// of the host resolve to the same item.
func CanonicalURL(raw string) string {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil || u.Host == "" {
		return strings.TrimSpace(raw)
	}
	u.Scheme = strings.ToLower(u.Scheme)
	host := strings.ToLower(u.Host)
	switch {
	case u.Scheme == "http" && strings.HasSuffix(host, ":80"):
		host = strings.TrimSuffix(host, ":80")
	case u.Scheme == "https" && strings.HasSuffix(host, ":443"):
		host = strings.TrimSuffix(host, ":443")
	}
	u.Host = host
	u.Fragment = ""
	if u.Path == "/" {
		u.Path = ""
	}
	return u.String()
}
