package urlcheck

import (
	"net"
	"net/url"
	"strings"

	"builderspace-backend/internal/util/errs"
)

// Best-effort heuristic filter for user-submitted links. Rejections here are
// advisory safety checks, not a guarantee that an accepted URL is safe.

var shortenerDomains = map[string]bool{
	"bit.ly":      true,
	"tinyurl.com": true,
	"t.co":        true,
	"goo.gl":      true,
	"is.gd":       true,
	"ow.ly":       true,
	"buff.ly":     true,
	"rebrand.ly":  true,
}

var suspiciousTLDs = []string{".tk", ".ml", ".ga", ".cf", ".gq", ".zip", ".mov"}

var suspiciousPathKeywords = []string{
	"login", "verify", "account", "secure", "banking", "signin", "password", "update",
}

// Swapped out in tests to avoid real DNS lookups.
var resolveIPs = net.LookupIP

// ValidateURL checks a shared-link URL for well-formedness and a set of
// phishing/SSRF heuristics. Returns a validation error describing the first
// failed check.
func ValidateURL(rawURL string) error {
	trimmed := strings.TrimSpace(rawURL)
	if trimmed == "" {
		return errs.Validation("url must not be empty")
	}

	parsed, err := url.Parse(trimmed)
	if err != nil {
		return errs.Validation("url is not well-formed")
	}

	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return errs.Validation("url must use http or https")
	}

	if parsed.User != nil {
		return errs.Validation("url must not contain embedded credentials")
	}

	host := parsed.Hostname()
	if host == "" {
		return errs.Validation("url must have a host")
	}

	if !isASCII(host) {
		return errs.Validation("url host must be ASCII")
	}

	if ip := net.ParseIP(host); ip != nil {
		if isPrivateOrLocal(ip) {
			return errs.Validation("url must not point to a private or local address")
		}
		return errs.Validation("url must not use a raw IP address")
	}

	lowerHost := strings.ToLower(host)
	if lowerHost == "localhost" || strings.HasSuffix(lowerHost, ".localhost") ||
		strings.HasSuffix(lowerHost, ".local") || strings.HasSuffix(lowerHost, ".internal") {
		return errs.Validation("url must not point to a private or local address")
	}

	if shortenerDomains[lowerHost] || shortenerDomains[stripWWW(lowerHost)] {
		return errs.Validation("url shorteners are not allowed")
	}

	for _, tld := range suspiciousTLDs {
		if strings.HasSuffix(lowerHost, tld) {
			return errs.Validation("url top-level domain is not allowed")
		}
	}

	// example.co.uk has depth 0 extra labels; a.b.c.d.example.com has 4
	if strings.Count(lowerHost, ".") > 3 {
		return errs.Validation("url has too many subdomain levels")
	}

	lowerPath := strings.ToLower(parsed.Path)
	if strings.Contains(lowerPath, "http:") || strings.Contains(lowerPath, "https:") {
		return errs.Validation("url must not embed another url in its path")
	}

	if strings.Contains(parsed.RawQuery, "http%3A") || strings.Contains(parsed.RawQuery, "https%3A") ||
		strings.Contains(strings.ToLower(trimmed), "%25") {
		return errs.Validation("url must not be double-encoded")
	}

	for _, keyword := range suspiciousPathKeywords {
		if strings.Contains(lowerPath, keyword) {
			return errs.Validation("url path contains a blocked keyword")
		}
	}

	// A public-looking hostname can still carry an A record inside a
	// loopback or private range. An unresolvable host passes: it cannot
	// be fetched anyway, and dev machines may have no DNS at all.
	if addrs, err := resolveIPs(lowerHost); err == nil {
		for _, ip := range addrs {
			if isPrivateOrLocal(ip) {
				return errs.Validation("url must not point to a private or local address")
			}
		}
	}

	return nil
}

func stripWWW(host string) string {
	return strings.TrimPrefix(host, "www.")
}

func isASCII(s string) bool {
	for _, r := range s {
		if r > 127 {
			return false
		}
	}
	return true
}

func isPrivateOrLocal(ip net.IP) bool {
	return ip.IsLoopback() || ip.IsPrivate() || ip.IsLinkLocalUnicast() ||
		ip.IsLinkLocalMulticast() || ip.IsUnspecified()
}
