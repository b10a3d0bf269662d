// Package urlutils classifies and normalizes strings that look like git
// repository URLs. Classification is purely syntactic: no network access
// is performed, and unrecognized input is never an error.
//
// Recognized forms:
//   - HTTPS/HTTP URLs for the named hosted providers (github.com,
//     gitlab.com, bitbucket.org)
//   - HTTP(S) URLs on self-hosted servers following conventional path
//     shapes (/git/..., /repo(s)/..., /scm/..., /projects/..., or any
//     path ending in .git)
//   - SSH shorthand (git@host:path.git, user@host:path.git)
//   - Explicit ssh:// and git:// URLs
package urlutils

import (
	"net/url"
	"regexp"
	"strings"
)

// FallbackName is used when no repository name can be derived from a URL.
const FallbackName = "repository"

var hostedProviders = map[string]bool{
	"github.com":    true,
	"gitlab.com":    true,
	"bitbucket.org": true,
}

var (
	hostedPattern    = regexp.MustCompile(`^https?://(www\.)?(github\.com|gitlab\.com|bitbucket\.org)/[^/\s]+/[^\s]+$`)
	pathShapePattern = regexp.MustCompile(`^https?://[^/\s]+/(git|repos?|scm|projects)(/[^/\s]+)+/?$`)
	dotGitPattern    = regexp.MustCompile(`^https?://[^/\s]+(/[^/\s]+)*/[^/\s]+\.git/?$`)
	sshShortPattern  = regexp.MustCompile(`^[\w.-]+@[\w.-]+:[^\s]+\.git/?$`)
	sshURLPattern    = regexp.MustCompile(`^ssh://([\w.-]+@)?[\w.-]+(:\d+)?[:/][^\s]+$`)
	gitProtoPattern  = regexp.MustCompile(`^git://[\w.-]+/[^\s]+$`)

	recognizers = []*regexp.Regexp{
		hostedPattern,
		pathShapePattern,
		dotGitPattern,
		sshShortPattern,
		sshURLPattern,
		gitProtoPattern,
	}
)

// RepositoryReference is the classified, normalized representation of a
// string identifying a git remote. It is a value type; construct it with
// Parse and discard it when superseded.
type RepositoryReference struct {
	RawURL        string // original input, trimmed
	NormalizedURL string // canonical form suitable for git clone
	Name          string // short repository name, never empty, no path separators
}

// Parse classifies text and, if it looks like a git repository URL,
// returns the normalized RepositoryReference for it.
func Parse(text string) (RepositoryReference, bool) {
	trimmed := strings.TrimSpace(text)
	if !IsRepositoryURL(trimmed) {
		return RepositoryReference{}, false
	}
	return RepositoryReference{
		RawURL:        trimmed,
		NormalizedURL: Normalize(trimmed),
		Name:          ExtractName(trimmed),
	}, true
}

// IsRepositoryURL reports whether text looks like a git repository URL.
// Empty or whitespace-only input is never recognized.
func IsRepositoryURL(text string) bool {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return false
	}
	for _, re := range recognizers {
		if re.MatchString(trimmed) {
			return true
		}
	}
	return false
}

// Normalize returns the canonical clone URL for text. SSH shorthand,
// ssh:// and git:// forms are already canonical and returned unchanged.
// HTTP(S) forms lose one trailing slash and gain a .git suffix when the
// path clearly names a repository. Normalization never fails; when
// confidence is insufficient the cleaned URL is returned as-is.
func Normalize(text string) string {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return trimmed
	}
	if strings.HasPrefix(trimmed, "ssh://") || strings.HasPrefix(trimmed, "git://") {
		return trimmed
	}
	if isSSHShorthand(trimmed) {
		return trimmed
	}
	if !strings.HasPrefix(trimmed, "http://") && !strings.HasPrefix(trimmed, "https://") {
		return trimmed
	}

	cleaned := strings.TrimSuffix(trimmed, "/")
	if strings.HasSuffix(cleaned, ".git") {
		return cleaned
	}

	parsed, err := url.Parse(cleaned)
	if err != nil {
		return cleaned
	}
	// A query or fragment means we cannot safely append a suffix.
	if parsed.RawQuery != "" || parsed.Fragment != "" {
		return cleaned
	}

	segments := pathSegments(parsed.Path)
	host := strings.TrimPrefix(parsed.Host, "www.")
	if hostedProviders[host] && len(segments) == 2 {
		return cleaned + ".git"
	}
	if len(segments) >= 2 {
		return cleaned + ".git"
	}
	return cleaned
}

// ExtractName derives a short repository name from text, for use as a
// default folder name. It never returns an empty string and the result
// never contains a path separator; FallbackName is returned when no
// component can be extracted.
func ExtractName(text string) string {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return FallbackName
	}

	if isSSHShorthand(trimmed) {
		path := trimmed[strings.LastIndex(trimmed, ":")+1:]
		path = strings.TrimSuffix(path, "/")
		path = strings.TrimSuffix(path, ".git")
		return lastSegment(path)
	}

	candidate := trimmed
	if parsed, err := url.Parse(trimmed); err == nil && parsed.Host != "" {
		candidate = parsed.Path
	}
	candidate = strings.TrimSuffix(candidate, "/")
	candidate = strings.TrimSuffix(candidate, ".git")
	return lastSegment(candidate)
}

// isSSHShorthand reports whether text is a scp-like git address,
// e.g. git@github.com:owner/repo.git.
func isSSHShorthand(text string) bool {
	return strings.Contains(text, "@") &&
		strings.Contains(text, ":") &&
		!strings.Contains(text, "://")
}

func pathSegments(path string) []string {
	trimmed := strings.Trim(path, "/")
	if trimmed == "" {
		return nil
	}
	return strings.Split(trimmed, "/")
}

func lastSegment(path string) string {
	segments := pathSegments(path)
	if len(segments) == 0 {
		return FallbackName
	}
	name := segments[len(segments)-1]
	if name == "" {
		return FallbackName
	}
	return name
}
