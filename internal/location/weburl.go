package location

import (
	"net/url"
	"strings"
)

// WebURL converts a git remote URL into the https address a browser would open.
//
// Handled forms:
//   - git@host:owner/repo(.git)
//   - ssh://[user@]host[:port]/owner/repo(.git)
//   - git://host/owner/repo(.git)
//   - http(s)://[user[:pass]@]host/owner/repo(.git)
//
// Local paths and file:// remotes have no web address and yield "".
func WebURL(remote string) string {
	remote = strings.TrimSpace(remote)
	if remote == "" {
		return ""
	}

	if !strings.Contains(remote, "://") {
		// scp-like syntax: [user@]host:path
		at := strings.Index(remote, "@")
		colon := strings.Index(remote, ":")
		if colon <= 0 || (at >= 0 && at > colon) || strings.HasPrefix(remote, "/") {
			return ""
		}
		host := remote[at+1 : colon]
		path := remote[colon+1:]
		return join("https", host, path)
	}

	u, err := url.Parse(remote)
	if err != nil {
		return ""
	}
	switch u.Scheme {
	case "http", "https", "ssh", "git", "git+ssh":
	default:
		return ""
	}
	scheme := "https"
	if u.Scheme == "http" {
		scheme = "http"
	}
	return join(scheme, u.Hostname(), u.Path)
}

func join(scheme, host, path string) string {
	host = strings.TrimSpace(host)
	if host == "" {
		return ""
	}
	path = strings.Trim(strings.TrimSpace(path), "/")
	path = strings.TrimSuffix(path, ".git")
	if path == "" {
		return scheme + "://" + host
	}
	return scheme + "://" + host + "/" + path
}
