package location

import (
	"context"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"
)

const gitTimeout = 2 * time.Second

// Resolver answers "what address is the user looking at" for the share dialog.
//
// Priority:
// 1) Override (flag, config file or SHARE_LOCATION)
// 2) web URL of Remote in Dir's git repository
// 3) ""
type Resolver struct {
	Override string
	Dir      string
	Remote   string
	Log      *zap.Logger
}

func (r Resolver) logger() *zap.Logger {
	if r.Log == nil {
		return zap.NewNop()
	}
	return r.Log
}

// CurrentLocation implements share.Locator.
func (r Resolver) CurrentLocation() string {
	if v := strings.TrimSpace(r.Override); v != "" {
		return v
	}

	dir := r.Dir
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			r.logger().Debug("location: getwd failed", zap.Error(err))
			return ""
		}
		dir = wd
	}
	if _, ok, err := FindGitDir(dir); err != nil || !ok {
		return ""
	}

	ctx, cancel := context.WithTimeout(context.Background(), gitTimeout)
	defer cancel()
	remote, err := RemoteURL(ctx, dir, r.Remote)
	if err != nil {
		r.logger().Debug("location: no git remote", zap.String("dir", dir), zap.Error(err))
		return ""
	}
	return WebURL(remote)
}
