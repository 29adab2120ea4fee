package location

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// RemoteURL returns the configured fetch URL for a remote (e.g. origin).
func RemoteURL(ctx context.Context, dir, remoteName string) (string, error) {
	remoteName = strings.TrimSpace(remoteName)
	if remoteName == "" {
		remoteName = "origin"
	}
	out, err := git(ctx, dir, "remote", "get-url", remoteName)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}

func git(ctx context.Context, dir string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = dir

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			msg = err.Error()
		}
		return "", fmt.Errorf("git %s: %s", strings.Join(args, " "), msg)
	}
	return stdout.String(), nil
}

// FindGitDir walks up from start and returns the git directory path (e.g. /repo/.git or linked gitdir).
// It does not invoke the git binary.
func FindGitDir(start string) (gitDir string, ok bool, err error) {
	if strings.TrimSpace(start) == "" {
		return "", false, errors.New("empty start dir")
	}
	dir := filepath.Clean(strings.TrimSpace(start))

	for {
		candidate := filepath.Join(dir, ".git")
		st, statErr := os.Stat(candidate)
		switch {
		case statErr == nil && st.IsDir():
			return candidate, true, nil
		case statErr == nil && !st.IsDir():
			// Worktrees/submodules use a .git file pointing at the real gitdir.
			target, err := readGitdirFile(candidate)
			if err != nil {
				return "", false, err
			}
			if target != "" {
				return target, true, nil
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false, nil
		}
		dir = parent
	}
}

func readGitdirFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	for sc.Scan() {
		ln := strings.TrimSpace(sc.Text())
		if ln == "" {
			continue
		}
		if !strings.HasPrefix(strings.ToLower(ln), "gitdir:") {
			break
		}
		p := strings.TrimSpace(ln[len("gitdir:"):])
		if p == "" {
			return "", nil
		}
		if !filepath.IsAbs(p) {
			p = filepath.Join(filepath.Dir(path), p)
		}
		return filepath.Clean(p), nil
	}
	return "", sc.Err()
}
