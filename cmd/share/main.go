package main

import (
	"os"
	"strings"

	"share-cli/internal/cli"
)

func isShareURL(s string) bool {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, p := range []string{"http://", "https://", "ipfs://", "ipns://"} {
		if strings.HasPrefix(s, p) && len(s) > len(p) {
			return true
		}
	}
	return false
}

// rewriteDirectURLArgs turns `share <url>` into `share dialog <url>`.
//
// Cobra treats the first non-flag token as a subcommand, so argv is rewritten
// before parsing. Persistent flags may come first (`share --pretty <url>`), so
// the first positional token is located rather than argv[1].
func rewriteDirectURLArgs(argv []string) []string {
	if len(argv) < 2 {
		return argv
	}

	valueFlags := map[string]bool{
		"--config":   true,
		"--location": true,
		"--format":   true,
	}

	for i := 1; i < len(argv); i++ {
		a := strings.TrimSpace(argv[i])
		if a == "" {
			continue
		}
		if a == "--" {
			if i+1 < len(argv) && isShareURL(argv[i+1]) {
				return insertDialog(argv, i+1)
			}
			return argv
		}
		if strings.HasPrefix(a, "-") {
			if !strings.Contains(a, "=") && valueFlags[a] {
				i++ // skip value
			}
			continue
		}
		if isShareURL(a) {
			return insertDialog(argv, i)
		}
		return argv
	}
	return argv
}

func insertDialog(argv []string, at int) []string {
	out := make([]string, 0, len(argv)+1)
	out = append(out, argv[:at]...)
	out = append(out, "dialog")
	out = append(out, argv[at:]...)
	return out
}

func main() {
	os.Args = rewriteDirectURLArgs(os.Args)

	cmd := cli.NewRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
