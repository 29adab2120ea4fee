package cli

import (
	"fmt"
	"strings"

	"share-cli/internal/share"
)

type unknownOptionError struct {
	name string
}

func (e unknownOptionError) Error() string {
	known := make([]string, 0, len(share.KnownOptions))
	for _, o := range share.KnownOptions {
		known = append(known, string(o))
	}
	return fmt.Sprintf("unknown option: %s (known: %s)", e.name, strings.Join(known, ", "))
}

func errUnknownOption(name string) error {
	return unknownOptionError{name: name}
}

type unknownTargetError struct {
	target string
}

func (e unknownTargetError) Error() string {
	return fmt.Sprintf("unknown target: %s (expected url, embed, markdown or html)", e.target)
}

func errUnknownTarget(target string) error {
	return unknownTargetError{target: target}
}
