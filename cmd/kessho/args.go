package main

import (
	"fmt"
	"strings"

	"github.com/kessho-pm/kessho/internal/pkgkey"
	"github.com/kessho-pm/kessho/internal/target"
	"github.com/kessho-pm/kessho/internal/transaction"
)

// parseActionArg parses one positional argument of the form
// "install:<id>@<target>" or "uninstall:<id>@<target>", e.g.
// "install:ripgrep@user". The target suffix is optional and defaults to
// defaultTarget.
func parseActionArg(arg, repositoryURL string, defaultTarget target.Target) (transaction.PackageAction, error) {
	verb, rest, ok := strings.Cut(arg, ":")
	if !ok {
		return transaction.PackageAction{}, fmt.Errorf("invalid action %q: expected install:<id> or uninstall:<id>", arg)
	}

	id, targetStr, hasTarget := strings.Cut(rest, "@")
	if id == "" {
		return transaction.PackageAction{}, fmt.Errorf("invalid action %q: missing package id", arg)
	}

	t := defaultTarget
	if hasTarget {
		parsed, err := target.Parse(targetStr)
		if err != nil {
			return transaction.PackageAction{}, fmt.Errorf("invalid action %q: %w", arg, err)
		}
		t = parsed
	}

	key := pkgkey.New(repositoryURL, id)
	switch verb {
	case "install":
		return transaction.Install(key, t), nil
	case "uninstall":
		return transaction.Uninstall(key, t), nil
	default:
		return transaction.PackageAction{}, fmt.Errorf("invalid action %q: unknown verb %q", arg, verb)
	}
}

func parseActionArgs(args []string, repositoryURL string, defaultTarget target.Target) ([]transaction.PackageAction, error) {
	out := make([]transaction.PackageAction, len(args))
	for i, arg := range args {
		a, err := parseActionArg(arg, repositoryURL, defaultTarget)
		if err != nil {
			return nil, err
		}
		out[i] = a
	}
	return out, nil
}
