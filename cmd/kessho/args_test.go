package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kessho-pm/kessho/internal/pkgkey"
	"github.com/kessho-pm/kessho/internal/target"
	"github.com/kessho-pm/kessho/internal/transaction"
)

const repoURL = "https://repo.test"

func TestParseActionArg(t *testing.T) {
	tests := []struct {
		name string
		arg  string
		want transaction.PackageAction
	}{
		{
			name: "install with explicit target",
			arg:  "install:ripgrep@user",
			want: transaction.Install(pkgkey.New(repoURL, "ripgrep"), target.User),
		},
		{
			name: "uninstall with explicit target",
			arg:  "uninstall:fd@system",
			want: transaction.Uninstall(pkgkey.New(repoURL, "fd"), target.System),
		},
		{
			name: "install without target uses default",
			arg:  "install:bat",
			want: transaction.Install(pkgkey.New(repoURL, "bat"), target.System),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseActionArg(tt.arg, repoURL, target.System)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseActionArgInvalid(t *testing.T) {
	tests := []string{
		"ripgrep",
		"install:",
		"delete:ripgrep",
		"install:ripgrep@everywhere",
	}
	for _, arg := range tests {
		t.Run(arg, func(t *testing.T) {
			_, err := parseActionArg(arg, repoURL, target.System)
			assert.Error(t, err)
		})
	}
}

func TestParseActionArgs(t *testing.T) {
	got, err := parseActionArgs([]string{"install:a", "uninstall:b@user"}, repoURL, target.System)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.True(t, got[0].IsInstall())
	assert.True(t, got[1].IsUninstall())
}
