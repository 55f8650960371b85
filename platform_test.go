package rawterm

import (
	"go/build/constraint"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	supportedOS   = []string{"linux", "darwin", "freebsd", "netbsd", "openbsd", "dragonfly", "windows"}
	unsupportedOS = []string{"solaris", "illumos", "aix", "plan9", "js", "wasip1"}
)

// buildsOn reports whether the //go:build line of src holds for goos.
// A file without one builds everywhere.
func buildsOn(t *testing.T, src, goos string) bool {
	t.Helper()
	for _, line := range strings.Split(src, "\n") {
		if !constraint.IsGoBuild(line) {
			continue
		}
		expr, err := constraint.Parse(line)
		require.NoError(t, err)
		return expr.Eval(func(tag string) bool { return tag == goos })
	}
	return true
}

// Files that use Terminal must not build where Terminal is not defined,
// and the unix files must all build on the same systems
func TestTerminalFilesShareBuildTags(t *testing.T) {
	files, err := filepath.Glob("*.go")
	require.NoError(t, err)

	unixSrc, err := os.ReadFile("terminal_unix.go")
	require.NoError(t, err)

	for _, file := range files {
		if strings.HasSuffix(file, "_test.go") {
			continue
		}
		data, err := os.ReadFile(file)
		require.NoError(t, err)
		src := string(data)
		if !strings.Contains(src, "*Terminal") && !strings.Contains(src, "NotifyResize") {
			continue
		}
		for _, goos := range unsupportedOS {
			assert.False(t, buildsOn(t, src, goos), "%s builds on %s", file, goos)
		}
		if strings.HasSuffix(file, "_unix.go") {
			for _, goos := range slices.Concat(supportedOS, unsupportedOS) {
				assert.Equal(t, buildsOn(t, string(unixSrc), goos), buildsOn(t, src, goos), "%s on %s", file, goos)
			}
		}
	}
}
