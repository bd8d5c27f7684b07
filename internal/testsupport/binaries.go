package testsupport

import (
	"os"
	"path/filepath"
	"testing"
)

// StubBinary drops an executable shell script named name into dir. The script
// body runs under sh, so stubs can inspect "$@" or write fake output files.
func StubBinary(t testing.TB, dir, name, body string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	script := "#!/bin/sh\n" + body + "\n"
	if err := os.WriteFile(path, []byte(script), 0o755); err != nil {
		t.Fatalf("write stub %s: %v", name, err)
	}
	return path
}

// StubPath creates a temp dir of stub binaries and prepends it to PATH for
// the remainder of the test. Keys are binary names, values are script bodies.
func StubPath(t *testing.T, stubs map[string]string) string {
	t.Helper()

	dir := t.TempDir()
	for name, body := range stubs {
		StubBinary(t, dir, name, body)
	}
	t.Setenv("PATH", dir+string(os.PathListSeparator)+os.Getenv("PATH"))
	return dir
}
