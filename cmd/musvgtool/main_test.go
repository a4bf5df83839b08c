package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRunXMLToBinaryToXML(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.svg")
	binPath := filepath.Join(dir, "out.svgv")
	xmlPath := filepath.Join(dir, "out.svg")

	src := `<svg viewBox="0 0 10 10"><rect x="1" y="2" width="3" height="4"/></svg>`
	require.NoError(t, os.WriteFile(in, []byte(src), 0o644))

	code := run([]string{"-if", in, "-of", binPath, "-i", "xml", "-o", "svgv"})
	require.Equal(t, 0, code)

	code = run([]string{"-if", binPath, "-of", xmlPath, "-i", "svgv", "-o", "xml"})
	require.Equal(t, 0, code)

	out, err := os.ReadFile(xmlPath)
	require.NoError(t, err)
	require.Contains(t, string(out), `viewBox="0 0 10 10"`)
	require.Contains(t, string(out), `x="1"`)
}

func TestRunMissingRequiredArg(t *testing.T) {
	code := run([]string{"-i", "xml", "-o", "xml"})
	require.Equal(t, 1, code)
}

func TestRunUnknownFlag(t *testing.T) {
	code := run([]string{"--not-a-real-flag"})
	require.Equal(t, 1, code)
}

func TestRunHelp(t *testing.T) {
	code := run([]string{"-h"})
	require.Equal(t, 0, code)
}
