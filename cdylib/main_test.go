package main

import (
	"debug/elf"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeaderDeclaresPing(t *testing.T) {
	header, err := os.ReadFile("ping.h")
	require.NoError(t, err)
	assert.Contains(t, string(header), "extern bool ping_go(bool ping);")
	assert.Contains(t, string(header), "#include <stdbool.h>")
}

func TestSharedLibraryExportsPing(t *testing.T) {
	if testing.Short() {
		t.Skip("builds the shared library")
	}
	if runtime.GOOS != "linux" {
		t.Skip("symbol check reads ELF")
	}
	goTool, err := exec.LookPath("go")
	if err != nil {
		t.Skip("go tool not on PATH")
	}

	lib := filepath.Join(t.TempDir(), "libping.so")
	build := exec.Command(goTool, "build", "-buildmode=c-shared", "-o", lib, ".")
	out, err := build.CombinedOutput()
	require.NoError(t, err, string(out))

	f, err := elf.Open(lib)
	require.NoError(t, err)
	defer f.Close()

	symbols, err := f.DynamicSymbols()
	require.NoError(t, err)

	var found bool
	for _, sym := range symbols {
		if sym.Name == "ping_go" && elf.ST_TYPE(sym.Info) == elf.STT_FUNC && sym.Section != elf.SHN_UNDEF {
			found = true
			break
		}
	}
	assert.True(t, found, "libping.so does not export ping_go")
}
