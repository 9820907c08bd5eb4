package fmtcmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempOrg(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.org")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestRunFmt_WriteReordersPlanning(t *testing.T) {
	path := writeTempOrg(t, "* TODO Report\nDEADLINE: <2024-03-05 Tue> SCHEDULED: <2024-03-01 Fri>\n")

	err := runFmt(&fmtOptions{file: path, write: true})
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "* TODO Report\n  SCHEDULED: <2024-03-01 Fri> DEADLINE: <2024-03-05 Tue>\n", string(data))
}

func TestRunFmt_WriteLeavesCleanFileAlone(t *testing.T) {
	content := "* TODO Report\n  SCHEDULED: <2024-03-01 Fri>\nBody.\n"
	path := writeTempOrg(t, content)

	info, err := os.Stat(path)
	require.NoError(t, err)
	before := info.ModTime()

	err = runFmt(&fmtOptions{file: path, write: true})
	require.NoError(t, err)

	info, err = os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, before, info.ModTime())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, content, string(data))
}

func TestRunFmt_DontIndent(t *testing.T) {
	path := writeTempOrg(t, "* TODO Report\n  SCHEDULED: <2024-03-01 Fri>\n")

	err := runFmt(&fmtOptions{file: path, write: true, dontIndent: true})
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "* TODO Report\nSCHEDULED: <2024-03-01 Fri>\n", string(data))
}

func TestRunFmt_WriteWithStdinRejected(t *testing.T) {
	err := runFmt(&fmtOptions{file: "-", write: true})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "stdin")
}

func TestRunFmt_FileNotFound(t *testing.T) {
	err := runFmt(&fmtOptions{file: "/nonexistent/notes.org"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read")
}

func TestNewCmdFmt_Flags(t *testing.T) {
	cmd := NewCmdFmt()

	assert.Equal(t, "fmt <file>", cmd.Use)
	require.NotNil(t, cmd.Flags().Lookup("write"))
	require.NotNil(t, cmd.Flags().Lookup("dont-indent"))
}
