package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/leighmacdonald/pairhash/internal/domain"
	"github.com/stretchr/testify/require"
)

const testConfig = `
registry:
  servers:
    - server_id: 0
      server_key: 23019
      client_key: 32037
    - server_id: 5
      server_key: "0x0010"
      client_key: 65535
pairing:
  client_name: "Oompa Loompa"
  server_id: 0
logging:
  level: error
`

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	return executeConfig(t, testConfig, args...)
}

func executeConfig(t *testing.T, body string, args ...string) (string, error) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "pairhash.yml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	var (
		out    bytes.Buffer
		errOut bytes.Buffer
	)

	rootCmd, state := newRootCmd()
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(append([]string{"--config", path}, args...))

	errRun := run(t.Context(), rootCmd, state)

	return out.String(), errRun
}

func TestHashCmd(t *testing.T) {
	out, errExecute := execute(t, "hash", "Oompa Loompa", "")
	require.NoError(t, errExecute)
	require.Equal(t, "41888\tOompa Loompa\n0\t\n", out)
}

func TestHashCmdNoArgs(t *testing.T) {
	_, errExecute := execute(t, "hash")
	require.Error(t, errExecute)
}

func TestKeysCmd(t *testing.T) {
	out, errExecute := execute(t, "keys", "0", "5")
	require.NoError(t, errExecute)
	require.Equal(t, "0\tserver_key=23019 client_key=32037\n5\tserver_key=16 client_key=65535\n", out)
}

func TestKeysCmdUnknown(t *testing.T) {
	_, errExecute := execute(t, "keys", "9")
	require.ErrorIs(t, errExecute, domain.ErrUnknownServerID)
}

func TestKeysCmdInvalid(t *testing.T) {
	for _, arg := range []string{"abc", "-1"} {
		_, errExecute := execute(t, "keys", "--", arg)
		require.ErrorIs(t, errExecute, domain.ErrInvalidServerID)
	}
}

func TestServersCmd(t *testing.T) {
	out, errExecute := execute(t, "servers")
	require.NoError(t, errExecute)
	require.Contains(t, out, "23019")
	require.Contains(t, out, "32037")
	require.Contains(t, out, "65535")
}

func TestPairCmdDefaults(t *testing.T) {
	out, errExecute := execute(t, "pair")
	require.NoError(t, errExecute)
	require.Equal(t, "Hash from the name is: 41888\nServer 0 keys: server_key=23019 client_key=32037\n", out)
}

func TestPairCmdFlags(t *testing.T) {
	out, errExecute := execute(t, "pair", "--name", "abc", "--server-id", "5")
	require.NoError(t, errExecute)
	require.Equal(t, "Hash from the name is: 31856\nServer 5 keys: server_key=16 client_key=65535\n", out)
}

func TestPairCmdUnknownServer(t *testing.T) {
	_, errExecute := execute(t, "pair", "--server-id", "3")
	require.ErrorIs(t, errExecute, domain.ErrUnknownServerID)
}

func TestPairCmdNegativeServer(t *testing.T) {
	_, errExecute := execute(t, "pair", "--server-id=-3")
	require.ErrorIs(t, errExecute, domain.ErrInvalidServerID)
}

func TestBadConfig(t *testing.T) {
	rootCmd, state := newRootCmd()
	rootCmd.SetOut(&bytes.Buffer{})
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs([]string{"--config", filepath.Join(t.TempDir(), "missing.yml"), "hash", "x"})

	require.ErrorIs(t, run(t.Context(), rootCmd, state), domain.ErrReadConfig)
}

func TestVersion(t *testing.T) {
	out, errExecute := execute(t, "--version")
	require.NoError(t, errExecute)
	require.Contains(t, out, BuildVersion)
}

func TestMetricsFileFlag(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pairhash.prom")

	_, errExecute := execute(t, "--metrics-file", path, "keys", "9")
	require.ErrorIs(t, errExecute, domain.ErrUnknownServerID)

	body, errRead := os.ReadFile(path)
	require.NoError(t, errRead)
	require.Contains(t, string(body), `pairhash_key_lookups_total{result="unknown"} 1`)
}

func TestMetricsFileConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pairhash.prom")

	_, errExecute := executeConfig(t, testConfig+"metrics:\n  textfile: "+path+"\n", "pair")
	require.NoError(t, errExecute)

	body, errRead := os.ReadFile(path)
	require.NoError(t, errRead)
	require.Contains(t, string(body), "pairhash_names_hashed_total 1")
	require.Contains(t, string(body), `pairhash_key_lookups_total{result="found"} 1`)
}

func TestMetricsFileUnwritable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "pairhash.prom")

	_, errExecute := execute(t, "--metrics-file", path, "hash", "x")
	require.ErrorIs(t, errExecute, domain.ErrMetricsWrite)
}

func TestFailureLoggedToFile(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "pairhash.log")
	body := `
logging:
  level: debug
  file: ` + logPath + `
`

	_, errExecute := executeConfig(t, body, "keys", "9")
	require.ErrorIs(t, errExecute, domain.ErrUnknownServerID)

	logBody, errRead := os.ReadFile(logPath)
	require.NoError(t, errRead)
	require.Contains(t, string(logBody), "level=ERROR")
	require.Contains(t, string(logBody), "unknown server id: 9")
}

func TestBadLogFile(t *testing.T) {
	body := `
logging:
  file: ` + filepath.Join(t.TempDir(), "missing", "pairhash.log") + `
`

	require.NotPanics(t, func() {
		_, errExecute := executeConfig(t, body, "hash", "x")
		require.ErrorContains(t, errExecute, "failed to open logfile")
	})
}
