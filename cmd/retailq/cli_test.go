package main

import (
	"bytes"
	"context"
	"net"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phenrril/retailq/internal/adapters/fixtures"
	"github.com/phenrril/retailq/internal/app"
	"github.com/phenrril/retailq/internal/config"
	"github.com/phenrril/retailq/internal/domain"
	"github.com/phenrril/retailq/internal/money"
	"github.com/phenrril/retailq/internal/usecase"
)

func testApp(t *testing.T) *app.App {
	t.Helper()
	data, err := fixtures.Load("")
	require.NoError(t, err)
	return app.NewFromData(config.Config{Currency: money.USD}, data)
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() { rootCmd.SetArgs(nil) })
	err := rootCmd.Execute()
	return out.String(), err
}

func TestExportUnknownKind(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "report.xlsx")
	_, err := execute(t, "export", "pdf", "--out", out)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "desconocido")
	assert.NoFileExists(t, out)
}

func TestExportFileInvalidStatusLeavesNoFile(t *testing.T) {
	exportStatus = "lost"
	t.Cleanup(func() { exportStatus = "" })

	out := filepath.Join(t.TempDir(), "orders.xlsx")
	err := exportFile(context.Background(), testApp(t), "orders", out)
	assert.ErrorIs(t, err, domain.ErrInvalidFilter)
	assert.NoFileExists(t, out)
}

func TestExportFileWritesWorkbook(t *testing.T) {
	exportIDs = []string{"1", "3"}
	t.Cleanup(func() { exportIDs = nil })

	dir := t.TempDir()
	for _, kind := range []string{"orders", "customers", "compare"} {
		out := filepath.Join(dir, kind+".xlsx")
		require.NoError(t, exportFile(context.Background(), testApp(t), kind, out))
		st, err := os.Stat(out)
		require.NoError(t, err)
		assert.NotZero(t, st.Size())
	}
}

func TestChatCommand(t *testing.T) {
	t.Setenv("CHAT_DELAY", "0s")
	out, err := execute(t, "chat", "I", "want", "a", "refund")
	require.NoError(t, err)
	assert.Contains(t, out, usecase.DefaultChatRules[4].Response)
}

func TestListenFreePort(t *testing.T) {
	ln, err := listen("0")
	require.NoError(t, err)
	defer ln.Close()
	assert.NotZero(t, ln.Addr().(*net.TCPAddr).Port)
}

func TestListenFallsBackWhenBusy(t *testing.T) {
	busy, err := net.Listen("tcp", ":0")
	require.NoError(t, err)
	defer busy.Close()
	port := busy.Addr().(*net.TCPAddr).Port

	ln, err := listen(strconv.Itoa(port))
	if err != nil {
		// todos los alternativos ocupados en esta máquina
		t.Skipf("fallback ports busy: %v", err)
	}
	defer ln.Close()
	got := ln.Addr().(*net.TCPAddr).Port
	assert.NotEqual(t, port, got)
	assert.GreaterOrEqual(t, got, 8081)
	assert.LessOrEqual(t, got, 8090)
}
