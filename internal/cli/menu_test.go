package cli

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/JohnMutemi/revised-banking-cli/internal/database"
	"github.com/JohnMutemi/revised-banking-cli/internal/services"
)

func newTestMenu(t *testing.T, script string) (*Menu, *bytes.Buffer) {
	t.Helper()
	db, err := database.Open(&database.Config{
		Path:         filepath.Join(t.TempDir(), "bank.db"),
		BusyTimeout:  time.Second,
		MaxOpenConns: 1,
	})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, database.Init(db))

	engine := services.NewATMService(db, zap.NewNop())
	require.NoError(t, engine.Setup())

	out := &bytes.Buffer{}
	return New(engine, strings.NewReader(script), out), out
}

func TestMenu_CreateLoginDepositExit(t *testing.T) {
	script := strings.Join([]string{
		"1",     // create account
		"alice", // username
		"1234",  // pin
		"2",     // login
		"alice",
		"1234",
		"1",   // deposit
		"100", // amount
		"3",   // view balance
		"7",   // logout
		"3",   // exit
	}, "\n") + "\n"

	menu, out := newTestMenu(t, script)
	menu.Run()

	output := out.String()
	assert.Contains(t, output, "Welcome alice!")
	assert.Contains(t, output, "Deposited 100. New balance is 100.")
	assert.Contains(t, output, "Current balance: 100")
}

func TestMenu_LoginFailureReprompts(t *testing.T) {
	script := strings.Join([]string{
		"2", // login without an account
		"ghost",
		"0000",
		"3", // exit
	}, "\n") + "\n"

	menu, out := newTestMenu(t, script)
	menu.Run()

	assert.Contains(t, out.String(), "Login failed: invalid username or pin")
}
