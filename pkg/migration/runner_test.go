package migration

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/muhammadchandra19/public-api/pkg/logger"
	"github.com/stretchr/testify/assert"
)

type execCall struct {
	sql  string
	args []any
}

type fakeExecutor struct {
	applied map[string]bool
	calls   []execCall
	failOn  string
	dialect Dialect
}

func (f *fakeExecutor) Exec(_ context.Context, sql string, args ...any) error {
	if f.failOn != "" && sql == f.failOn {
		return errors.New("exec failed")
	}
	f.calls = append(f.calls, execCall{sql: sql, args: args})
	return nil
}

func (f *fakeExecutor) AppliedIDs(context.Context) (map[string]bool, error) {
	return f.applied, nil
}

func (f *fakeExecutor) Dialect() Dialect {
	return f.dialect
}

func writeMigrations(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		assert.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600))
	}
	return dir
}

func TestLoad(t *testing.T) {
	dir := writeMigrations(t, map[string]string{
		"0002_create_candles.up.sql":        "CREATE TABLE candles ();",
		"0001_create_feed_history.up.sql":   "CREATE TABLE feed_history ();",
		"0001_create_feed_history.down.sql": "DROP TABLE feed_history;",
		"README.md":                         "ignored",
	})

	migrations, err := Load(dir)

	assert.NoError(t, err)
	assert.Len(t, migrations, 2)
	assert.Equal(t, "0001_create_feed_history", migrations[0].ID)
	assert.Equal(t, "create_feed_history", migrations[0].Name)
	assert.Equal(t, "DROP TABLE feed_history;", migrations[0].DownSQL)
	assert.Equal(t, "0002_create_candles", migrations[1].ID)
	assert.Empty(t, migrations[1].DownSQL)
}

func TestRunner_Up(t *testing.T) {
	dir := writeMigrations(t, map[string]string{
		"0001_a.up.sql": "CREATE TABLE a ();",
		"0002_b.up.sql": "CREATE TABLE b ();",
		"0003_c.up.sql": "CREATE TABLE c ();",
	})

	testCases := []struct {
		name     string
		executor *fakeExecutor
		steps    int
		assertFn func(t *testing.T, done []string, err error, executor *fakeExecutor)
	}{
		{
			name:     "applies all pending",
			executor: &fakeExecutor{applied: map[string]bool{"0001_a": true}, dialect: PostgreSQLDialect},
			assertFn: func(t *testing.T, done []string, err error, executor *fakeExecutor) {
				assert.NoError(t, err)
				assert.Equal(t, []string{"0002_b", "0003_c"}, done)
				assert.Equal(t, PostgreSQLDialect.CreateTable, executor.calls[0].sql)
				assert.Equal(t, "CREATE TABLE b ();", executor.calls[1].sql)
				assert.Equal(t, PostgreSQLDialect.Insert, executor.calls[2].sql)
				assert.Equal(t, []any{"0002_b", "b"}, executor.calls[2].args)
			},
		},
		{
			name:     "respects steps",
			executor: &fakeExecutor{applied: map[string]bool{}, dialect: QuestDBDialect},
			steps:    1,
			assertFn: func(t *testing.T, done []string, err error, executor *fakeExecutor) {
				assert.NoError(t, err)
				assert.Equal(t, []string{"0001_a"}, done)
			},
		},
		{
			name:     "stops on failure",
			executor: &fakeExecutor{applied: map[string]bool{}, dialect: PostgreSQLDialect, failOn: "CREATE TABLE b ();"},
			assertFn: func(t *testing.T, done []string, err error, executor *fakeExecutor) {
				assert.Error(t, err)
				assert.Equal(t, []string{"0001_a"}, done)
			},
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			runner := NewRunner(testCase.executor, logger.NewNop(), dir)
			done, err := runner.Up(context.Background(), testCase.steps)
			testCase.assertFn(t, done, err, testCase.executor)
		})
	}
}

func TestRunner_Down(t *testing.T) {
	dir := writeMigrations(t, map[string]string{
		"0001_a.up.sql":   "CREATE TABLE a ();",
		"0001_a.down.sql": "DROP TABLE a;",
		"0002_b.up.sql":   "CREATE TABLE b ();",
		"0002_b.down.sql": "DROP TABLE b;",
	})

	executor := &fakeExecutor{applied: map[string]bool{"0001_a": true, "0002_b": true}, dialect: PostgreSQLDialect}
	done, err := NewRunner(executor, logger.NewNop(), dir).Down(context.Background(), 1)

	assert.NoError(t, err)
	assert.Equal(t, []string{"0002_b"}, done)
	assert.Equal(t, "DROP TABLE b;", executor.calls[0].sql)
	assert.Equal(t, []any{"0002_b"}, executor.calls[1].args)

	_, err = NewRunner(&fakeExecutor{dialect: QuestDBDialect}, logger.NewNop(), dir).Down(context.Background(), 1)
	assert.Error(t, err)
}
