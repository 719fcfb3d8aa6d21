package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("CHICAGO_CONFIG", "")
	t.Setenv("CHICAGO_STORAGE", "")
	t.Setenv("CHICAGO_SEED", "")
	t.Setenv("CHICAGO_LOG_LEVEL", "")
	t.Setenv("ENVIRONMENT", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Environment)
	assert.True(t, cfg.IsDevelopment())
	assert.Equal(t, "WARN", cfg.LogLevel)
	assert.Equal(t, StorageMemory, cfg.Storage)
	assert.Zero(t, cfg.Seed)
	assert.Equal(t, DefaultTable(), cfg.Table)
	assert.Equal(t, 52, cfg.Table.Rules.WinPoints)
	assert.Equal(t, 30, cfg.Table.Rules.MaxRoundIndex)
	assert.Equal(t, 5, cfg.Table.Rules.OutplayAward)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("CHICAGO_STORAGE", "SQLite")
	t.Setenv("CHICAGO_SQLITE_DSN", "file:test?mode=memory")
	t.Setenv("CHICAGO_SEED", "1234")
	t.Setenv("ENVIRONMENT", "production")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, StorageSQLite, cfg.Storage)
	assert.Equal(t, "file:test?mode=memory", cfg.SQLiteDSN)
	assert.Equal(t, uint64(1234), cfg.Seed)
	assert.False(t, cfg.IsDevelopment())
}

func TestLoadFileStorage(t *testing.T) {
	t.Setenv("CHICAGO_STORAGE", "file")
	t.Setenv("CHICAGO_HISTORY_FILE", "/tmp/chicago/history.json")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, StorageFile, cfg.Storage)
	assert.Equal(t, "/tmp/chicago/history.json", cfg.HistoryPath)
}

func TestLoadRejectsBadValues(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{name: "bad seed", key: "CHICAGO_SEED", val: "-4"},
		{name: "bad storage", key: "CHICAGO_STORAGE", val: "postgres"},
		{name: "missing table file", key: "CHICAGO_CONFIG", val: "/does/not/exist.yaml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.val)
			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestLoadTableFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "table.yaml")
	content := `
players:
  - name: Alice
    kind: human
  - name: Bob
    kind: AI
    play: first-legal
  - name: Carol
    kind: ai
    redraw: stand-pat
rules:
  win_points: 25
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	t.Setenv("CHICAGO_CONFIG", path)

	cfg, err := Load()
	require.NoError(t, err)

	require.Len(t, cfg.Table.Players, 3)
	assert.Equal(t, SeatConfig{Name: "Alice", Kind: KindHuman}, cfg.Table.Players[0])
	assert.Equal(t, SeatConfig{Name: "Bob", Kind: KindAI, Redraw: RedrawKeepMadeHand, Play: PlayFirstLegal}, cfg.Table.Players[1])
	assert.Equal(t, SeatConfig{Name: "Carol", Kind: KindAI, Redraw: RedrawStandPat, Play: PlayChaseFinalTrick}, cfg.Table.Players[2])

	assert.Equal(t, 25, cfg.Table.Rules.WinPoints)
	assert.Equal(t, 30, cfg.Table.Rules.MaxRoundIndex, "Unset rules should fall back to defaults")
	assert.Equal(t, 10, cfg.Table.Rules.MaxPlayAttempts)
}

func TestParseTableKeepsExplicitZeros(t *testing.T) {
	table, err := ParseTable([]byte(`
players:
  - name: Alice
  - name: Bob
rules:
  max_round_index: 0
  outplay_award: 0
`))
	require.NoError(t, err)

	assert.Equal(t, 0, table.Rules.MaxRoundIndex)
	assert.Equal(t, 0, table.Rules.OutplayAward)
	assert.Equal(t, 52, table.Rules.WinPoints)
	assert.Equal(t, 10, table.Rules.MaxPlayAttempts)
	assert.NoError(t, table.Validate())
}

func TestParseTableWithoutRules(t *testing.T) {
	table, err := ParseTable([]byte("players: [{name: Alice}, {name: Bob}]"))
	require.NoError(t, err)

	assert.Equal(t, DefaultRules(), table.Rules)
}

func TestParseTableInvalidYAML(t *testing.T) {
	_, err := ParseTable([]byte("players: [unterminated"))
	assert.Error(t, err)
}

func TestTableValidate(t *testing.T) {
	seat := func(name string) SeatConfig { return SeatConfig{Name: name, Kind: KindHuman} }

	tests := []struct {
		name    string
		table   TableConfig
		wantErr bool
	}{
		{
			name:  "default table",
			table: DefaultTable(),
		},
		{
			name:    "one player",
			table:   TableConfig{Players: []SeatConfig{seat("A")}, Rules: DefaultRules()},
			wantErr: true,
		},
		{
			name: "eleven players",
			table: TableConfig{Players: []SeatConfig{
				seat("A"), seat("B"), seat("C"), seat("D"), seat("E"), seat("F"),
				seat("G"), seat("H"), seat("I"), seat("J"), seat("K"),
			}, Rules: DefaultRules()},
			wantErr: true,
		},
		{
			name:    "duplicate names",
			table:   TableConfig{Players: []SeatConfig{seat("Alice"), seat("alice")}, Rules: DefaultRules()},
			wantErr: true,
		},
		{
			name:    "blank name",
			table:   TableConfig{Players: []SeatConfig{seat("Alice"), seat("  ")}, Rules: DefaultRules()},
			wantErr: true,
		},
		{
			name: "unknown kind",
			table: TableConfig{Players: []SeatConfig{
				seat("Alice"), {Name: "Bob", Kind: "robot"},
			}, Rules: DefaultRules()},
			wantErr: true,
		},
		{
			name: "strategy names are left to the registry",
			table: TableConfig{Players: []SeatConfig{
				seat("Alice"), {Name: "Bob", Kind: KindAI, Redraw: "yolo", Play: PlayFirstLegal},
			}, Rules: DefaultRules()},
		},
		{
			name: "ai seat without a play strategy",
			table: TableConfig{Players: []SeatConfig{
				seat("Alice"), {Name: "Bob", Kind: KindAI, Redraw: RedrawStandPat},
			}, Rules: DefaultRules()},
			wantErr: true,
		},
		{
			name: "single round game",
			table: TableConfig{Players: []SeatConfig{seat("A"), seat("B")}, Rules: RulesConfig{
				WinPoints: 52, MaxRoundIndex: 0, OutplayAward: 5, MaxPlayAttempts: 10,
			}},
		},
		{
			name: "zero attempts",
			table: TableConfig{Players: []SeatConfig{seat("A"), seat("B")}, Rules: RulesConfig{
				WinPoints: 52, MaxRoundIndex: 30, OutplayAward: 5,
			}},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.table.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
