package mcptools_test

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/chris-regnier/diary/internal/diary"
	"github.com/chris-regnier/diary/internal/entry"
	"github.com/chris-regnier/diary/internal/mcptools"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setup(t *testing.T, contents ...string) (*diary.Diary, *mcp.ClientSession) {
	t.Helper()
	d, err := diary.Open(afero.NewMemMapFs(), "diary_config.toml", zerolog.Nop())
	require.NoError(t, err)
	for i, c := range contents {
		ts := time.Date(2024, time.March, 1, 9, i, 0, 0, time.Local)
		require.NoError(t, d.SaveEntry(entry.At(ts, c)))
	}

	_, clientTransport := mcptools.NewDiaryMCPServer(d)
	client := mcp.NewClient(&mcp.Implementation{Name: "test-client", Version: "1.0.0"}, nil)
	session, err := client.Connect(context.Background(), clientTransport, nil)
	require.NoError(t, err)
	t.Cleanup(func() { session.Close() })
	return d, session
}

func call(t *testing.T, session *mcp.ClientSession, name string, args any, out any) *mcp.CallToolResult {
	t.Helper()
	result, err := session.CallTool(context.Background(), &mcp.CallToolParams{Name: name, Arguments: args})
	require.NoError(t, err)
	if result.IsError || out == nil {
		return result
	}
	if result.StructuredContent != nil {
		raw, err := json.Marshal(result.StructuredContent)
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal(raw, out))
		return result
	}
	require.NotEmpty(t, result.Content)
	text, ok := result.Content[0].(*mcp.TextContent)
	require.True(t, ok)
	require.NoError(t, json.Unmarshal([]byte(text.Text), out))
	return result
}

func TestSearchEntries(t *testing.T) {
	d, session := setup(t, "apple pie", "banana", "Apple strudel")

	var out mcptools.SearchOutput
	call(t, session, "search_entries", mcptools.SearchInput{Query: "APPLE"}, &out)
	require.Len(t, out.Entries, 2)
	assert.Contains(t, out.Entries[0].Preview, "Apple strudel")
	assert.Contains(t, out.Entries[1].Preview, "apple pie")
	assert.Equal(t, []string{"APPLE"}, d.RecentSearches())
}

func TestListEntries(t *testing.T) {
	_, session := setup(t, "one", "two", "three")

	var out mcptools.ListOutput
	call(t, session, "list_entries", mcptools.ListInput{Limit: 2, Offset: 1}, &out)
	assert.Equal(t, 3, out.Total)
	require.Len(t, out.Entries, 2)
	assert.Equal(t, "diary_2024_03_01_09_01_00.txt", out.Entries[0].Filename)
	assert.Equal(t, "2024-03-01 09:01:00", out.Entries[0].Timestamp)
}

func TestReadEntry(t *testing.T) {
	_, session := setup(t, "dear diary")

	var out mcptools.ReadOutput
	call(t, session, "read_entry", mcptools.ReadInput{Filename: "diary_2024_03_01_09_00_00.txt"}, &out)
	assert.Equal(t, "dear diary", out.Content)

	missing := call(t, session, "read_entry", mcptools.ReadInput{Filename: "diary_1999_01_01_00_00_00.txt"}, nil)
	assert.True(t, missing.IsError)
}

func TestCreateEntryAndBackup(t *testing.T) {
	d, session := setup(t)

	var created mcptools.CreateEntryOutput
	call(t, session, "create_entry", mcptools.CreateEntryInput{Content: "made over mcp"}, &created)
	assert.True(t, strings.HasPrefix(created.Filename, "diary_"))

	n, err := d.CountEntries()
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	var backup mcptools.BackupOutput
	call(t, session, "create_backup", mcptools.BackupInput{}, &backup)
	assert.Contains(t, backup.Path, "diary_backup_")
}
