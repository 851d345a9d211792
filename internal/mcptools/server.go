package mcptools

import (
	"context"
	"time"

	"github.com/chris-regnier/diary/internal/entry"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Diary is the set of diary operations exposed as tools.
type Diary interface {
	SaveEntry(e entry.Entry) error
	ReadEntry(filename string) (string, error)
	ListEntries() ([]string, error)
	SearchEntries(keyword string) ([]entry.Entry, error)
	CreateBackup() (string, error)
	ExtractTimestamp(filename string) (time.Time, error)
}

// NewDiaryMCPServer creates an in-memory MCP server exposing diary tools.
// Returns the server and a client transport for connecting to it.
func NewDiaryMCPServer(d Diary) (*mcp.Server, mcp.Transport) {
	clientTransport, serverTransport := mcp.NewInMemoryTransports()

	server := CreateMCPServer(d)

	go func() {
		_, _ = server.Connect(context.Background(), serverTransport, nil)
	}()

	return server, clientTransport
}

// CreateMCPServer creates an MCP server with the diary tools registered.
func CreateMCPServer(d Diary) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    "diary",
		Version: "1.0.0",
	}, nil)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "search_entries",
		Description: "Case-insensitive substring search over diary entries, newest first",
	}, SearchHandler(d))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_entries",
		Description: "List diary entry filenames, newest first",
	}, ListHandler(d))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "read_entry",
		Description: "Read the full text of one diary entry",
	}, ReadHandler(d))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "create_entry",
		Description: "Write a new diary entry stamped with the current time",
	}, CreateEntryHandler(d))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "create_backup",
		Description: "Archive all entries and preferences into a zip backup",
	}, BackupHandler(d))

	return server
}
