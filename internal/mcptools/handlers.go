package mcptools

import (
	"context"
	"fmt"
	"strings"

	"github.com/chris-regnier/diary/internal/entry"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const timestampLayout = "2006-01-02 15:04:05"

// SearchHandler returns the handler for the search_entries tool.
func SearchHandler(d Diary) func(ctx context.Context, req *mcp.CallToolRequest, input SearchInput) (*mcp.CallToolResult, SearchOutput, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input SearchInput) (*mcp.CallToolResult, SearchOutput, error) {
		if strings.TrimSpace(input.Query) == "" {
			return nil, SearchOutput{}, fmt.Errorf("query must not be empty")
		}
		hits, err := d.SearchEntries(input.Query)
		if err != nil {
			return nil, SearchOutput{}, err
		}
		if input.Limit > 0 && len(hits) > input.Limit {
			hits = hits[:input.Limit]
		}
		results := make([]EntryResult, len(hits))
		for i, e := range hits {
			results[i] = EntryResult{
				Filename:  e.Filename(),
				Timestamp: e.FormattedTimestamp(),
				Preview:   e.Preview(100),
			}
		}
		return nil, SearchOutput{Entries: results}, nil
	}
}

// ListHandler returns the handler for the list_entries tool.
func ListHandler(d Diary) func(ctx context.Context, req *mcp.CallToolRequest, input ListInput) (*mcp.CallToolResult, ListOutput, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input ListInput) (*mcp.CallToolResult, ListOutput, error) {
		names, err := d.ListEntries()
		if err != nil {
			return nil, ListOutput{}, err
		}
		total := len(names)
		if input.Offset > 0 {
			names = names[min(input.Offset, len(names)):]
		}
		if input.Limit > 0 && len(names) > input.Limit {
			names = names[:input.Limit]
		}

		results := make([]EntryResult, 0, len(names))
		for _, name := range names {
			r := EntryResult{Filename: name}
			if ts, err := d.ExtractTimestamp(name); err == nil {
				r.Timestamp = ts.Format(timestampLayout)
			}
			results = append(results, r)
		}
		return nil, ListOutput{Total: total, Entries: results}, nil
	}
}

// ReadHandler returns the handler for the read_entry tool.
func ReadHandler(d Diary) func(ctx context.Context, req *mcp.CallToolRequest, input ReadInput) (*mcp.CallToolResult, ReadOutput, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input ReadInput) (*mcp.CallToolResult, ReadOutput, error) {
		content, err := d.ReadEntry(input.Filename)
		if err != nil {
			return nil, ReadOutput{}, err
		}
		out := ReadOutput{Filename: input.Filename, Content: content}
		if ts, err := d.ExtractTimestamp(input.Filename); err == nil {
			out.Timestamp = ts.Format(timestampLayout)
		}
		return nil, out, nil
	}
}

// CreateEntryHandler returns the handler for the create_entry tool.
func CreateEntryHandler(d Diary) func(ctx context.Context, req *mcp.CallToolRequest, input CreateEntryInput) (*mcp.CallToolResult, CreateEntryOutput, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input CreateEntryInput) (*mcp.CallToolResult, CreateEntryOutput, error) {
		if strings.TrimSpace(input.Content) == "" {
			return nil, CreateEntryOutput{}, fmt.Errorf("entry content must not be empty")
		}
		e := entry.New(input.Content)
		if err := d.SaveEntry(e); err != nil {
			return nil, CreateEntryOutput{}, err
		}
		return nil, CreateEntryOutput{Filename: e.Filename(), Preview: e.Preview(200)}, nil
	}
}

// BackupHandler returns the handler for the create_backup tool.
func BackupHandler(d Diary) func(ctx context.Context, req *mcp.CallToolRequest, input BackupInput) (*mcp.CallToolResult, BackupOutput, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input BackupInput) (*mcp.CallToolResult, BackupOutput, error) {
		path, err := d.CreateBackup()
		if err != nil {
			return nil, BackupOutput{}, err
		}
		return nil, BackupOutput{Path: path}, nil
	}
}
