package mcptools

// SearchInput is the input schema for the search_entries tool.
type SearchInput struct {
	Query string `json:"query" jsonschema:"case-insensitive text to look for in entry content"`
	Limit int    `json:"limit,omitempty" jsonschema:"maximum number of results, 0 for all"`
}

// SearchOutput is the output schema for the search_entries tool.
type SearchOutput struct {
	Entries []EntryResult `json:"entries"`
}

// ListInput is the input schema for the list_entries tool.
type ListInput struct {
	Limit  int `json:"limit,omitempty" jsonschema:"maximum number of filenames, 0 for all"`
	Offset int `json:"offset,omitempty" jsonschema:"number of newest entries to skip"`
}

// ListOutput is the output schema for the list_entries tool.
type ListOutput struct {
	Total   int           `json:"total"`
	Entries []EntryResult `json:"entries"`
}

// ReadInput is the input schema for the read_entry tool.
type ReadInput struct {
	Filename string `json:"filename" jsonschema:"entry filename, e.g. diary_2024_01_31_21_15_00.txt"`
}

// ReadOutput is the output schema for the read_entry tool.
type ReadOutput struct {
	Filename  string `json:"filename"`
	Timestamp string `json:"timestamp"`
	Content   string `json:"content"`
}

// CreateEntryInput is the input schema for the create_entry tool.
type CreateEntryInput struct {
	Content string `json:"content" jsonschema:"entry text"`
}

// CreateEntryOutput is the output schema for the create_entry tool.
type CreateEntryOutput struct {
	Filename string `json:"filename"`
	Preview  string `json:"preview"`
}

// BackupInput is the (empty) input schema for the create_backup tool.
type BackupInput struct{}

// BackupOutput is the output schema for the create_backup tool.
type BackupOutput struct {
	Path string `json:"path"`
}

// EntryResult is the common entry shape in tool output.
type EntryResult struct {
	Filename  string `json:"filename"`
	Timestamp string `json:"timestamp"`
	Preview   string `json:"preview,omitempty"`
}
