package catalog

import "errors"

const DatabaseFile = "database.json"

var (
	ErrDuplicateName = errors.New("name already exists")
	ErrNotFound      = errors.New("name not found")
)

// Entry is one launchable command. Name is unique within a catalog.
type Entry struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Command     string   `json:"command"`
	Tags        []string `json:"tags"`
}

// Catalog is the ordered list of entries as stored on disk.
type Catalog []Entry
