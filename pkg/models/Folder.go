package models

/*
Folder identifies a directory node in the remote file store.
*/
type Folder struct {
	ID   string
	Name string
}
