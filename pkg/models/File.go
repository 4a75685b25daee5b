package models

/*
File is a leaf entry in the remote file store. In this gallery every
listed file is an image.
*/
type File struct {
	ID   string
	Name string
}
