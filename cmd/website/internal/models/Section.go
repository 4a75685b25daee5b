package models

import "html/template"

type EntryKind string

const (
	EntryError   EntryKind = "error"
	EntryWarning EntryKind = "warning"
	EntryLink    EntryKind = "link"
	EntryImage   EntryKind = "image"
)

/*
Section is everything rendered under one category header.
*/
type Section struct {
	Header  string
	Entries []Entry
}

type Entry struct {
	Kind     EntryKind
	Text     string
	URL      string
	Caption  string
	ImageSrc template.URL
}

func (e Entry) IsError() bool   { return e.Kind == EntryError }
func (e Entry) IsWarning() bool { return e.Kind == EntryWarning }
func (e Entry) IsLink() bool    { return e.Kind == EntryLink }
func (e Entry) IsImage() bool   { return e.Kind == EntryImage }
