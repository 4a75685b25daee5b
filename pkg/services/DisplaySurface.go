package services

import "image"

/*
DisplaySurface receives the gallery output in order. Implementations
render it however they like, but must preserve the emission order. An
error from Image means the image was not displayed.
*/
type DisplaySurface interface {
	Header(text string)
	Error(message string)
	Warning(message string)
	Link(text, url string)
	Image(caption string, img image.Image) error
}
