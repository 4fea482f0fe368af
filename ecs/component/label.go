package component

import "golang.org/x/image/font"

type Label struct {
	Text      string
	Style     string
	Size      int
	Align     int
	Multiline bool
	Face      font.Face
}

var LabelComponent = NewComponent[Label]()
