package board

// RevealMsg makes a tile visible once its entry delay has elapsed
type RevealMsg struct {
	Index int
}

// FrameMsg advances running press animations by one frame
type FrameMsg struct{}

// ReleaseMsg ends a keyboard-initiated press; terminals report no key-up
type ReleaseMsg struct {
	Index int
	Seq   int
}
