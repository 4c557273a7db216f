package flycam

// Key is a keyboard key. Values match GLFW key codes, which use ASCII for
// printable keys.
type Key int

const (
	KeySpace     Key = 32
	KeyA         Key = 65
	KeyD         Key = 68
	KeyS         Key = 83
	KeyW         Key = 87
	KeyEscape    Key = 256
	KeyLeftShift Key = 340
)

// Input is what the window system exposes to the controller each frame.
type Input interface {
	// IsKeyPressed reports whether k is currently held down.
	IsKeyPressed(k Key) bool

	// CursorPosition is the latest cursor sample in pixels. It may be
	// absolute or an accumulated virtual position in captured mode; only
	// differences between samples are used.
	CursorPosition() (x, y float64)
}
