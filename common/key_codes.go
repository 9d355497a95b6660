package common

// Virtual key codes delivered by the window's key callbacks.
// These values match GLFW key codes which use ASCII values for printable keys.
// Reference: https://pkg.go.dev/github.com/go-gl/glfw/v3.3/glfw#Key
const (
	KeyC = 67 // C key (ASCII): clear the pending navigation request
	KeyD = 68 // D key (ASCII): toggle the detail view override
	KeyN = 78 // N key (ASCII): request the next section
	KeyP = 80 // P key (ASCII): request the previous section

	Key0 = 48 // 0 key (ASCII)
	Key9 = 57 // 9 key (ASCII)
)

// DigitKey reports the digit for a key code in Key0..Key9.
//
// Parameters:
//   - keyCode: virtual key code
//
// Returns:
//   - int: digit value 0-9
//   - bool: false if keyCode is not a digit key
func DigitKey(keyCode uint32) (int, bool) {
	if keyCode < Key0 || keyCode > Key9 {
		return 0, false
	}
	return int(keyCode - Key0), true
}
