package events

import "fmt"

// Type is the native event type tag stored in the first four bytes of every
// event record.
type Type uint32

const (
	First Type = 0

	Quit Type = 0x100

	Terminating         Type = 0x101
	LowMemory           Type = 0x102
	WillEnterBackground Type = 0x103
	DidEnterBackground  Type = 0x104
	WillEnterForeground Type = 0x105
	DidEnterForeground  Type = 0x106
	LocaleChanged       Type = 0x107
	SystemThemeChanged  Type = 0x108

	DisplayOrientation         Type = 0x151
	DisplayAdded               Type = 0x152
	DisplayRemoved             Type = 0x153
	DisplayMoved               Type = 0x154
	DisplayDesktopModeChanged  Type = 0x155
	DisplayCurrentModeChanged  Type = 0x156
	DisplayContentScaleChanged Type = 0x157

	WindowShown               Type = 0x202
	WindowHidden              Type = 0x203
	WindowExposed             Type = 0x204
	WindowMoved               Type = 0x205
	WindowResized             Type = 0x206
	WindowPixelSizeChanged    Type = 0x207
	WindowMetalViewResized    Type = 0x208
	WindowMinimized           Type = 0x209
	WindowMaximized           Type = 0x20A
	WindowRestored            Type = 0x20B
	WindowMouseEnter          Type = 0x20C
	WindowMouseLeave          Type = 0x20D
	WindowFocusGained         Type = 0x20E
	WindowFocusLost           Type = 0x20F
	WindowCloseRequested      Type = 0x210
	WindowHitTest             Type = 0x211
	WindowICCProfChanged      Type = 0x212
	WindowDisplayChanged      Type = 0x213
	WindowDisplayScaleChanged Type = 0x214
	WindowSafeAreaChanged     Type = 0x215
	WindowOccluded            Type = 0x216
	WindowEnterFullscreen     Type = 0x217
	WindowLeaveFullscreen     Type = 0x218
	WindowDestroyed           Type = 0x219
	WindowHDRStateChanged     Type = 0x21A

	KeyDown               Type = 0x300
	KeyUp                 Type = 0x301
	TextEditing           Type = 0x302
	TextInput             Type = 0x303
	KeymapChanged         Type = 0x304
	KeyboardAdded         Type = 0x305
	KeyboardRemoved       Type = 0x306
	TextEditingCandidates Type = 0x307

	MouseMotion     Type = 0x400
	MouseButtonDown Type = 0x401
	MouseButtonUp   Type = 0x402
	MouseWheel      Type = 0x403
	MouseAdded      Type = 0x404
	MouseRemoved    Type = 0x405

	JoystickAxisMotion     Type = 0x600
	JoystickBallMotion     Type = 0x601
	JoystickHatMotion      Type = 0x602
	JoystickButtonDown     Type = 0x603
	JoystickButtonUp       Type = 0x604
	JoystickAdded          Type = 0x605
	JoystickRemoved        Type = 0x606
	JoystickBatteryUpdated Type = 0x607
	JoystickUpdateComplete Type = 0x608

	GamepadAxisMotion         Type = 0x650
	GamepadButtonDown         Type = 0x651
	GamepadButtonUp           Type = 0x652
	GamepadAdded              Type = 0x653
	GamepadRemoved            Type = 0x654
	GamepadRemapped           Type = 0x655
	GamepadTouchpadDown       Type = 0x656
	GamepadTouchpadMotion     Type = 0x657
	GamepadTouchpadUp         Type = 0x658
	GamepadSensorUpdate       Type = 0x659
	GamepadUpdateComplete     Type = 0x65A
	GamepadSteamHandleUpdated Type = 0x65B

	FingerDown     Type = 0x700
	FingerUp       Type = 0x701
	FingerMotion   Type = 0x702
	FingerCanceled Type = 0x703

	ClipboardUpdate Type = 0x900

	DropFile     Type = 0x1000
	DropText     Type = 0x1001
	DropBegin    Type = 0x1002
	DropComplete Type = 0x1003
	DropPosition Type = 0x1004

	AudioDeviceAdded         Type = 0x1100
	AudioDeviceRemoved       Type = 0x1101
	AudioDeviceFormatChanged Type = 0x1102

	SensorUpdate Type = 0x1200

	PenProximityIn  Type = 0x1300
	PenProximityOut Type = 0x1301
	PenDown         Type = 0x1302
	PenUp           Type = 0x1303
	PenButtonDown   Type = 0x1304
	PenButtonUp     Type = 0x1305
	PenMotion       Type = 0x1306
	PenAxis         Type = 0x1307

	CameraDeviceAdded    Type = 0x1400
	CameraDeviceRemoved  Type = 0x1401
	CameraDeviceApproved Type = 0x1402
	CameraDeviceDenied   Type = 0x1403

	RenderTargetsReset Type = 0x2000
	RenderDeviceReset  Type = 0x2001
	RenderDeviceLost   Type = 0x2002

	Private0 Type = 0x4000
	Private1 Type = 0x4001
	Private2 Type = 0x4002
	Private3 Type = 0x4003

	PollSentinel Type = 0x7F00

	// User is the first type available to applications; Register hands out
	// ranges above it.
	User Type = 0x8000

	Last Type = 0xFFFF
)

var typeNames = map[Type]string{
	Quit:                       "quit",
	Terminating:                "terminating",
	LowMemory:                  "low-memory",
	WillEnterBackground:        "will-enter-background",
	DidEnterBackground:         "did-enter-background",
	WillEnterForeground:        "will-enter-foreground",
	DidEnterForeground:         "did-enter-foreground",
	LocaleChanged:              "locale-changed",
	SystemThemeChanged:         "system-theme-changed",
	DisplayOrientation:         "display-orientation",
	DisplayAdded:               "display-added",
	DisplayRemoved:             "display-removed",
	DisplayMoved:               "display-moved",
	DisplayDesktopModeChanged:  "display-desktop-mode-changed",
	DisplayCurrentModeChanged:  "display-current-mode-changed",
	DisplayContentScaleChanged: "display-content-scale-changed",
	WindowShown:                "window-shown",
	WindowHidden:               "window-hidden",
	WindowExposed:              "window-exposed",
	WindowMoved:                "window-moved",
	WindowResized:              "window-resized",
	WindowPixelSizeChanged:     "window-pixel-size-changed",
	WindowMetalViewResized:     "window-metal-view-resized",
	WindowMinimized:            "window-minimized",
	WindowMaximized:            "window-maximized",
	WindowRestored:             "window-restored",
	WindowMouseEnter:           "window-mouse-enter",
	WindowMouseLeave:           "window-mouse-leave",
	WindowFocusGained:          "window-focus-gained",
	WindowFocusLost:            "window-focus-lost",
	WindowCloseRequested:       "window-close-requested",
	WindowHitTest:              "window-hit-test",
	WindowICCProfChanged:       "window-iccprof-changed",
	WindowDisplayChanged:       "window-display-changed",
	WindowDisplayScaleChanged:  "window-display-scale-changed",
	WindowSafeAreaChanged:      "window-safe-area-changed",
	WindowOccluded:             "window-occluded",
	WindowEnterFullscreen:      "window-enter-fullscreen",
	WindowLeaveFullscreen:      "window-leave-fullscreen",
	WindowDestroyed:            "window-destroyed",
	WindowHDRStateChanged:      "window-hdr-state-changed",
	KeyDown:                    "key-down",
	KeyUp:                      "key-up",
	TextEditing:                "text-editing",
	TextInput:                  "text-input",
	KeymapChanged:              "keymap-changed",
	KeyboardAdded:              "keyboard-added",
	KeyboardRemoved:            "keyboard-removed",
	TextEditingCandidates:      "text-editing-candidates",
	MouseMotion:                "mouse-motion",
	MouseButtonDown:            "mouse-button-down",
	MouseButtonUp:              "mouse-button-up",
	MouseWheel:                 "mouse-wheel",
	MouseAdded:                 "mouse-added",
	MouseRemoved:               "mouse-removed",
	JoystickAxisMotion:         "joystick-axis-motion",
	JoystickBallMotion:         "joystick-ball-motion",
	JoystickHatMotion:          "joystick-hat-motion",
	JoystickButtonDown:         "joystick-button-down",
	JoystickButtonUp:           "joystick-button-up",
	JoystickAdded:              "joystick-added",
	JoystickRemoved:            "joystick-removed",
	JoystickBatteryUpdated:     "joystick-battery-updated",
	JoystickUpdateComplete:     "joystick-update-complete",
	GamepadAxisMotion:          "gamepad-axis-motion",
	GamepadButtonDown:          "gamepad-button-down",
	GamepadButtonUp:            "gamepad-button-up",
	GamepadAdded:               "gamepad-added",
	GamepadRemoved:             "gamepad-removed",
	GamepadRemapped:            "gamepad-remapped",
	GamepadTouchpadDown:        "gamepad-touchpad-down",
	GamepadTouchpadMotion:      "gamepad-touchpad-motion",
	GamepadTouchpadUp:          "gamepad-touchpad-up",
	GamepadSensorUpdate:        "gamepad-sensor-update",
	GamepadUpdateComplete:      "gamepad-update-complete",
	GamepadSteamHandleUpdated:  "gamepad-steam-handle-updated",
	FingerDown:                 "finger-down",
	FingerUp:                   "finger-up",
	FingerMotion:               "finger-motion",
	FingerCanceled:             "finger-canceled",
	ClipboardUpdate:            "clipboard-update",
	DropFile:                   "drop-file",
	DropText:                   "drop-text",
	DropBegin:                  "drop-begin",
	DropComplete:               "drop-complete",
	DropPosition:               "drop-position",
	AudioDeviceAdded:           "audio-device-added",
	AudioDeviceRemoved:         "audio-device-removed",
	AudioDeviceFormatChanged:   "audio-device-format-changed",
	SensorUpdate:               "sensor-update",
	PenProximityIn:             "pen-proximity-in",
	PenProximityOut:            "pen-proximity-out",
	PenDown:                    "pen-down",
	PenUp:                      "pen-up",
	PenButtonDown:              "pen-button-down",
	PenButtonUp:                "pen-button-up",
	PenMotion:                  "pen-motion",
	PenAxis:                    "pen-axis",
	CameraDeviceAdded:          "camera-device-added",
	CameraDeviceRemoved:        "camera-device-removed",
	CameraDeviceApproved:       "camera-device-approved",
	CameraDeviceDenied:         "camera-device-denied",
	RenderTargetsReset:         "render-targets-reset",
	RenderDeviceReset:          "render-device-reset",
	RenderDeviceLost:           "render-device-lost",
	PollSentinel:               "poll-sentinel",
}

func (t Type) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	if t >= User && t <= Last {
		return fmt.Sprintf("user+%d", uint32(t-User))
	}
	return fmt.Sprintf("type(0x%x)", uint32(t))
}

// IsUser reports whether t lies in the application range.
func (t Type) IsUser() bool {
	return t >= User && t <= Last
}
