package render

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/leterax/go-viewer/pkg/control"
)

// Key constants for keyboard input
const (
	KeyW      = glfw.KeyW
	KeyA      = glfw.KeyA
	KeyS      = glfw.KeyS
	KeyD      = glfw.KeyD
	KeyC      = glfw.KeyC
	KeyR      = glfw.KeyR
	KeyTab    = glfw.KeyTab
	KeyEscape = glfw.KeyEscape
)

// Mouse buttons for orbit gestures
const (
	ButtonRotate    = glfw.MouseButtonLeft
	ButtonPan       = glfw.MouseButtonRight
	ButtonPanMiddle = glfw.MouseButtonMiddle
)

// movementKeys binds movement intents to keys
var movementKeys = map[control.Intent]glfw.Key{
	control.IntentForward:  KeyW,
	control.IntentBackward: KeyS,
	control.IntentLeft:     KeyA,
	control.IntentRight:    KeyD,
}

// modeKeys selects a camera mode directly
var modeKeys = map[glfw.Key]control.Mode{
	glfw.Key1: control.ModeFreeLook,
	glfw.Key2: control.ModeFirstPerson,
	glfw.Key3: control.ModeOrbit,
}

// Texture unit the diffuse map is bound to
const diffuseTextureUnit = 0
