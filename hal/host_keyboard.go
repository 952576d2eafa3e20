//go:build cgo

package hal

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var ebitenKeys = []struct {
	key  ebiten.Key
	code KeyCode
}{
	{ebiten.KeyArrowUp, KeyUp},
	{ebiten.KeyW, KeyUp},
	{ebiten.KeyArrowDown, KeyDown},
	{ebiten.KeyS, KeyDown},
	{ebiten.KeyEnter, KeyEnter},
	{ebiten.KeyEscape, KeyEscape},
	{ebiten.KeySpace, KeySpace},
	{ebiten.KeyP, KeyP},
	{ebiten.KeyR, KeyR},
	{ebiten.KeyQ, KeyQ},
}

// keyState reports ebiten key state. Tests substitute their own.
type keyState struct {
	justPressed  func(ebiten.Key) bool
	justReleased func(ebiten.Key) bool
	pressed      func(ebiten.Key) bool
}

var ebitenKeyState = keyState{
	justPressed:  inpututil.IsKeyJustPressed,
	justReleased: inpututil.IsKeyJustReleased,
	pressed:      ebiten.IsKeyPressed,
}

// poll turns this frame's key transitions into events.
func (k *keyQueue) poll() {
	k.pollFrom(ebitenKeyState)
}

// pollFrom emits a release only once every key bound to that code is up.
func (k *keyQueue) pollFrom(st keyState) {
	for _, m := range ebitenKeys {
		if st.justPressed(m.key) {
			k.emit(m.code, true)
		}
		if st.justReleased(m.key) && !otherHeld(st, m.key, m.code) {
			k.emit(m.code, false)
		}
	}
}

func otherHeld(st keyState, key ebiten.Key, code KeyCode) bool {
	for _, m := range ebitenKeys {
		if m.code == code && m.key != key && st.pressed(m.key) {
			return true
		}
	}
	return false
}
