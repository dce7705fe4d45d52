package main

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/convoy/input"
)

func newKeymap() *input.Keymap[ebiten.Key] {
	m := input.NewKeymap[ebiten.Key]().
		Bind(ebiten.KeyArrowLeft, input.TurnLeft).
		Bind(ebiten.KeyArrowRight, input.TurnRight).
		Bind(ebiten.KeyArrowUp, input.LiftUp).
		Bind(ebiten.KeyArrowDown, input.LiftDown).
		Bind(ebiten.KeyW, input.Forward).
		Bind(ebiten.KeyS, input.Back).
		Bind(ebiten.KeyC, input.Camera).
		Bind(ebiten.KeyG, input.Grab).
		Bind(ebiten.KeyQ, input.Material).
		Bind(ebiten.KeyEscape, input.Pause)
	digits := []ebiten.Key{ebiten.KeyDigit0, ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3, ebiten.KeyDigit4, ebiten.KeyDigit5}
	for i, k := range digits {
		m.Bind(k, input.LightButton(i))
	}
	return m
}
