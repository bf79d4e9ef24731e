//go:build !ebiten

package main

// fyne and ebiten both link their own glfw, so only one of them can be
// built in at a time.
import _ "github.com/thelolagemann/pocketboy/pkg/display/fyne"
