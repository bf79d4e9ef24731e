//go:build ebiten

package main

import _ "github.com/thelolagemann/pocketboy/pkg/display/ebiten"
