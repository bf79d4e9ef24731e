package main

import (
	_ "github.com/thelolagemann/pocketboy/pkg/display/headless"
	_ "github.com/thelolagemann/pocketboy/pkg/display/terminal"
	_ "github.com/thelolagemann/pocketboy/pkg/display/web"
)
