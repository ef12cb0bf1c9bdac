package main

import "ycsmatch_backend/internal/app"

func main() {
	app.Run()
}
