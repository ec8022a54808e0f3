package main

import "github.com/chris-kelly1/WeDo/internal/app"

func main() {
	app.Run()
}
