package main

import (
	"ajcc-portal/cmd/server"
)

func main() {
	server.Init()
	server.Run()
}
