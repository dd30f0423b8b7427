package main

import (
	"github.com/talx-hub/nexus-sdk/internal/service"
)

func main() {
	service.RunServer()
}
