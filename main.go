package main

import (
	"os"

	"github.com/MFrackowiak/mf-simple-calendar/core/logger"
	"github.com/MFrackowiak/mf-simple-calendar/core/server"
)

func main() {
	if err := server.Run(); err != nil {
		logger.Error("Server:Run:Error:", err)
		os.Exit(1)
	}
}
