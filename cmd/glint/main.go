package main

import (
	"log"
	"log/slog"
	"os"
	"runtime"

	"github.com/glintgl/glint/lib/config"
	glintlog "github.com/glintgl/glint/lib/log"
	"github.com/glintgl/glint/lib/viewer"
)

func init() {
	// The OpenGL stuff must be in one thread
	runtime.LockOSThread()
}

func main() {
	glintlog.Setup(slog.LevelInfo)

	if len(os.Args) < 2 {
		log.Fatalf("Usage: %s <config file>", os.Args[0])
	}
	cfg, err := config.Parse(os.Args[1])
	if err != nil {
		log.Fatal(err)
	}

	err = viewer.MakeWindowAndView(cfg)
	if err != nil {
		log.Fatal(err)
	}
}
