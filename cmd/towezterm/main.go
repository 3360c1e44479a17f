package main

import (
	"os"

	"github.com/vburojevic/towezterm/internal/app"
)

func main() {
	os.Exit(app.Run())
}
