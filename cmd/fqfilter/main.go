// cmd/fqfilter/main.go
package main

import (
	"fqfilter/internal/app"
	"fqfilter/internal/appshell"
)

func main() {
	appshell.Main(app.Run)
}
