// cmd/seqload/main.go
package main

import (
	"seqload/internal/app"
	"seqload/internal/appshell"
)

func main() {
	appshell.Main(app.RunContext)
}
