// Package main provides a standalone entry point for the ultratech MCP server.
//
// It is equivalent to `ultratech mcp` and accepts the same flags:
//
//	ultratech-mcp
//	ultratech-mcp --config ./ultratech.yaml --locale fr
//	ultratech-mcp -v
package main

import (
	"os"

	"github.com/tuannvm/ultratech/internal/cmd"
)

// Version is the server version, set by the build process.
var Version = "dev"

func main() {
	cmd.SetVersion(Version)
	if err := cmd.ExecuteMCP(os.Args[1:]); err != nil {
		os.Exit(1)
	}
}
