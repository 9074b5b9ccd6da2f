package main

import (
	"fmt"
	"log"
	"os"

	"github.com/ironsheep/hole-filling-mcp/internal/server"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Handle --version and -v flags
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("holefill-mcp %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		case "--help", "-h", "help":
			fmt.Println("holefill-mcp - MCP server for image hole detection and filling")
			fmt.Println()
			fmt.Println("Usage: holefill-mcp [options]")
			fmt.Println()
			fmt.Println("Options:")
			fmt.Println("  --version, -v    Print version information")
			fmt.Println("  --help, -h       Print this help message")
			fmt.Println()
			fmt.Println("Environment variables:")
			fmt.Printf("  %s=debug    Enable debug logging\n", server.EnvLogLevel)
			fmt.Printf("  %s=5             Default weighted fill exponent\n", server.EnvWeightZ)
			fmt.Printf("  %s=0.0001      Default weighted fill epsilon\n", server.EnvWeightEps)
			fmt.Println()
			fmt.Println("This server communicates via MCP protocol over stdin/stdout.")
			fmt.Println("Configure it in your MCP client (e.g., Claude Desktop).")
			return
		}
	}

	// Configure logging to stderr (stdout is for MCP protocol)
	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	cfg := server.LoadConfig()
	cfg.Version = Version
	if cfg.Debug {
		log.Printf("Hole-filling MCP Server v%s (built %s, commit %s)", Version, BuildTime, GitCommit)
		log.Printf("Weighted fill defaults: z=%v eps=%v", cfg.Weight.Z, cfg.Weight.Eps)
	}

	srv := server.NewWithConfig(cfg)
	if err := srv.Run(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
