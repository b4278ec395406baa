// Package register implements the "register" subcommand, which adds this
// binary to an MCP client configuration file.
package register

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

type serverEntry struct {
	Command string   `json:"command"`
	Args    []string `json:"args,omitempty"`
}

// Run executes the register subcommand. serverName is the MCP server name
// (e.g. "fileviews"); args is everything after "register".
func Run(serverName string, args []string) {
	if len(args) == 0 {
		printUsage()
		os.Exit(1)
	}

	scope := args[0]
	if scope != "project" && scope != "user" {
		fmt.Fprintf(os.Stderr, "Error: unknown scope %q (must be \"project\" or \"user\")\n", scope)
		printUsage()
		os.Exit(1)
	}

	directory, serverArgs := splitArgs(scope, args[1:])

	binaryPath, err := resolveBinaryPath()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error detecting binary path: %v\n", err)
		os.Exit(1)
	}

	configPath, err := configPathFor(scope, directory)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error resolving config path: %v\n", err)
		os.Exit(1)
	}

	if err := writeEntry(configPath, serverName, newEntry(binaryPath, serverArgs)); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing config: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Registered %q in %s\n", serverName, configPath)
}

func printUsage() {
	binaryName := filepath.Base(os.Args[0])
	fmt.Fprintf(os.Stderr, "Usage:\n")
	fmt.Fprintf(os.Stderr, "  %s register project [directory]  # → <directory>/.mcp.json (default: .)\n", binaryName)
	fmt.Fprintf(os.Stderr, "  %s register user                 # → ~/.claude.json\n", binaryName)
	fmt.Fprintf(os.Stderr, "  %s register project . -- --flag  # forward args to server\n", binaryName)
}

// DeriveServerName extracts a server name from a binary path by stripping
// .exe and -mcp suffixes.
func DeriveServerName(binaryPath string) string {
	name := filepath.Base(binaryPath)
	name = strings.TrimSuffix(name, ".exe")
	name = strings.TrimSuffix(name, "-mcp")
	return name
}

// splitArgs separates the optional project directory from args forwarded to
// the server after "--".
func splitArgs(scope string, args []string) (directory string, serverArgs []string) {
	directory = "."
	for i, arg := range args {
		if arg == "--" {
			return directory, args[i+1:]
		}
		if scope == "project" && i == 0 {
			directory = arg
		}
	}
	return directory, nil
}

func resolveBinaryPath() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("getting executable path: %w", err)
	}
	resolved, err := filepath.EvalSymlinks(exe)
	if err != nil {
		return "", fmt.Errorf("resolving symlinks for %s: %w", exe, err)
	}
	return resolved, nil
}

func configPathFor(scope string, directory string) (string, error) {
	if scope == "project" {
		absDir, err := filepath.Abs(directory)
		if err != nil {
			return "", fmt.Errorf("resolving directory %s: %w", directory, err)
		}
		return filepath.Join(absDir, ".mcp.json"), nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}
	return filepath.Join(homeDir, ".claude.json"), nil
}

func newEntry(binaryPath string, serverArgs []string) serverEntry {
	if runtime.GOOS == "windows" {
		return serverEntry{
			Command: "cmd",
			Args:    append([]string{"/C", binaryPath}, serverArgs...),
		}
	}
	return serverEntry{Command: binaryPath, Args: serverArgs}
}

// writeEntry merges the server entry into the config file, creating it when
// absent. The write is atomic: temp file in the same directory, then rename.
func writeEntry(configPath string, serverName string, entry serverEntry) error {
	config := map[string]interface{}{
		"mcpServers": map[string]interface{}{},
	}

	if data, err := os.ReadFile(configPath); err == nil {
		if err := json.Unmarshal(data, &config); err != nil {
			return fmt.Errorf("parsing existing config %s: %w", configPath, err)
		}
	}

	servers, ok := config["mcpServers"].(map[string]interface{})
	if !ok {
		if _, exists := config["mcpServers"]; exists {
			return fmt.Errorf("mcpServers in %s is not an object", configPath)
		}
		servers = map[string]interface{}{}
		config["mcpServers"] = servers
	}
	servers[serverName] = entry

	output, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	output = append(output, '\n')

	configDir := filepath.Dir(configPath)
	tmpFile, err := os.CreateTemp(configDir, ".mcp-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file in %s: %w", configDir, err)
	}
	tmpPath := tmpFile.Name()

	if _, err := tmpFile.Write(output); err != nil {
		tmpFile.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("writing temp file %s: %w", tmpPath, err)
	}
	if err := tmpFile.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("closing temp file %s: %w", tmpPath, err)
	}
	if err := os.Rename(tmpPath, configPath); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("renaming %s to %s: %w", tmpPath, configPath, err)
	}
	return nil
}
