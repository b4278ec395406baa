package register

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

func Test_DeriveServerName_StripsSuffixes(t *testing.T) {
	cases := map[string]string{
		"/usr/local/bin/fileviews-mcp": "fileviews",
		"fileviews-mcp.exe":            "fileviews",
		"/opt/tools/fileviews":         "fileviews",
	}
	for input, want := range cases {
		if got := DeriveServerName(input); got != want {
			t.Errorf("DeriveServerName(%q): expected %q, got %q", input, want, got)
		}
	}
}

func Test_splitArgs_ProjectDirectoryAndForwardedArgs(t *testing.T) {
	directory, serverArgs := splitArgs("project", []string{"/work/app", "--", "-log-level", "debug"})
	if directory != "/work/app" {
		t.Errorf("expected directory /work/app, got %s", directory)
	}
	if len(serverArgs) != 2 || serverArgs[0] != "-log-level" {
		t.Errorf("unexpected forwarded args: %v", serverArgs)
	}
}

func Test_splitArgs_UserScopeIgnoresDirectory(t *testing.T) {
	directory, serverArgs := splitArgs("user", []string{"--", "-root", "/work"})
	if directory != "." {
		t.Errorf("expected default directory, got %s", directory)
	}
	if len(serverArgs) != 2 {
		t.Errorf("unexpected forwarded args: %v", serverArgs)
	}
}

func Test_writeEntry_CreatesConfig(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), ".mcp.json")

	err := writeEntry(configPath, "fileviews", serverEntry{Command: "/bin/fileviews-mcp"})
	if err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		t.Fatal(err)
	}
	var config map[string]map[string]serverEntry
	if err := json.Unmarshal(data, &config); err != nil {
		t.Fatal(err)
	}
	if config["mcpServers"]["fileviews"].Command != "/bin/fileviews-mcp" {
		t.Errorf("unexpected config: %v", config)
	}
}

func Test_writeEntry_PreservesExistingServers(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), ".mcp.json")
	existing := `{"mcpServers":{"other":{"command":"/bin/other"}}}`
	if err := os.WriteFile(configPath, []byte(existing), 0644); err != nil {
		t.Fatal(err)
	}

	if err := writeEntry(configPath, "fileviews", serverEntry{Command: "/bin/fileviews-mcp"}); err != nil {
		t.Fatal(err)
	}

	data, _ := os.ReadFile(configPath)
	var config map[string]map[string]serverEntry
	if err := json.Unmarshal(data, &config); err != nil {
		t.Fatal(err)
	}
	if config["mcpServers"]["other"].Command != "/bin/other" {
		t.Error("expected existing server entry to survive")
	}
	if config["mcpServers"]["fileviews"].Command != "/bin/fileviews-mcp" {
		t.Error("expected new server entry to be added")
	}
}
