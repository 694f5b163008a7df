package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/viper"
)

// runCommand executes the real root command with args and returns its output.
func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	viper.Reset()
	cfgFile = ""
	t.Cleanup(func() {
		viper.Reset()
		rootCmd.SetArgs(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
	})

	var output bytes.Buffer
	rootCmd.SetArgs(args)
	rootCmd.SetOut(&output)
	rootCmd.SetErr(&output)

	err := rootCmd.Execute()
	return output.String(), err
}

func TestRootHelp(t *testing.T) {
	out, err := runCommand(t, "--help")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	for _, want := range []string{"resolve", "validate", "docs", "--devtools", "--single-instance"} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected help to mention %q", want)
		}
	}
}

func TestResolveCommand(t *testing.T) {
	dir := t.TempDir()
	img := filepath.Join(dir, "photo.JPG")
	if err := os.WriteFile(img, []byte("jpg"), 0644); err != nil {
		t.Fatalf("Failed to write image: %v", err)
	}
	notes := filepath.Join(dir, "notes.txt")
	if err := os.WriteFile(notes, []byte("txt"), 0644); err != nil {
		t.Fatalf("Failed to write notes: %v", err)
	}

	tests := []struct {
		name string
		args []string
		want string
	}{
		{
			name: "flag then image",
			args: []string{"resolve", "--", "-flag", img},
			want: img,
		},
		{
			name: "not allow-listed",
			args: []string{"resolve", notes},
			want: "none",
		},
		{
			name: "missing first candidate",
			args: []string{"resolve", filepath.Join(dir, "gone.png"), img},
			want: img,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := runCommand(t, tt.args...)
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if got := strings.TrimSpace(out); got != tt.want {
				t.Errorf("Expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestValidateCommand(t *testing.T) {
	tmpDir := t.TempDir()

	tests := []struct {
		name          string
		configContent string
		expectError   bool
		errorMsg      string
	}{
		{
			name: "valid config",
			configContent: `
window:
  width: 1024
  height: 768
  background: "#202020"
`,
			expectError: false,
		},
		{
			name: "width below minimum",
			configContent: `
window:
  width: 200
`,
			expectError: true,
			errorMsg:    "window.width 200 is below window.min_width 400",
		},
		{
			name: "bad background",
			configContent: `
window:
  background: "charcoal"
`,
			expectError: true,
			errorMsg:    "invalid window.background",
		},
	}

	for i, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(tmpDir, "config"+string(rune('a'+i))+".yaml")
			if err := os.WriteFile(path, []byte(tt.configContent), 0600); err != nil {
				t.Fatalf("Failed to write config: %v", err)
			}

			out, err := runCommand(t, "validate", "--config", path)

			if tt.expectError {
				if err == nil {
					t.Fatalf("Expected error but got none")
				}
				if !strings.Contains(err.Error(), tt.errorMsg) {
					t.Errorf("Expected error to contain %q, got: %v", tt.errorMsg, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if !strings.Contains(out, "1024x768") {
				t.Errorf("Expected summary with window size, got %q", out)
			}
		})
	}
}

func TestDocsCommand(t *testing.T) {
	outDir := filepath.Join(t.TempDir(), "docs")

	_, err := runCommand(t, "docs", "--output", outDir, "--front-matter")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	for _, name := range []string{"README.md", "go-picview.md", "go-picview_resolve.md"} {
		if _, err := os.Stat(filepath.Join(outDir, name)); err != nil {
			t.Errorf("Expected %s to be generated: %v", name, err)
		}
	}

	data, err := os.ReadFile(filepath.Join(outDir, "go-picview_resolve.md"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(data), "---\ntitle:") {
		t.Errorf("Expected front matter, got %q", string(data[:min(40, len(data))]))
	}
}

func TestDebugModeDetection(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected bool
	}{
		{"no flags", []string{}, false},
		{"debug flag", []string{"--debug"}, true},
		{"debug log level", []string{"--log-level", "debug"}, true},
		{"info log level", []string{"--log-level", "info"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flags := rootCmd.PersistentFlags()
			flags.Set("debug", "false")
			flags.Set("log-level", "info")
			t.Cleanup(func() {
				flags.Set("debug", "false")
				flags.Set("log-level", "info")
			})

			if err := flags.Parse(tt.args); err != nil {
				t.Fatalf("Failed to parse flags: %v", err)
			}
			if actual := IsDebugMode(); actual != tt.expected {
				t.Errorf("Expected debug mode %v, got %v", tt.expected, actual)
			}
		})
	}
}
