package testutil

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dimi-r1/create-fb-react/internal/app"
	"github.com/dimi-r1/create-fb-react/internal/system"
)

func TestLoadValidConfig(t *testing.T) {
	cfg, err := ValidConfig()
	if err != nil {
		t.Fatalf("ValidConfig() error: %v", err)
	}

	if cfg.TemplateRepo != "https://example.com/acme/react-template.git" {
		t.Errorf("TemplateRepo = %q", cfg.TemplateRepo)
	}
	args, err := cfg.InstallArgs()
	if err != nil || len(args) != 3 || args[0] != "pnpm" {
		t.Errorf("InstallArgs() = %v, %v", args, err)
	}
	// Unset keys keep their defaults
	if cfg.ManifestFile != "package.json" {
		t.Errorf("ManifestFile = %q, want default", cfg.ManifestFile)
	}
}

func TestLoadInvalidConfig(t *testing.T) {
	err := InvalidConfig()
	if err == nil {
		t.Fatal("Invalid config should fail")
	}
	if !strings.Contains(err.Error(), "install_comand") {
		t.Errorf("error should name the unknown key, got %v", err)
	}
}

func TestTemplateManifest(t *testing.T) {
	var m map[string]any
	if err := json.Unmarshal(TemplateManifest(), &m); err != nil {
		t.Fatalf("manifest fixture is not JSON: %v", err)
	}
	if m["name"] != "react-firebase-boilerplate" {
		t.Errorf("name = %v", m["name"])
	}
}

func TestTestEnv_SimulatesGit(t *testing.T) {
	env := NewTestEnv(t)
	if app.Default != env.App {
		t.Fatal("NewTestEnv should install its app as default")
	}

	dest := env.ProjectPath("demo-app")
	ctx := context.Background()

	if _, err := system.Run(ctx, env.Executor, "", "git", "clone", "https://example.com/x.git", dest); err != nil {
		t.Fatalf("clone: %v", err)
	}
	for _, rel := range []string{"package.json", ".env.example", ".git/HEAD"} {
		if _, err := os.Stat(filepath.Join(dest, rel)); err != nil {
			t.Errorf("clone should create %s: %v", rel, err)
		}
	}

	if err := os.RemoveAll(filepath.Join(dest, ".git")); err != nil {
		t.Fatal(err)
	}
	if _, err := system.Run(ctx, env.Executor, dest, "git", "init"); err != nil {
		t.Fatalf("init: %v", err)
	}
	if _, err := system.Run(ctx, env.Executor, dest, "git", "commit", "-m", "first"); err != nil {
		t.Fatalf("commit: %v", err)
	}
	if got := env.CommitCount("demo-app"); got != 1 {
		t.Errorf("CommitCount = %d, want 1", got)
	}
}

func TestTestEnv_WithoutEnvExample(t *testing.T) {
	env := NewTestEnv(t)
	env.WithEnvExample = false

	dest := env.ProjectPath("demo-app")
	if _, err := system.Run(context.Background(), env.Executor, "", "git", "clone", "url", dest); err != nil {
		t.Fatalf("clone: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dest, ".env.example")); !os.IsNotExist(err) {
		t.Error(".env.example should not exist")
	}
}

func TestTestEnv_FailCommand(t *testing.T) {
	env := NewTestEnv(t)
	env.FailCommand("git clone", "fatal: could not read from remote repository")

	dest := env.ProjectPath("demo-app")
	_, err := system.Run(context.Background(), env.Executor, "", "git", "clone", "url", dest)
	if err == nil {
		t.Fatal("expected clone to fail")
	}
	if !strings.Contains(err.Error(), "could not read from remote repository") {
		t.Errorf("error = %v", err)
	}
	if _, err := os.Stat(dest); !os.IsNotExist(err) {
		t.Error("failed clone should not create the directory")
	}
}
