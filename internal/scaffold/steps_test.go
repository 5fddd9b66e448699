package scaffold

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/dimi-r1/create-fb-react/internal/config"
	"github.com/dimi-r1/create-fb-react/internal/system"
)

const projectPath = "/work/demo-app"

func newTestDeps() (Deps, *system.MockFS, *system.MockExecutor) {
	fs := system.NewMockFS()
	exec := system.NewMockExecutor()
	return Deps{Config: config.Default(), FS: fs, Executor: exec}, fs, exec
}

func runStep(t *testing.T, s Step) (Result, error) {
	t.Helper()
	return s.Run(context.Background(), &Target{Name: "demo-app", Path: projectPath})
}

func TestDefault_StepOrder(t *testing.T) {
	d, _, _ := newTestDeps()

	var ids []string
	for _, s := range Default(d).Steps() {
		ids = append(ids, s.ID)
	}

	want := []string{StepClone, StepStripHistory, StepManifest, StepEnv, StepInstall, StepGitInit, StepCommit}
	if !reflect.DeepEqual(ids, want) {
		t.Errorf("step order = %v, want %v", ids, want)
	}
}

func TestClone(t *testing.T) {
	d, _, exec := newTestDeps()

	if _, err := runStep(t, Clone(d)); err != nil {
		t.Fatalf("Clone error: %v", err)
	}

	cmd, _ := exec.LastCommand()
	want := "git clone https://github.com/dimi-r1/react-firebase-boilerplate.git /work/demo-app"
	if cmd.Line() != want {
		t.Errorf("command = %q, want %q", cmd.Line(), want)
	}
	if cmd.Dir != "" {
		t.Errorf("clone should run in the current directory, got %q", cmd.Dir)
	}
}

func TestClone_Failure(t *testing.T) {
	d, _, exec := newTestDeps()
	exec.AddResponse("git clone", []byte("fatal: repository not found"), errors.New("exit status 128"))

	_, err := runStep(t, Clone(d))
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "command failed: git clone") {
		t.Errorf("error should carry the command text, got %q", err.Error())
	}
	if !strings.Contains(err.Error(), "repository not found") {
		t.Errorf("error should carry the captured output, got %q", err.Error())
	}
}

func TestStripHistory(t *testing.T) {
	d, fs, _ := newTestDeps()
	fs.AddFile(projectPath+"/.git/HEAD", []byte("ref: refs/heads/main"), 0644)
	fs.AddFile(projectPath+"/README.md", []byte("# template"), 0644)

	if _, err := runStep(t, StripHistory(d)); err != nil {
		t.Fatalf("StripHistory error: %v", err)
	}

	if fs.Exists(projectPath + "/.git") {
		t.Error(".git should be removed")
	}
	if fs.Exists(projectPath + "/.git/HEAD") {
		t.Error(".git contents should be removed")
	}
	if !fs.Exists(projectPath + "/README.md") {
		t.Error("project files must be kept")
	}
}

func TestStripHistory_Failure(t *testing.T) {
	d, fs, _ := newTestDeps()
	fs.RemoveAllErr = errors.New("permission denied")

	if _, err := runStep(t, StripHistory(d)); err == nil {
		t.Error("expected error")
	}
}

func TestUpdateManifest(t *testing.T) {
	d, fs, _ := newTestDeps()
	fs.AddFile(projectPath+"/package.json", []byte(`{"name": "boilerplate"}`), 0644)

	if _, err := runStep(t, UpdateManifest(d)); err != nil {
		t.Fatalf("UpdateManifest error: %v", err)
	}

	data, _ := fs.GetFile(projectPath + "/package.json")
	if string(data) != `{"name": "demo-app"}` {
		t.Errorf("manifest = %s", data)
	}
}

func TestSetupEnvironment_Copies(t *testing.T) {
	d, fs, _ := newTestDeps()
	fs.AddFile(projectPath+"/.env.example", []byte("VITE_FIREBASE_API_KEY=\n"), 0644)

	res, err := runStep(t, SetupEnvironment(d))
	if err != nil {
		t.Fatalf("SetupEnvironment error: %v", err)
	}
	if res.Note != "" {
		t.Errorf("Note = %q, want empty", res.Note)
	}

	data, ok := fs.GetFile(projectPath + "/.env.local")
	if !ok {
		t.Fatal(".env.local should be created")
	}
	if string(data) != "VITE_FIREBASE_API_KEY=\n" {
		t.Errorf(".env.local = %q", data)
	}
}

func TestSetupEnvironment_SkipsWithoutExample(t *testing.T) {
	d, fs, _ := newTestDeps()
	fs.AddDir(projectPath)

	res, err := runStep(t, SetupEnvironment(d))
	if err != nil {
		t.Fatalf("SetupEnvironment error: %v", err)
	}
	if res.Note != "Environment setup skipped (no .env.example found)" {
		t.Errorf("Note = %q", res.Note)
	}
	if fs.Exists(projectPath + "/.env.local") {
		t.Error(".env.local must not be created")
	}
}

func TestSetupEnvironment_CopyFailure(t *testing.T) {
	d, fs, _ := newTestDeps()
	fs.AddFile(projectPath+"/.env.example", []byte("A=1\n"), 0644)
	fs.CopyFileErr = errors.New("disk full")

	if _, err := runStep(t, SetupEnvironment(d)); err == nil {
		t.Error("expected error")
	}
}

func TestInstallDependencies(t *testing.T) {
	d, _, exec := newTestDeps()

	if _, err := runStep(t, InstallDependencies(d)); err != nil {
		t.Fatalf("InstallDependencies error: %v", err)
	}

	cmd, _ := exec.LastCommand()
	if cmd.Line() != "npm install" {
		t.Errorf("command = %q, want npm install", cmd.Line())
	}
	if cmd.Dir != projectPath {
		t.Errorf("Dir = %q, want %q", cmd.Dir, projectPath)
	}
}

func TestInstallDependencies_CustomCommand(t *testing.T) {
	d, _, exec := newTestDeps()
	d.Config.InstallCommand = "pnpm install --frozen-lockfile"

	if _, err := runStep(t, InstallDependencies(d)); err != nil {
		t.Fatalf("InstallDependencies error: %v", err)
	}

	cmd, _ := exec.LastCommand()
	if cmd.Name != "pnpm" || !reflect.DeepEqual(cmd.Args, []string{"install", "--frozen-lockfile"}) {
		t.Errorf("command = %q", cmd.Line())
	}
}

func TestInitRepositoryAndCommit(t *testing.T) {
	d, _, exec := newTestDeps()

	if _, err := runStep(t, InitRepository(d)); err != nil {
		t.Fatalf("InitRepository error: %v", err)
	}
	if _, err := runStep(t, InitialCommit(d)); err != nil {
		t.Fatalf("InitialCommit error: %v", err)
	}

	want := []string{
		"git init",
		"git add .",
		"git commit -m 'Initial commit from create-blaze-app'",
	}
	if !reflect.DeepEqual(exec.Lines(), want) {
		t.Errorf("commands = %v, want %v", exec.Lines(), want)
	}
	for _, c := range exec.Commands {
		if c.Dir != projectPath {
			t.Errorf("%q ran in %q, want %q", c.Line(), c.Dir, projectPath)
		}
	}
}

func TestInitialCommit_AddFailureSkipsCommit(t *testing.T) {
	d, _, exec := newTestDeps()
	exec.AddResponse("git add", nil, errors.New("exit status 128"))

	if _, err := runStep(t, InitialCommit(d)); err == nil {
		t.Fatal("expected error")
	}
	if len(exec.Commands) != 1 {
		t.Errorf("commit must not run after a failed add, commands = %v", exec.Lines())
	}
}
