package app

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/dimi-r1/create-fb-react/internal/config"
	"github.com/dimi-r1/create-fb-react/internal/logging"
	"github.com/dimi-r1/create-fb-react/internal/system"
	"github.com/dimi-r1/create-fb-react/internal/tui"
)

func TestNew(t *testing.T) {
	app := New()

	if app == nil {
		t.Fatal("New() returned nil")
	}
	if app.Config == nil || app.FS == nil || app.Executor == nil {
		t.Error("default dependencies should be set")
	}
	if app.Out != os.Stdout || app.Err != os.Stderr {
		t.Error("default streams should be the process streams")
	}
}

func TestNew_WithConfig(t *testing.T) {
	cfg := config.Default()
	cfg.InstallCommand = "pnpm install"

	app := New(WithConfig(cfg))

	if app.Config != cfg {
		t.Error("WithConfig did not set config")
	}
}

func TestNew_WithFileSystemAndExecutor(t *testing.T) {
	fs := system.NewMockFS()
	exec := system.NewMockExecutor()

	app := New(WithFileSystem(fs), WithExecutor(exec))

	if app.FS != fs {
		t.Error("WithFileSystem did not set file system")
	}
	if app.Executor != exec {
		t.Error("WithExecutor did not set executor")
	}
}

func TestNew_WithStreams(t *testing.T) {
	var out, errOut bytes.Buffer
	in := strings.NewReader("")

	app := New(WithInteractive(true), WithStreams(in, &out, &errOut))

	if app.In != in || app.Out != &out || app.Err != &errOut {
		t.Error("WithStreams did not set streams")
	}
	if app.Interactive {
		t.Error("a buffer is not a terminal")
	}
}

func TestNew_WithInteractive(t *testing.T) {
	var out bytes.Buffer

	app := New(WithStreams(nil, &out, &out), WithInteractive(true))

	if !app.Interactive {
		t.Error("WithInteractive(true) should win when applied last")
	}
	if _, ok := app.Reporter().(*tui.SpinnerReporter); !ok {
		t.Error("interactive app should report with spinners")
	}
}

func TestReporter_Plain(t *testing.T) {
	var out bytes.Buffer
	app := New(WithStreams(nil, &out, &out))

	if _, ok := app.Reporter().(tui.PlainReporter); !ok {
		t.Error("non-interactive app should use the plain reporter")
	}
}

func TestReporter_VerboseDisablesSpinner(t *testing.T) {
	var out bytes.Buffer
	logging.Setup(true, false, &out)
	t.Cleanup(func() { logging.Setup(false, false, nil) })

	app := New(WithStreams(nil, &out, &out), WithInteractive(true))

	if _, ok := app.Reporter().(tui.PlainReporter); !ok {
		t.Error("verbose runs should use the plain reporter")
	}
}

func TestDir(t *testing.T) {
	app := New(WithWorkDir("/work"))
	dir, err := app.Dir()
	if err != nil || dir != "/work" {
		t.Errorf("Dir() = %q, %v", dir, err)
	}

	wd, _ := os.Getwd()
	dir, err = New().Dir()
	if err != nil || dir != wd {
		t.Errorf("Dir() = %q, %v, want %q", dir, err, wd)
	}
}

func TestCreator(t *testing.T) {
	if New().Creator() == nil {
		t.Error("Creator() returned nil")
	}
}

func TestIsTerminal(t *testing.T) {
	if IsTerminal(&bytes.Buffer{}) {
		t.Error("buffer should not be a terminal")
	}

	f, err := os.CreateTemp(t.TempDir(), "out")
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if IsTerminal(f) {
		t.Error("regular file should not be a terminal")
	}
}

func TestSetDefault(t *testing.T) {
	original := Default
	defer func() { Default = original }()

	custom := New(WithWorkDir("/custom"))
	SetDefault(custom)

	if Default != custom {
		t.Error("SetDefault did not set default")
	}

	ResetDefault()
	if Default == custom {
		t.Error("ResetDefault did not reset")
	}
}
