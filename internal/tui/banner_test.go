package tui

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestPrintHeader(t *testing.T) {
	var buf bytes.Buffer
	PrintHeader(&buf)
	if !strings.Contains(buf.String(), "Create Blaze App") {
		t.Errorf("header = %q", buf.String())
	}
}

func TestPrintVersion(t *testing.T) {
	var buf bytes.Buffer
	PrintVersion(&buf)

	for _, want := range []string{
		"Version: 1.0.0",
		"Repository: https://github.com/dimi-r1/react-firebase-boilerplate",
		"CLI Repository: https://github.com/dimi-r1/create-fb-react",
	} {
		if !strings.Contains(buf.String(), want) {
			t.Errorf("version output missing %q:\n%s", want, buf.String())
		}
	}
}

func TestPrintError(t *testing.T) {
	var buf bytes.Buffer
	PrintError(&buf, errors.New("step install failed"))

	out := buf.String()
	if !strings.Contains(out, "Error creating project:") || !strings.Contains(out, "step install failed") {
		t.Errorf("error banner = %q", out)
	}
}

func TestPrintInvalid(t *testing.T) {
	var buf bytes.Buffer
	PrintInvalid(&buf, errors.New("Directory demo-app already exists!"))
	if !strings.Contains(buf.String(), "❌ Directory demo-app already exists!") {
		t.Errorf("output = %q", buf.String())
	}
}

func TestNextSteps(t *testing.T) {
	md := NextSteps("demo-app", ".env.local")
	for _, want := range []string{"cd demo-app", "npm run dev", "Add your Firebase config to .env.local", "Happy coding!"} {
		if !strings.Contains(md, want) {
			t.Errorf("next steps missing %q", want)
		}
	}
}

func TestPrintSuccess_Plain(t *testing.T) {
	var buf bytes.Buffer
	if err := PrintSuccess(&buf, "demo-app", ".env.local", false); err != nil {
		t.Fatalf("PrintSuccess error: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"Project created successfully!", "cd demo-app", "npm run dev", "Happy coding!"} {
		if !strings.Contains(out, want) {
			t.Errorf("success output missing %q:\n%s", want, out)
		}
	}
}

func TestPrintSuccess_RenderFailureKeepsBanner(t *testing.T) {
	orig := renderNextSteps
	renderNextSteps = func(string, bool) (string, error) {
		return "", errors.New("no style")
	}
	t.Cleanup(func() { renderNextSteps = orig })

	var buf bytes.Buffer
	err := PrintSuccess(&buf, "demo-app", ".env.local", true)
	if err == nil || !strings.Contains(err.Error(), "failed to render next steps") {
		t.Fatalf("PrintSuccess error = %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "Project created successfully!") {
		t.Errorf("banner should be printed even when rendering fails:\n%s", out)
	}
	if !strings.Contains(out, "cd demo-app") {
		t.Errorf("unrendered next steps should still be shown:\n%s", out)
	}
}
