// Package testutil provides a test environment and fixtures.
//
// # Test Environment
//
// NewTestEnv creates a temporary working directory and an executor that
// plays the external tools against it: "git clone" writes a template
// checkout (with history), "git init" and "git commit" record a repository
// and its commits, and everything else (npm, git add) succeeds silently.
// The environment is installed as app.Default for the duration of the test.
//
//	env := testutil.NewTestEnv(t)
//	env.FailCommand("npm install", "npm ERR! network")
//	// run the command under test
//	if _, err := os.Stat(env.ProjectPath("demo-app")); !os.IsNotExist(err) {
//	    t.Error("project should have been removed")
//	}
//
// # Fixtures
//
// Fixtures are embedded using go:embed:
//
//	fixtures/package.json         // template manifest
//	fixtures/env.example          // template .env.example
//	fixtures/valid_config.toml
//	fixtures/invalid_config.toml
//
//	cfg, err := testutil.ValidConfig()
//	err := testutil.InvalidConfig()
//	data, err := testutil.LoadFixture("package.json")
package testutil
