// Package app provides the application context for create-blaze-app.
//
// This package manages application-wide dependencies using the functional
// options pattern, enabling easy testing through dependency injection.
//
// # App Context
//
// The App struct holds core dependencies:
//
//	type App struct {
//	    Config      *config.Config          // Template URL, commands, file names
//	    FS          system.FileSystem       // File operations
//	    Executor    system.CommandExecutor  // git and npm
//	    In, Out, Err                        // User streams
//	    Interactive bool                    // Prompt and spinners
//	    WorkDir     string                  // Parent of new projects
//	}
//
// # Creating an App
//
//	// Production usage
//	a := app.New()
//
//	// Testing with custom dependencies
//	a := app.New(
//	    app.WithExecutor(mockExec),
//	    app.WithStreams(strings.NewReader(""), &out, &errOut),
//	    app.WithWorkDir(t.TempDir()),
//	)
//
// # Available Options
//
//	WithConfig(cfg)            // Custom configuration
//	WithFileSystem(fs)         // Custom file system
//	WithExecutor(exec)         // Custom command executor
//	WithStreams(in, out, err)  // Custom streams, interactivity re-detected
//	WithInteractive(bool)      // Force prompt and spinners on or off
//	WithWorkDir(dir)           // Custom project parent directory
package app
