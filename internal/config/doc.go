// Package config provides configuration types and loading for create-blaze-app.
//
// # Defaults
//
// Every setting has a built-in default matching the published tool:
//
//	template_repo   = "https://github.com/dimi-r1/react-firebase-boilerplate.git"
//	git             = "git"
//	install_command = "npm install"
//	commit_message  = "Initial commit from create-blaze-app"
//	manifest_file   = "package.json"
//	env_example     = ".env.example"
//	env_local       = ".env.local"
//	default_name    = "my-react-firebase-app"
//
// # Configuration File
//
// A file passed with --config overrides any subset of the keys above. Files
// ending in .yaml or .yml are read as YAML, everything else as TOML:
//
//	# blaze.toml
//	install_command = "pnpm install"
//
//	# blaze.yaml
//	install_command: pnpm install
//
// Unknown keys are rejected. No environment variables are consulted.
//
// # Validation
//
// Load validates after parsing: required keys must be non-empty,
// install_command must split into at least one word, and file names must stay
// inside the project directory.
package config
