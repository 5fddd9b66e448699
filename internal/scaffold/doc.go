// Package scaffold implements the setup sequence run against a freshly
// cloned template.
//
// # Steps
//
// A Sequence holds seven Steps executed strictly in order:
//
//	clone          git clone <template> <path>
//	strip-history  remove <path>/.git
//	manifest       set "name" in package.json
//	env            copy .env.example to .env.local when present
//	install        npm install (in <path>)
//	git-init       git init (in <path>)
//	commit         git add . && git commit -m <message> (in <path>)
//
// The first failing step aborts the sequence; later steps never run.
//
// # Presentation
//
// Steps never print. Progress is reported through an Observer, which the
// terminal UI implements with a spinner:
//
//	seq := scaffold.Default(scaffold.Deps{Config: cfg, FS: fs, Executor: exec})
//	err := seq.Run(ctx, &scaffold.Target{Name: "demo-app", Path: path}, reporter)
package scaffold
