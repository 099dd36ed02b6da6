package ed

import (
	"fmt"
	"os"

	"src.elv.sh/ed/pkg/prog"
	"src.elv.sh/ed/pkg/store"
	"src.elv.sh/ed/pkg/sys"
)

// Program is the ed program. It runs an editing session on stdin, stdout and
// stderr, optionally on the file named by its only argument.
type Program struct {
	prompt   string
	suppress bool
	rc       string
	noRC     bool
	histDB   string

	fs *prog.FlagSet
}

func (p *Program) RegisterFlags(fs *prog.FlagSet) {
	fs.StringVar(&p.prompt, "p", "", "use `string` as the prompt in command mode")
	fs.BoolVar(&p.suppress, "s", false, "suppress byte counts and diagnostics")
	fs.StringVar(&p.rc, "rc", "", "path to the rc file")
	fs.BoolVar(&p.noRC, "norc", false, "don't read the rc file")
	fs.StringVar(&p.histDB, "histdb", "",
		"path to the database for recording the command history of interactive sessions")
	p.fs = fs
}

func (p *Program) Run(fds [3]*os.File, args []string) error {
	if len(args) > 1 {
		return prog.BadUsage("too many arguments")
	}
	cfg := Config{Prompt: p.prompt, Suppress: p.suppress}
	if len(args) == 1 {
		cfg.Filename = args[0]
	}
	histDB := p.histDB

	if !p.noRC {
		rc, err := p.readRC()
		if err != nil {
			fmt.Fprintln(fds[2], "Warning:", err)
		} else if rc != nil {
			if rc.Prompt != nil && !p.fs.IsSet("p") {
				cfg.Prompt = *rc.Prompt
			}
			if rc.Suppress != nil && !p.fs.IsSet("s") {
				cfg.Suppress = *rc.Suppress
			}
			if rc.HistDB != "" && !p.fs.IsSet("histdb") {
				histDB = rc.HistDB
			}
		}
	}

	// Like the command history of shells, only commands typed at a terminal
	// are recorded.
	if histDB != "" && sys.IsATTY(fds[0]) {
		st, err := store.NewStore(histDB)
		if err != nil {
			fmt.Fprintln(fds[2], "Warning: cannot open command history:", err)
		} else {
			defer st.Close()
			cfg.History = st
		}
	}

	logger.Printf("starting session, file %q", cfg.Filename)
	s := NewSession(fds[0], fds[1], fds[2], cfg)
	s.Load()
	s.Run()
	return nil
}

// Returns the rc file to use, or nil if the default rc file doesn't exist.
func (p *Program) readRC() (*RC, error) {
	if p.rc != "" {
		return ReadRC(p.rc)
	}
	path, err := RCPath()
	if err != nil {
		return nil, err
	}
	rc, err := ReadRC(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	return rc, err
}
