package prog

import "flag"

// FlagSet wraps a [flag.FlagSet]. Flags shared by several subprograms are
// registered lazily through its methods, so that the subprograms of a
// [Composite] program can share them.
type FlagSet struct {
	*flag.FlagSet
	json *bool
}

// JSON returns a pointer to the value of the -json flag, registering it if it
// hasn't been registered yet.
func (fs *FlagSet) JSON() *bool {
	if fs.json == nil {
		var json bool
		fs.BoolVar(&json, "json", false,
			"show the output from -buildinfo or -version in JSON")
		fs.json = &json
	}
	return fs.json
}

// IsSet reports whether the named flag was given on the command line. It is
// only meaningful after the flags have been parsed.
func (fs *FlagSet) IsSet(name string) bool {
	set := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			set = true
		}
	})
	return set
}
