package tt

import (
	"reflect"
	"runtime"
	"strings"
)

// Returns the unqualified name of a function, like "ParseAddr" for
// "src.elv.sh/ed/pkg/ed.ParseAddr".
func funcName(f any) string {
	fn := runtime.FuncForPC(reflect.ValueOf(f).Pointer())
	if fn == nil {
		return "<unknown>"
	}
	name := fn.Name()
	if i := strings.LastIndexByte(name, '/'); i != -1 {
		name = name[i+1:]
	}
	if i := strings.IndexByte(name, '.'); i != -1 {
		name = name[i+1:]
	}
	return name
}
