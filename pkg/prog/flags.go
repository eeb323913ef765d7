package prog

import (
	"flag"
	"strings"
)

// FlagSet wraps a flag.FlagSet, adding helpers for flags that are more
// involved than the standard ones.
type FlagSet struct {
	*flag.FlagSet
}

// StringsVar defines a string flag that may be given multiple times. Each
// occurrence appends to *p.
func (fs *FlagSet) StringsVar(p *[]string, name, usage string) {
	fs.Var((*stringsValue)(p), name, usage)
}

type stringsValue []string

func (v *stringsValue) String() string { return strings.Join(*v, ",") }

func (v *stringsValue) Set(s string) error {
	*v = append(*v, s)
	return nil
}
