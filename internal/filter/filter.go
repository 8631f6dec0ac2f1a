package filter

type Option string

const (
	All       Option = "all"
	Alphabets Option = "alphabets"
	Numbers   Option = "numbers"
	Highest   Option = "highest"
)

type Descriptor struct {
	Value Option
	Label string
}

var options = []Descriptor{
	{Value: All, Label: "Show All"},
	{Value: Alphabets, Label: "Alphabets"},
	{Value: Numbers, Label: "Numbers"},
	{Value: Highest, Label: "Highest Alphabet"},
}

func Options() []Descriptor {
	out := make([]Descriptor, len(options))
	copy(out, options)
	return out
}

func (o Option) Valid() bool {
	switch o {
	case All, Alphabets, Numbers, Highest:
		return true
	}
	return false
}

// Selection is an ordered set of active filters. It is never empty:
// either exactly [all] or one or more specific filters.
type Selection struct {
	opts []Option
}

func Default() Selection {
	return Selection{opts: []Option{All}}
}

// Parse builds a Selection from raw values, dropping unknown and duplicate ones.
// "all" anywhere wins. An empty result falls back to Default.
func Parse(values []string) Selection {
	seen := make(map[Option]bool, len(values))
	var opts []Option
	for _, v := range values {
		o := Option(v)
		if !o.Valid() || seen[o] {
			continue
		}
		if o == All {
			return Default()
		}
		seen[o] = true
		opts = append(opts, o)
	}

	if len(opts) == 0 {
		return Default()
	}
	return Selection{opts: opts}
}

// Toggle returns the selection produced by clicking opt.
func Toggle(sel Selection, opt Option) Selection {
	if opt == All || !opt.Valid() {
		return Default()
	}
	if sel.Has(All) || len(sel.opts) == 0 {
		return Selection{opts: []Option{opt}}
	}

	if !sel.Has(opt) {
		next := make([]Option, 0, len(sel.opts)+1)
		next = append(next, sel.opts...)
		return Selection{opts: append(next, opt)}
	}

	if len(sel.opts) == 1 {
		return Default()
	}

	next := make([]Option, 0, len(sel.opts)-1)
	for _, o := range sel.opts {
		if o != opt {
			next = append(next, o)
		}
	}
	return Selection{opts: next}
}

func (s Selection) Has(opt Option) bool {
	for _, o := range s.opts {
		if o == opt {
			return true
		}
	}
	return false
}

// Shows reports whether the result section for opt is visible.
func (s Selection) Shows(opt Option) bool {
	return len(s.opts) == 0 || s.Has(All) || s.Has(opt)
}

func (s Selection) Values() []string {
	if len(s.opts) == 0 {
		return []string{string(All)}
	}
	out := make([]string, len(s.opts))
	for i, o := range s.opts {
		out[i] = string(o)
	}
	return out
}
