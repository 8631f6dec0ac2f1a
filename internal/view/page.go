package view

import (
	"github.com/DjordjeVuckovic/bfhl/internal/dto"
	"github.com/DjordjeVuckovic/bfhl/internal/filter"
)

const (
	IndexTemplate = "index.html"
	Placeholder   = `{"data": ["M","1","334","4","B"]}`
)

type FilterButton struct {
	Label  string
	Value  string
	Active bool
}

type Results struct {
	Alphabets     []string
	Numbers       []string
	Highest       string
	HasHighest    bool
	ShowAlphabets bool
	ShowNumbers   bool
	ShowHighest   bool
}

// Page is the immutable snapshot rendered for one submission.
type Page struct {
	Input       string
	Placeholder string
	Error       string
	Selected    []string
	Filters     []FilterButton
	Results     *Results
}

func NewPage(input string, sel filter.Selection) *Page {
	return &Page{
		Input:       input,
		Placeholder: Placeholder,
		Selected:    sel.Values(),
		Filters:     buttons(sel),
	}
}

func (p *Page) WithError(msg string) *Page {
	p.Error = msg
	p.Results = nil
	return p
}

// WithResponse fills the result sections visible under the current selection.
// An empty highest_alphabet renders no chip.
func (p *Page) WithResponse(resp *dto.ClassifyResponse, sel filter.Selection) *Page {
	p.Error = ""
	res := &Results{
		Alphabets:     tokensOrEmpty(resp.Alphabets),
		Numbers:       tokensOrEmpty(resp.Numbers),
		ShowAlphabets: sel.Shows(filter.Alphabets),
		ShowNumbers:   sel.Shows(filter.Numbers),
		ShowHighest:   sel.Shows(filter.Highest),
	}
	if len(resp.HighestAlphabet) > 0 {
		res.Highest = resp.HighestAlphabet[0]
		res.HasHighest = true
	}
	p.Results = res
	return p
}

func buttons(sel filter.Selection) []FilterButton {
	opts := filter.Options()
	out := make([]FilterButton, len(opts))
	for i, o := range opts {
		out[i] = FilterButton{
			Label:  o.Label,
			Value:  string(o.Value),
			Active: sel.Has(o.Value),
		}
	}
	return out
}

// tokensOrEmpty keeps tokens verbatim; the template escapes them on output.
func tokensOrEmpty(tokens []string) []string {
	if tokens == nil {
		return []string{}
	}
	return tokens
}
