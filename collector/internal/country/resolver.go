package country

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/rootless/compass/pkg/table"
)

// Resolver maps country names and ISO codes to alpha-3 codes.
// It is immutable after New and safe for concurrent use.
type Resolver struct {
	index map[string]string // folded key → alpha-3
	known map[string]bool   // alpha-3 codes
}

// New builds a resolver over the built-in country table.
func New() *Resolver {
	r := &Resolver{
		index: make(map[string]string, len(entries)*4),
		known: make(map[string]bool, len(entries)),
	}
	for _, e := range entries {
		r.known[e.alpha3] = true
		r.add(e.alpha3, e.alpha3)
		r.add(e.alpha2, e.alpha3)
		r.add(e.name, e.alpha3)
		for _, a := range e.aliases {
			r.add(a, e.alpha3)
		}
	}
	return r
}

// add registers key unless an earlier entry already claimed it.
func (r *Resolver) add(key, code string) {
	k := fold(key)
	if k == "" {
		return
	}
	if _, ok := r.index[k]; !ok {
		r.index[k] = code
	}
}

// Resolve returns the alpha-3 code for name, which may be a country name or
// an alpha-2/alpha-3 code. ok is false when there is no exact match.
func (r *Resolver) Resolve(name string) (code string, ok bool) {
	code, ok = r.index[fold(name)]
	return code, ok
}

// Known reports whether code is a canonical alpha-3 code.
func (r *Resolver) Known(code string) bool {
	return r.known[code]
}

// Records builds the canonical country list from a provider roster.
// Entries whose name is in aggregates are skipped. A roster code that is
// already canonical is kept as is; otherwise the name is resolved, and an
// unresolvable entry is returned with an empty ISOCode. Region is left empty.
func (r *Resolver) Records(roster []table.RosterEntry, aggregates []string) []table.CountryRecord {
	skip := foldSet(aggregates)
	out := make([]table.CountryRecord, 0, len(roster))
	for _, e := range roster {
		if skip[fold(e.Name)] {
			continue
		}
		out = append(out, table.CountryRecord{Name: e.Name, ISOCode: r.canonical(e)})
	}
	return out
}

// Rekey returns a copy of it whose Years are keyed by canonical alpha-3 code,
// using the same roster rules as Records. Aggregates and unresolved entries
// are left out; when two entries resolve to the same code the first wins.
// The roster is shared with it.
func (r *Resolver) Rekey(it *table.IndicatorTable, aggregates []string) *table.IndicatorTable {
	skip := foldSet(aggregates)
	out := table.NewIndicatorTable(it.Indicator)
	out.Roster = it.Roster
	for _, e := range it.Roster {
		if skip[fold(e.Name)] {
			continue
		}
		code := r.canonical(e)
		if code == "" {
			continue
		}
		if _, dup := out.Years[code]; dup {
			continue
		}
		if years, ok := it.Years[e.Key()]; ok {
			out.Years[code] = years
		}
	}
	return out
}

// canonical returns the alpha-3 code of a roster entry, or "".
func (r *Resolver) canonical(e table.RosterEntry) string {
	if code := strings.ToUpper(strings.TrimSpace(e.Code)); r.Known(code) {
		return code
	}
	code, _ := r.Resolve(e.Name)
	return code
}

func foldSet(names []string) map[string]bool {
	out := make(map[string]bool, len(names))
	for _, n := range names {
		out[fold(n)] = true
	}
	return out
}

// fold reduces s to the form used as an index key.
func fold(s string) string {
	stripMarks := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	s, _, _ = transform.String(stripMarks, strings.ToLower(s))

	var b strings.Builder
	b.Grow(len(s))
	for _, c := range s {
		switch {
		case unicode.IsLetter(c), unicode.IsDigit(c):
			b.WriteRune(c)
		case c == '\'', c == '’', c == '.':
		default:
			b.WriteRune(' ')
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}
