package feed

import (
	"fmt"
	"time"

	"github.com/beevik/etree"
)

// attrPair names a source attribute and the output key it maps to.
type attrPair struct {
	src string
	dst string
}

// Base attributes on the match element itself.
var baseAttrs = []attrPair{
	{"datapath", "datapath"},
	{"id", "id"},
	{"inngCnt", "innings_count"},
	{"grnd", "ground"},
	{"mchDesc", "description"},
	{"vcity", "city"},
	{"vcountry", "country"},
	{"type", "format"},
	{"mnum", "match_num"},
}

// Attributes on the nested state element.
var stateAttrs = []attrPair{
	{"TW", "toss_won"},
	{"decisn", "decision"},
	{"mchState", "state"},
	{"status", "result_text"},
}

// transferAttrs copies each mapped attribute from el into dst. Absent
// attributes are skipped silently; entries already in dst survive unless a
// pair targets the same key.
func transferAttrs(pairs []attrPair, el *etree.Element, dst map[string]string) map[string]string {
	for _, p := range pairs {
		if a := el.SelectAttr(p.src); a != nil {
			dst[p.dst] = a.Value
		}
	}
	return dst
}

// extractTeams returns the two competing teams in document order, or nil
// unless exactly two Tm elements are present. No partial team data.
func extractTeams(el *etree.Element) []Team {
	tms := el.FindElements(".//Tm")
	if len(tms) != 2 {
		return nil
	}
	teams := make([]Team, 0, 2)
	for _, tm := range tms {
		teams = append(teams, Team{
			Name: tm.SelectAttrValue("Name", ""),
			ID:   tm.SelectAttrValue("id", ""),
		})
	}
	return teams
}

// Feed timestamps are implicitly GMT. The date and start-time attributes
// are concatenated and tried against the layouts the provider has been
// seen to use.
var timeLayouts = []string{
	"2 Jan 2006 1504 MST",
	"2 Jan 2006 15:04 MST",
	"2 January 2006 1504 MST",
	"2006-01-02 1504 MST",
}

// extractTime combines the Dt and stTme attributes into an absolute time.
func extractTime(el *etree.Element) (time.Time, error) {
	raw := fmt.Sprintf("%s %s GMT", el.SelectAttrValue("Dt", ""), el.SelectAttrValue("stTme", ""))
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, nil
		}
	}
	return time.Time{}, parseErrorf("time", "unrecognized date/time %q", raw)
}

// parseMatch normalizes one raw match element into a record. A malformed
// attribute is fatal for the match; attributes that are simply absent are
// left out of the record.
func parseMatch(el *etree.Element) (record, error) {
	rec := newRecord()
	transferAttrs(baseAttrs, el, rec.attrs)
	rec.teams = extractTeams(el)

	if state := el.FindElement(".//state"); state != nil {
		transferAttrs(stateAttrs, state, rec.attrs)
	}

	tme := el.FindElement(".//Tme")
	if tme == nil {
		return record{}, parseErrorf("time", "match %s has no Tme element", el.SelectAttrValue("id", "?"))
	}
	start, err := extractTime(tme)
	if err != nil {
		return record{}, err
	}
	rec.start = start

	if score := el.FindElement(".//mscr"); score != nil {
		innings, err := parseScore(score)
		if err != nil {
			return record{}, err
		}
		rec.score = innings
	}
	return rec, nil
}

// groupBy clusters elements sharing a value for the named attribute.
// Groups come out in order of first occurrence of their key, members in
// document order. An element lacking the attribute is an error.
func groupBy(key string, els []*etree.Element) ([][]*etree.Element, error) {
	index := make(map[string]int, len(els))
	var groups [][]*etree.Element
	for _, el := range els {
		a := el.SelectAttr(key)
		if a == nil {
			return nil, parseErrorf(key, "match element missing %s attribute", key)
		}
		i, ok := index[a.Value]
		if !ok {
			i = len(groups)
			index[a.Value] = i
			groups = append(groups, nil)
		}
		groups[i] = append(groups[i], el)
	}
	return groups, nil
}

// mergeGroup parses every duplicate of one match and folds them into a
// single Match, later entries overwriting earlier ones field by field.
func mergeGroup(group []*etree.Element) (Match, error) {
	acc := newRecord()
	for _, el := range group {
		rec, err := parseMatch(el)
		if err != nil {
			return Match{}, err
		}
		acc.merge(rec)
	}
	return acc.finalize(), nil
}
