package feed

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/beevik/etree"
)

// A score block carries one or two innings, each as a (detail, batting
// side, bowling side) triple of child elements. The detail element's own
// fields (required run rate and the like) are not kept.
const sideElements = 3

// parseScore decomposes a score element into structured innings figures.
func parseScore(score *etree.Element) ([]Innings, error) {
	kids := score.ChildElements()
	if len(kids) < sideElements {
		return nil, parseErrorf("score", "expected at least 3 child elements, got %d", len(kids))
	}

	first, err := parseInnings(kids[1], kids[2])
	if err != nil {
		return nil, err
	}
	innings := []Innings{first}

	if len(kids) > sideElements {
		if len(kids) < 2*sideElements {
			return nil, parseErrorf("score", "incomplete second innings: %d child elements", len(kids))
		}
		second, err := parseInnings(kids[4], kids[5])
		if err != nil {
			return nil, err
		}
		innings = append(innings, second)
	}
	return innings, nil
}

func parseInnings(batting, bowling *etree.Element) (Innings, error) {
	bat, err := parseSide(batting)
	if err != nil {
		return Innings{}, err
	}
	bowl, err := parseSide(bowling)
	if err != nil {
		return Innings{}, err
	}
	return Innings{Batting: bat, Bowling: bowl}, nil
}

// parseSide reads one side's figures. sName, ovrs, runs, and wckts must be
// present and well formed; Decl and FollowOn default to false when absent.
func parseSide(el *etree.Element) (InningsFigures, error) {
	name := el.SelectAttr("sName")
	if name == nil {
		return InningsFigures{}, parseErrorf("score", "%s missing sName attribute", el.Tag)
	}

	overs, err := requiredFloat(el, "ovrs")
	if err != nil {
		return InningsFigures{}, err
	}
	runs, err := requiredInt(el, "runs")
	if err != nil {
		return InningsFigures{}, err
	}
	wickets, err := requiredInt(el, "wckts")
	if err != nil {
		return InningsFigures{}, err
	}

	return InningsFigures{
		Team:     name.Value,
		Declare:  coerceBool(el.SelectAttrValue("Decl", "")),
		FollowOn: coerceBool(el.SelectAttrValue("FollowOn", "")),
		Overs:    overs,
		Runs:     runs,
		Wickets:  wickets,
	}, nil
}

func requiredFloat(el *etree.Element, name string) (float64, error) {
	a := el.SelectAttr(name)
	if a == nil {
		return 0, parseErrorf("score", "%s missing %s attribute", el.Tag, name)
	}
	f, err := strconv.ParseFloat(a.Value, 64)
	if err != nil {
		return 0, &ParseError{Field: "score", Msg: fmt.Sprintf("bad %s %q", name, a.Value), Err: err}
	}
	return f, nil
}

func requiredInt(el *etree.Element, name string) (int, error) {
	a := el.SelectAttr(name)
	if a == nil {
		return 0, parseErrorf("score", "%s missing %s attribute", el.Tag, name)
	}
	n, err := strconv.Atoi(a.Value)
	if err != nil {
		return 0, &ParseError{Field: "score", Msg: fmt.Sprintf("bad %s %q", name, a.Value), Err: err}
	}
	return n, nil
}

// coerceBool maps a feed flag attribute to a bool. The feed writes these
// inconsistently: an empty string, "0", or "false" in any case is false,
// anything else is true.
func coerceBool(v string) bool {
	v = strings.TrimSpace(v)
	return v != "" && v != "0" && !strings.EqualFold(v, "false")
}
