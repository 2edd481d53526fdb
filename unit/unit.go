// Package unit loads pre-analyzed compilation units. A unit file is the
// boundary to the external parser/resolver: it carries the raw source (for
// rendering), the position-tagged syntax tree, and the per-binding move/use
// event streams, all with spans into the source.
package unit

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/dhamidi/ironlint/borrow"
	"github.com/dhamidi/ironlint/syntax"
)

// BorrowInput is one root binding with its ordered event stream.
type BorrowInput struct {
	Binding borrow.Binding
	Events  []borrow.Event
}

// Unit is everything the analyzers need for one source file.
type Unit struct {
	File   *syntax.File
	Borrow []BorrowInput
}

// Load reads and decodes a unit file.
func Load(path string) (*Unit, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read unit: %w", err)
	}
	u, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("decode unit %s: %w", path, err)
	}
	return u, nil
}

// Decode parses the YAML representation of a unit.
func Decode(data []byte) (*Unit, error) {
	var raw unitNode
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	if raw.File == "" {
		return nil, fmt.Errorf("missing file name")
	}

	file := &syntax.File{Name: raw.File, Source: raw.Source}
	offsets := lineOffsets(raw.Source)

	if raw.Syntax != nil {
		root, err := decodeExpr(raw.Syntax, file.Name, offsets)
		if err != nil {
			return nil, err
		}
		file.Root = root
	}

	u := &Unit{File: file}
	for i, b := range raw.Borrow {
		input, err := decodeBorrow(&b, file.Name, offsets)
		if err != nil {
			return nil, fmt.Errorf("borrow[%d]: %w", i, err)
		}
		u.Borrow = append(u.Borrow, input)
	}
	return u, nil
}

type unitNode struct {
	File   string       `yaml:"file"`
	Source string       `yaml:"source"`
	Syntax *exprNode    `yaml:"syntax"`
	Borrow []borrowNode `yaml:"borrow"`
}

type borrowNode struct {
	Binding string      `yaml:"binding"`
	Type    *typeNode   `yaml:"type"`
	Events  []eventNode `yaml:"events"`
}

type eventNode struct {
	Move *moveNode `yaml:"move"`
	Use  *useNode  `yaml:"use"`
}

type moveNode struct {
	Path []projNode `yaml:"path"`
	At   string     `yaml:"at"`
}

type useNode struct {
	At string `yaml:"at"`
}

type projNode struct {
	Index *int `yaml:"index"`
	Field *int `yaml:"field"`
	Rest  bool `yaml:"rest"`
}

func decodeBorrow(b *borrowNode, filename string, offsets []int) (BorrowInput, error) {
	if b.Binding == "" {
		return BorrowInput{}, fmt.Errorf("missing binding name")
	}
	typ, err := decodeType(b.Type)
	if err != nil {
		return BorrowInput{}, fmt.Errorf("binding %s: %w", b.Binding, err)
	}
	input := BorrowInput{Binding: borrow.Binding{Name: b.Binding, Type: typ}}
	for i, ev := range b.Events {
		event, err := decodeEvent(&ev, b.Binding, filename, offsets)
		if err != nil {
			return BorrowInput{}, fmt.Errorf("binding %s: events[%d]: %w", b.Binding, i, err)
		}
		input.Events = append(input.Events, event)
	}
	return input, nil
}

func decodeEvent(ev *eventNode, root, filename string, offsets []int) (borrow.Event, error) {
	switch {
	case ev.Move != nil && ev.Use != nil:
		return borrow.Event{}, fmt.Errorf("event is both move and use")
	case ev.Move != nil:
		span, err := parseSpan(ev.Move.At, filename, offsets)
		if err != nil {
			return borrow.Event{}, err
		}
		path := make([]borrow.Projection, 0, len(ev.Move.Path))
		for _, p := range ev.Move.Path {
			proj, err := decodeProj(p)
			if err != nil {
				return borrow.Event{}, err
			}
			path = append(path, proj)
		}
		return borrow.Event{
			Kind:  borrow.EventMove,
			Place: borrow.Place{Root: root, Path: path},
			Span:  span,
		}, nil
	case ev.Use != nil:
		span, err := parseSpan(ev.Use.At, filename, offsets)
		if err != nil {
			return borrow.Event{}, err
		}
		return borrow.Event{
			Kind:  borrow.EventUse,
			Place: borrow.Place{Root: root},
			Span:  span,
		}, nil
	default:
		return borrow.Event{}, fmt.Errorf("event is neither move nor use")
	}
}

func decodeProj(p projNode) (borrow.Projection, error) {
	switch {
	case p.Rest:
		return borrow.Projection{Kind: borrow.ProjRest}, nil
	case p.Index != nil:
		return borrow.Projection{Kind: borrow.ProjIndex, Index: *p.Index}, nil
	case p.Field != nil:
		return borrow.Projection{Kind: borrow.ProjField, Index: *p.Field}, nil
	default:
		return borrow.Projection{}, fmt.Errorf("empty projection step")
	}
}
