// Package config holds the table layout and server settings.
package config

import (
	"errors"
	"fmt"

	"emoji-solitaire/internal/component"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// Layout positions the piles on the table. All values are terminal cells.
type Layout struct {
	CardWidth  int
	CardHeight int

	StockX, StockY float64
	StackXOffset   float64 // stock to waste

	FoundationStartX  float64
	FoundationXOffset float64

	TableauStartX   float64
	TableauStartY   float64
	TableauXOffset  float64
	FaceDownYOffset float64
	FaceUpYOffset   float64
}

// DefaultLayout fits an 80x24 terminal.
func DefaultLayout() Layout {
	return Layout{
		CardWidth:         6,
		CardHeight:        4,
		StockX:            1,
		StockY:            1,
		StackXOffset:      8,
		FoundationStartX:  25,
		FoundationXOffset: 8,
		TableauStartX:     1,
		TableauStartY:     6,
		TableauXOffset:    8,
		FaceDownYOffset:   1,
		FaceUpYOffset:     2,
	}
}

// StackOrigin returns where the bottom card of a pile sits.
func (l Layout) StackOrigin(s component.StackType) component.Position {
	switch s.Kind {
	case component.KindStock:
		return component.Position{X: l.StockX, Y: l.StockY}
	case component.KindWaste:
		return component.Position{X: l.StockX + l.StackXOffset, Y: l.StockY}
	case component.KindFoundation:
		return component.Position{X: l.FoundationStartX + float64(s.Index)*l.FoundationXOffset, Y: l.StockY}
	case component.KindTableau:
		return component.Position{X: l.TableauStartX + float64(s.Index)*l.TableauXOffset, Y: l.TableauStartY}
	}
	// Hand has no fixed place; cards in hand follow the pointer.
	return component.Position{X: l.StockX, Y: l.StockY}
}

// Validate rejects layouts that cannot be drawn.
func (l Layout) Validate() error {
	var errs []error
	if l.CardWidth < 3 {
		errs = append(errs, fmt.Errorf("card_width must be at least 3, got %d", l.CardWidth))
	}
	if l.CardHeight < 1 {
		errs = append(errs, fmt.Errorf("card_height must be positive, got %d", l.CardHeight))
	}
	if l.FaceDownYOffset < 0 || l.FaceUpYOffset < 0 {
		errs = append(errs, errors.New("tableau offsets must not be negative"))
	}
	return errors.Join(errs...)
}

// layoutFile is the HCL shape of a layout file. Every attribute is optional;
// omitted ones keep their defaults.
type layoutFile struct {
	Card    *cardBlock    `hcl:"card,block"`
	Stock   *pointBlock   `hcl:"stock,block"`
	Tableau *tableauBlock `hcl:"tableau,block"`

	StackXOffset      *float64 `hcl:"stack_x_offset,optional"`
	FoundationStartX  *float64 `hcl:"foundation_start_x,optional"`
	FoundationXOffset *float64 `hcl:"foundation_x_offset,optional"`
}

type cardBlock struct {
	Width  *int `hcl:"width,optional"`
	Height *int `hcl:"height,optional"`
}

type pointBlock struct {
	X *float64 `hcl:"x,optional"`
	Y *float64 `hcl:"y,optional"`
}

type tableauBlock struct {
	X               *float64 `hcl:"x,optional"`
	Y               *float64 `hcl:"y,optional"`
	XOffset         *float64 `hcl:"x_offset,optional"`
	FaceDownYOffset *float64 `hcl:"face_down_y_offset,optional"`
	FaceUpYOffset   *float64 `hcl:"face_up_y_offset,optional"`
}

// LoadLayout reads a layout file. An empty path yields DefaultLayout.
func LoadLayout(path string) (Layout, error) {
	if path == "" {
		return DefaultLayout(), nil
	}
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return Layout{}, fmt.Errorf("failed to parse layout file %s: %w", path, diags)
	}
	return decodeLayout(file, path)
}

// ParseLayout decodes layout HCL held in memory. filename is used in
// diagnostics only.
func ParseLayout(src []byte, filename string) (Layout, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return Layout{}, fmt.Errorf("failed to parse layout %s: %w", filename, diags)
	}
	return decodeLayout(file, filename)
}

func decodeLayout(file *hcl.File, name string) (Layout, error) {
	var raw layoutFile
	if diags := gohcl.DecodeBody(file.Body, nil, &raw); diags.HasErrors() {
		return Layout{}, fmt.Errorf("failed to decode layout %s: %w", name, diags)
	}

	l := DefaultLayout()
	if c := raw.Card; c != nil {
		setInt(&l.CardWidth, c.Width)
		setInt(&l.CardHeight, c.Height)
	}
	if s := raw.Stock; s != nil {
		setFloat(&l.StockX, s.X)
		setFloat(&l.StockY, s.Y)
	}
	if t := raw.Tableau; t != nil {
		setFloat(&l.TableauStartX, t.X)
		setFloat(&l.TableauStartY, t.Y)
		setFloat(&l.TableauXOffset, t.XOffset)
		setFloat(&l.FaceDownYOffset, t.FaceDownYOffset)
		setFloat(&l.FaceUpYOffset, t.FaceUpYOffset)
	}
	setFloat(&l.StackXOffset, raw.StackXOffset)
	setFloat(&l.FoundationStartX, raw.FoundationStartX)
	setFloat(&l.FoundationXOffset, raw.FoundationXOffset)

	if err := l.Validate(); err != nil {
		return Layout{}, fmt.Errorf("invalid layout %s: %w", name, err)
	}
	return l, nil
}

func setInt(dst *int, v *int) {
	if v != nil {
		*dst = *v
	}
}

func setFloat(dst *float64, v *float64) {
	if v != nil {
		*dst = *v
	}
}
