package component

import "fmt"

// StackKind names a family of card piles.
type StackKind uint8

const (
	KindTableau StackKind = iota
	KindFoundation
	KindStock
	KindWaste
	KindHand
)

// StackType identifies one pile. Index distinguishes the seven tableau piles
// and the four foundations; it is zero for the others.
type StackType struct {
	Kind  StackKind
	Index int
}

func Tableau(i int) StackType    { return StackType{Kind: KindTableau, Index: i} }
func Foundation(i int) StackType { return StackType{Kind: KindFoundation, Index: i} }

var (
	Stock = StackType{Kind: KindStock}
	Waste = StackType{Kind: KindWaste}
	Hand  = StackType{Kind: KindHand}
)

const (
	TableauCount    = 7
	FoundationCount = 4
)

// AllStacks lists every pile the table lays out, left to right, top row
// first.
func AllStacks() []StackType {
	out := []StackType{Stock, Waste}
	for i := range FoundationCount {
		out = append(out, Foundation(i))
	}
	for i := range TableauCount {
		out = append(out, Tableau(i))
	}
	return out
}

func (s StackType) String() string {
	switch s.Kind {
	case KindTableau:
		return fmt.Sprintf("Tableau(%d)", s.Index)
	case KindFoundation:
		return fmt.Sprintf("Foundation(%d)", s.Index)
	case KindStock:
		return "Stock"
	case KindWaste:
		return "Waste"
	case KindHand:
		return "Hand"
	}
	return fmt.Sprintf("Stack(%d,%d)", s.Kind, s.Index)
}

// StackInfo places a card in a pile. Order 0 is the bottom card.
type StackInfo struct {
	Stack StackType
	Order int
}
