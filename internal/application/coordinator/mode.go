package coordinator

// Kind identifies which mode is active
type Kind int

const (
	KindHidden Kind = iota
	KindAdding
	KindGetting
)

func (k Kind) String() string {
	switch k {
	case KindHidden:
		return "hidden"
	case KindAdding:
		return "adding"
	case KindGetting:
		return "getting"
	default:
		return "unknown"
	}
}

// Mode is the single active interaction context. It is one of Hidden,
// AddingSnippet or *GettingSnippet; only the get mode carries session state.
type Mode interface {
	Kind() Kind
	mode()
}

// Hidden is the idle mode between interactions
type Hidden struct{}

func (Hidden) Kind() Kind { return KindHidden }
func (Hidden) mode()      {}

// AddingSnippet collects new snippet text
type AddingSnippet struct{}

func (AddingSnippet) Kind() Kind { return KindAdding }
func (AddingSnippet) mode()      {}

// GettingSnippet is a search session over the loaded snippets
type GettingSnippet struct {
	Query    string
	Filtered []int // indices into the coordinator's snippet list
	Selected int   // row within Filtered

	focusPending bool
}

func (*GettingSnippet) Kind() Kind { return KindGetting }
func (*GettingSnippet) mode()      {}

// clampSelection keeps Selected inside Filtered after its size went from
// prev to the current length. A grown list starts over at the top.
func (g *GettingSnippet) clampSelection(prev int) {
	n := len(g.Filtered)
	if n > prev {
		g.Selected = 0
	}
	if g.Selected >= n {
		g.Selected = n - 1
	}
	if g.Selected < 0 {
		g.Selected = 0
	}
}
