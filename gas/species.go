package gas

// Species identifies one gas component by its conventional chemical
// token, e.g. "CH4" or "iC4H10". Tokens are case-sensitive.
type Species string

// The fixed component vocabulary. IC4H10 through NC5H12 are isomer
// spellings folded by Canonical; C6Plus and HexanesPlus are overflow
// spellings of C6H14; C7Plus stands for every heavier hydrocarbon.
const (
	CH4         Species = "CH4"
	C2H6        Species = "C2H6"
	C3H8        Species = "C3H8"
	IC4H10      Species = "iC4H10"
	NC4H10      Species = "nC4H10"
	C4H10       Species = "C4H10"
	IC5H12      Species = "iC5H12"
	NC5H12      Species = "nC5H12"
	C5H12       Species = "C5H12"
	C6H14       Species = "C6H14"
	C6Plus      Species = "C6+"
	HexanesPlus Species = "hexanes+"
	C7Plus      Species = "C7plus"
	N2          Species = "N2"
	CO2         Species = "CO2"
	H2S         Species = "H2S"
	H2O         Species = "H2O"
	H2          Species = "H2"
	CO          Species = "CO"
	C2H4        Species = "C2H4"
	C3H6        Species = "C3H6"
	C4H6        Species = "C4H6"
	C4H8        Species = "C4H8"
	O2          Species = "O2"
)

// Group classifies a canonical species for the three-component
// methane-number reduction of EN 16726:2015 Annex A.
type Group int

const (
	// GroupUnknown marks tokens outside the vocabulary.
	GroupUnknown Group = iota

	// GroupA holds methane and ethane.
	GroupA

	// GroupB holds propane and the butane-like components.
	GroupB

	// GroupC holds heavier hydrocarbons, inerts and the remaining
	// combustibles (H2S, H2, CO, olefins).
	GroupC

	// GroupIgnored holds recognized species excluded from every
	// combustion sum (oxygen).
	GroupIgnored
)

// String implements fmt.Stringer for diagnostics and test output.
func (g Group) String() string {
	switch g {
	case GroupA:
		return "A"
	case GroupB:
		return "B"
	case GroupC:
		return "C"
	case GroupIgnored:
		return "ignored"
	default:
		return "unknown"
	}
}

// aliases folds isomer and overflow spellings onto canonical keys.
var aliases = map[Species]Species{
	IC4H10:      C4H10,
	NC4H10:      C4H10,
	IC5H12:      C5H12,
	NC5H12:      C5H12,
	C6Plus:      C6H14,
	HexanesPlus: C6H14,
	"C7+":       C7Plus,
}

// groups classifies every canonical species.
var groups = map[Species]Group{
	CH4:  GroupA,
	C2H6: GroupA,

	C3H8:  GroupB,
	C4H10: GroupB,
	C4H6:  GroupB,
	C4H8:  GroupB,

	C5H12:  GroupC,
	C6H14:  GroupC,
	C7Plus: GroupC,
	N2:     GroupC,
	CO2:    GroupC,
	H2S:    GroupC,
	H2O:    GroupC,
	H2:     GroupC,
	CO:     GroupC,
	C2H4:   GroupC,
	C3H6:   GroupC,

	O2: GroupIgnored,
}

// carbons counts carbon atoms per molecule. C7plus is approximated at
// seven; CO and CO2 count their single carbon atom.
var carbons = map[Species]int{
	CH4:    1,
	C2H6:   2,
	C3H8:   3,
	C4H10:  4,
	C4H6:   4,
	C4H8:   4,
	C5H12:  5,
	C6H14:  6,
	C7Plus: 7,
	N2:     0,
	CO2:    1,
	H2S:    0,
	H2O:    0,
	H2:     0,
	CO:     1,
	C2H4:   2,
	C3H6:   3,
	O2:     0,
}

// Canonical resolves isomer and overflow spellings to their canonical
// key. Unaliased tokens, recognized or not, are returned unchanged.
func Canonical(s Species) Species {
	if c, ok := aliases[s]; ok {
		return c
	}
	return s
}

// Recognized reports whether s, after Canonical folding, belongs to
// the vocabulary. Oxygen is recognized even though combustion sums
// ignore it.
func Recognized(s Species) bool {
	_, ok := groups[Canonical(s)]
	return ok
}

// GroupOf returns the reduction group of s, folding aliases first.
// Tokens outside the vocabulary map to GroupUnknown.
func GroupOf(s Species) Group {
	return groups[Canonical(s)]
}

// CarbonAtoms returns the carbon count of s, folding aliases first.
// Unknown tokens count zero.
func CarbonAtoms(s Species) int {
	return carbons[Canonical(s)]
}
