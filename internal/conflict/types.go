package conflict

import "fmt"

const (
	StartMarker     = "<<<<<<<"
	SeparatorMarker = "======="
	EndMarker       = ">>>>>>>"
)

// State is the zone the scanner is currently in.
type State int

const (
	Normal State = iota
	FirstSide
	SecondSide
)

func (s State) String() string {
	switch s {
	case Normal:
		return "normal"
	case FirstSide:
		return "first-side"
	case SecondSide:
		return "second-side"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

type ResolutionChoice int

const (
	ChooseOurs ResolutionChoice = iota
	ChooseTheirs
	ChooseBoth
)

func (c ResolutionChoice) String() string {
	switch c {
	case ChooseOurs:
		return "ours"
	case ChooseTheirs:
		return "theirs"
	case ChooseBoth:
		return "both"
	}
	return fmt.Sprintf("ResolutionChoice(%d)", int(c))
}

// ParseChoice maps a flag value onto a ResolutionChoice.
func ParseChoice(s string) (ResolutionChoice, error) {
	switch s {
	case "ours", "":
		return ChooseOurs, nil
	case "theirs":
		return ChooseTheirs, nil
	case "both":
		return ChooseBoth, nil
	}
	return ChooseOurs, fmt.Errorf("unknown side %q (want ours, theirs or both)", s)
}

type ConflictFile struct {
	Path      string
	Conflicts []ConflictSection
}

// ConflictSection is one closed conflict region. Line numbers are 1-based and
// point at the start and end marker lines.
type ConflictSection struct {
	StartLine    int
	EndLine      int
	OurChanges   string
	TheirChanges string
}
