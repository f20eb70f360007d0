package branch

// Branch is a local git branch.
type Branch struct {
	Name       string
	CheckedOut bool
}

// IndexedBranch is a Branch tagged with its position in the unfiltered
// collection.
type IndexedBranch struct {
	Branch
	Index int
}

// CheckedOutMarker prefixes the checked out branch in git branch output.
const CheckedOutMarker = "* "

// DisplayName returns the label shown in lists.
func (b Branch) DisplayName() string {
	if b.CheckedOut {
		return CheckedOutMarker + b.Name
	}
	return b.Name
}

// Command is a branch action that can be applied to the selected branch.
type Command int

const (
	CommandNone Command = iota
	CommandSwitch
	CommandCheckout
	CommandMerge
	CommandFastForward
)

func (c Command) String() string {
	switch c {
	case CommandSwitch:
		return "switch"
	case CommandCheckout:
		return "checkout"
	case CommandMerge:
		return "merge"
	case CommandFastForward:
		return "fast-forward"
	default:
		return "none"
	}
}

// Changes reports whether a successful run moves the checked out branch.
func (c Command) Changes() bool {
	return c == CommandSwitch || c == CommandCheckout
}
