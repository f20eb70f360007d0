package menu

import "github.com/atomicstack/git-branch-control/internal/branch"

// Item represents a selectable menu entry.
type Item struct {
	ID    string
	Label string
}

// Command is a top-level command picked from the commands screen.
type Command int

const (
	CommandNone Command = iota
	CommandBranch
	CommandFetchAll
)

func (c Command) String() string {
	switch c {
	case CommandBranch:
		return "branch"
	case CommandFetchAll:
		return "fetch-all"
	default:
		return "none"
	}
}

type definition struct {
	id      string
	label   string
	command Command
	branch  branch.Command
}

// definitions lists every menu node in display order.
var definitions = []definition{
	{id: "branch", label: "Branch", command: CommandBranch},
	{id: "branch:switch", label: "Switch", command: CommandBranch, branch: branch.CommandSwitch},
	{id: "branch:checkout", label: "Checkout", command: CommandBranch, branch: branch.CommandCheckout},
	{id: "branch:merge", label: "Merge", command: CommandBranch, branch: branch.CommandMerge},
	{id: "branch:fast-forward", label: "Fast-forward", command: CommandBranch, branch: branch.CommandFastForward},
	{id: "fetch-all", label: "Fetch All", command: CommandFetchAll},
}
