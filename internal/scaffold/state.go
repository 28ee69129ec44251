package scaffold

// State is a step of a scaffold run.
type State int

// States in the order a run visits them.
const (
	StateResolvingTarget State = iota
	StateValidatingTarget
	StateCollectingOptions
	StateMaterializing
	StateInjectingAddon
	StateGitInit
	StateInstalling
	StateReportingNextSteps
	StateTerminal
)

var stateNames = [...]string{
	StateResolvingTarget:    "resolving-target",
	StateValidatingTarget:   "validating-target",
	StateCollectingOptions:  "collecting-options",
	StateMaterializing:      "materializing",
	StateInjectingAddon:     "injecting-addon",
	StateGitInit:            "git-init",
	StateInstalling:         "installing",
	StateReportingNextSteps: "reporting-next-steps",
	StateTerminal:           "terminal",
}

func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return "unknown"
	}
	return stateNames[s]
}
