package constants

// Hook event names
const (
	// PostToolUseEvent is the hook event name for post-tool-use events
	PostToolUseEvent = "PostToolUse"

	// SubagentStartEvent is the hook event name for subagent start events
	SubagentStartEvent = "SubagentStart"
)

// Component tags prefixed to every diagnostic line on stderr
const (
	PRChecklistComponent = "pr-checklist-sync"
	SubagentComponent    = "subagent-task-persist"
)

// UnknownAgentType is reported when a SubagentStart event carries no agent_type.
const UnknownAgentType = "unknown"

// SkipEnvVar disables both hooks when set to "1".
const SkipEnvVar = "TASKSAVE_SKIP"
