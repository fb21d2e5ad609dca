package constants

// BashTool is the only tool whose completions can carry a gh pr create call.
const BashTool = "Bash"

// DefaultSubagentExclusions lists utility subagents that never receive the
// persistence reminder.
var DefaultSubagentExclusions = []string{"Bash", "Explore"}
