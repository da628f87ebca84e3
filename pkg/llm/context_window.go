package llm

// defaultContextWindow applies to models not in the table.
const defaultContextWindow = 128000

// contextWindows maps known model ids to their token windows.
var contextWindows = map[string]int{
	"gpt-4o":                    128000,
	"gpt-4o-mini":               128000,
	"gpt-4.1":                   1047576,
	"gpt-4.1-mini":              1047576,
	"gpt-5":                     400000,
	"gpt-5-codex":               400000,
	"o3":                        200000,
	"o4-mini":                   200000,
	"claude-sonnet-4-20250514":  200000,
	"claude-opus-4-20250514":    200000,
	"claude-3-5-haiku-20241022": 200000,
	"big-pickle":                200000,
}

// ContextWindow returns the token window for a model, falling back to the
// default for unknown ids.
func ContextWindow(model string) int {
	if w, ok := contextWindows[model]; ok {
		return w
	}
	return defaultContextWindow
}
