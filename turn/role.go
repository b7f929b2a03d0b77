package turn

import "strings"

// SemanticRole is the normalized classification of a turn's raw role string.
// It is recomputed on demand and never stored, so spelling drift in authored
// data cannot desynchronize from the classification rules.
type SemanticRole string

const (
	RoleSystem    SemanticRole = "system"
	RoleUser      SemanticRole = "user"
	RoleAssistant SemanticRole = "assistant"
	RoleTool      SemanticRole = "tool"
)

// The alias table is the single source of truth for role classification.
// Datasets are authored in both English and Spanish, so both vocabularies
// appear here. Checked in order: system, assistant, tool; anything else
// classifies as user.
var (
	systemAliases = map[string]struct{}{
		"system":  {},
		"sistema": {},
	}
	assistantAliases = map[string]struct{}{
		"assistant": {},
		"asistente": {},
		"agent":     {},
		"agente":    {},
		"vendedor":  {},
		"bot":       {},
		"model":     {},
		"gpt":       {},
	}
	toolAliases = map[string]struct{}{
		"tool":        {},
		"herramienta": {},
		"function":    {},
	}
)

// Classify maps a raw role string to its semantic role. Classification is
// total: unknown strings default to user rather than failing.
func Classify(role string) SemanticRole {
	r := strings.ToLower(strings.TrimSpace(role))
	if _, ok := systemAliases[r]; ok {
		return RoleSystem
	}
	if _, ok := assistantAliases[r]; ok {
		return RoleAssistant
	}
	if _, ok := toolAliases[r]; ok {
		return RoleTool
	}
	return RoleUser
}
