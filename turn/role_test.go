package turn

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify_SystemAliases(t *testing.T) {
	for _, role := range []string{"system", "sistema", "System", "SISTEMA"} {
		assert.Equal(t, RoleSystem, Classify(role), "role %q", role)
	}
}

func TestClassify_AssistantAliases(t *testing.T) {
	aliases := []string{"assistant", "asistente", "agent", "agente", "vendedor", "bot", "model", "gpt"}
	for _, role := range aliases {
		assert.Equal(t, RoleAssistant, Classify(role), "role %q", role)
	}
}

func TestClassify_ToolAliases(t *testing.T) {
	for _, role := range []string{"tool", "herramienta", "function", "Herramienta"} {
		assert.Equal(t, RoleTool, Classify(role), "role %q", role)
	}
}

func TestClassify_DefaultsToUser(t *testing.T) {
	for _, role := range []string{"user", "usuario", "cliente", "customer", "", "???"} {
		assert.Equal(t, RoleUser, Classify(role), "role %q", role)
	}
}

func TestClassify_TrimsWhitespace(t *testing.T) {
	assert.Equal(t, RoleAssistant, Classify("  Vendedor "))
}
