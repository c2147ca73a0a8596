package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotEqual(t *testing.T) {
	rule := NotEqual(50)
	assert.Equal(t, "This value can not be 50", rule(50))
	assert.Empty(t, rule(49))
	assert.Empty(t, rule(51))

	// Works against any comparable type.
	stringRule := NotEqual("admin")
	assert.Equal(t, "This value can not be admin", stringRule("admin"))
	assert.Empty(t, stringRule("user"))
}

func TestMinMaxValue(t *testing.T) {
	min := MinValue(0)
	assert.Equal(t, "Ensure this value is greater than or equal to 0.", min(-1))
	assert.Empty(t, min(0))

	max := MaxValue(100)
	assert.Equal(t, "Ensure this value is less than or equal to 100.", max(101))
	assert.Empty(t, max(100))
}

func TestCheckIntCollectsAllFailures(t *testing.T) {
	rules := []IntRule{MinValue(0), MaxValue(100), NotEqual(50)}

	assert.Empty(t, CheckInt(40, rules...))
	assert.Len(t, CheckInt(50, rules...), 1)
	assert.Len(t, CheckInt(-5, rules...), 1)
	assert.Len(t, CheckInt(200, rules...), 1)
}

func TestOneOf(t *testing.T) {
	rule := OneOf("true", "false")
	assert.Empty(t, rule("true"))
	assert.Empty(t, rule("false"))
	assert.Equal(t, "Select a valid choice. True is not one of the available choices.", rule("True"))
}

func TestMinLength(t *testing.T) {
	rule := MinLength(2)
	assert.Empty(t, rule("ab"))
	assert.Equal(t, "Ensure this value has at least 2 characters.", rule("a"))
}
