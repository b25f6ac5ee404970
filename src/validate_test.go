package src

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateGoSyntaxAccepts(t *testing.T) {
	src := "package main\n\nimport \"fmt\"\n\nfunc main() {\n\tfmt.Println(\"ok\")\n}\n"
	ok, diag := ValidateGoSyntax(src)
	assert.True(t, ok)
	assert.Equal(t, "valid syntax", diag)
}

func TestValidateGoSyntaxRejectsBrokenCode(t *testing.T) {
	ok, diag := ValidateGoSyntax("package main\n\nfunc main() {\n")
	assert.False(t, ok)
	assert.Contains(t, diag, "line")
}

func TestValidateGoSyntaxRejectsProse(t *testing.T) {
	ok, _ := ValidateGoSyntax("Here is the code you asked for:")
	assert.False(t, ok)
}

func TestValidateGoSyntaxEmptyInput(t *testing.T) {
	ok, _ := ValidateGoSyntax("")
	assert.False(t, ok)
}
