package src

import (
	"errors"
	"fmt"
	"go/parser"
	"go/scanner"
	"go/token"
)

// ValidateGoSyntax parses src as a single Go source file and reports whether
// it is syntactically well formed. The code is never executed, only parsed.
func ValidateGoSyntax(src string) (bool, string) {
	fset := token.NewFileSet()
	if _, err := parser.ParseFile(fset, "generated.go", src, parser.AllErrors); err != nil {
		var list scanner.ErrorList
		if errors.As(err, &list) && len(list) > 0 {
			first := list[0]
			return false, fmt.Sprintf("syntax error: %s at line %d", first.Msg, first.Pos.Line)
		}
		return false, fmt.Sprintf("parse error: %v", err)
	}
	return true, "valid syntax"
}
