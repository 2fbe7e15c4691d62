package internal

import (
	"fmt"
	"strings"
)

// R is the result of visiting a node
type R interface{}

// PrintTree renders every statement as a parenthesized tree, one per line
func PrintTree(stmts []Stmt) string {
	var out strings.Builder
	for _, stmt := range stmts {
		out.WriteString(stmt.accept(stringVisitor{}).(string))
		out.WriteString("\n")
	}
	return out.String()
}

type stringVisitor struct{}

func (v stringVisitor) parenthesize(name string, parts ...interface{}) string {
	out := "(" + name
	for _, part := range parts {
		switch part := part.(type) {
		case Expr:
			out += " " + part.accept(v).(string)
		case Stmt:
			out += " " + part.accept(v).(string)
		default:
			out += fmt.Sprintf(" %v", part)
		}
	}
	return out + ")"
}

func (v stringVisitor) visitExpressionStmt(stmt *expressionStmt) R {
	return stmt.expression.accept(v)
}

func (v stringVisitor) visitPrintStmt(stmt *printStmt) R {
	return v.parenthesize("print", stmt.expression)
}

func (v stringVisitor) visitVarStmt(stmt *varStmt) R {
	if stmt.initializer == nil {
		return v.parenthesize("var", stmt.name.Lexeme)
	}
	return v.parenthesize("var", stmt.name.Lexeme, stmt.initializer)
}

func (v stringVisitor) visitBlockStmt(stmt *blockStmt) R {
	parts := make([]interface{}, len(stmt.stmts))
	for i, s := range stmt.stmts {
		parts[i] = s
	}
	return v.parenthesize("scope", parts...)
}

func (v stringVisitor) visitIfStmt(stmt *ifStmt) R {
	if stmt.elseBranch == nil {
		return v.parenthesize("if", stmt.condition, stmt.thenBranch)
	}
	return v.parenthesize("if", stmt.condition, stmt.thenBranch, stmt.elseBranch)
}

func (v stringVisitor) visitWhileStmt(stmt *whileStmt) R {
	return v.parenthesize("while", stmt.condition, stmt.body)
}

func (v stringVisitor) visitFunctionStmt(stmt *functionStmt) R {
	params := make([]string, len(stmt.params))
	for i, param := range stmt.params {
		params[i] = param.Lexeme
	}
	parts := []interface{}{stmt.name.Lexeme, "(" + strings.Join(params, " ") + ")"}
	for _, s := range stmt.body {
		parts = append(parts, s)
	}
	return v.parenthesize("fun", parts...)
}

func (v stringVisitor) visitReturnStmt(stmt *returnStmt) R {
	if stmt.value == nil {
		return "(return)"
	}
	return v.parenthesize("return", stmt.value)
}

func (v stringVisitor) visitClassStmt(stmt *classStmt) R {
	parts := []interface{}{stmt.name.Lexeme}
	if stmt.superclass != nil {
		parts = append(parts, "<", stmt.superclass.name.Lexeme)
	}
	for _, method := range stmt.methods {
		parts = append(parts, method)
	}
	return v.parenthesize("class", parts...)
}

func (v stringVisitor) visitAssignExpr(expr *assignExpr) R {
	return v.parenthesize("=", expr.name.Lexeme, expr.value)
}

func (v stringVisitor) visitBinaryExpr(expr *binaryExpr) R {
	return v.parenthesize(expr.operator.Lexeme, expr.left, expr.right)
}

func (v stringVisitor) visitCallExpr(expr *callExpr) R {
	parts := []interface{}{expr.callee}
	for _, argument := range expr.arguments {
		parts = append(parts, argument)
	}
	return v.parenthesize("call", parts...)
}

func (v stringVisitor) visitGetExpr(expr *getExpr) R {
	return v.parenthesize(".", expr.object, expr.name.Lexeme)
}

func (v stringVisitor) visitSetExpr(expr *setExpr) R {
	return v.parenthesize("=.", expr.object, expr.name.Lexeme, expr.value)
}

func (v stringVisitor) visitSuperExpr(expr *superExpr) R {
	return v.parenthesize("super", expr.method.Lexeme)
}

func (v stringVisitor) visitGroupingExpr(expr *groupingExpr) R {
	return v.parenthesize("group", expr.expression)
}

func (v stringVisitor) visitLiteralExpr(expr *literalExpr) R {
	if str, isString := expr.value.(loxString); isString {
		return str.Repr()
	}
	return printObj(expr.value)
}

func (v stringVisitor) visitLogicalExpr(expr *logicalExpr) R {
	return v.parenthesize(expr.operator.Lexeme, expr.left, expr.right)
}

func (v stringVisitor) visitThisExpr(expr *thisExpr) R {
	return "this"
}

func (v stringVisitor) visitUnaryExpr(expr *unaryExpr) R {
	return v.parenthesize(expr.operator.Lexeme, expr.right)
}

func (v stringVisitor) visitVariableExpr(expr *variableExpr) R {
	return expr.name.Lexeme
}
