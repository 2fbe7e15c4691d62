package main

import (
	"flag"
	"fmt"
	"go/format"
	"log"
	"os"
	"strings"
)

//go:generate go run . -out ../../internal/expr.go Expr
//go:generate go run . -out ../../internal/stmt.go Stmt

var nodes = map[string][]string{
	"Expr": {
		"Assign: name *Token, value Expr",
		"Binary: left Expr, operator *Token, right Expr",
		"Call: callee Expr, paren *Token, arguments []Expr",
		"Get: object Expr, name *Token",
		"Set: object Expr, name *Token, value Expr",
		"Super: keyword *Token, method *Token",
		"Grouping: expression Expr",
		"Literal: value interface{}",
		"Logical: left Expr, operator *Token, right Expr",
		"This: keyword *Token",
		"Unary: operator *Token, right Expr",
		"Variable: name *Token",
	},
	"Stmt": {
		"Expression: expression Expr",
		"Print: keyword *Token, expression Expr",
		"Var: name *Token, initializer Expr",
		"Block: stmts []Stmt",
		"If: keyword *Token, condition Expr, thenBranch Stmt, elseBranch Stmt",
		"While: keyword *Token, condition Expr, body Stmt",
		"Function: name *Token, params []*Token, body []Stmt",
		"Return: keyword *Token, value Expr",
		"Class: name *Token, superclass *variableExpr, methods []*functionStmt",
	},
}

func main() {
	out := flag.String("out", "", "file to write, stdout when empty")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Usage: ast [-out file] Expr|Stmt")
		os.Exit(64)
	}

	baseName := flag.Arg(0)
	types, ok := nodes[baseName]
	if !ok {
		log.Fatalf("unknown node family %q", baseName)
	}

	src, err := format.Source([]byte(generateAst(baseName, types)))
	if err != nil {
		log.Fatal(err)
	}

	if *out == "" {
		fmt.Print(string(src))
		return
	}
	if err := os.WriteFile(*out, src, 0644); err != nil {
		log.Fatal(err)
	}
}

func generateAst(baseName string, types []string) string {
	visitorName := strings.ToLower(baseName) + "Visitor"

	out := "// Code generated by cmd/ast; DO NOT EDIT.\n\n"
	out += "package internal\n\n"

	// Start base interface
	out += fmt.Sprintf("// %s is implemented only by the node types in this file\n", baseName)
	out += "type " + baseName + " interface {\n"
	out += "\taccept(" + visitorName + ") R\n"
	out += "}\n\n"
	// End base interface

	// Start Visitor interface
	out += fmt.Sprintf("type %s interface {\n", visitorName)
	for _, t := range types {
		typeDef := strings.Split(t, ":")
		name := strings.TrimSpace(typeDef[0])
		structType := strings.ToLower(string(name[0])) + name[1:] + baseName
		out += "\tvisit" + name + baseName + "(" + strings.ToLower(baseName) + " *" + structType + ") R\n"
	}
	out += "}\n\n"
	// End Visitor interface

	// Start  structs
	for _, t := range types {
		typeDef := strings.Split(t, ":")
		structName := strings.TrimSpace(typeDef[0])
		structFields := strings.TrimSpace(typeDef[1])
		out += generateType(baseName, visitorName, structName, structFields)
	}
	// End structs

	return out
}

func generateType(baseName, visitorName, name, fields string) string {
	// Start Structure Definition
	structName := strings.ToLower(string(name[0])) + name[1:] + baseName
	out := "type " + structName + " struct {\n"
	fieldArray := strings.Split(fields, ",")
	for _, field := range fieldArray {
		out += "\t" + strings.TrimSpace(field) + "\n"
	}
	out += "}\n\n"
	// End Structure Definition

	// Start Method Definition
	out += "func (s *" + structName + ") accept(visitor " + visitorName + ") R {\n"
	out += "\treturn visitor.visit" + name + baseName + "(s)\n"
	out += "}\n\n"
	// End Method Definition

	return out
}
