package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestRunExitCodes(t *testing.T) {
	dir := t.TempDir()
	cfg := writeFile(t, dir, "loxrc.yaml", "color: false\nlog_level: error\n")
	badCfg := writeFile(t, dir, "bad.yaml", "unknown: 1\n")

	tests := []struct {
		name string
		args []string
		code int
	}{
		{"ok", []string{"-config", cfg, writeFile(t, dir, "ok.lox", "var a = 1;")}, exitOK},
		{"tokens", []string{"-config", cfg, "-tokens", writeFile(t, dir, "tokens.lox", "var a;")}, exitOK},
		{"ast", []string{"-config", cfg, "-ast", writeFile(t, dir, "ast.lox", "var a = 1 + 2;")}, exitOK},
		{"lex error", []string{"-config", cfg, writeFile(t, dir, "lex.lox", "var a = @;")}, exitDataErr},
		{"parse error", []string{"-config", cfg, writeFile(t, dir, "parse.lox", "var = 1;")}, exitDataErr},
		{"runtime error", []string{"-config", cfg, writeFile(t, dir, "runtime.lox", "1 / 0;")}, exitSoftware},
		{"missing script", []string{"-config", cfg, filepath.Join(dir, "missing.lox")}, exitNoInput},
		{"bad config", []string{"-config", badCfg, writeFile(t, dir, "cfg.lox", "")}, exitConfig},
		{"bad flag", []string{"-nope"}, exitUsage},
		{"too many scripts", []string{"a.lox", "b.lox"}, exitUsage},
		{"dump without script", []string{"-ast"}, exitUsage},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, run(tt.args))
		})
	}
}
