package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func runWith(t *testing.T, args ...string) (int, string) {
	t.Helper()
	t.Setenv("STORE_DRIVER", "memory")
	var stdout, stderr bytes.Buffer
	code := run(args, &stdout, &stderr)
	return code, stderr.String()
}

func TestRun_FormatoInvalido(t *testing.T) {
	code, _ := runWith(t, "-format", "docx")
	assert.Equal(t, exitBadInput, code)
}

func TestRun_FlagDesconocido(t *testing.T) {
	code, _ := runWith(t, "-nope")
	assert.Equal(t, exitBadInput, code)
}

func TestRun_AlcanceInvalido(t *testing.T) {
	code, _ := runWith(t, "-scope", "MONTHLY", "-month", "2024/05")
	assert.Equal(t, exitBadInput, code)
}

func TestRun_SinMovimientos(t *testing.T) {
	code, stderr := runWith(t, "-scope", "TODAY", "-out", t.TempDir())
	assert.Equal(t, exitEmptyScope, code)
	assert.Contains(t, stderr, "Sin movimientos")
}
