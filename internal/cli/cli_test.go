package cli

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/rpnkit/rpnctl/internal/logging"
	"github.com/rpnkit/rpnctl/internal/postfix"
)

// runCLI executes the command tree with the given args and stdin, returning
// captured stdout and the execution error.
func runCLI(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	opts := &Options{
		ConfigPath: defaultConfigPath,
		Capacity:   postfix.DefaultCapacity,
		LogLevel:   logging.LevelInfo,
	}
	logger := logging.NewLogger(io.Discard, logging.LevelError)

	cmd := newRootCommand(opts, logger)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

func TestConvertCommand(t *testing.T) {
	out, err := runCLI(t, "", "convert", "a+b*c")
	if err != nil {
		t.Fatalf("convert: %v", err)
	}
	if out != "abc*+\n" {
		t.Errorf("output = %q, want %q", out, "abc*+\n")
	}
}

func TestConvertCommandEcho(t *testing.T) {
	out, err := runCLI(t, "", "convert", "--echo", "a+b")
	if err != nil {
		t.Fatalf("convert --echo: %v", err)
	}
	want := "INPUT:  a+b\nOUTPUT: ab+\n"
	if out != want {
		t.Errorf("output = %q, want %q", out, want)
	}
}

func TestConvertCommandInvalidCharacter(t *testing.T) {
	out, err := runCLI(t, "", "convert", "a$b")
	var inv *postfix.InvalidCharError
	if !errors.As(err, &inv) {
		t.Fatalf("error = %T (%v), want *postfix.InvalidCharError", err, err)
	}
	// The operand read before the abort must already be on stdout.
	if out != "a\n" {
		t.Errorf("output = %q, want %q", out, "a\n")
	}
}

func TestConvertCommandCapacityFlag(t *testing.T) {
	_, err := runCLI(t, "", "--capacity", "2", "convert", "(((a)))")
	var ovf *postfix.OverflowError
	if !errors.As(err, &ovf) {
		t.Fatalf("error = %T (%v), want *postfix.OverflowError", err, err)
	}
	if ovf.Capacity != 2 {
		t.Errorf("OverflowError.Capacity = %d, want 2", ovf.Capacity)
	}
}

func TestBatchCommandStdin(t *testing.T) {
	out, err := runCLI(t, "a+b\n\n(a+b)*c\n", "batch")
	if err != nil {
		t.Fatalf("batch: %v", err)
	}
	want := "ab+\nab+c*\n"
	if out != want {
		t.Errorf("output = %q, want %q", out, want)
	}
}

func TestBatchCommandStopsAtFirstError(t *testing.T) {
	out, err := runCLI(t, "a+b\na$\na-b\n", "batch")
	if err == nil {
		t.Fatal("batch should fail on the invalid line")
	}
	if !strings.Contains(err.Error(), "line 2") {
		t.Errorf("error %q should name the failing line", err)
	}
	if out != "ab+\n" {
		t.Errorf("output = %q, want results before the failure only", out)
	}
}

func TestBatchCommandKeepGoing(t *testing.T) {
	out, err := runCLI(t, "a+b\na$\na-b\n", "batch", "--keep-going")
	if err == nil {
		t.Fatal("batch --keep-going should still report the failure count")
	}
	if !strings.Contains(err.Error(), "1 of 3") {
		t.Errorf("error = %q, want failure count 1 of 3", err)
	}
	want := "ab+\nab-\n"
	if out != want {
		t.Errorf("output = %q, want %q", out, want)
	}
}
