package cli

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestParse_Commands(t *testing.T) {
	tests := []struct {
		args    []string
		command Command
		first   string
		second  string
	}{
		{[]string{"-as", "2022-12-22", "2022-12-25"}, CommandAsteroids, "2022-12-22", "2022-12-25"},
		{[]string{"--asteroids", "2022-12-22", "2022-12-25"}, CommandAsteroids, "2022-12-22", "2022-12-25"},
		{[]string{"-ap", "2022-12-25", "apod"}, CommandAPOD, "2022-12-25", "apod"},
		{[]string{"--apod", "2022-12-25", "apod"}, CommandAPOD, "2022-12-25", "apod"},
		{[]string{"-m", "images.txt", "2022-12-23"}, CommandMars, "images.txt", "2022-12-23"},
		{[]string{"--mars", "images.txt", "2022-12-23"}, CommandMars, "images.txt", "2022-12-23"},
	}

	for _, test := range tests {
		var out bytes.Buffer
		inv, exit, err := Parse(test.args, &out)
		if err != nil {
			t.Errorf("Parse(%v) returned error %v", test.args, err)
			continue
		}
		if exit {
			t.Errorf("Parse(%v) requested exit", test.args)
			continue
		}
		if inv.Command != test.command {
			t.Errorf("Parse(%v) command = %v, expected %v", test.args, inv.Command, test.command)
		}
		if inv.Args[0] != test.first || inv.Args[1] != test.second {
			t.Errorf("Parse(%v) args = %v", test.args, inv.Args)
		}
	}
}

func TestParse_Help(t *testing.T) {
	for _, args := range [][]string{{"-h"}, {"--help"}, {}} {
		var out bytes.Buffer
		inv, exit, err := Parse(args, &out)
		if err != nil {
			t.Errorf("Parse(%v) returned error %v", args, err)
		}
		if !exit {
			t.Errorf("Parse(%v) should request a clean exit", args)
		}
		if inv != nil {
			t.Errorf("Parse(%v) returned an invocation", args)
		}
		if !strings.Contains(out.String(), "Usage:") {
			t.Errorf("Parse(%v) printed no usage text", args)
		}
	}
}

func TestParse_Errors(t *testing.T) {
	tests := [][]string{
		{"-as", "2022-12-22"},                                     // missing operand
		{"-ap"},                                                   // missing operands
		{"-m", "images.txt"},                                      // missing operand
		{"-x", "a", "b"},                                          // unknown flag
		{"-as", "2022-12-22", "2022-12-25", "-ap", "a", "b"},      // two commands
		{"-log-level"},                                            // option without value
		{"-log-level", "loud", "-as", "2022-12-22", "2022-12-25"}, // bad level
		{"-log-format", "xml", "-ap", "2022-12-25", "apod"},       // bad format
	}

	for _, args := range tests {
		var out bytes.Buffer
		_, _, err := Parse(args, &out)

		var exitErr *ExitError
		if !errors.As(err, &exitErr) {
			t.Errorf("Parse(%v) = %v, expected *ExitError", args, err)
			continue
		}
		if exitErr.Code != 2 {
			t.Errorf("Parse(%v) exit code = %d, expected 2", args, exitErr.Code)
		}
	}
}

func TestParse_LoggingOptions(t *testing.T) {
	var out bytes.Buffer
	inv, _, err := Parse([]string{"-log-level", "DEBUG", "-log-format", "json", "-as", "2022-12-22", "2022-12-25"}, &out)
	if err != nil {
		t.Fatalf("Parse() returned error %v", err)
	}
	if inv.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, expected debug", inv.LogLevel)
	}
	if inv.LogFormat != "json" {
		t.Errorf("LogFormat = %q, expected json", inv.LogFormat)
	}
}

func TestParse_Defaults(t *testing.T) {
	var out bytes.Buffer
	inv, _, err := Parse([]string{"-m", "images.txt", "2022-12-23"}, &out)
	if err != nil {
		t.Fatalf("Parse() returned error %v", err)
	}
	if inv.LogLevel != "info" || inv.LogFormat != "console" {
		t.Errorf("defaults = %q/%q, expected info/console", inv.LogLevel, inv.LogFormat)
	}
}
