package main

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/tdewolff/argp"
	"github.com/tdewolff/test"
)

func TestPlotRunUsage(t *testing.T) {
	var tests = []Plot{
		{Cols: 4, Rows: 24, Scale: 8},
		{Cols: 72, Rows: 2, Scale: 8},
		{Cols: 72, Rows: 24, Scale: 0},
	}
	for _, cmd := range tests {
		test.T(t, cmd.Run(), argp.ShowUsage)
	}
}

func TestPlotRunLogFile(t *testing.T) {
	cmd := Plot{Cols: 72, Rows: 24, Scale: 8, Log: filepath.Join(t.TempDir(), "missing", "cartesian.log")}
	err := cmd.Run()
	test.That(t, err != nil)
	test.That(t, strings.HasPrefix(err.Error(), "log file: "), err)
}
