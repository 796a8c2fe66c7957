package logger

import (
	"strings"
	"testing"

	"github.com/denmor86/ya-pickupdesk/internal/journal"
)

func TestInitialize(t *testing.T) {
	testCases := []struct {
		TestName      string
		Level         string
		ExpectedError bool
	}{
		{TestName: "Success. Info level #1", Level: "info"},
		{TestName: "Success. Debug level #2", Level: "debug"},
		{TestName: "Error. Unknown level #3", Level: "verbose", ExpectedError: true},
	}

	for _, tc := range testCases {
		t.Run(tc.TestName, func(t *testing.T) {
			err := Initialize(tc.Level, nil)
			if tc.ExpectedError && err == nil {
				t.Errorf("Expected error, got none")
			}
			if !tc.ExpectedError && err != nil {
				t.Errorf("Expected no error, got: '%v'", err)
			}
		})
	}
}

func TestInitialize_Journal(t *testing.T) {
	j := journal.New(10, nil)
	if err := Initialize("info", j); err != nil {
		t.Fatalf("Expected no error, got: '%v'", err)
	}

	Debug("hidden")
	Infof("order %s loaded", "A-1")
	Warn("gate", "disarmed")

	entries := j.Entries()
	if len(entries) != 2 {
		t.Fatalf("Expected 2 entries, got: %d", len(entries))
	}
	if entries[0].Message != "order A-1 loaded" || entries[0].Level != journal.LevelInfo {
		t.Errorf("Unexpected first entry: %+v", entries[0])
	}
	if !strings.HasPrefix(entries[1].Message, "gate disarmed") || entries[1].Level != journal.LevelWarning {
		t.Errorf("Unexpected second entry: %+v", entries[1])
	}
}
