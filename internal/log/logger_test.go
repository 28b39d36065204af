// SPDX-License-Identifier: MIT
package log

import (
	"testing"
)

func TestWithComponent(t *testing.T) {
	logger := WithComponent("client")
	// Child logger creation must not panic and must be usable.
	logger.Debug().Msg("component logger ready")
}

func TestDerive(t *testing.T) {
	logger := Derive(nil)
	logger.Debug().Msg("derive with nil builder")
}

func TestBaseIsStable(t *testing.T) {
	a := Base()
	b := Base()
	// Configure runs once; both calls must observe the same configured logger.
	if a.GetLevel() != b.GetLevel() {
		t.Errorf("base logger level changed between calls: %v vs %v", a.GetLevel(), b.GetLevel())
	}
}
