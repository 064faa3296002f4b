package main

import (
	"fmt"

	"github.com/delta-one/undertaker/presence"
)

func parseMode(s string) (presence.Mode, error) {
	switch presence.Mode(s) {
	case presence.ModeBuiltin, presence.ModeModule:
		return presence.Mode(s), nil
	default:
		return "", fmt.Errorf("invalid mode %q, want \"y\" or \"m\"", s)
	}
}
