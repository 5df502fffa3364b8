package common

import (
  "testing"
)

func TestGetEnvString(t *testing.T) {
  t.Setenv("PINATA_GATEWAY", "gateway.test")
  if got := GetEnvString("PINATA_GATEWAY"); got != "gateway.test" {
    t.Fatalf("unexpected value: %q", got)
  }
}

func TestGetEnvInt(t *testing.T) {
  t.Setenv("MINTER_API_PORT", "3001")
  if got := GetEnvInt("MINTER_API_PORT"); got != 3001 {
    t.Fatalf("unexpected value: %d", got)
  }
  if got := GetEnvInt("MINTER_API_PORT_UNSET"); got != 0 {
    t.Fatalf("expected 0 for unset variable, got %d", got)
  }
}
