package common

import (
	"testing"
)

func TestParseSchedulerTime(t *testing.T) {
	epoch, err := ParseSchedulerTime("2020-01-01T00:00:00")
	if err != nil || epoch != 1577836800 {
		t.Fatalf("Bad epoch %d %v", epoch, err)
	}
	if FormatSchedulerTime(epoch) != "2020-01-01T00:00:00" {
		t.Fatalf("Bad round trip %s", FormatSchedulerTime(epoch))
	}
	if _, err := ParseSchedulerTime("Unknown"); err == nil {
		t.Fatalf("Expected error")
	}
	// Zone-suffixed stamps are not this format.
	if _, err := ParseSchedulerTime("2020-01-01T00:00:00+02:00"); err == nil {
		t.Fatalf("Expected error")
	}
}
