package entry

import (
	"testing"

	"jobacct/acct"
)

func slurmRecord() map[string]string {
	return map[string]string{
		"Submit":     "2020-01-01T00:00:00",
		"End":        "2020-01-01T01:00:00",
		"User":       "alice",
		"JobName":    "job1",
		"Account":    "acct1",
		"WCKey":      "wc1",
		"NodeList":   "node01",
		"ReqCPUS":    "4",
		"NCPUS":      "8",
		"ElapsedRaw": "3600",
		"JobIDRaw":   "12345",
	}
}

func TestSlurmParse(t *testing.T) {
	p, err := ParserFor(acct.SlurmPipe, nil)
	if err != nil {
		t.Fatalf("ParserFor failed: %v", err)
	}
	e, err := p.Parse(slurmRecord())
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if e.FailedCode != SlurmFailedUnknown {
		t.Fatalf("Bad failed code %d", e.FailedCode)
	}
	// Midnight Jan 1 2020 UTC.
	if e.SubmissionTime == nil || *e.SubmissionTime != 1577836800 {
		t.Fatalf("Bad submission time %v", e.SubmissionTime)
	}
	if e.EndTime == nil || *e.EndTime != 1577840400 {
		t.Fatalf("Bad end time %v", e.EndTime)
	}
	if e.Owner != "alice" || e.JobName != "job1" || e.Account != "acct1" ||
		e.Project != "wc1" || e.NodeList != "node01" {
		t.Fatalf("Bad entry %+v", e)
	}
	// CPU count comes from the requested-CPU field by default.
	if e.Cpus == nil || *e.Cpus != 4 {
		t.Fatalf("Bad cpus %v", e.Cpus)
	}
	if e.Wallclock == nil || *e.Wallclock != 3600 {
		t.Fatalf("Bad wallclock %v", e.Wallclock)
	}
	if e.JobID != 12345 {
		t.Fatalf("Bad job id %d", e.JobID)
	}
	// Start is absent in this record.
	if e.StartTime != nil {
		t.Fatalf("Expected absent start time, got %v", e.StartTime)
	}
}

func TestSlurmParseCpusFieldOverride(t *testing.T) {
	p, err := ParserFor(acct.SlurmBang, &SlurmOptions{CpusField: "NCPUS"})
	if err != nil {
		t.Fatalf("ParserFor failed: %v", err)
	}
	e, err := p.Parse(slurmRecord())
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if e.Cpus == nil || *e.Cpus != 8 {
		t.Fatalf("Bad cpus %v", e.Cpus)
	}
}

func TestSlurmParseMissingFields(t *testing.T) {
	p, _ := ParserFor(acct.SlurmPipe, nil)
	e, err := p.Parse(map[string]string{"User": "bob"})
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if e.Owner != "bob" || e.SubmissionTime != nil || e.EndTime != nil ||
		e.Cpus != nil || e.Wallclock != nil || e.JobID != 0 {
		t.Fatalf("Bad entry %+v", e)
	}
}
