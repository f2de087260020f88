package entry

import (
	"testing"

	"jobacct/acct"
)

func sgeRecord(failed string) map[string]string {
	m := make(map[string]string, len(acct.SGEAccountingFields))
	for _, f := range acct.SGEAccountingFields {
		m[f] = "0"
	}
	m["qname"] = "normal.q"
	m["hostname"] = "node01"
	m["owner"] = "alice"
	m["job_name"] = "blast"
	m["job_number"] = "101"
	m["account"] = "acct1"
	m["submission_time"] = "1577836800"
	m["start_time"] = "1577836900"
	m["end_time"] = "1577840400"
	m["failed"] = failed
	m["ru_wallclock"] = "3600"
	m["project"] = "proj1"
	m["slots"] = "4"
	return m
}

func TestSGEParse(t *testing.T) {
	p, err := ParserFor(acct.SGE, nil)
	if err != nil {
		t.Fatalf("ParserFor failed: %v", err)
	}
	e, err := p.Parse(sgeRecord("0"))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if e.FailedCode != 0 || e.Owner != "alice" || e.JobName != "blast" ||
		e.Account != "acct1" || e.Project != "proj1" || e.NodeList != "node01" {
		t.Fatalf("Bad entry %+v", e)
	}
	if e.JobID != 101 {
		t.Fatalf("Bad job id %d", e.JobID)
	}
	if e.Cpus == nil || *e.Cpus != 4 {
		t.Fatalf("Bad cpus %v", e.Cpus)
	}
	if e.Wallclock == nil || *e.Wallclock != 3600 {
		t.Fatalf("Bad wallclock %v", e.Wallclock)
	}
	if e.SubmissionTime == nil || *e.SubmissionTime != 1577836800 {
		t.Fatalf("Bad submission time %v", e.SubmissionTime)
	}
	if e.StartTime == nil || *e.StartTime != 1577836900 {
		t.Fatalf("Bad start time %v", e.StartTime)
	}
	// Not failed: end time comes from the end_time field, exactly.
	if e.EndTime == nil || *e.EndTime != 1577840400 {
		t.Fatalf("Bad end time %v", e.EndTime)
	}
	if e.RawFields["qname"] != "normal.q" {
		t.Fatalf("Raw fields not retained")
	}
}

func TestSGEParseInvalidatingFailure(t *testing.T) {
	p, _ := ParserFor(acct.SGE, nil)
	for _, code := range []string{"1", "5", "26", "38"} {
		e, err := p.Parse(sgeRecord(code))
		if err != nil {
			t.Fatalf("Parse failed: %v", err)
		}
		// The submission time is the only valid date in the record.
		if e.EndTime == nil || e.SubmissionTime == nil || *e.EndTime != *e.SubmissionTime {
			t.Fatalf("Code %s: end %v != submission %v", code, e.EndTime, e.SubmissionTime)
		}
		if e.StartTime != nil {
			t.Fatalf("Code %s: start time should be absent", code)
		}
	}
	// Codes outside the invalidating set keep the raw end time.
	for _, code := range []string{"2", "25", "37", "100"} {
		e, err := p.Parse(sgeRecord(code))
		if err != nil {
			t.Fatalf("Parse failed: %v", err)
		}
		if e.EndTime == nil || *e.EndTime != 1577840400 {
			t.Fatalf("Code %s: bad end time %v", code, e.EndTime)
		}
	}
}

func TestSGEParseMissingFailed(t *testing.T) {
	p, _ := ParserFor(acct.SGE, nil)
	m := sgeRecord("0")
	delete(m, "failed")
	if _, err := p.Parse(m); err == nil {
		t.Fatalf("Expected error for missing failed field")
	}
	m = sgeRecord("bogus")
	if _, err := p.Parse(m); err == nil {
		t.Fatalf("Expected error for unparseable failed field")
	}
}

func TestSGEParseOptionalFields(t *testing.T) {
	p, _ := ParserFor(acct.SGE, nil)
	m := sgeRecord("0")
	delete(m, "slots")
	m["ru_wallclock"] = "not-a-number"
	e, err := p.Parse(m)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	// Missing and unparseable optional fields are absent, not errors.
	if e.Cpus != nil || e.Wallclock != nil {
		t.Fatalf("Expected absent cpus/wallclock, got %v %v", e.Cpus, e.Wallclock)
	}
}
