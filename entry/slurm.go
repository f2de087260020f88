package entry

import (
	"jobacct/common"
)

// No Slurm field maps onto the SGE failure taxonomy yet, so every
// Slurm entry carries this neutral code.  Downstream logic must not
// assume parity with SGE failure semantics until that gap is closed.
const SlurmFailedUnknown = 0

// DefaultSlurmCpusField is the source for the canonical CPU count.
// ReqCPUS rather than NCPUS: for a period the upstream NCPUS values
// were populated incorrectly, and the requested count is the better
// number until that is fixed.
const DefaultSlurmCpusField = "ReqCPUS"

// SlurmOptions overrides per-parser defaults.
type SlurmOptions struct {
	// Source field for the canonical CPU count, eg "NCPUS".  Empty
	// means the `cpus-field` ini default, then DefaultSlurmCpusField.
	CpusField string
}

type slurmParser struct {
	cpusField string
}

func newSlurmParser(opts *SlurmOptions) slurmParser {
	field := ""
	if opts != nil {
		field = opts.CpusField
	}
	common.ApplyDefault(&field, common.SlurmCpusField)
	if field == "" {
		field = DefaultSlurmCpusField
	}
	return slurmParser{cpusField: field}
}

func (p slurmParser) Parse(record map[string]string) (*Entry, error) {
	e := &Entry{
		FailedCode: SlurmFailedUnknown,
		RawFields:  record,
	}
	e.SubmissionTime = getTimestamp(record, "Submit")
	e.StartTime = getTimestamp(record, "Start")
	e.EndTime = getTimestamp(record, "End")
	e.Owner = record["User"]
	e.JobName = record["JobName"]
	e.Account = record["Account"]
	e.Project = record["WCKey"] // for future development
	e.NodeList = record["NodeList"]
	e.Cpus = getInt(record, p.cpusField)
	e.Wallclock = getInt(record, "ElapsedRaw")
	if id := getInt(record, "JobIDRaw"); id != nil {
		e.JobID = *id
	}
	return e, nil
}
