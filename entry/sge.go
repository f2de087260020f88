package entry

// SGE/OGE failed codes that invalidate the accounting entry: the job
// never ran or was killed in a way that leaves every timestamp except
// the submission time untrustworthy.  From the sge_status(5) taxonomy.
//
// MT: Constant after initialization; immutable
var sgeInvalidatingFailedCodes = map[int64]bool{
	1: true, 3: true, 4: true, 5: true, 6: true, 7: true, 8: true,
	9: true, 10: true, 11: true, 18: true, 19: true, 20: true, 21: true,
	26: true, 27: true, 28: true, 29: true, 36: true, 38: true,
}

// SGEInvalidatingFailure reports whether an SGE failed code makes the
// entry's timing and resource fields unreliable.
func SGEInvalidatingFailure(code int) bool {
	return sgeInvalidatingFailedCodes[int64(code)]
}

type sgeParser struct{}

func (sgeParser) Parse(record map[string]string) (*Entry, error) {
	// `failed` is structural in the SGE format, its absence means the
	// record cannot be trusted at all.
	failed, err := getRequiredInt(record, "failed")
	if err != nil {
		return nil, err
	}

	e := &Entry{
		FailedCode: int(failed),
		RawFields:  record,
	}
	e.SubmissionTime = getInt(record, "submission_time")
	if SGEInvalidatingFailure(e.FailedCode) {
		// The submission time is the only valid date in the record.
		e.EndTime = e.SubmissionTime
	} else {
		e.StartTime = getInt(record, "start_time")
		e.EndTime = getInt(record, "end_time")
	}
	e.Owner = record["owner"]
	e.JobName = record["job_name"]
	e.Account = record["account"]
	e.Project = record["project"]
	e.NodeList = record["hostname"]
	e.Cpus = getInt(record, "slots")
	e.Wallclock = getInt(record, "ru_wallclock")
	if id := getInt(record, "job_number"); id != nil {
		e.JobID = *id
	}
	return e, nil
}
