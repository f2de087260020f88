// Line dialects for the accounting file formats we ingest.
//
// Exactly three dialects exist and the set is closed: the colon-
// delimited SGE/OGE accounting format and two delimiter variants of
// sacct output.  The bang variant exists because Slurm field values
// (notably Constraints) can contain `|`, so some sites export with `!`
// instead.

package acct

type DialectName string

const (
	SGE       DialectName = "sge"
	SlurmPipe DialectName = "slurm-pipe"
	SlurmBang DialectName = "slurm-bang"
)

// Dialect carries the tokenization rules for one line format.
type Dialect struct {
	Delimiter byte
	Escape    byte
	Quote     byte

	// Minimal quoting: a quote is special only at the start of a field.
	MinimalQuoting bool

	// Reject malformed rows instead of tolerating them.
	Strict bool
}

// MT: Constant after initialization; immutable
var dialects = map[DialectName]Dialect{
	SGE:       {Delimiter: ':', Escape: '\\', Quote: '"', MinimalQuoting: true, Strict: true},
	SlurmPipe: {Delimiter: '|', Escape: '\\', Quote: '"', MinimalQuoting: true, Strict: true},
	SlurmBang: {Delimiter: '!', Escape: '\\', Quote: '"', MinimalQuoting: true, Strict: true},
}

func LookupDialect(name DialectName) (Dialect, bool) {
	d, found := dialects[name]
	return d, found
}

// The SGE accounting file has no header line; the field schema is fixed
// by the format and listed in the sge_accounting(5) man page.
//
// MT: Constant after initialization; immutable
var SGEAccountingFields = []string{
	"qname", "hostname", "group", "owner", "job_name", "job_number",
	"account", "priority", "submission_time", "start_time", "end_time",
	"failed", "exit_status", "ru_wallclock", "ru_utime", "ru_stime",
	"ru_maxrss", "ru_ixrss", "ru_ismrss", "ru_idrss", "ru_isrss",
	"ru_minflt", "ru_majflt", "ru_nswap", "ru_inblock", "ru_oublock",
	"ru_msgsnd", "ru_msgrcv", "ru_nsignals", "ru_nvcsw", "ru_nivcsw",
	"project", "department", "granted_pe", "slots", "task_number",
	"cpu", "mem", "io", "category", "iow", "pe_taskid", "max_vmem",
	"arid", "ar_submission_time",
}
