// Convert a Slurm accounting file into an SGE accounting file, so that
// tooling which only understands the 45-column colon format can keep
// working on Slurm-era data.
//
// The mapping is best-effort: fields with no Slurm counterpart are
// filled with fixed placeholders ("NoDept", "NoPE"), and `failed` is
// always 0 since no Slurm-state-to-SGE-failed-code mapping exists yet.
// A row whose timestamps do not parse is skipped with a diagnostic.

package convert

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"jobacct/acct"
	"jobacct/common"
)

// SlurmToSGE reads Slurm accounting data in the given dialect from src
// and writes SGE accounting records to dst.  Returns the number of
// records written.
func SlurmToSGE(src io.Reader, dst io.Writer, name acct.DialectName) (int, error) {
	if name == acct.SGE {
		return 0, fmt.Errorf("%w: source is already sge", acct.ErrUnknownFormat)
	}
	rd, err := acct.NewReader(src, name, "<stream>")
	if err != nil {
		return 0, err
	}
	return run(rd, dst)
}

// File converts srcPath (dialect autodetected, must be one of the
// Slurm dialects) into an SGE accounting file at dstPath.
func File(srcPath, dstPath string) (int, error) {
	rd, err := acct.Open(srcPath)
	if err != nil {
		return 0, err
	}
	defer rd.Close()
	if rd.DialectName() == acct.SGE {
		return 0, fmt.Errorf("%s: already an sge accounting file", srcPath)
	}
	out, err := os.Create(dstPath)
	if err != nil {
		return 0, err
	}
	written, err := run(rd, out)
	if cerr := out.Close(); err == nil {
		err = cerr
	}
	return written, err
}

func run(rd *acct.Reader, dst io.Writer) (int, error) {
	wr, err := acct.NewWriter(dst, acct.SGE)
	if err != nil {
		return 0, err
	}
	written := 0
	for {
		record, err := rd.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return written, err
		}
		row, cerr := sgeRow(record)
		if cerr != nil {
			common.Log.Warningf("%s line %d: skipping row: %v", rd.Path(), rd.LineNo(), cerr)
			continue
		}
		if err := wr.WriteNamedRecord(row, acct.SGEAccountingFields); err != nil {
			return written, err
		}
		written++
	}
	return written, wr.Flush()
}

func sgeRow(slurm map[string]string) (map[string]string, error) {
	row := map[string]string{
		"qname":      slurm["Partition"],
		"hostname":   slurm["NodeList"],
		"group":      slurm["Group"],
		"owner":      slurm["User"],
		"job_name":   slurm["JobName"],
		"job_number": slurm["JobIDRaw"],
		"account":    slurm["Account"],
		"project":    slurm["WCKey"],
		"department": "NoDept",
		"granted_pe": "NoPE",
		"slots":      slurm["NCPUS"],
		"cpu":        slurm["CPUTimeRAW"],
		"category":   slurm["ReqGRES"],
		"max_vmem":   slurm["MaxVMSize"],
		"failed":     "0", // no Slurm-state mapping exists yet
	}

	for dst, src := range map[string]string{
		"submission_time": "Submit",
		"start_time":      "Start",
		"end_time":        "End",
	} {
		epoch, err := common.ParseSchedulerTime(slurm[src])
		if err != nil {
			return nil, fmt.Errorf("Bad %s timestamp %q", src, slurm[src])
		}
		row[dst] = strconv.FormatInt(epoch, 10)
	}

	if status, err := exitStatus(slurm["ExitCode"]); err == nil {
		row["exit_status"] = strconv.Itoa(status)
	}

	if secs, err := parseElapsed(slurm["Elapsed"]); err == nil {
		row["ru_wallclock"] = strconv.FormatInt(secs, 10)
	} else {
		return nil, fmt.Errorf("Elapsed time %q is malformed", slurm["Elapsed"])
	}

	// I/O is the sum of whatever disk counters are present and integral.
	ioSum := int64(0)
	haveIO := false
	for _, field := range []string{"MaxDiskRead", "MaxDiskWrite"} {
		if n, err := strconv.ParseInt(slurm[field], 10, 64); err == nil {
			ioSum += n
			haveIO = true
		}
	}
	if haveIO {
		row["io"] = strconv.FormatInt(ioSum, 10)
	}

	return row, nil
}

// exitStatus maps sacct's "ret:sig" to a shell-style exit status:
// the return value when the signal is 0, else 128+signal.
func exitStatus(s string) (int, error) {
	ret, sig, found := strings.Cut(s, ":")
	if !found {
		return 0, fmt.Errorf("Bad ExitCode %q", s)
	}
	r, err := strconv.Atoi(ret)
	if err != nil {
		return 0, err
	}
	g, err := strconv.Atoi(sig)
	if err != nil {
		return 0, err
	}
	if g == 0 {
		return r, nil
	}
	return 128 + g, nil
}

// parseElapsed converts sacct's [DD-]HH:MM:SS (or MM:SS) to seconds.
func parseElapsed(s string) (int64, error) {
	days := int64(0)
	hms := s
	if d, rest, found := strings.Cut(s, "-"); found {
		n, err := strconv.ParseInt(d, 10, 64)
		if err != nil {
			return 0, err
		}
		days = n
		hms = rest
	}
	parts := strings.Split(hms, ":")
	if len(parts) > 3 {
		return 0, fmt.Errorf("Bad elapsed time %q", s)
	}
	secs := int64(0)
	for _, p := range parts {
		n, err := strconv.ParseInt(p, 10, 64)
		if err != nil {
			return 0, err
		}
		secs = secs*60 + n
	}
	return days*86400 + secs, nil
}
