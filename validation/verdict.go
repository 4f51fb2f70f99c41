package validation

import "fmt"

type Verdict uint8

const (
	NoData Verdict = iota
	Success
	Failure
)

func (v Verdict) String() string {
	switch v {
	case NoData:
		return "NO DATA"
	case Success:
		return "SUCCESS"
	case Failure:
		return "FAIL"
	}
	return fmt.Sprintf("Verdict(%d)", uint8(v))
}

func (v Verdict) Summary() string {
	switch v {
	case Success:
		return "SUCCESS: shocktube test"
	case Failure:
		return "FAIL: shocktube test, threshold of integrated diff exceeded"
	}
	return "NO DATA: shocktube test, no run output found"
}

// ExitCode maps the verdict onto a process exit status for CI
func (v Verdict) ExitCode() int {
	switch v {
	case Success:
		return 0
	case Failure:
		return 1
	}
	return 2
}

// Evaluate is the AND over all scored records. Without any scored record there is nothing to
// judge and the result is NoData rather than a vacuous success.
func Evaluate(records []ErrorRecord) (v Verdict) {
	var scored int
	for _, rec := range records {
		switch rec.Outcome {
		case Fail:
			return Failure
		case Pass:
			scored++
		}
	}
	if scored == 0 {
		return NoData
	}
	return Success
}
