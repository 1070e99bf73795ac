package project

// Outcome is the result of an orchestrated operation. It is built once per
// invocation and never merged.
type Outcome struct {
	Status bool
	Output string
	// ExitCode is the exit status to report for the operation: the external
	// program's own code for Dev and Build, 0 or 1 otherwise.
	ExitCode int
}

// Succeeded returns a successful Outcome carrying output.
func Succeeded(output string) Outcome {
	return Outcome{Status: true, Output: output}
}

// Failed returns a failed Outcome carrying a diagnostic.
func Failed(output string) Outcome {
	return Outcome{Status: false, Output: output, ExitCode: 1}
}

// exited returns the Outcome of a program that ran to completion.
func exited(output string, code int) Outcome {
	if code == 0 {
		return Succeeded(output)
	}
	return Outcome{Status: false, Output: output, ExitCode: code}
}
