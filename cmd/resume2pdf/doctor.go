package main

import (
	"encoding/json"
	"fmt"
	"io"

	resume2pdf "github.com/alnah/go-resume2pdf"
)

// doctorResult holds tool detection results.
type doctorResult struct {
	Status   string     `json:"status"` // "ready", "warnings", "errors"
	Engines  []toolInfo `json:"engines"`
	Tools    []toolInfo `json:"html_tools"`
	Warnings []string   `json:"warnings,omitempty"`
	Errors   []string   `json:"errors,omitempty"`
}

// toolInfo describes one candidate binary.
type toolInfo struct {
	Name  string `json:"name"`
	Found bool   `json:"found"`
	Path  string `json:"path,omitempty"`
}

// runDoctorCmd executes the doctor command and returns an exit code.
// Exit codes: 0 = OK (including warnings), 1 = errors found.
func runDoctorCmd(env *Environment, flags *cliFlags) int {
	result := runDoctor(env)

	if flags.jsonOutput {
		enc := json.NewEncoder(env.Stdout)
		enc.SetIndent("", "  ")
		_ = enc.Encode(result)
	} else {
		printDoctorResult(env.Stdout, result)
	}

	if result.Status == "errors" {
		return ExitGeneral
	}
	return ExitSuccess
}

// runDoctor probes PATH for every candidate engine and conversion tool.
func runDoctor(env *Environment) *doctorResult {
	result := &doctorResult{Status: "ready"}

	anyEngine := false
	for _, name := range resume2pdf.DefaultEngines {
		info := lookupTool(env, name)
		anyEngine = anyEngine || info.Found
		result.Engines = append(result.Engines, info)
	}
	if !anyEngine {
		result.Errors = append(result.Errors,
			"no LaTeX engine found: install xelatex or pdflatex")
	}

	anyTool := false
	for _, name := range resume2pdf.DefaultHTMLTools {
		info := lookupTool(env, name)
		anyTool = anyTool || info.Found
		result.Tools = append(result.Tools, info)
	}
	if !anyTool {
		result.Warnings = append(result.Warnings,
			"no LaTeX-to-HTML tool found: install pandoc or htlatex for --format html")
	}

	if len(result.Errors) > 0 {
		result.Status = "errors"
	} else if len(result.Warnings) > 0 {
		result.Status = "warnings"
	}
	return result
}

func lookupTool(env *Environment, name string) toolInfo {
	path, err := env.LookPath(name)
	if err != nil {
		return toolInfo{Name: name}
	}
	return toolInfo{Name: name, Found: true, Path: path}
}

// printDoctorResult renders the human-readable report.
func printDoctorResult(w io.Writer, result *doctorResult) {
	fmt.Fprintln(w, "resume2pdf doctor")
	fmt.Fprintln(w)

	fmt.Fprintln(w, "PDF engines:")
	printTools(w, result.Engines)
	fmt.Fprintln(w, "HTML tools:")
	printTools(w, result.Tools)

	for _, warning := range result.Warnings {
		fmt.Fprintln(w, "warning:", warning)
	}
	for _, errMsg := range result.Errors {
		fmt.Fprintln(w, "error:", errMsg)
	}
	fmt.Fprintln(w, "status:", result.Status)
}

func printTools(w io.Writer, tools []toolInfo) {
	for _, tool := range tools {
		if tool.Found {
			fmt.Fprintf(w, "  ✓ %s (%s)\n", tool.Name, tool.Path)
		} else {
			fmt.Fprintf(w, "  ✗ %s (not found)\n", tool.Name)
		}
	}
	fmt.Fprintln(w)
}
