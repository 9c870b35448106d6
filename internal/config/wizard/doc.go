// Package wizard provides the interactive configuration wizard behind
// gansible init.
//
// It uses charmbracelet/huh for form-based input collection. The entry
// point is RunWizard, which walks the question groups and returns a
// filled Config; WriteConfig generates the YAML output file.
package wizard
