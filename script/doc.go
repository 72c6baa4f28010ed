// Package script replays YAML operation scripts against a vector.Vector[int]
// and records the container state after every step.
//
// What:
//
//   - Script describes an optional capacity hint, optional initial elements
//     and an ordered list of Steps (push_back, insert, erase, ...).
//   - Parse/Load decode and validate a script with gopkg.in/yaml.v3.
//   - Runner executes a Script and returns a Trace of Records: operation,
//     outcome, contents, size and capacity.
//   - Render prints a Trace, optionally styled with lipgloss.
//
// Why:
//
//   - Reproduce a growth or invalidation sequence from a file instead of
//     writing a throwaway program.
//   - Diff capacity behavior across changes with a plain-text trace.
//
// Errors:
//
//   - ErrEmptyScript: the script has no steps.
//   - ErrUnknownOp: a step names an operation the runner does not know.
//   - StepError: wraps the vector error of a failing step with its number and op.
package script
