package wire

import "github.com/lanedorian/schedcore/template"

// Command selects which core operation a Request dispatches to.
type Command string

const (
	// CommandSolve runs schedule.Solve.
	CommandSolve Command = "solve"
	// CommandValidate runs diagnostics.Validate.
	CommandValidate Command = "validate"
)

// Request is the single object Serve reads from its input stream.
type Request struct {
	Command   Command            `json:"command"`
	Template  *template.Template `json:"template"`
	Inventory map[string]int     `json:"inventory,omitempty"`
}

// Response is the single object Serve writes to its output stream. Exactly
// one of Data / Error is set, selected by Ok.
type Response struct {
	Ok    bool        `json:"ok"`
	Data  interface{} `json:"data,omitempty"`
	Error string      `json:"error,omitempty"`
}
