package wire

import (
	"fmt"
	"io"

	jsoniter "github.com/json-iterator/go"

	"github.com/lanedorian/schedcore/diagnostics"
	"github.com/lanedorian/schedcore/schedule"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Serve reads one Request from r, dispatches it to schedule.Solve or
// diagnostics.Validate per its Command, and writes one Response to w. It
// returns 0 when the response carries Ok: true, 1 otherwise — the exit code
// cmd/schedcore passes to os.Exit.
func Serve(r io.Reader, w io.Writer) int {
	body, err := io.ReadAll(r)
	if err != nil {
		return writeError(w, fmt.Errorf("wire: reading request: %w", err))
	}

	var req Request
	if err := json.Unmarshal(body, &req); err != nil {
		return writeError(w, fmt.Errorf("wire: decoding request: %w", err))
	}
	if req.Template == nil {
		return writeError(w, fmt.Errorf("wire: request missing template"))
	}

	switch req.Command {
	case CommandSolve:
		return solve(w, &req)
	case CommandValidate:
		return writeOk(w, diagnostics.Validate(req.Template))
	default:
		return writeError(w, fmt.Errorf("wire: unknown command %q", req.Command))
	}
}

func solve(w io.Writer, req *Request) int {
	result, err := schedule.Solve(req.Template, req.Inventory)
	if err != nil {
		return writeError(w, err)
	}
	return writeOk(w, result)
}

func writeOk(w io.Writer, data interface{}) int {
	return write(w, Response{Ok: true, Data: data})
}

func writeError(w io.Writer, err error) int {
	write(w, Response{Ok: false, Error: err.Error()})
	return 1
}

func write(w io.Writer, resp Response) int {
	out, err := json.Marshal(resp)
	if err != nil {
		// Marshaling our own Response failed; fall back to a minimal,
		// hand-built error object so the caller still gets valid JSON.
		fmt.Fprintf(w, `{"ok":false,"error":%q}`, "wire: encoding response: "+err.Error())
		return 1
	}
	w.Write(out)
	if !resp.Ok {
		return 1
	}
	return 0
}
