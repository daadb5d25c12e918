package style

import "strconv"

const (
	csi      = "\x1b["
	resetSeq = "\x1b[0m"
)

// sgrWriter accumulates SGR parameters, joining them with semicolons.
type sgrWriter struct {
	buf []byte
	any bool
}

func (w *sgrWriter) sep() {
	if w.any {
		w.buf = append(w.buf, ';')
	}
	w.any = true
}

// code appends a single decimal parameter.
func (w *sgrWriter) code(n uint8) {
	w.sep()
	w.buf = strconv.AppendUint(w.buf, uint64(n), 10)
}

// raw appends a parameter verbatim. Colon-qualified sub-parameter codes such
// as "4:3" must pass through without being split.
func (w *sgrWriter) raw(s string) {
	w.sep()
	w.buf = append(w.buf, s...)
}
