package mmr

import "errors"

// Result codes, starting at 80 for disjointness with surrounding systems.
// Zero means the proof verified.
const (
	OK = 0

	CodeInvalidStack   = 80 // stack overflow or underflow
	CodeInvalidCommand = 81 // unknown command byte
	CodeInvalidProof   = 82 // any structural/semantic violation
	CodeProofEOF       = 83
	CodeLeafEOF        = 84
	CodeNoMoreLeafs    = 85
	CodeNoMoreCommands = 86
	CodeNodeEOF        = 87
)

var (
	// ErrInvalidStack is returned when a command would overflow or
	// underflow the bounded verification stack.
	ErrInvalidStack = errors.New("mmr: invalid stack")

	// ErrInvalidCommand is returned for any command byte outside {1..5}.
	ErrInvalidCommand = errors.New("mmr: invalid command")

	// ErrInvalidProof covers every structural or semantic violation: bad
	// leaf positions, non-ascending leaves, sibling mismatches, unknown
	// peaks, residual leaves, root mismatch, and an mmr_size that is zero
	// or not a size an MMR can have.
	ErrInvalidProof = errors.New("mmr: invalid proof")

	// ErrProofEOF corresponds to CodeProofEOF. The readers in this package
	// do not return it: a truncated proof node is reported as ErrNodeEOF.
	ErrProofEOF = errors.New("mmr: proof stream exhausted")

	// ErrLeafEOF is returned when the leaf stream ends before a leaf's
	// position prefix can be fully read.
	ErrLeafEOF = errors.New("mmr: leaf stream exhausted")

	// ErrNoMoreLeafs is returned when a command-1 leaf is requested but
	// the leaf stream reports clean EOF.
	ErrNoMoreLeafs = errors.New("mmr: no more leaves")

	// ErrNoMoreCommands corresponds to CodeNoMoreCommands. Nothing in this
	// package returns it: a cleanly ended command stream is reported by
	// ReadCommand returning ok == false, which ends Verify's loop normally.
	ErrNoMoreCommands = errors.New("mmr: no more commands")

	// ErrNodeEOF is returned when a length-prefixed proof node or leaf
	// payload is truncated.
	ErrNodeEOF = errors.New("mmr: node payload truncated")
)

// codeFor maps a sentinel error to its wire-compatible numeric code.
func codeFor(err error) int {
	switch {
	case errors.Is(err, ErrInvalidStack):
		return CodeInvalidStack
	case errors.Is(err, ErrInvalidCommand):
		return CodeInvalidCommand
	case errors.Is(err, ErrInvalidProof):
		return CodeInvalidProof
	case errors.Is(err, ErrProofEOF):
		return CodeProofEOF
	case errors.Is(err, ErrLeafEOF):
		return CodeLeafEOF
	case errors.Is(err, ErrNoMoreLeafs):
		return CodeNoMoreLeafs
	case errors.Is(err, ErrNodeEOF):
		return CodeNodeEOF
	default:
		return CodeInvalidProof
	}
}
