package shell

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/katalvlaran/wgraph/core"
	"github.com/katalvlaran/wgraph/scratch"
)

// maxLineLen bounds a single input line read by Run.
const maxLineLen = 1 << 20

var (
	// ErrArity is logged when a command has the wrong number of arguments.
	ErrArity = errors.New("shell: wrong number of arguments")

	// ErrUnknownCode is logged when the code token is not a known command.
	ErrUnknownCode = errors.New("shell: unknown command code")

	// ErrBadWeight is logged when an edge weight is not a decimal integer.
	ErrBadWeight = errors.New("shell: weight is not an integer")
)

// Session owns one graph and the scratch containers shared by every
// algorithm it invokes. A Session is not safe for concurrent Exec calls.
type Session struct {
	id    string
	graph *core.Graph
	queue *scratch.Queue[int]
	stack *scratch.Stack[int]
	heap  *scratch.MinHeap[int]
	out   *bufio.Writer
	log   *slog.Logger
	opts  Options
	done  bool
}

// New returns a Session with an empty graph.
func New(opts ...Option) *Session {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	id := uuid.New().String()

	return &Session{
		id:    id,
		graph: core.NewGraph(),
		queue: scratch.NewQueue[int](0),
		stack: scratch.NewStack[int](0),
		heap:  scratch.NewMinHeap[int](0),
		out:   bufio.NewWriter(o.Output),
		log:   o.Logger.With(slog.String("session_id", id)),
		opts:  o,
	}
}

// ID returns the session's random identifier, attached to every log record.
func (s *Session) ID() string { return s.id }

// Graph exposes the session's graph for inspection.
func (s *Session) Graph() *core.Graph { return s.graph }

// Reset discards every vertex and edge.
func (s *Session) Reset() { s.graph.Clear() }

// Stopped reports whether the terminate command has been executed.
func (s *Session) Stopped() bool { return s.done }

// Exec runs one command line and reports whether it was the terminate
// command. Blank lines, unknown codes and rejected commands produce only
// the output the protocol prescribes; the reason is logged at Debug.
func (s *Session) Exec(line string) (quit bool) {
	if strings.TrimSpace(line) == "" {
		return false
	}
	defer s.out.Flush()

	cl, err := parseLine(line)
	if err != nil {
		s.reject(line, "", err)
		return false
	}
	code, err := strconv.Atoi(cl.Code)
	if err != nil {
		s.reject(line, cl.Code, fmt.Errorf("%w: %q", ErrUnknownCode, cl.Code))
		return false
	}
	if code == cmdQuit {
		s.done = true
		return true
	}
	c, ok := commands[code]
	if !ok {
		s.reject(line, cl.Code, fmt.Errorf("%w: %d", ErrUnknownCode, code))
		return false
	}
	if c.arity >= 0 && len(cl.Args) != c.arity {
		s.out.WriteString(c.malformed)
		s.reject(line, cl.Code, fmt.Errorf("%w: got %d, want %d", ErrArity, len(cl.Args), c.arity))
		return false
	}
	if err := c.run(s, cl.Args); err != nil {
		s.reject(line, cl.Code, err)
	}

	return false
}

// Run executes lines from r until EOF or the terminate command. It returns
// at once if the session is already stopped. Only read errors are returned.
func (s *Session) Run(r io.Reader) error {
	if s.done {
		return nil
	}
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 4096), maxLineLen)
	for sc.Scan() {
		if s.Exec(sc.Text()) {
			return nil
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("shell: read input: %w", err)
	}

	return nil
}

func (s *Session) reject(line, code string, err error) {
	s.log.Debug("command rejected", "line", line, "code", code, "err", err)
}
