// Package navigator runs the interactive visitor session: it lists the
// attractions, then answers route queries typed at a prompt until the
// visitor stops.
//
// The session reads lines from an io.Reader and writes to an io.Writer, so
// it runs the same on a terminal and in tests. Bad input never ends the
// session; the visitor is told what was wrong and asked again. End of input
// ends the session cleanly.
package navigator

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
	"unicode"

	"go.uber.org/zap"

	"github.com/katalvlaran/magicmap/core"
	"github.com/katalvlaran/magicmap/routing"
)

const separator = "================================="

// Session is one interactive navigation session over a loaded park map.
type Session struct {
	g       *core.Graph
	in      *bufio.Scanner
	out     io.Writer
	log     *zap.Logger
	routing []routing.Option
}

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the session logger. Nil is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.log = l
		}
	}
}

// WithRoutingOptions forwards options to every route query.
func WithRoutingOptions(opts ...routing.Option) Option {
	return func(s *Session) { s.routing = append(s.routing, opts...) }
}

// New creates a Session over g reading from in and writing to out.
func New(g *core.Graph, in io.Reader, out io.Writer, opts ...Option) *Session {
	s := &Session{g: g, in: bufio.NewScanner(in), out: out, log: zap.NewNop()}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// errEndOfInput ends the session when the input runs out mid-dialogue.
var errEndOfInput = errors.New("navigator: end of input")

// Run lists the attractions and then serves queries until the visitor
// answers "N" to "another query?" or the input ends.
// It returns only I/O errors from the input.
func (s *Session) Run() error {
	s.printf("Welcome! Type: Entertainment (E), Store (S), Food Station (F)\n\n")
	ListAttractions(s.out, s.g)

	err := s.loop()
	if errors.Is(err, errEndOfInput) {
		return s.in.Err()
	}

	return err
}

func (s *Session) loop() error {
	s.printf("Start Navigation!\n")
	accessible, err := s.askYesNo("Do you need an accessible route? (Y/N): ")
	if err != nil {
		return err
	}

	var last int64
	hasLast := false
	for {
		source, target, err := s.askEndpoints(last, hasLast)
		if err != nil {
			return err
		}

		if ok := s.query(source, target, accessible); ok {
			last, hasLast = target, true
		}

		again, err := s.askYesNo("Do you want to enter another navigation query? (Y/N): ")
		if err != nil {
			return err
		}
		if !again {
			s.printf("End navigation!\n")
			return nil
		}
	}
}

// askEndpoints prompts until it gets a usable start and end ID. An empty
// start reuses the previous end point when there is one.
func (s *Session) askEndpoints(last int64, hasLast bool) (source, target int64, err error) {
	for {
		line, err := s.ask("Please enter the ID of the start point (press enter to start from the last end point): ")
		if err != nil {
			return 0, 0, err
		}
		if line == "" && !hasLast {
			s.printf("You must enter the start point! Try again!\n")
			continue
		}
		source = last
		if line != "" {
			if source, err = strconv.ParseInt(line, 10, 64); err != nil {
				s.printf("Invalid input %q! Try again!\n", line)
				continue
			}
		}

		line, err = s.ask("Please enter the ID of the end point: ")
		if err != nil {
			return 0, 0, err
		}
		if line == "" {
			s.printf("You must enter the end point! Try again!\n")
			continue
		}
		if target, err = strconv.ParseInt(line, 10, 64); err != nil {
			s.printf("Invalid input %q! Try again!\n", line)
			continue
		}

		return source, target, nil
	}
}

// query runs one route query and prints the outcome. It reports whether the
// endpoints were valid.
func (s *Session) query(source, target int64, accessible bool) bool {
	find := routing.FindShortestPath
	if accessible {
		find = routing.FindShortestPathAccessible
	}

	route, err := find(s.g, source, target, s.routing...)
	if err != nil {
		s.log.Warn("route query rejected", zap.Int64("source", source), zap.Int64("target", target), zap.Error(err))
		if errors.Is(err, routing.ErrInvalidNodeReference) {
			s.reportUnknown(source, target)
			return false
		}
		s.printf("Something went wrong: %v\n", err)
		return false
	}

	s.log.Info("route query",
		zap.Int64("source", source),
		zap.Int64("target", target),
		zap.Bool("accessible", accessible),
		zap.Bool("found", route.Found),
	)
	if err = FormatRoute(s.out, route); err != nil {
		s.log.Error("write route", zap.Error(err))
	}

	return true
}

// reportUnknown names the endpoint, or both, missing from the map.
func (s *Session) reportUnknown(source, target int64) {
	badSource, badTarget := !s.g.HasNode(source), !s.g.HasNode(target)
	switch {
	case badSource && badTarget && source != target:
		s.printf("There are no attractions with ID %d (start) or %d (end) here. Try again!\n", source, target)
	case badSource:
		s.printf("There is no attraction with ID %d (start) here. Try again!\n", source)
	default:
		s.printf("There is no attraction with ID %d (end) here. Try again!\n", target)
	}
}

func (s *Session) askYesNo(prompt string) (bool, error) {
	for {
		line, err := s.ask(prompt)
		if err != nil {
			return false, err
		}
		switch strings.ToUpper(line) {
		case "Y":
			return true, nil
		case "N":
			return false, nil
		}
		s.printf("Invalid input! Try again!\n")
	}
}

func (s *Session) ask(prompt string) (string, error) {
	s.printf("%s", prompt)
	if !s.in.Scan() {
		s.printf("\n")
		return "", errEndOfInput
	}

	return strings.TrimSpace(s.in.Text()), nil
}

func (s *Session) printf(format string, args ...interface{}) {
	fmt.Fprintf(s.out, format, args...)
}

// ListAttractions prints every attraction alphabetically with its attributes.
func ListAttractions(w io.Writer, g *core.Graph) {
	for _, n := range g.NodesByName() {
		fmt.Fprintf(w, "Attraction ID: %d\n", n.ID)
		fmt.Fprintf(w, "Name: %s\n", n.Name)
		fmt.Fprintf(w, "Type: %s\n", n.Category)

		keys := make([]string, 0, len(n.Attrs))
		for k := range n.Attrs {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Fprintf(w, "%s: %s\n", titleize(k), n.Attrs[k])
		}
		fmt.Fprintln(w, separator)
	}
}

// FormatRoute prints the distance and turn-by-turn hops of a found route,
// or an apology naming both endpoints when there is none.
func FormatRoute(w io.Writer, r *routing.Route) error {
	if !r.Found {
		_, err := fmt.Fprintf(w, "Sorry, there is no path from %d(%s) to %d(%s) for you.\n",
			r.Source.ID, r.Source.Name, r.Target.ID, r.Target.Name)
		return err
	}

	if _, err := fmt.Fprintf(w, "The shortest distance from %d(%s) to %d(%s) is %s feet\n",
		r.Source.ID, r.Source.Name, r.Target.ID, r.Target.Name,
		strconv.FormatFloat(r.Distance, 'f', -1, 64)); err != nil {
		return err
	}
	if len(r.Hops) == 0 {
		_, err := fmt.Fprintln(w, "You are already there!")
		return err
	}
	if _, err := fmt.Fprintln(w, "The path should be:"); err != nil {
		return err
	}
	for _, h := range r.Hops {
		if _, err := fmt.Fprintf(w, "%d(%s) ----> %d(%s)\n", h.From.ID, h.From.Name, h.To.ID, h.To.Name); err != nil {
			return err
		}
	}

	return nil
}

// titleize turns "minimum_height" into "Minimum Height".
func titleize(key string) string {
	words := strings.Fields(strings.ReplaceAll(key, "_", " "))
	for i, word := range words {
		r := []rune(word)
		r[0] = unicode.ToUpper(r[0])
		words[i] = string(r)
	}

	return strings.Join(words, " ")
}
