// SPDX-License-Identifier: MIT
package lexer

import (
	"context"
	"fmt"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/davecgh/go-spew/spew"
	"github.com/panjf2000/ants/v2"
	"github.com/sirupsen/logrus"

	"gitlab.com/fisherprime/auralex/accepter"
	"gitlab.com/fisherprime/auralex/lexeme"
)

type (
	// Lexer runs every token matcher in lock-step over a source, emitting the longest acceptable
	// Lexemes.
	//
	// When several Kinds accept the same longest span, a single ambiguous Lexeme carrying all of
	// them is emitted.
	Lexer struct {
		debug  bool
		logger logrus.FieldLogger

		// pool evaluates large candidate sets concurrently, nil scans sequentially.
		pool    *ants.Pool
		workers int

		// c is a channel for communicating lexed Items.
		c chan Item

		// source is the input, Lexeme texts are slices of it.
		source string

		// offset & coord locate the next unread rune.
		offset int
		coord  lexeme.Coord

		lexemeCounter    int
		ambiguousCounter int
		errorCounter     int
	}

	// Option defines the Lexer functional option type
	Option func(*Lexer)

	// snapshot records the longest acceptable prefix of the token being scanned.
	snapshot struct {
		end   int
		coord lexeme.Coord
		kinds lexeme.Kinds
	}
)

const releaseTimeout = time.Second

// New creates a new scanner for the input string
func New(opts ...Option) *Lexer {
	l := &Lexer{
		logger: logrus.New(),
		coord:  lexeme.Origin,
		c:      make(chan Item, defBufferSize),
	}

	for _, opt := range opts {
		opt(l)
	}

	return l
}

// WithDebug configures the debug option.
func WithDebug(debug bool) Option { return func(l *Lexer) { l.debug = debug } }

// WithLogger configures the logger option.
func WithLogger(logger logrus.FieldLogger) Option { return func(l *Lexer) { l.logger = logger } }

// WithSource configures the source option.
func WithSource(source string) Option { return func(l *Lexer) { l.source = source } }

// WithPool configures a caller owned goroutine pool for candidate evaluation.
func WithPool(pool *ants.Pool) Option { return func(l *Lexer) { l.pool = pool } }

// WithWorkers configures the size of a Lexer owned goroutine pool, released once lexing ends.
func WithWorkers(n int) Option { return func(l *Lexer) { l.workers = n } }

// WithOpts applies an Opts set.
func WithOpts(o Opts) Option {
	o.Validate()

	return func(l *Lexer) {
		l.debug = o.Debug
		l.workers = o.Workers
		l.logger = o.Logger
		l.c = make(chan Item, o.BufferSize)
	}
}

// Source obtains the source being lexed.
func (l *Lexer) Source() string { return l.source }

// LexemeCounter obtains the number of Lexemes emitted.
func (l *Lexer) LexemeCounter() int { return l.lexemeCounter }

// AmbiguousCounter obtains the number of ambiguous Lexemes emitted.
func (l *Lexer) AmbiguousCounter() int { return l.ambiguousCounter }

// ErrorCounter obtains the number of errors emitted.
func (l *Lexer) ErrorCounter() int { return l.errorCounter }

// Logger obtains the logger.
func (l *Lexer) Logger() logrus.FieldLogger { return l.logger }

// Lex lexes the whole source, emitting Items until the end of the source; the channel is closed
// afterwards.
//
// Lexing errors don't stop the scan; the context is checked between tokens.
func (l *Lexer) Lex(ctx context.Context) {
	defer close(l.c)

	if l.pool == nil && l.workers > 0 {
		pool, err := ants.NewPool(l.workers)
		if err != nil {
			l.EmitError(fmt.Errorf("lexer worker pool: %w", err))
			return
		}
		defer func() {
			if err := pool.ReleaseTimeout(releaseTimeout); err != nil {
				l.logger.Warn("lexer worker pool release: ", err)
			}
			l.pool = nil
		}()
		l.pool = pool
	}

	for l.offset < len(l.source) {
		select {
		case <-ctx.Done():
			l.EmitError(ctx.Err())
			return
		default:
			l.LexToken()
		}
	}

	l.EmitEOF()
}

// LexToken scans a single token from the current offset.
//
// The candidate set is advanced while any matcher accepts the next rune; the token is then cut
// at the longest prefix some matcher found acceptable & the scan resumes right after it.
func (l *Lexer) LexToken() {
	start, startCoord := l.offset, l.coord
	offset, coord := start, startCoord

	var (
		last       snapshot
		candidates []accepter.Candidate
	)
	for offset < len(l.source) {
		r, size := utf8.DecodeRuneInString(l.source[offset:])

		var next []accepter.Candidate
		if offset == start {
			next = l.seed(r)
		} else {
			next = l.step(candidates, r)
		}
		if len(next) < 1 {
			break
		}

		candidates = next
		offset += size
		coord = coord.Advance(r)

		if kinds := acceptableKinds(candidates); kinds != nil {
			last = snapshot{end: offset, coord: coord, kinds: kinds}
		}
	}

	switch {
	case offset >= len(l.source) && last.end != offset && pending(candidates):
		// The source ended inside a string, char or block comment.
		l.emitLexError(ErrUnterminatedLiteral, start, offset, startCoord)
		l.offset, l.coord = offset, coord
	case last.kinds != nil:
		l.Emit(lexeme.Lexeme{
			Kinds:      last.kinds,
			Text:       l.source[start:last.end],
			Start:      start,
			End:        last.end,
			StartCoord: startCoord,
			EndCoord:   last.coord,
		})
		l.offset, l.coord = last.end, last.coord
	default:
		// No matcher reached an acceptable state, skip the first rune & resynchronize.
		if l.debug {
			l.logger.Debugf("lexer rejected candidates: %s", spew.Sdump(candidates))
		}

		r, size := utf8.DecodeRuneInString(l.source[start:])
		l.emitLexError(ErrUnrecognizedCharacter, start, start+size, startCoord)
		l.offset, l.coord = start+size, startCoord.Advance(r)
	}
}

// seed obtains the candidates accepting r as the first rune of a token.
func (l *Lexer) seed(r rune) []accepter.Candidate {
	if l.pool == nil {
		return accepter.Seed(r)
	}

	return l.step(accepter.Template(), r)
}

// step advances every candidate on r, dropping those that reject it.
//
// Candidate order is preserved.
func (l *Lexer) step(candidates []accepter.Candidate, r rune) []accepter.Candidate {
	if l.pool == nil || len(candidates) < parallelThreshold {
		return advance(candidates, r)
	}

	workers := l.pool.Cap()
	if workers < 1 {
		workers = 1
	}
	chunkSize := (len(candidates) + workers - 1) / workers

	chunks := make([][]accepter.Candidate, 0, workers)
	for index := 0; index < len(candidates); index += chunkSize {
		end := index + chunkSize
		if end > len(candidates) {
			end = len(candidates)
		}
		chunks = append(chunks, candidates[index:end])
	}

	results := make([][]accepter.Candidate, len(chunks))
	wg := new(sync.WaitGroup)
	wg.Add(len(chunks))
	for index := range chunks {
		index := index
		task := func() {
			defer wg.Done()
			results[index] = advance(chunks[index], r)
		}

		if err := l.pool.Submit(task); err != nil {
			// Pool closed or overloaded, evaluate in this goroutine.
			task()
		}
	}
	wg.Wait()

	next := make([]accepter.Candidate, 0, len(candidates))
	for index := range results {
		next = append(next, results[index]...)
	}

	return next
}

// Emit sends a Lexeme over the communication channel.
func (l *Lexer) Emit(lx lexeme.Lexeme) {
	if l.debug {
		l.logger.Debug("lexer Emit: ", lx)
	}

	l.lexemeCounter++
	if lx.Ambiguous() {
		l.ambiguousCounter++
	}

	l.c <- Item{ID: ItemLexeme, Lexeme: lx}
}

// EmitEOF sends an ItemEOF Item over the communication channel.
func (l *Lexer) EmitEOF() {
	l.c <- Item{ID: ItemEOF}
}

// EmitError sends an error over the Lexer's channel.
//
// Errors lacking a position are located at the current offset.
func (l *Lexer) EmitError(err error) {
	lexErr, ok := err.(*Error)
	if !ok {
		lexErr = &Error{Err: err, Start: l.offset, End: l.offset, Coord: l.coord}
	}

	l.logger.WithFields(logrus.Fields{
		"offset": lexErr.Start,
		"coord":  lexErr.Coord.String(),
	}).Debug("lexer error: ", lexErr.Err)

	l.errorCounter++
	l.c <- Item{ID: ItemError, Err: lexErr}
}

func (l *Lexer) emitLexError(err error, start, end int, coord lexeme.Coord) {
	l.EmitError(&Error{
		Err:   err,
		Start: start,
		End:   end,
		Coord: coord,
		Text:  l.source[start:end],
	})
}

// Item return a lexed Item from the input.
func (l *Lexer) Item() (i Item, ok bool) {
	i, ok = <-l.c
	return
}

// Lex lexes a source, collecting its Lexemes & lexing errors.
func Lex(source string, opts ...Option) (lexemes []lexeme.Lexeme, errs ErrorList) {
	return LexContext(context.Background(), source, opts...)
}

// LexContext is Lex bound to a context; on cancellation the Lexemes scanned so far are returned
// & the context error closes the ErrorList.
func LexContext(ctx context.Context, source string, opts ...Option) (lexemes []lexeme.Lexeme, errs ErrorList) {
	l := New(append(opts, WithSource(source))...)
	go l.Lex(ctx)

	for {
		item, proceed := l.Item()
		if !proceed {
			break
		}

		switch item.ID {
		case ItemLexeme:
			lexemes = append(lexemes, item.Lexeme)
		case ItemError:
			errs.Add(item.Err.(*Error))
		}
	}

	return
}

func advance(candidates []accepter.Candidate, r rune) (next []accepter.Candidate) {
	for index := range candidates {
		if c, ok := candidates[index].Accept(r); ok {
			next = append(next, c)
		}
	}

	return
}

// acceptableKinds lists the Kinds of the acceptable candidates, nil when there are none.
func acceptableKinds(candidates []accepter.Candidate) (kinds lexeme.Kinds) {
	for index := range candidates {
		if candidates[index].Acceptable() {
			kinds = append(kinds, candidates[index].Kind)
		}
	}

	return
}

func pending(candidates []accepter.Candidate) bool {
	for index := range candidates {
		if candidates[index].Pending() {
			return true
		}
	}

	return false
}
