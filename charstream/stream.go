package charstream

import (
	"fmt"
	"io"
	"sync"

	"github.com/nodalcore/nodalcore/closer"
	commonerrors "github.com/nodalcore/nodalcore/errors"
)

// Stream decodes a ByteSource in a named encoding into a sequence of
// grapheme clusters, read ahead on a dedicated background goroutine.
//
// The zero value is not usable; construct one with Open.
type Stream struct {
	cfg        config
	source     ByteSource
	closeOnce  io.Closer
	transducer Transducer

	mu   sync.Mutex
	cond *sync.Cond

	status Status
	err    error
	queue  []string
	marks  markStack
	pos    Position

	wg sync.WaitGroup
}

// Open starts decoding source as sourceEncodingName, launching the
// background producer goroutine immediately. The returned Stream is in the
// Open status. If the encoding name cannot be resolved, Open returns a nil
// Stream and an error wrapping ErrUnknownEncoding.
func Open(source ByteSource, sourceEncodingName string, opts ...Option) (*Stream, error) {
	transducer, err := NewTransducer(sourceEncodingName)
	if err != nil {
		return nil, err
	}

	s := &Stream{
		cfg:        newConfig(opts...),
		source:     source,
		closeOnce:  closer.CloseOnce(closerFunc(source.Close)),
		transducer: transducer,
		status:     Open,
		pos:        startPosition(),
	}
	s.cond = sync.NewCond(&s.mu)

	s.wg.Add(1)

	go s.produce()

	return s, nil
}

type closerFunc func() error

func (f closerFunc) Close() error { return f() }

// TabWidth returns the column width configured for tab characters.
func (s *Stream) TabWidth() int {
	return s.cfg.tabWidth
}

// Status returns the Stream's current lifecycle status.
func (s *Stream) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.status
}

// Position returns the line/column the next ReadOne will start at.
func (s *Stream) Position() Position {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.pos
}

// IsAtEnd reports whether the stream has no more clusters to offer, now or
// ever: the source is exhausted and every produced cluster has been
// consumed.
func (s *Stream) IsAtEnd() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.status == AtEnd && len(s.queue) == 0 && len(s.marks.replay) == 0
}

// HasCharactersAvailable reports whether a ReadOne call is expected to
// return a cluster without blocking.
func (s *Stream) HasCharactersAvailable() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.marks.replay) > 0 || len(s.queue) > 0
}

// ReadOne blocks until a cluster is available, the source is exhausted, the
// stream is closed, or a decoding error occurs. A closed stream returns
// ("", nil) rather than an error.
func (s *Stream) ReadOne() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for {
		if cluster, ok := s.marks.nextReplay(); ok {
			posBefore := s.pos
			s.marks.recordDelivered(cluster, posBefore)
			s.pos = posBefore.advance(cluster, s.cfg.tabWidth)
			s.cond.Broadcast()

			return cluster, nil
		}

		if len(s.queue) > 0 {
			cluster := s.queue[0]
			s.queue = s.queue[1:]
			posBefore := s.pos
			s.marks.recordDelivered(cluster, posBefore)
			s.pos = posBefore.advance(cluster, s.cfg.tabWidth)
			s.cond.Broadcast()

			return cluster, nil
		}

		switch s.status {
		case Closed:
			return "", nil
		case Error:
			return "", s.err
		case AtEnd:
			return "", io.EOF
		}

		s.cond.Wait()
	}
}

// ReadMany fills buf with clusters, blocking until at least one is
// available, the stream ends, an error occurs, or the stream is closed, then
// returning every cluster immediately available without waiting for more. It
// returns the number of clusters read. If the stream has already ended (or
// failed) before any cluster is read, it returns 0 and io.EOF (or the
// stream's error); a call that reads at least one cluster returns a nil
// error even when the stream ends right after it.
func (s *Stream) ReadMany(buf []string) (int, error) {
	if len(buf) == 0 {
		return 0, nil
	}

	cluster, err := s.ReadOne()
	if err != nil {
		return 0, err
	}

	if cluster == "" {
		// Closed: ReadOne reports nothing without error.
		return 0, nil
	}

	buf[0] = cluster
	n := 1

	for n < len(buf) {
		s.mu.Lock()
		hasMore := len(s.marks.replay) > 0 || len(s.queue) > 0
		s.mu.Unlock()

		if !hasMore {
			break
		}

		cluster, err := s.ReadOne()
		if err != nil {
			return n, err
		}

		buf[n] = cluster
		n++
	}

	return n, nil
}

// Close stops the background producer and releases the Stream. If the
// WithAutoClose option was set, the underlying ByteSource is also closed
// exactly once via closer.CloseOnce, even if Close is itself called more
// than once. A pending producer error (the Stream was in the Error status)
// and a failure closing the byte source are joined into a single error,
// matching the teacher's errors.Collection "collect then join" pattern.
func (s *Stream) Close() error {
	s.mu.Lock()

	if s.status == Closed {
		s.mu.Unlock()

		return nil
	}

	var collected commonerrors.Collection

	collected.Add(s.err)

	s.status = Closed
	s.cond.Broadcast()
	s.mu.Unlock()

	s.wg.Wait()

	if s.cfg.autoClose {
		if err := s.closeOnce.Close(); err != nil {
			collected.Add(fmt.Errorf("charstream: closing byte source: %w", err))
		}
	}

	return collected.GetError()
}

// emitCluster is called from the producer goroutine to hand off a decoded
// cluster to the consumer side. It blocks while the queue is at the
// configured high-water mark, waking whenever the consumer drains it or the
// stream is closed. It returns false if the stream was closed while waiting,
// telling the producer to stop.
func (s *Stream) emitCluster(cluster string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for len(s.queue) >= s.cfg.readAheadHighWater {
		if s.status == Closed {
			return false
		}

		s.cond.Wait()
	}

	if s.status == Closed {
		return false
	}

	s.queue = append(s.queue, cluster)
	s.cond.Broadcast()

	return true
}

// fail records a terminal decoding error and wakes any blocked reader.
func (s *Stream) fail(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.status == Closed {
		return
	}

	s.status = Error
	s.err = err
	s.cond.Broadcast()
}

// markAtEnd records that the source has been fully decoded.
func (s *Stream) markAtEnd() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.status == Closed {
		return
	}

	s.status = AtEnd
	s.cond.Broadcast()
}

// MarkSet remembers the current read position so a later MarkReset can
// replay every cluster read since.
func (s *Stream) MarkSet() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.marks.set(s.pos)
}

// MarkReset pops the most recently set mark and rewinds the stream so that
// the next reads replay every cluster consumed since that mark was set.
func (s *Stream) MarkReset() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	pos, ok := s.marks.reset()
	if !ok {
		return ErrNoMark
	}

	s.pos = pos
	s.cond.Broadcast()

	return nil
}

// MarkResetKeep behaves like MarkReset but leaves the mark in place, so a
// further MarkReset (or MarkResetKeep) can rewind to the same point again.
func (s *Stream) MarkResetKeep() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	pos, ok := s.marks.resetKeep()
	if !ok {
		return ErrNoMark
	}

	s.pos = pos
	s.cond.Broadcast()

	return nil
}

// MarkClear discards the most recently set mark without rewinding.
func (s *Stream) MarkClear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.marks.clear() {
		return ErrNoMark
	}

	return nil
}

// MarkUpdate moves the most recently set mark to the current read position,
// discarding the replay history accumulated for it so far.
func (s *Stream) MarkUpdate() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.marks.update(s.pos) {
		return ErrNoMark
	}

	return nil
}

// MarkBackup un-reads up to n clusters, rewinding toward (but never past)
// the most recently set mark. It returns the number of clusters actually
// backed up.
func (s *Stream) MarkBackup(n int) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.marks.active() {
		return 0, ErrNoMark
	}

	pos, backed := s.marks.backup(n)
	if backed > 0 {
		s.pos = pos
	}

	s.cond.Broadcast()

	return backed, nil
}
