package charstream

// markStack implements the replay-list approach to mark/rewind: rather than
// seeking the underlying byte source (which may not support it at all), it
// simply remembers every cluster delivered since the oldest active mark,
// along with the position that was current just before each, and replays
// them back to the consumer on reset.
type markStack struct {
	// history holds clusters delivered to the consumer since the oldest
	// entry in marks, and historyPositions the position that was current
	// immediately before each. Both are only grown while at least one mark
	// is active, so an unmarked stream carries no replay overhead.
	history          []string
	historyPositions []Position
	// marks is a stack of indices into history: marks[i] is the length
	// history had when that mark was set, i.e. history[marks[i]:] is
	// everything read since. markPositions[i] is the position that was
	// current at that same moment.
	marks         []int
	markPositions []Position
	// replay holds clusters queued for redelivery after a reset, drained
	// before any newly produced cluster is returned to the consumer.
	replay []string
}

func (m *markStack) active() bool {
	return len(m.marks) > 0
}

// recordDelivered appends a cluster that was just handed to the consumer
// (whether freshly produced or replayed) to history, along with the
// position the stream was at immediately before it, if any mark is
// currently watching.
func (m *markStack) recordDelivered(cluster string, posBefore Position) {
	if m.active() {
		m.history = append(m.history, cluster)
		m.historyPositions = append(m.historyPositions, posBefore)
	}
}

func (m *markStack) set(pos Position) {
	m.marks = append(m.marks, len(m.history))
	m.markPositions = append(m.markPositions, pos)
}

func (m *markStack) reset() (Position, bool) {
	if !m.active() {
		return Position{}, false
	}

	idx := m.marks[len(m.marks)-1]
	pos := m.markPositions[len(m.markPositions)-1]
	m.marks = m.marks[:len(m.marks)-1]
	m.markPositions = m.markPositions[:len(m.markPositions)-1]

	m.rewindTo(idx)

	return pos, true
}

func (m *markStack) resetKeep() (Position, bool) {
	if !m.active() {
		return Position{}, false
	}

	idx := m.marks[len(m.marks)-1]
	pos := m.markPositions[len(m.markPositions)-1]

	m.rewindTo(idx)
	m.marks[len(m.marks)-1] = idx
	m.markPositions[len(m.markPositions)-1] = pos

	return pos, true
}

// rewindTo copies history[idx:] out for replay, truncates history (and its
// parallel position slice) back to idx, and queues the copy ahead of
// anything already pending replay.
func (m *markStack) rewindTo(idx int) {
	replayed := append([]string(nil), m.history[idx:]...)
	m.history = m.history[:idx]
	m.historyPositions = m.historyPositions[:idx]
	m.replay = append(replayed, m.replay...)
}

func (m *markStack) clear() bool {
	if !m.active() {
		return false
	}

	m.marks = m.marks[:len(m.marks)-1]
	m.markPositions = m.markPositions[:len(m.markPositions)-1]

	if !m.active() {
		m.history = nil
		m.historyPositions = nil
	}

	return true
}

func (m *markStack) update(pos Position) bool {
	if !m.active() {
		return false
	}

	m.marks[len(m.marks)-1] = len(m.history)
	m.markPositions[len(m.markPositions)-1] = pos

	return true
}

// backup un-consumes up to n clusters back toward the top mark's anchor,
// returning the position to restore and how many clusters were actually
// backed up (clamped to what that mark has seen so far).
func (m *markStack) backup(n int) (Position, int) {
	if !m.active() || n <= 0 {
		return Position{}, 0
	}

	idx := m.marks[len(m.marks)-1]
	available := len(m.history) - idx

	if n > available {
		n = available
	}

	if n == 0 {
		return Position{}, 0
	}

	cut := len(m.history) - n
	pos := m.historyPositions[cut]
	m.rewindTo(cut)

	return pos, n
}

func (m *markStack) nextReplay() (string, bool) {
	if len(m.replay) == 0 {
		return "", false
	}

	c := m.replay[0]
	m.replay = m.replay[1:]

	return c, true
}
