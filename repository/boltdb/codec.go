package boltdb

import (
	"encoding/binary"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/fastygo/todoapp/domain"
)

// Records are stored as a compact binary blob: a version byte, the raw
// 16-byte identifier, length-prefixed strings, presence bytes for optional
// fields and unix seconds + nanos for timestamps. Every field round-trips
// exactly, including nanosecond precision. Decoding is strict: a bad
// version, a truncated buffer or trailing bytes are all hard errors.
const recordVersion byte = 1

const (
	fieldAbsent  byte = 0
	fieldPresent byte = 1
)

func encodeTodo(t *domain.Todo) ([]byte, error) {
	if !t.Priority.Valid() {
		return nil, fmt.Errorf("priority %d out of range", t.Priority)
	}

	buf := make([]byte, 0, 64+len(t.Title))
	buf = append(buf, recordVersion)
	buf = append(buf, t.ID[:]...)
	buf = appendString(buf, t.Title)

	if t.Description != nil {
		buf = append(buf, fieldPresent)
		buf = appendString(buf, *t.Description)
	} else {
		buf = append(buf, fieldAbsent)
	}

	if t.DueDate != nil {
		buf = append(buf, fieldPresent)
		buf = appendTime(buf, *t.DueDate)
	} else {
		buf = append(buf, fieldAbsent)
	}

	buf = append(buf, byte(t.Priority))
	if t.Completed {
		buf = append(buf, 1)
	} else {
		buf = append(buf, 0)
	}
	buf = appendTime(buf, t.CreatedAt)
	buf = appendTime(buf, t.UpdatedAt)
	return buf, nil
}

func decodeTodo(data []byte) (*domain.Todo, error) {
	r := &recordReader{buf: data}

	version, err := r.readByte()
	if err != nil {
		return nil, err
	}
	if version != recordVersion {
		return nil, fmt.Errorf("unsupported record version %d", version)
	}

	var t domain.Todo

	idBytes, err := r.readBytes(16)
	if err != nil {
		return nil, fmt.Errorf("identifier: %w", err)
	}
	t.ID, err = uuid.FromBytes(idBytes)
	if err != nil {
		return nil, fmt.Errorf("identifier: %w", err)
	}

	if t.Title, err = r.readString(); err != nil {
		return nil, fmt.Errorf("title: %w", err)
	}

	present, err := r.readPresence()
	if err != nil {
		return nil, fmt.Errorf("description: %w", err)
	}
	if present {
		desc, err := r.readString()
		if err != nil {
			return nil, fmt.Errorf("description: %w", err)
		}
		t.Description = &desc
	}

	if present, err = r.readPresence(); err != nil {
		return nil, fmt.Errorf("due date: %w", err)
	}
	if present {
		due, err := r.readTime()
		if err != nil {
			return nil, fmt.Errorf("due date: %w", err)
		}
		t.DueDate = &due
	}

	prio, err := r.readByte()
	if err != nil {
		return nil, fmt.Errorf("priority: %w", err)
	}
	t.Priority = domain.Priority(prio)
	if !t.Priority.Valid() {
		return nil, fmt.Errorf("priority %d out of range", prio)
	}

	completed, err := r.readByte()
	if err != nil {
		return nil, fmt.Errorf("completed: %w", err)
	}
	switch completed {
	case 0:
		t.Completed = false
	case 1:
		t.Completed = true
	default:
		return nil, fmt.Errorf("completed flag has invalid value %d", completed)
	}

	if t.CreatedAt, err = r.readTime(); err != nil {
		return nil, fmt.Errorf("created at: %w", err)
	}
	if t.UpdatedAt, err = r.readTime(); err != nil {
		return nil, fmt.Errorf("updated at: %w", err)
	}

	if r.off != len(r.buf) {
		return nil, fmt.Errorf("%d trailing bytes after record", len(r.buf)-r.off)
	}
	return &t, nil
}

func appendString(buf []byte, s string) []byte {
	buf = binary.AppendUvarint(buf, uint64(len(s)))
	return append(buf, s...)
}

func appendTime(buf []byte, ts time.Time) []byte {
	buf = binary.LittleEndian.AppendUint64(buf, uint64(ts.Unix()))
	return binary.LittleEndian.AppendUint32(buf, uint32(ts.Nanosecond()))
}

type recordReader struct {
	buf []byte
	off int
}

func (r *recordReader) readByte() (byte, error) {
	if r.off >= len(r.buf) {
		return 0, fmt.Errorf("record truncated at offset %d", r.off)
	}
	b := r.buf[r.off]
	r.off++
	return b, nil
}

func (r *recordReader) readBytes(n int) ([]byte, error) {
	// Compare against the remaining length; adding n to the offset could
	// overflow when a corrupt length prefix decodes to a huge value.
	if n < 0 || n > len(r.buf)-r.off {
		return nil, fmt.Errorf("record truncated at offset %d, need %d bytes", r.off, n)
	}
	b := r.buf[r.off : r.off+n]
	r.off += n
	return b, nil
}

func (r *recordReader) readPresence() (bool, error) {
	b, err := r.readByte()
	if err != nil {
		return false, err
	}
	switch b {
	case fieldAbsent:
		return false, nil
	case fieldPresent:
		return true, nil
	default:
		return false, fmt.Errorf("presence marker has invalid value %d", b)
	}
}

func (r *recordReader) readString() (string, error) {
	length, n := binary.Uvarint(r.buf[r.off:])
	if n <= 0 {
		return "", fmt.Errorf("record truncated at offset %d, bad length prefix", r.off)
	}
	r.off += n
	if length > uint64(len(r.buf)-r.off) {
		return "", fmt.Errorf("string length %d exceeds remaining %d bytes", length, len(r.buf)-r.off)
	}
	b, err := r.readBytes(int(length))
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func (r *recordReader) readTime() (time.Time, error) {
	b, err := r.readBytes(12)
	if err != nil {
		return time.Time{}, err
	}
	secs := int64(binary.LittleEndian.Uint64(b[:8]))
	nanos := binary.LittleEndian.Uint32(b[8:])
	if nanos >= 1e9 {
		return time.Time{}, fmt.Errorf("nanoseconds %d out of range", nanos)
	}
	return time.Unix(secs, int64(nanos)).UTC(), nil
}
