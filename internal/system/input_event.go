package system

import "encoding/binary"

// Linux input-event-codes.h
const (
	evKey     = 0x01
	keyEsc    = 1
	keyF4     = 62
	keyPress  = 1
	eventTail = 2 + 2 + 4 // u16 type, u16 code, s32 value
)

// eventLayout describes struct input_event, whose timeval size is per-arch.
type eventLayout struct {
	timevalSize int
}

func (l eventLayout) size() int { return l.timevalSize + eventTail }

// exitPressed scans a read of whole input_event records for a key-down of
// F4 or Escape.
func (l eventLayout) exitPressed(buf []byte) bool {
	size := l.size()
	if l.timevalSize <= 0 {
		return false
	}
	for off := 0; off+size <= len(buf); off += size {
		rec := buf[off+l.timevalSize : off+size]
		typ := binary.LittleEndian.Uint16(rec[0:2])
		code := binary.LittleEndian.Uint16(rec[2:4])
		value := int32(binary.LittleEndian.Uint32(rec[4:8]))
		if typ == evKey && value == keyPress && (code == keyF4 || code == keyEsc) {
			return true
		}
	}
	return false
}
