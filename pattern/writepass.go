package pattern

import (
	"io"
)

// A writer which keeps the first error it runs into and skips every write after
// that. Lets the generator loops stay straight without checking each record.
type WriteErrorPass struct {
	w       io.Writer
	err     error
	written uint64
}

func NewWriteErrorPass(w io.Writer) *WriteErrorPass {
	return &WriteErrorPass{w: w}
}

// Write the entire buffer (looping on short writes), unless an error was
// already seen
func (wep *WriteErrorPass) Write(b []byte) (int, error) {
	if wep.err != nil {
		return 0, wep.err
	}
	total := 0
	for total < len(b) {
		count, err := wep.w.Write(b[total:])
		total += count
		wep.written += uint64(count)
		if err != nil {
			wep.err = err
			return total, err
		}
		if count == 0 {
			wep.err = io.ErrShortWrite
			return total, wep.err
		}
	}
	return total, nil
}

func (wep *WriteErrorPass) WritePass(b []byte) int {
	val, _ := wep.Write(b)
	return val
}

func (wep *WriteErrorPass) IsPass() error {
	return wep.err
}

func (wep *WriteErrorPass) Written() uint64 {
	return wep.written
}

// Same idea for positioned writes
type WriteAtErrorPass struct {
	w   io.WriterAt
	err error
}

func (wep *WriteAtErrorPass) WriteAtPass(b []byte, offset int64) {
	if wep.err != nil {
		return
	}
	count, err := wep.w.WriteAt(b, offset)
	if err == nil && count != len(b) {
		err = io.ErrShortWrite
	}
	wep.err = err
}

func (wep *WriteAtErrorPass) IsPass() error {
	return wep.err
}
