package lvmp

import (
	"context"
	"fmt"
	"os"
)

// SinkOpenError is returned when the destination file cannot be created.
type SinkOpenError struct {
	Path string
	Err  error
}

func (e *SinkOpenError) Error() string {
	return fmt.Sprintf("lvmp: failed to write '%s': %v", e.Path, e.Err)
}

func (e *SinkOpenError) Unwrap() error {
	return e.Err
}

// EncodeFile encodes img into a new file at path. Either a complete file is
// left behind or none: on any failure the partial file is removed.
func EncodeFile(ctx context.Context, path string, img Image, mode Mode) (res *Result, err error) {
	if err := checkSize(img.Size()); err != nil {
		return nil, err
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, &SinkOpenError{Path: path, Err: err}
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("lvmp: closing '%s': %w", path, cerr)
		}
		if err != nil {
			res = nil
			_ = os.Remove(path)
		}
	}()
	return NewEncoder(f, WithMode(mode)).Encode(ctx, img)
}
