package input

import (
	"bytes"
	"io"
	"os"
	"strings"
)

// Resolve turns a source into its byte payload. Literal sources trim
// surrounding whitespace and never fail. File sources validate that the
// path exists and is a regular file, then buffer the whole content;
// failures are reported as *Error.
func Resolve(src Source) ([]byte, error) {
	return ResolveProgress(src, nil)
}

// ResolveProgress is Resolve with a progress callback receiving the
// number of bytes read so far from a file source. The callback is never
// invoked for literal sources.
func ResolveProgress(src Source, onProgress func(n int64)) ([]byte, error) {
	if src.Kind == KindLiteral {
		return []byte(strings.TrimSpace(src.Text)), nil
	}
	return readFile(src.Path, onProgress)
}

// Stat validates a file source and returns its size in bytes, so callers
// can size a progress display before resolving. Literal sources report
// the length of their trimmed payload.
func Stat(src Source) (int64, error) {
	if src.Kind == KindLiteral {
		return int64(len(strings.TrimSpace(src.Text))), nil
	}
	info, err := os.Stat(src.Path)
	if err != nil {
		return 0, notFound(src.Path)
	}
	if !info.Mode().IsRegular() {
		return 0, notAFile(src.Path)
	}
	return info.Size(), nil
}

func readFile(path string, onProgress func(n int64)) ([]byte, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, notFound(path)
	}
	if !info.Mode().IsRegular() {
		return nil, notAFile(path)
	}

	f, err := os.Open(path) // #nosec G304
	if err != nil {
		return nil, readError(path, err)
	}
	defer func() {
		_ = f.Close()
	}()

	var content bytes.Buffer
	content.Grow(int(info.Size()))

	buf := make([]byte, 1<<20) // 1 MiB
	var pending int64
	flush := func() {
		if pending > 0 && onProgress != nil {
			onProgress(pending)
			pending = 0
		}
	}

	for {
		n, rerr := f.Read(buf)
		if n > 0 {
			content.Write(buf[:n])
			pending += int64(n)
			if pending >= int64(1<<20) {
				flush()
			}
		}
		if rerr == io.EOF {
			break
		}
		if rerr != nil {
			return nil, readError(path, rerr)
		}
	}
	flush()

	return content.Bytes(), nil
}
