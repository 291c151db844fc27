// Package move implements the single-file move primitive used by the
// executor. A move tries increasingly generic strategies, stopping at the
// first success:
//
//  1. Atomic rename (same filesystem).
//  2. Streamed copy then unlink of the source, for cross-device moves.
//     io.Copy lets the OS use its fast copy path when one exists.
//  3. Chunked 64 KiB read/write copy then unlink, as a last resort when the
//     streamed copy is not supported.
//
// Only "this strategy is unavailable here" failures trigger fallback; any
// other failure is terminal for the call. The primitive does not verify the
// copied bytes afterward; copy+unlink is best-effort and the caller's
// rollback must tolerate a dangling state.
package move

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"syscall"

	"github.com/sdejongh/bulkmv/pkg/models"
)

// copyBufferSize is the chunk size of the last-resort copy loop
const copyBufferSize = 64 * 1024

// Move relocates the file at src to dst. The destination's parent directory
// must already exist. On failure the returned error is a *models.MoveError
func Move(src, dst string) error {
	err := os.Rename(src, dst)
	if err == nil {
		return nil
	}
	if !isCrossDevice(err) && !isUnsupported(err) {
		return &models.MoveError{From: src, To: dst, Reason: reason(err), Err: err}
	}

	err = copyStreamed(src, dst)
	if err == nil {
		return unlinkSource(src, dst)
	}
	if !isUnsupported(err) {
		return &models.MoveError{From: src, To: dst, Reason: reason(err), Err: err}
	}

	if err := copyChunked(src, dst); err != nil {
		return &models.MoveError{From: src, To: dst, Reason: reason(err), Err: err}
	}
	return unlinkSource(src, dst)
}

// copyStreamed copies src to dst in one io.Copy call, preserving mode and
// modification time the way the source had them
func copyStreamed(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("failed to open source: %w", err)
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return fmt.Errorf("failed to stat source: %w", err)
	}

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return fmt.Errorf("failed to create destination: %w", err)
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		os.Remove(dst)
		return fmt.Errorf("failed to copy data: %w", err)
	}

	if err := out.Close(); err != nil {
		return fmt.Errorf("failed to close destination: %w", err)
	}

	if err := os.Chtimes(dst, info.ModTime(), info.ModTime()); err != nil {
		return fmt.Errorf("failed to set modification time: %w", err)
	}

	return nil
}

// copyChunked copies src to dst through an explicit 64 KiB buffer loop,
// avoiding any OS-assisted copy path
func copyChunked(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("failed to open source: %w", err)
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return fmt.Errorf("failed to stat source: %w", err)
	}

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return fmt.Errorf("failed to create destination: %w", err)
	}

	buf := make([]byte, copyBufferSize)
	for {
		n, readErr := in.Read(buf)
		if n > 0 {
			if _, writeErr := out.Write(buf[:n]); writeErr != nil {
				out.Close()
				os.Remove(dst)
				return fmt.Errorf("failed to write data: %w", writeErr)
			}
		}
		if readErr == io.EOF {
			break
		}
		if readErr != nil {
			out.Close()
			os.Remove(dst)
			return fmt.Errorf("failed to read data: %w", readErr)
		}
	}

	if err := out.Close(); err != nil {
		return fmt.Errorf("failed to close destination: %w", err)
	}

	return nil
}

// unlinkSource removes src after a successful copy to dst
func unlinkSource(src, dst string) error {
	if err := os.Remove(src); err != nil {
		return &models.MoveError{
			From:   src,
			To:     dst,
			Reason: fmt.Sprintf("copied but failed to remove source: %v", err),
			Err:    err,
		}
	}
	return nil
}

// isCrossDevice reports whether err means the rename crossed filesystem
// boundaries and a copy-based strategy should be tried instead
func isCrossDevice(err error) bool {
	if errors.Is(err, syscall.EXDEV) {
		return true
	}
	// Windows reports cross-volume renames with a distinct message rather
	// than EXDEV
	var linkErr *os.LinkError
	if errors.As(err, &linkErr) {
		msg := linkErr.Err.Error()
		return strings.Contains(msg, "cross-device") ||
			strings.Contains(msg, "different disk drive")
	}
	return false
}

// isUnsupported reports whether err means the strategy itself is unavailable
// in this environment, as opposed to a real failure
func isUnsupported(err error) bool {
	return errors.Is(err, syscall.ENOTSUP) || errors.Is(err, syscall.EOPNOTSUPP)
}

// reason renders err as a human-readable failure reason, unwrapping the
// link-error noise os.Rename adds
func reason(err error) string {
	var linkErr *os.LinkError
	if errors.As(err, &linkErr) {
		return linkErr.Err.Error()
	}
	return err.Error()
}
