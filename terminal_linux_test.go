package rawterm

import (
	"os"
	"os/signal"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"
)

// interruptAfter sends SIGWINCH to the calling OS thread after d, so that a
// poll running on that thread returns EINTR
func interruptAfter(t *testing.T, d time.Duration) {
	t.Helper()
	caught := make(chan os.Signal, 1)
	signal.Notify(caught, unix.SIGWINCH)
	t.Cleanup(func() { signal.Stop(caught) })

	runtime.LockOSThread()
	t.Cleanup(runtime.UnlockOSThread)
	pid, tid := unix.Getpid(), unix.Gettid()
	go func() {
		time.Sleep(d)
		unix.Tgkill(pid, tid, unix.SIGWINCH)
	}()
}

func TestReadBatchBlockingSurvivesSignal(t *testing.T) {
	ptmx, term := openPTY(t)
	interruptAfter(t, 50*time.Millisecond)
	go func() {
		time.Sleep(150 * time.Millisecond)
		ptmx.Write([]byte("x"))
	}()

	batch, err := term.ReadBatchBlocking(2 * time.Second)
	require.NoError(t, err)
	assert.Equal(t, []Event{KeyPress(Char('x'))}, batch.Events())
}

func TestReadBatchBlockingSignalKeepsDeadline(t *testing.T) {
	_, term := openPTY(t)
	interruptAfter(t, 50*time.Millisecond)

	start := time.Now()
	batch, err := term.ReadBatchBlocking(300 * time.Millisecond)
	elapsed := time.Since(start)

	require.NoError(t, err)
	assert.True(t, batch.IsEmpty())
	assert.GreaterOrEqual(t, elapsed, 300*time.Millisecond)
	assert.Less(t, elapsed, time.Second)
}

func TestCursorPositionSurvivesResize(t *testing.T) {
	ptmx, term := openPTY(t, WithCursorTimeout(2*time.Second))
	interruptAfter(t, 50*time.Millisecond)
	go func() {
		request := make([]byte, len(requestCursorPosition))
		if _, err := ptmx.Read(request); err != nil {
			return
		}
		time.Sleep(150 * time.Millisecond)
		ptmx.Write([]byte("\x1b[4;9R"))
	}()

	pos, ok, err := term.CursorPosition()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, Position{Row: 4, Column: 9}, pos)
}
