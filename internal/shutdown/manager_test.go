package shutdown

import (
	"os"
	"syscall"
	"testing"
	"time"

	"tag-editor/internal/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	name  string
	calls *[]string
}

func (r recorder) Shutdown() {
	*r.calls = append(*r.calls, r.name)
}

func TestManager_ShutdownReverseOrderOnce(t *testing.T) {
	var calls []string
	m := NewManager(logger.Nop{})
	m.Register(recorder{name: "viewer", calls: &calls})
	m.Register(recorder{name: "controller", calls: &calls})

	m.Shutdown()
	m.Shutdown()

	assert.Equal(t, []string{"controller", "viewer"}, calls)
	select {
	case <-m.Done():
	default:
		t.Fatal("done channel not closed")
	}
}

func TestManager_ListenForwardsSignal(t *testing.T) {
	m := NewManager(logger.Nop{})
	received := make(chan os.Signal, 1)

	m.Listen(func(sig os.Signal) { received <- sig })
	defer m.Shutdown()
	m.signals <- syscall.SIGTERM

	select {
	case sig := <-received:
		require.Equal(t, syscall.SIGTERM, sig)
	case <-time.After(2 * time.Second):
		t.Fatal("signal not forwarded")
	}
}
