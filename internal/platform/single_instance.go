package platform

import (
	"errors"
	"fmt"
	"hash/fnv"
	"net"
	"os"
	"os/user"
	"strings"
)

// ErrAlreadyRunning indicates another instance already holds the lock.
var ErrAlreadyRunning = errors.New("instance already running")

// Ports used by the guard. Each user session of an app maps to one of them.
const (
	guardPortBase = 21000
	guardPortSpan = 16000
)

// InstanceGuard keeps one timer per app and user. The lock is a listener on
// a loopback port derived from the app and user names.
type InstanceGuard struct {
	listener net.Listener
}

// AcquireSingleInstance takes the lock for appName and the current user.
func AcquireSingleInstance(appName string) (*InstanceGuard, error) {
	key := guardKey(appName, currentUser())
	address := fmt.Sprintf("127.0.0.1:%d", guardPort(key))
	listener, err := net.Listen("tcp", address)
	if err != nil {
		return nil, fmt.Errorf("%w: %s on %s: %v", ErrAlreadyRunning, key, address, err)
	}
	return &InstanceGuard{listener: listener}, nil
}

// Release frees the lock. It is safe to call more than once.
func (guard *InstanceGuard) Release() error {
	if guard == nil || guard.listener == nil {
		return nil
	}
	err := guard.listener.Close()
	guard.listener = nil
	return err
}

func guardKey(appName, userName string) string {
	return strings.ToLower(strings.TrimSpace(appName)) + "/" + userName
}

func guardPort(key string) int {
	hash := fnv.New32a()
	_, _ = hash.Write([]byte(key))
	return guardPortBase + int(hash.Sum32()%guardPortSpan)
}

func currentUser() string {
	if current, err := user.Current(); err == nil && current.Username != "" {
		return current.Username
	}
	for _, name := range []string{"USER", "USERNAME"} {
		if value := os.Getenv(name); value != "" {
			return value
		}
	}
	return ""
}
