// internal/store/observer.go
package store

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/sirupsen/logrus"
)

// Observer receives inventory notifications. Implementations must be
// comparable (pointer types) so Detach can find them.
type Observer interface {
	Update(message string)
}

// StoreObserver prints each notification prefixed with its name.
type StoreObserver struct {
	name string
	out  io.Writer
}

// NewStoreObserver writes to os.Stdout when out is nil.
func NewStoreObserver(name string, out io.Writer) *StoreObserver {
	if out == nil {
		out = os.Stdout
	}
	return &StoreObserver{name: name, out: out}
}

func (o *StoreObserver) Name() string { return o.name }

func (o *StoreObserver) Update(message string) {
	fmt.Fprintf(o.out, "Observer %s received update: %s\n", o.name, message)
}

// LogObserver forwards notifications to logrus.
type LogObserver struct {
	name string
}

func NewLogObserver(name string) *LogObserver {
	return &LogObserver{name: name}
}

func (o *LogObserver) Name() string { return o.name }

func (o *LogObserver) Update(message string) {
	logrus.WithField("observer", o.name).Info(message)
}

// RecordingObserver keeps every notification it receives, in order.
type RecordingObserver struct {
	name     string
	mu       sync.Mutex
	messages []string
}

func NewRecordingObserver(name string) *RecordingObserver {
	return &RecordingObserver{name: name}
}

func (o *RecordingObserver) Name() string { return o.name }

func (o *RecordingObserver) Update(message string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.messages = append(o.messages, message)
}

func (o *RecordingObserver) Messages() []string {
	o.mu.Lock()
	defer o.mu.Unlock()

	messages := make([]string, len(o.messages))
	copy(messages, o.messages)
	return messages
}
