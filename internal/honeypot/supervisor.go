package honeypot

import (
	"errors"
	"net"
	"strconv"
	"sync"

	"github.com/google/uuid"

	"netdecoy/internal/activity"
	"netdecoy/internal/config"
	"netdecoy/pkg/eventbus"
	"netdecoy/pkg/logging"
)

// Supervisor owns one listener per configured port. Listeners are
// independent: a bind failure or accept-loop death on one port never
// touches the others. There is no draining protocol; process termination
// is the shutdown mechanism, with Close available for tests.
type Supervisor struct {
	bind  string
	ports []int
	sink  *activity.Sink
	bus   *eventbus.Bus

	mu        sync.Mutex
	listeners []net.Listener
	wg        sync.WaitGroup
}

// NewSupervisor builds a supervisor for the given bind address and port
// set. An empty set falls back to the default decoy ports with a warning.
func NewSupervisor(bind string, ports []int, sink *activity.Sink, bus *eventbus.Bus) *Supervisor {
	if len(ports) == 0 {
		logging.Warnf("no ports configured, using defaults %v", config.DefaultPorts)
		ports = append([]int(nil), config.DefaultPorts...)
	}
	return &Supervisor{bind: bind, ports: ports, sink: sink, bus: bus}
}

// Start binds every configured port and spawns its accept loop. Bind
// failures are reported per port and skipped; Start never fails as a whole.
func (s *Supervisor) Start() {
	for _, port := range s.ports {
		addr := net.JoinHostPort(s.bind, strconv.Itoa(port))
		ln, err := net.Listen("tcp", addr)
		if err != nil {
			mBindError.Inc()
			logging.Errorf("bind %s: %v", addr, err)
			continue
		}
		logging.Infof("listening on %s", ln.Addr())
		s.mu.Lock()
		s.listeners = append(s.listeners, ln)
		s.mu.Unlock()
		s.wg.Add(1)
		go func(ln net.Listener) {
			defer s.wg.Done()
			s.serve(ln)
		}(ln)
	}
}

// serve accepts connections forever, dispatching each to its own handler
// goroutine. Transient accept errors are logged and the loop continues;
// only a dead listening socket ends it.
func (s *Supervisor) serve(ln net.Listener) {
	port := ln.Addr().(*net.TCPAddr).Port
	for {
		conn, err := ln.Accept()
		if err != nil {
			if errors.Is(err, net.ErrClosed) {
				logging.Infof("listener on port %d closed", port)
				return
			}
			logging.Warnf("accept on port %d: %v", port, err)
			continue
		}
		sessionID := uuid.NewString()
		remoteIP := remoteHost(conn.RemoteAddr())
		mAccepted.Inc()
		logging.Infof("session %s: accepted %s on port %d", sessionID, conn.RemoteAddr(), port)
		if s.bus != nil {
			s.bus.TryPublish(eventbus.Event{
				Type:    eventbus.TopicSession,
				Source:  "netdecoy",
				Payload: SessionEvent{SessionID: sessionID, RemoteAddr: conn.RemoteAddr().String(), Port: port},
			})
		}
		go handle(conn, sessionID, remoteIP, port, s.sink, s.bus)
	}
}

// Addrs reports the addresses of the listeners that bound successfully.
func (s *Supervisor) Addrs() []net.Addr {
	s.mu.Lock()
	defer s.mu.Unlock()
	addrs := make([]net.Addr, 0, len(s.listeners))
	for _, ln := range s.listeners {
		addrs = append(addrs, ln.Addr())
	}
	return addrs
}

// Close shuts every listening socket; in-flight handlers are not drained.
func (s *Supervisor) Close() {
	s.mu.Lock()
	listeners := append([]net.Listener(nil), s.listeners...)
	s.mu.Unlock()
	for _, ln := range listeners {
		_ = ln.Close()
	}
	s.wg.Wait()
}

func remoteHost(addr net.Addr) string {
	host, _, err := net.SplitHostPort(addr.String())
	if err != nil {
		return addr.String()
	}
	return host
}
