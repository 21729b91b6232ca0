package mock

import (
	"bytes"
	"fmt"
	"net/http"
	"sort"
	"sync"
)

// Fault codes returned by the emulator.
const (
	codeUnknownMethod = -32601
	codeBadParams     = -32602
	codeRigInactive   = 1
)

type fault struct {
	code int
	s    string
}

func faultf(code int, format string, v ...interface{}) *fault {
	return &fault{code, fmt.Sprintf(format, v...)}
}

type handlerFunc func(s *Server, params []value) (interface{}, *fault)

var methods = map[string]handlerFunc{}

func register(name string, h handlerFunc) { methods[name] = h }

// Options seed the emulated state.
type Options struct {
	Name       string   // program name, default "fldigi"
	Version    string   // default "4.2.05"
	ConfigDir  string   // default "/home/op/.fldigi"
	RigControl bool     // when false, the rig.* methods fault
	RigName    string   // default "mock rig"
	Frequency  float64  // default 14070000 Hz
	Modems     []string // default BPSK31 CW MFSK16 OLIVIA RTTY
}

// Server emulates fldigi's XML-RPC server. It implements http.Handler and
// is typically mounted with net/http/httptest.
type Server struct {
	opts Options

	mu            sync.Mutex
	freq          float64
	rigMode       string
	rigModes      []string
	rigBandwidth  string
	rigBandwidths []string
	modems        []string
	modemID       int
	carrier       int
	afcRange      int
	bandwidth     int
	oliviaBW      int
	oliviaTones   int
	quality       float64
	afc           bool
	squelch       bool
	reverse       bool
	lock          bool
	txid          bool
	rsid          bool
	spotAuto      bool
	spotCount     int
	squelchLevel  float64
	trx           string // "rx", "tx" or "tune"
	wfSideband    string
	ioPort        string
	rxText        bytes.Buffer
	txText        bytes.Buffer
	rxData        bytes.Buffer
	txData        bytes.Buffer
	logFields     map[string]string
}

// NewServer returns a Server seeded from opts.
func NewServer(opts Options) *Server {
	if opts.Name == "" {
		opts.Name = "fldigi"
	}
	if opts.Version == "" {
		opts.Version = "4.2.05"
	}
	if opts.ConfigDir == "" {
		opts.ConfigDir = "/home/op/.fldigi"
	}
	if opts.RigName == "" {
		opts.RigName = "mock rig"
	}
	if opts.Frequency == 0 {
		opts.Frequency = 14070000
	}
	if len(opts.Modems) == 0 {
		opts.Modems = []string{"BPSK31", "BPSK63", "CW", "MFSK16", "OLIVIA", "RTTY"}
	}
	return &Server{
		opts:          opts,
		freq:          opts.Frequency,
		rigMode:       "USB",
		rigModes:      []string{"LSB", "USB", "CW", "DATA"},
		rigBandwidth:  "3000",
		rigBandwidths: []string{"1800", "2400", "3000"},
		modems:        append([]string(nil), opts.Modems...),
		carrier:       1000,
		afcRange:      200,
		bandwidth:     100,
		oliviaBW:      500,
		oliviaTones:   8,
		quality:       100,
		squelchLevel:  5,
		trx:           "rx",
		wfSideband:    "USB",
		ioPort:        "ARQ",
		logFields:     map[string]string{},
	}
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "POST required", http.StatusMethodNotAllowed)
		return
	}
	method, params, err := parseCall(r.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	w.Header().Set("Content-Type", "text/xml")

	h, ok := methods[method]
	if !ok {
		writeFault(w, codeUnknownMethod, "no such method: "+method)
		return
	}
	s.mu.Lock()
	result, f := h(s, params)
	s.mu.Unlock()
	if f != nil {
		writeFault(w, f.code, f.s)
		return
	}
	writeResponse(w, result)
}

// State accessors for tests.

// SeedRx appends text to the emulated receive buffer.
func (s *Server) SeedRx(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rxText.WriteString(text)
	s.rxData.WriteString(text)
}

// TxBuffer returns the contents of the emulated transmit buffer.
func (s *Server) TxBuffer() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.txText.String()
}

// Frequency returns the emulated frequency in Hz.
func (s *Server) Frequency() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.freq
}

// TRX returns the emulated transceiver status ("rx", "tx" or "tune").
func (s *Server) TRX() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.trx
}

// Argument helpers.

func argString(p []value, i int) (string, *fault) {
	if i >= len(p) {
		return "", faultf(codeBadParams, "missing parameter %d", i)
	}
	return p[i].asString(), nil
}

func argInt(p []value, i int) (int, *fault) {
	if i >= len(p) {
		return 0, faultf(codeBadParams, "missing parameter %d", i)
	}
	n, err := p[i].asInt()
	if err != nil {
		return 0, faultf(codeBadParams, "parameter %d: %v", i, err)
	}
	return n, nil
}

func argFloat(p []value, i int) (float64, *fault) {
	if i >= len(p) {
		return 0, faultf(codeBadParams, "missing parameter %d", i)
	}
	f, err := p[i].asFloat()
	if err != nil {
		return 0, faultf(codeBadParams, "parameter %d: %v", i, err)
	}
	return f, nil
}

func argBool(p []value, i int) (bool, *fault) {
	if i >= len(p) {
		return false, faultf(codeBadParams, "missing parameter %d", i)
	}
	b, err := p[i].asBool()
	if err != nil {
		return false, faultf(codeBadParams, "parameter %d: %v", i, err)
	}
	return b, nil
}

func argBytes(p []value, i int) ([]byte, *fault) {
	if i >= len(p) {
		return nil, faultf(codeBadParams, "missing parameter %d", i)
	}
	return p[i].asBytes(), nil
}

// Registration helpers.

func registerBool(get, set, toggle string, field func(*Server) *bool) {
	register(get, func(s *Server, _ []value) (interface{}, *fault) {
		return *field(s), nil
	})
	register(set, func(s *Server, p []value) (interface{}, *fault) {
		v, f := argBool(p, 0)
		if f != nil {
			return nil, f
		}
		b := field(s)
		old := *b
		*b = v
		return old, nil
	})
	register(toggle, func(s *Server, _ []value) (interface{}, *fault) {
		b := field(s)
		*b = !*b
		return *b, nil
	})
}

func registerInt(get, set, inc string, field func(*Server) *int) {
	register(get, func(s *Server, _ []value) (interface{}, *fault) {
		return *field(s), nil
	})
	register(set, func(s *Server, p []value) (interface{}, *fault) {
		v, f := argInt(p, 0)
		if f != nil {
			return nil, f
		}
		n := field(s)
		old := *n
		*n = v
		return old, nil
	})
	if inc == "" {
		return
	}
	register(inc, func(s *Server, p []value) (interface{}, *fault) {
		v, f := argInt(p, 0)
		if f != nil {
			return nil, f
		}
		n := field(s)
		*n += v
		return *n, nil
	})
}

func registerLogField(field string, settable bool) {
	register("log.get_"+field, func(s *Server, _ []value) (interface{}, *fault) {
		return s.logFields[field], nil
	})
	if !settable {
		return
	}
	register("log.set_"+field, func(s *Server, p []value) (interface{}, *fault) {
		v, f := argString(p, 0)
		if f != nil {
			return nil, f
		}
		s.logFields[field] = v
		return nil, nil
	})
}

// requireRig guards the rig.* methods; with rig control inactive fldigi
// answers them with a fault.
func requireRig(h handlerFunc) handlerFunc {
	return func(s *Server, p []value) (interface{}, *fault) {
		if !s.opts.RigControl {
			return nil, faultf(codeRigInactive, "rig control is not active")
		}
		return h(s, p)
	}
}

func init() {
	// fldigi.*
	register("fldigi.name", func(s *Server, _ []value) (interface{}, *fault) {
		return s.opts.Name, nil
	})
	register("fldigi.version", func(s *Server, _ []value) (interface{}, *fault) {
		return s.opts.Version, nil
	})
	register("fldigi.config_dir", func(s *Server, _ []value) (interface{}, *fault) {
		return s.opts.ConfigDir, nil
	})
	register("fldigi.terminate", func(s *Server, p []value) (interface{}, *fault) {
		if _, f := argInt(p, 0); f != nil {
			return nil, f
		}
		return nil, nil
	})
	register("fldigi.list", func(s *Server, _ []value) (interface{}, *fault) {
		names := make([]string, 0, len(methods))
		for name := range methods {
			names = append(names, name)
		}
		sort.Strings(names)
		list := make([]methodSpec, len(names))
		for i, name := range names {
			list[i] = methodSpec{Name: name}
		}
		return list, nil
	})

	// main.*
	register("main.get_frequency", func(s *Server, _ []value) (interface{}, *fault) {
		return s.freq, nil
	})
	register("main.set_frequency", func(s *Server, p []value) (interface{}, *fault) {
		f, fl := argFloat(p, 0)
		if fl != nil {
			return nil, fl
		}
		old := s.freq
		s.freq = f
		return old, nil
	})
	register("main.inc_frequency", func(s *Server, p []value) (interface{}, *fault) {
		f, fl := argFloat(p, 0)
		if fl != nil {
			return nil, fl
		}
		s.freq += f
		return s.freq, nil
	})
	registerBool("main.get_afc", "main.set_afc", "main.toggle_afc",
		func(s *Server) *bool { return &s.afc })
	registerBool("main.get_squelch", "main.set_squelch", "main.toggle_squelch",
		func(s *Server) *bool { return &s.squelch })
	registerBool("main.get_reverse", "main.set_reverse", "main.toggle_reverse",
		func(s *Server) *bool { return &s.reverse })
	registerBool("main.get_lock", "main.set_lock", "main.toggle_lock",
		func(s *Server) *bool { return &s.lock })
	registerBool("main.get_txid", "main.set_txid", "main.toggle_txid",
		func(s *Server) *bool { return &s.txid })
	registerBool("main.get_rsid", "main.set_rsid", "main.toggle_rsid",
		func(s *Server) *bool { return &s.rsid })
	register("main.get_squelch_level", func(s *Server, _ []value) (interface{}, *fault) {
		return s.squelchLevel, nil
	})
	register("main.set_squelch_level", func(s *Server, p []value) (interface{}, *fault) {
		level, f := argFloat(p, 0)
		if f != nil {
			return nil, f
		}
		old := s.squelchLevel
		s.squelchLevel = level
		return old, nil
	})
	register("main.get_trx_status", func(s *Server, _ []value) (interface{}, *fault) {
		return s.trx, nil
	})
	register("main.get_trx_state", func(s *Server, _ []value) (interface{}, *fault) {
		if s.trx == "rx" {
			return "RX", nil
		}
		return "TX", nil
	})
	register("main.rx", func(s *Server, _ []value) (interface{}, *fault) {
		s.trx = "rx"
		return nil, nil
	})
	register("main.tx", func(s *Server, _ []value) (interface{}, *fault) {
		s.trx = "tx"
		return nil, nil
	})
	register("main.tune", func(s *Server, _ []value) (interface{}, *fault) {
		s.trx = "tune"
		return nil, nil
	})
	register("main.abort", func(s *Server, _ []value) (interface{}, *fault) {
		s.trx = "rx"
		return nil, nil
	})
	register("main.get_wf_sideband", func(s *Server, _ []value) (interface{}, *fault) {
		return s.wfSideband, nil
	})
	register("main.set_wf_sideband", func(s *Server, p []value) (interface{}, *fault) {
		sb, f := argString(p, 0)
		if f != nil {
			return nil, f
		}
		s.wfSideband = sb
		return nil, nil
	})
	register("main.run_macro", func(s *Server, p []value) (interface{}, *fault) {
		n, f := argInt(p, 0)
		if f != nil {
			return nil, f
		}
		if n < 0 || n > 47 {
			return nil, faultf(codeBadParams, "macro %d out of range", n)
		}
		return nil, nil
	})
	register("main.get_max_macro_id", func(s *Server, _ []value) (interface{}, *fault) {
		return 47, nil
	})

	// rig.*
	register("rig.get_name", requireRig(func(s *Server, _ []value) (interface{}, *fault) {
		return s.opts.RigName, nil
	}))
	register("rig.set_name", requireRig(func(s *Server, p []value) (interface{}, *fault) {
		name, f := argString(p, 0)
		if f != nil {
			return nil, f
		}
		s.opts.RigName = name
		return nil, nil
	}))
	register("rig.get_frequency", requireRig(func(s *Server, _ []value) (interface{}, *fault) {
		return s.freq, nil
	}))
	register("rig.set_frequency", requireRig(func(s *Server, p []value) (interface{}, *fault) {
		f, fl := argFloat(p, 0)
		if fl != nil {
			return nil, fl
		}
		old := s.freq
		s.freq = f
		return old, nil
	}))
	register("rig.get_mode", requireRig(func(s *Server, _ []value) (interface{}, *fault) {
		return s.rigMode, nil
	}))
	register("rig.set_mode", requireRig(func(s *Server, p []value) (interface{}, *fault) {
		mode, f := argString(p, 0)
		if f != nil {
			return nil, f
		}
		s.rigMode = mode
		return nil, nil
	}))
	register("rig.get_modes", requireRig(func(s *Server, _ []value) (interface{}, *fault) {
		return s.rigModes, nil
	}))
	register("rig.get_bandwidth", requireRig(func(s *Server, _ []value) (interface{}, *fault) {
		return s.rigBandwidth, nil
	}))
	register("rig.set_bandwidth", requireRig(func(s *Server, p []value) (interface{}, *fault) {
		bw, f := argString(p, 0)
		if f != nil {
			return nil, f
		}
		s.rigBandwidth = bw
		return nil, nil
	}))
	register("rig.get_bandwidths", requireRig(func(s *Server, _ []value) (interface{}, *fault) {
		return s.rigBandwidths, nil
	}))
	register("rig.take_control", requireRig(func(s *Server, _ []value) (interface{}, *fault) {
		return nil, nil
	}))
	register("rig.release_control", requireRig(func(s *Server, _ []value) (interface{}, *fault) {
		return nil, nil
	}))

	// text.* and the rx/tx/rxtx data drains
	register("text.get_rx_length", func(s *Server, _ []value) (interface{}, *fault) {
		return s.rxText.Len(), nil
	})
	register("text.get_rx", func(s *Server, p []value) (interface{}, *fault) {
		start, f := argInt(p, 0)
		if f != nil {
			return nil, f
		}
		end, f := argInt(p, 1)
		if f != nil {
			return nil, f
		}
		b := s.rxText.Bytes()
		if start < 0 || end < start || end > len(b) {
			return nil, faultf(codeBadParams, "range [%d, %d) out of bounds", start, end)
		}
		return append([]byte(nil), b[start:end]...), nil
	})
	register("text.clear_rx", func(s *Server, _ []value) (interface{}, *fault) {
		s.rxText.Reset()
		return nil, nil
	})
	register("text.add_tx", func(s *Server, p []value) (interface{}, *fault) {
		text, f := argString(p, 0)
		if f != nil {
			return nil, f
		}
		s.txText.WriteString(text)
		s.txData.WriteString(text)
		return nil, nil
	})
	register("text.add_tx_bytes", func(s *Server, p []value) (interface{}, *fault) {
		b, f := argBytes(p, 0)
		if f != nil {
			return nil, f
		}
		s.txText.Write(b)
		s.txData.Write(b)
		return nil, nil
	})
	register("text.clear_tx", func(s *Server, _ []value) (interface{}, *fault) {
		s.txText.Reset()
		return nil, nil
	})
	register("rx.get_data", func(s *Server, _ []value) (interface{}, *fault) {
		b := append([]byte(nil), s.rxData.Bytes()...)
		s.rxData.Reset()
		return b, nil
	})
	register("tx.get_data", func(s *Server, _ []value) (interface{}, *fault) {
		b := append([]byte(nil), s.txData.Bytes()...)
		s.txData.Reset()
		return b, nil
	})
	register("rxtx.get_data", func(s *Server, _ []value) (interface{}, *fault) {
		b := append([]byte(nil), s.rxData.Bytes()...)
		b = append(b, s.txData.Bytes()...)
		s.rxData.Reset()
		s.txData.Reset()
		return b, nil
	})

	// modem.*
	register("modem.get_name", func(s *Server, _ []value) (interface{}, *fault) {
		return s.modems[s.modemID], nil
	})
	register("modem.get_names", func(s *Server, _ []value) (interface{}, *fault) {
		return s.modems, nil
	})
	register("modem.get_id", func(s *Server, _ []value) (interface{}, *fault) {
		return s.modemID, nil
	})
	register("modem.get_max_id", func(s *Server, _ []value) (interface{}, *fault) {
		return len(s.modems) - 1, nil
	})
	register("modem.set_by_name", func(s *Server, p []value) (interface{}, *fault) {
		name, f := argString(p, 0)
		if f != nil {
			return nil, f
		}
		for i, m := range s.modems {
			if m == name {
				old := s.modems[s.modemID]
				s.modemID = i
				return old, nil
			}
		}
		return nil, faultf(codeBadParams, "no such modem: %s", name)
	})
	register("modem.set_by_id", func(s *Server, p []value) (interface{}, *fault) {
		id, f := argInt(p, 0)
		if f != nil {
			return nil, f
		}
		if id < 0 || id >= len(s.modems) {
			return nil, faultf(codeBadParams, "modem id %d out of range", id)
		}
		old := s.modemID
		s.modemID = id
		return old, nil
	})
	registerInt("modem.get_carrier", "modem.set_carrier", "modem.inc_carrier",
		func(s *Server) *int { return &s.carrier })
	registerInt("modem.get_afc_search_range", "modem.set_afc_search_range",
		"modem.inc_afc_search_range", func(s *Server) *int { return &s.afcRange })
	registerInt("modem.get_bandwidth", "modem.set_bandwidth", "modem.inc_bandwidth",
		func(s *Server) *int { return &s.bandwidth })
	register("modem.get_quality", func(s *Server, _ []value) (interface{}, *fault) {
		return s.quality, nil
	})
	register("modem.search_up", func(s *Server, _ []value) (interface{}, *fault) {
		s.carrier += 100
		return nil, nil
	})
	register("modem.search_down", func(s *Server, _ []value) (interface{}, *fault) {
		s.carrier -= 100
		return nil, nil
	})
	registerInt("modem.olivia.get_bandwidth", "modem.olivia.set_bandwidth", "",
		func(s *Server) *int { return &s.oliviaBW })
	registerInt("modem.olivia.get_tones", "modem.olivia.set_tones", "",
		func(s *Server) *int { return &s.oliviaTones })

	// log.*
	for _, field := range []string{
		"call", "name", "qth", "locator", "rst_in", "rst_out",
		"serial_number", "exchange",
	} {
		registerLogField(field, true)
	}
	for _, field := range []string{
		"serial_number_sent", "frequency", "time_on", "time_off",
		"az", "band", "state", "province", "country", "notes",
	} {
		registerLogField(field, false)
	}
	register("log.clear", func(s *Server, _ []value) (interface{}, *fault) {
		s.logFields = map[string]string{}
		return nil, nil
	})

	// io.*
	register("io.in_use", func(s *Server, _ []value) (interface{}, *fault) {
		return s.ioPort, nil
	})
	register("io.enable_kiss", func(s *Server, _ []value) (interface{}, *fault) {
		s.ioPort = "KISS"
		return nil, nil
	})
	register("io.enable_arq", func(s *Server, _ []value) (interface{}, *fault) {
		s.ioPort = "ARQ"
		return nil, nil
	})

	// spot.*
	registerBool("spot.get_auto", "spot.set_auto", "spot.toggle_auto",
		func(s *Server) *bool { return &s.spotAuto })
	register("spot.pskrep.get_count", func(s *Server, _ []value) (interface{}, *fault) {
		return s.spotCount, nil
	})

	// navtex.* and wefax.* return status strings; nothing is modelled
	// beyond the happy path.
	register("navtex.get_message", func(s *Server, p []value) (interface{}, *fault) {
		if _, f := argInt(p, 0); f != nil {
			return nil, f
		}
		return "", nil
	})
	register("navtex.send_message", func(s *Server, p []value) (interface{}, *fault) {
		msg, f := argString(p, 0)
		if f != nil {
			return nil, f
		}
		s.txData.WriteString(msg)
		return "", nil
	})
	register("wefax.state_string", func(s *Server, _ []value) (interface{}, *fault) {
		return "IDLE", nil
	})
	for _, name := range []string{
		"wefax.skip_apt", "wefax.skip_phasing", "wefax.set_tx_abort_flag",
		"wefax.end_reception", "wefax.start_manual_reception",
	} {
		register(name, func(s *Server, _ []value) (interface{}, *fault) {
			return "", nil
		})
	}
	register("wefax.set_adif_log", func(s *Server, p []value) (interface{}, *fault) {
		if _, f := argBool(p, 0); f != nil {
			return nil, f
		}
		return "", nil
	})
	register("wefax.set_max_lines", func(s *Server, p []value) (interface{}, *fault) {
		if _, f := argInt(p, 0); f != nil {
			return nil, f
		}
		return "", nil
	})
	register("wefax.get_received_file", func(s *Server, p []value) (interface{}, *fault) {
		if _, f := argInt(p, 0); f != nil {
			return nil, f
		}
		return "", nil
	})
}
