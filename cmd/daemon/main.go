package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/godbus/dbus/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/gonhanh/ime-core/internal/engine"
)

const objectPath = "/Engine"

// InputEngine is the D-Bus object a Fcitx5-style frontend talks to. One
// instance wraps one Engine for the lifetime of the process; the
// session bus serializes calls so no extra locking is needed here.
type InputEngine struct {
	engine *engine.Engine
	log    zerolog.Logger
}

// NewInputEngine builds an InputEngine from cfg, wiring its EngineConfig
// straight into a fresh Engine.
func NewInputEngine(cfg *daemonConfig, logger zerolog.Logger) *InputEngine {
	econf := engine.DefaultConfig()
	econf.Method = cfg.Method
	eng := engine.NewEngine(econf)
	if cfg.UseDefaultShortcuts {
		eng.Shortcuts().Merge(engine.DefaultShortcuts())
	}
	return &InputEngine{engine: eng, log: logger}
}

// OnKey forwards one keystroke to the engine. keysym is an X11 keysym;
// caps/ctrl/shift are the modifier state as reported by the frontend.
// It returns whether the key was consumed, how many previously
// committed runes the frontend must delete, and the runes to insert in
// their place.
func (e *InputEngine) OnKey(keysym uint32, caps, ctrl, shift bool) (bool, int32, string, *dbus.Error) {
	key, keyCaps := engine.FromKeysym(keysym)
	result := e.engine.OnKey(key, caps || keyCaps, ctrl, shift)
	handled := result.Action != engine.ActionNone
	e.log.Debug().
		Uint32("keysym", keysym).
		Bool("handled", handled).
		Int("backspace", result.Backspace).
		Str("chars", string(result.Chars)).
		Msg("key")
	return handled, int32(result.Backspace), string(result.Chars), nil
}

// Reset clears the engine's in-progress word.
func (e *InputEngine) Reset() *dbus.Error {
	e.engine.Reset()
	return nil
}

// SetEnabled toggles Vietnamese composition on or off. Disabling drops
// the in-progress word and the word history; shortcuts, method and
// other settings are kept.
func (e *InputEngine) SetEnabled(enabled bool) *dbus.Error {
	e.engine.SetEnabled(enabled)
	e.log.Info().Bool("enabled", enabled).Msg("engine enabled state changed")
	return nil
}

// SetMethod switches between "Telex" and "VNI". An unrecognized name
// is reported back as a D-Bus error rather than silently ignored.
func (e *InputEngine) SetMethod(name string) *dbus.Error {
	if name != "Telex" && name != "VNI" {
		return dbus.MakeFailedError(fmt.Errorf("unknown input method %q", name))
	}
	e.engine.SetMethod(name)
	e.log.Info().Str("method", name).Msg("input method changed")
	return nil
}

// SetSkipWShortcut toggles whether a bare 'w' composes into 'ư'.
func (e *InputEngine) SetSkipWShortcut(skip bool) *dbus.Error {
	e.engine.SetSkipWShortcut(skip)
	return nil
}

// AddShortcut registers trigger -> replacement and returns the new
// entry's ID as a string, for later RemoveShortcut calls.
func (e *InputEngine) AddShortcut(trigger, replacement string) (string, *dbus.Error) {
	id, err := e.engine.Shortcuts().Add(engine.ShortcutEntry{
		Trigger:     trigger,
		Replacement: replacement,
		Scope:       engine.ScopeAll,
		Condition:   engine.TriggerAtWordBoundary,
		Case:        engine.CaseMatchCase,
	})
	if err != nil {
		return "", dbus.MakeFailedError(err)
	}
	return id.String(), nil
}

// RemoveShortcut deletes the shortcut with the given ID, reporting
// whether one was found.
func (e *InputEngine) RemoveShortcut(id string) (bool, *dbus.Error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return false, dbus.MakeFailedError(err)
	}
	return e.engine.Shortcuts().Remove(parsed), nil
}

// RestoreWord re-seeds the engine's buffer from word, so a frontend
// that lets the user click back into an already-committed Vietnamese
// word can resume editing it.
func (e *InputEngine) RestoreWord(word string) *dbus.Error {
	e.engine.RestoreWord(word)
	return nil
}

// GetPreedit returns the word currently being composed.
func (e *InputEngine) GetPreedit() (string, *dbus.Error) {
	return e.engine.GetPreedit(), nil
}

func main() {
	cfg := loadDaemonConfig()
	logger := newLogger(cfg)

	conn, err := dbus.SessionBus()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to session bus")
	}
	defer conn.Close()

	reply, err := conn.RequestName(cfg.ServiceName, dbus.NameFlagDoNotQueue)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to request bus name")
	}
	if reply != dbus.RequestNameReplyPrimaryOwner {
		logger.Fatal().Str("service", cfg.ServiceName).Msg("bus name already taken, another instance running?")
	}

	inputEngine := NewInputEngine(cfg, logger)
	if err := conn.Export(inputEngine, dbus.ObjectPath(objectPath), cfg.ServiceName); err != nil {
		logger.Fatal().Err(err).Msg("failed to export engine object")
	}

	logger.Info().
		Str("service", cfg.ServiceName).
		Str("object_path", objectPath).
		Str("method", cfg.Method).
		Msg("ime-core daemon ready")
	fmt.Fprintf(os.Stderr, "ime-core listening on %s %s (method=%s)\n", cfg.ServiceName, objectPath, cfg.Method)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan
	logger.Info().Msg("shutting down")
}
