// Package settings owns the Claude Code settings document: loading,
// structural validation, hook merging and removal, and save-with-backup.
package settings

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/chime-cli/chime/pkg/hook"
	"github.com/chime-cli/chime/pkg/logger"
)

var (
	// ErrParse is returned when the settings file contains malformed JSON.
	ErrParse = errors.New("malformed settings JSON")

	// ErrValidate is returned when a document violates the structural schema.
	ErrValidate = errors.New("invalid settings structure")

	// ErrNotLoaded is returned when a query or mutation runs before Load.
	ErrNotLoaded = errors.New("settings not loaded")
)

const (
	// BackupSuffix is appended to the settings path for the pre-write copy.
	BackupSuffix = ".backup"

	settingsFileMode = 0o600
	settingsDirMode  = 0o750
)

// Store owns the in-memory settings document for the duration of a session.
// No other component mutates the document; all writes go through Save.
type Store struct {
	path   string
	log    logger.Logger
	doc    hook.Document
	loaded bool
}

// NewStore creates a store over the settings file at path.
func NewStore(path string, log logger.Logger) *Store {
	if log == nil {
		log = logger.NewNoOpLogger()
	}

	return &Store{
		path: path,
		log:  log,
	}
}

// DefaultPath returns the per-user settings path, ~/.claude/settings.json.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(err, "failed to get home directory")
	}

	return filepath.Join(home, ".claude", "settings.json"), nil
}

// Path returns the settings file path the store operates on.
func (s *Store) Path() string {
	return s.path
}

// Load reads and parses the settings file. A missing, empty or
// whitespace-only file yields an empty document rather than an error.
func (s *Store) Load() (hook.Document, error) {
	data, err := os.ReadFile(s.path) //nolint:gosec // fixed per-user settings path
	if err != nil {
		if os.IsNotExist(err) {
			s.doc = hook.Document{}
			s.loaded = true

			return s.doc, nil
		}

		return nil, errors.Wrapf(err, "failed to read settings file %s", s.path)
	}

	if strings.TrimSpace(string(data)) == "" {
		s.doc = hook.Document{}
		s.loaded = true

		return s.doc, nil
	}

	var doc hook.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrapf(ErrParse, "%s: %v", s.path, err)
	}

	s.doc = doc
	s.loaded = true

	s.log.Debug("settings loaded", "path", s.path, "keys", len(doc))

	return doc, nil
}

// Save validates and writes the in-memory document back to disk.
func (s *Store) Save() error {
	if !s.loaded {
		return errors.Wrap(ErrNotLoaded, "save")
	}

	return s.write()
}

// SaveDocument replaces the in-memory document and writes it to disk.
func (s *Store) SaveDocument(doc hook.Document) error {
	if doc == nil {
		return errors.Wrap(ErrNotLoaded, "save: no document given")
	}

	s.doc = doc
	s.loaded = true

	return s.write()
}

// write validates, backs up the current file best-effort and overwrites the
// settings file with pretty-printed JSON. The write is not atomic; the
// .backup sibling is a convenience, not a durability guarantee.
func (s *Store) write() error {
	if outcome := ValidateDocument(s.doc); !outcome.Valid {
		return errors.Wrap(ErrValidate, strings.Join(outcome.Errors, "; "))
	}

	if err := os.MkdirAll(filepath.Dir(s.path), settingsDirMode); err != nil {
		return errors.Wrapf(err, "failed to create settings directory for %s", s.path)
	}

	s.backup()

	data, err := json.MarshalIndent(s.doc, "", "  ")
	if err != nil {
		return errors.Wrap(err, "failed to marshal settings")
	}

	data = append(data, '\n')

	if err := os.WriteFile(s.path, data, settingsFileMode); err != nil {
		return errors.Wrapf(err, "failed to write settings file %s", s.path)
	}

	s.log.Info("settings saved", "path", s.path)

	return nil
}

// backup copies the current on-disk content to the .backup sibling. Failures
// are logged and otherwise ignored.
func (s *Store) backup() {
	data, err := os.ReadFile(s.path) //nolint:gosec // fixed per-user settings path
	if err != nil {
		if !os.IsNotExist(err) {
			s.log.Error("settings backup skipped", "path", s.path, "error", err)
		}

		return
	}

	backupPath := s.path + BackupSuffix
	if err := os.WriteFile(backupPath, data, settingsFileMode); err != nil {
		s.log.Error("settings backup failed", "path", backupPath, "error", err)
	}
}

// MergeHooks merges hook groups into the document, one whole event at a
// time: each event key present in groups replaces that key's existing value
// entirely, keys not present are untouched. Loads the document first if
// needed and re-validates afterwards.
func (s *Store) MergeHooks(groups map[string][]hook.Group) error {
	if err := s.ensureLoaded(); err != nil {
		return err
	}

	if groups == nil {
		return errors.Wrap(ErrValidate, "merge: hooks must be a map")
	}

	if len(groups) > 0 {
		hooksMap := s.hooksMapForWrite()
		if hooksMap != nil {
			for event, groupList := range groups {
				raw := make([]any, 0, len(groupList))
				for _, group := range groupList {
					raw = append(raw, group.Raw())
				}

				hooksMap[event] = raw
			}
		}
	}

	if outcome := ValidateDocument(s.doc); !outcome.Valid {
		return errors.Wrap(ErrValidate, strings.Join(outcome.Errors, "; "))
	}

	s.log.Debug("hooks merged", "events", len(groups))

	return nil
}

// hooksMapForWrite returns the document's hooks map, creating it when
// absent. A hooks key of the wrong type is left in place so validation can
// name it instead of silently discarding it.
func (s *Store) hooksMapForWrite() map[string]any {
	raw, ok := s.doc[hook.HooksKey]
	if !ok {
		hooksMap := make(map[string]any)
		s.doc[hook.HooksKey] = hooksMap

		return hooksMap
	}

	hooksMap, ok := raw.(map[string]any)
	if !ok {
		return nil
	}

	return hooksMap
}

// RemoveHooks deletes the named event keys. Removing a key that is not
// present is a no-op, so the operation is idempotent. When the last event is
// removed the hooks key itself is deleted so an empty object is never
// persisted.
func (s *Store) RemoveHooks(names ...string) error {
	if err := s.ensureLoaded(); err != nil {
		return err
	}

	if hooksMap, ok := s.doc.Hooks(); ok {
		for _, name := range names {
			delete(hooksMap, name)
		}

		if len(hooksMap) == 0 {
			delete(s.doc, hook.HooksKey)
		}
	}

	if outcome := ValidateDocument(s.doc); !outcome.Valid {
		return errors.Wrap(ErrValidate, strings.Join(outcome.Errors, "; "))
	}

	return nil
}

// RemoveAllHooks deletes the entire hooks key if present.
func (s *Store) RemoveAllHooks() error {
	if err := s.ensureLoaded(); err != nil {
		return err
	}

	delete(s.doc, hook.HooksKey)

	return nil
}

// HasHooks reports whether any event has hooks installed.
func (s *Store) HasHooks() (bool, error) {
	if !s.loaded {
		return false, errors.Wrap(ErrNotLoaded, "hasHooks")
	}

	hooksMap, ok := s.doc.Hooks()

	return ok && len(hooksMap) > 0, nil
}

// HasHook reports whether the named event has hooks installed.
func (s *Store) HasHook(name string) (bool, error) {
	if !s.loaded {
		return false, errors.Wrap(ErrNotLoaded, "hasHook")
	}

	hooksMap, ok := s.doc.Hooks()
	if !ok {
		return false, nil
	}

	_, found := hooksMap[name]

	return found, nil
}

// InstalledHookNames returns the sorted event keys present in the document.
func (s *Store) InstalledHookNames() ([]string, error) {
	if !s.loaded {
		return nil, errors.Wrap(ErrNotLoaded, "installedHookNames")
	}

	hooksMap, ok := s.doc.Hooks()
	if !ok {
		return nil, nil
	}

	names := make([]string, 0, len(hooksMap))
	for name := range hooksMap {
		names = append(names, name)
	}

	sort.Strings(names)

	return names, nil
}

// ensureLoaded loads the document if Load has not run yet.
func (s *Store) ensureLoaded() error {
	if s.loaded {
		return nil
	}

	_, err := s.Load()

	return err
}
