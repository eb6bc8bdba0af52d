// Package anki augments existing Anki .apkg decks with phonics fields.
package anki

import (
	"archive/zip"
	"crypto/sha256"
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

// PhonicsFieldNames are the fields added to augmented note models.
var PhonicsFieldNames = []string{
	"Phonics_IPA",
	"Phonics_Syllables",
	"Phonics_Reading",
}

// PhonicsFields holds the rendered analysis for one note.
type PhonicsFields struct {
	IPA       string
	Syllables string
	Reading   string
}

// Model is an Anki note type; only the parts the augmenter touches.
type Model struct {
	ID     int64   `json:"id"`
	Name   string  `json:"name"`
	Fields []Field `json:"flds"`
	CSS    string  `json:"css"`
	Type   int     `json:"type"`
}

// Field is one field of a note type.
type Field struct {
	Name   string `json:"name"`
	Ord    int    `json:"ord"`
	Sticky bool   `json:"sticky"`
	RTL    bool   `json:"rtl"`
	Font   string `json:"font"`
	Size   int    `json:"size"`
}

// Note is one note row from the collection.
type Note struct {
	ID      int64
	ModelID int64
	Mod     int64
	Fields  []string
	SortFld string
}

// Deck is an opened .apkg package: the zip extracted to a temp directory
// with its SQLite collection opened for rewriting.
type Deck struct {
	path    string
	tempDir string
	db      *sql.DB
	Models  map[int64]*Model
	Notes   []*Note
}

// Open extracts an .apkg file and loads its models and notes.
func Open(path string) (*Deck, error) {
	tempDir, err := os.MkdirTemp("", "phonics-anki-*")
	if err != nil {
		return nil, fmt.Errorf("creating temp dir: %w", err)
	}
	d := &Deck{path: path, tempDir: tempDir, Models: make(map[int64]*Model)}

	if err := d.extract(); err != nil {
		d.Close()
		return nil, err
	}

	dbPath := filepath.Join(tempDir, "collection.anki2")
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		dbPath = filepath.Join(tempDir, "collection.anki21")
	}
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		d.Close()
		return nil, fmt.Errorf("opening collection: %w", err)
	}
	d.db = db

	if err := d.loadModels(); err != nil {
		d.Close()
		return nil, err
	}
	if err := d.loadNotes(); err != nil {
		d.Close()
		return nil, err
	}
	return d, nil
}

// Close releases the database and the extracted files.
func (d *Deck) Close() error {
	if d.db != nil {
		d.db.Close()
	}
	if d.tempDir != "" {
		os.RemoveAll(d.tempDir)
	}
	return nil
}

func (d *Deck) extract() error {
	r, err := zip.OpenReader(d.path)
	if err != nil {
		return fmt.Errorf("opening apkg: %w", err)
	}
	defer r.Close()

	for _, f := range r.File {
		dest := filepath.Join(d.tempDir, f.Name)
		// Zip slip guard.
		if !strings.HasPrefix(dest, filepath.Clean(d.tempDir)+string(os.PathSeparator)) {
			return fmt.Errorf("illegal path in apkg: %s", f.Name)
		}
		if f.FileInfo().IsDir() {
			os.MkdirAll(dest, 0755)
			continue
		}
		if err := os.MkdirAll(filepath.Dir(dest), 0755); err != nil {
			return err
		}
		if err := extractFile(f, dest); err != nil {
			return err
		}
	}
	return nil
}

func extractFile(f *zip.File, dest string) error {
	rc, err := f.Open()
	if err != nil {
		return err
	}
	defer rc.Close()

	out, err := os.Create(dest)
	if err != nil {
		return err
	}
	defer out.Close()

	_, err = io.Copy(out, rc)
	return err
}

func (d *Deck) loadModels() error {
	var models string
	if err := d.db.QueryRow("SELECT models FROM col").Scan(&models); err != nil {
		return fmt.Errorf("reading collection: %w", err)
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal([]byte(models), &raw); err != nil {
		return fmt.Errorf("parsing models: %w", err)
	}
	for _, mj := range raw {
		var m Model
		if err := json.Unmarshal(mj, &m); err != nil {
			continue
		}
		d.Models[m.ID] = &m
	}
	return nil
}

func (d *Deck) loadNotes() error {
	rows, err := d.db.Query("SELECT id, mid, mod, flds, sfld FROM notes")
	if err != nil {
		return fmt.Errorf("querying notes: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var n Note
		var flds string
		if err := rows.Scan(&n.ID, &n.ModelID, &n.Mod, &flds, &n.SortFld); err != nil {
			return fmt.Errorf("scanning note: %w", err)
		}
		// Fields are separated by ASCII 31.
		n.Fields = strings.Split(flds, "\x1f")
		d.Notes = append(d.Notes, &n)
	}
	return rows.Err()
}

// fieldIndex returns the ordinal of a named field, or -1.
func (m *Model) fieldIndex(name string) int {
	for _, f := range m.Fields {
		if strings.EqualFold(f.Name, name) {
			return f.Ord
		}
	}
	return -1
}

// ensurePhonicsFields appends the phonics fields to the model if missing.
func (m *Model) ensurePhonicsFields() {
	for _, name := range PhonicsFieldNames {
		if m.fieldIndex(name) >= 0 {
			continue
		}
		m.Fields = append(m.Fields, Field{
			Name: name,
			Ord:  len(m.Fields),
			Font: "Arial",
			Size: 20,
		})
	}
}

// Augment fills the phonics fields of every note. The word is taken from
// sourceField; fill returns the rendered analysis or false for words that
// cannot be analyzed, which are counted and left blank.
func (d *Deck) Augment(sourceField string, fill func(word string) (PhonicsFields, bool)) (done, skipped int, err error) {
	for _, note := range d.Notes {
		model, ok := d.Models[note.ModelID]
		if !ok {
			skipped++
			continue
		}
		srcIdx := model.fieldIndex(sourceField)
		if srcIdx < 0 || srcIdx >= len(note.Fields) {
			skipped++
			continue
		}

		model.ensurePhonicsFields()
		for len(note.Fields) < len(model.Fields) {
			note.Fields = append(note.Fields, "")
		}

		word := strings.TrimSpace(note.Fields[srcIdx])
		fields, ok := fill(word)
		if !ok {
			skipped++
			continue
		}

		note.Fields[model.fieldIndex("Phonics_IPA")] = fields.IPA
		note.Fields[model.fieldIndex("Phonics_Syllables")] = fields.Syllables
		note.Fields[model.fieldIndex("Phonics_Reading")] = fields.Reading
		note.Mod = time.Now().Unix()
		done++
	}
	return done, skipped, nil
}

// SaveAs writes the augmented collection back into a new .apkg.
func (d *Deck) SaveAs(outPath string) error {
	if err := d.writeModels(); err != nil {
		return err
	}
	if err := d.writeNotes(); err != nil {
		return err
	}
	if err := d.db.Close(); err != nil {
		return fmt.Errorf("closing collection: %w", err)
	}
	d.db = nil

	out, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	defer out.Close()

	zw := zip.NewWriter(out)
	defer zw.Close()

	return filepath.Walk(d.tempDir, func(path string, info os.FileInfo, err error) error {
		if err != nil || info.IsDir() {
			return err
		}
		rel, err := filepath.Rel(d.tempDir, path)
		if err != nil {
			return err
		}
		w, err := zw.Create(rel)
		if err != nil {
			return err
		}
		in, err := os.Open(path)
		if err != nil {
			return err
		}
		defer in.Close()
		_, err = io.Copy(w, in)
		return err
	})
}

func (d *Deck) writeModels() error {
	modelsMap := make(map[string]*Model, len(d.Models))
	for id, m := range d.Models {
		modelsMap[strconv.FormatInt(id, 10)] = m
	}
	out, err := json.Marshal(modelsMap)
	if err != nil {
		return fmt.Errorf("marshaling models: %w", err)
	}
	if _, err := d.db.Exec("UPDATE col SET models = ?", string(out)); err != nil {
		return fmt.Errorf("updating models: %w", err)
	}
	return nil
}

func (d *Deck) writeNotes() error {
	for _, note := range d.Notes {
		flds := strings.Join(note.Fields, "\x1f")

		// Anki's note checksum: first 8 hex digits of the sort field hash.
		sum := fmt.Sprintf("%x", sha256.Sum256([]byte(note.SortFld)))
		csum, _ := strconv.ParseInt(sum[:8], 16, 64)

		_, err := d.db.Exec(
			"UPDATE notes SET mod = ?, flds = ?, csum = ? WHERE id = ?",
			note.Mod, flds, csum, note.ID,
		)
		if err != nil {
			return fmt.Errorf("updating note %d: %w", note.ID, err)
		}
	}
	return nil
}

// Summary describes the opened deck.
func (d *Deck) Summary() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Anki package: %s\n", d.path))
	sb.WriteString(fmt.Sprintf("  Note types: %d\n", len(d.Models)))
	for _, m := range d.Models {
		sb.WriteString(fmt.Sprintf("    - %s (%d fields)\n", m.Name, len(m.Fields)))
	}
	sb.WriteString(fmt.Sprintf("  Notes: %d\n", len(d.Notes)))
	return sb.String()
}
