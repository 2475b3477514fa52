package anki

import (
	"archive/zip"
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// APKGGenerator creates Anki package files (.apkg)
type APKGGenerator struct {
	deckName   string
	deckID     int64
	modelID    int64
	cards      []Card
	mediaFiles map[string]int // media filename to its number inside the package
	media      [][]byte       // audio data indexed by media number
}

// NewAPKGGenerator creates a new APKG generator
func NewAPKGGenerator(deckName string) *APKGGenerator {
	// IDs are timestamps so that repeated imports create distinct decks
	now := time.Now().UnixMilli()
	return &APKGGenerator{
		deckName:   deckName,
		deckID:     now,
		modelID:    now + 1,
		cards:      make([]Card, 0),
		mediaFiles: make(map[string]int),
	}
}

// AddCard adds a card to the generator. Its audio is registered once per
// AudioName.
func (g *APKGGenerator) AddCard(card Card) {
	g.cards = append(g.cards, card)
	if card.AudioName == "" || len(card.Audio) == 0 {
		return
	}
	if _, ok := g.mediaFiles[card.AudioName]; ok {
		return
	}
	g.mediaFiles[card.AudioName] = len(g.media)
	g.media = append(g.media, card.Audio)
}

// GenerateAPKG creates an .apkg file
func (g *APKGGenerator) GenerateAPKG(outputPath string) error {
	tempDir, err := os.MkdirTemp("", "anki_export_*")
	if err != nil {
		return fmt.Errorf("failed to create temp directory: %w", err)
	}
	defer os.RemoveAll(tempDir)

	dbPath := filepath.Join(tempDir, "collection.anki2")
	if err := g.createDatabase(dbPath); err != nil {
		return fmt.Errorf("failed to create database: %w", err)
	}

	if err := g.createZipPackage(dbPath, outputPath); err != nil {
		return fmt.Errorf("failed to create zip package: %w", err)
	}
	return nil
}

// createDatabase creates the Anki SQLite collection
func (g *APKGGenerator) createDatabase(dbPath string) error {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := createTables(db); err != nil {
		return fmt.Errorf("failed to create tables: %w", err)
	}
	if err := g.insertCollection(db); err != nil {
		return fmt.Errorf("failed to insert collection: %w", err)
	}
	if err := g.insertNotesAndCards(db); err != nil {
		return fmt.Errorf("failed to insert notes and cards: %w", err)
	}
	return nil
}

// schema is the Anki 2.1 collection layout (schema version 11)
var schema = []string{
	`CREATE TABLE col (
		id integer PRIMARY KEY, crt integer NOT NULL, mod integer NOT NULL,
		scm integer NOT NULL, ver integer NOT NULL, dty integer NOT NULL,
		usn integer NOT NULL, ls integer NOT NULL, conf text NOT NULL,
		models text NOT NULL, decks text NOT NULL, dconf text NOT NULL,
		tags text NOT NULL
	)`,
	`CREATE TABLE notes (
		id integer PRIMARY KEY, guid text NOT NULL, mid integer NOT NULL,
		mod integer NOT NULL, usn integer NOT NULL, tags text NOT NULL,
		flds text NOT NULL, sfld text NOT NULL, csum integer NOT NULL,
		flags integer NOT NULL, data text NOT NULL
	)`,
	`CREATE TABLE cards (
		id integer PRIMARY KEY, nid integer NOT NULL, did integer NOT NULL,
		ord integer NOT NULL, mod integer NOT NULL, usn integer NOT NULL,
		type integer NOT NULL, queue integer NOT NULL, due integer NOT NULL,
		ivl integer NOT NULL, factor integer NOT NULL, reps integer NOT NULL,
		lapses integer NOT NULL, left integer NOT NULL, odue integer NOT NULL,
		odid integer NOT NULL, flags integer NOT NULL, data text NOT NULL
	)`,
	`CREATE TABLE revlog (
		id integer PRIMARY KEY, cid integer NOT NULL, usn integer NOT NULL,
		ease integer NOT NULL, ivl integer NOT NULL, lastIvl integer NOT NULL,
		factor integer NOT NULL, time integer NOT NULL, type integer NOT NULL
	)`,
	`CREATE TABLE graves (usn integer NOT NULL, oid integer NOT NULL, type integer NOT NULL)`,
	`CREATE INDEX ix_notes_csum ON notes (csum)`,
	`CREATE INDEX ix_notes_usn ON notes (usn)`,
	`CREATE INDEX ix_cards_usn ON cards (usn)`,
	`CREATE INDEX ix_cards_nid ON cards (nid)`,
	`CREATE INDEX ix_cards_sched ON cards (did, queue, due)`,
	`CREATE INDEX ix_revlog_usn ON revlog (usn)`,
	`CREATE INDEX ix_revlog_cid ON revlog (cid)`,
}

func createTables(db *sql.DB) error {
	for _, query := range schema {
		if _, err := db.Exec(query); err != nil {
			return fmt.Errorf("failed to execute query: %w", err)
		}
	}
	return nil
}

func deckConfig(id int64, name, desc string, now int64) map[string]any {
	return map[string]any{
		"id":               id,
		"name":             name,
		"mod":              now,
		"desc":             desc,
		"collapsed":        false,
		"dyn":              0,
		"conf":             1,
		"usn":              0,
		"newToday":         []int{0, 0},
		"revToday":         []int{0, 0},
		"lrnToday":         []int{0, 0},
		"timeToday":        []int{0, 0},
		"browserCollapsed": false,
		"extendNew":        10,
		"extendRev":        50,
	}
}

// insertCollection inserts the collection metadata
func (g *APKGGenerator) insertCollection(db *sql.DB) error {
	now := time.Now().Unix()

	decks := map[string]any{
		"1": deckConfig(1, "Default", "", now),
		strconv.FormatInt(g.deckID, 10): deckConfig(g.deckID, g.deckName,
			"Punjabi to Kannada cards created by kannadacards", now),
	}
	models := map[string]any{
		strconv.FormatInt(g.modelID, 10): g.noteType(now),
	}
	conf := map[string]any{
		"nextPos":       1,
		"estTimes":      true,
		"activeDecks":   []int64{1},
		"sortType":      "noteFld",
		"sortBackwards": false,
		"addToCur":      true,
		"curDeck":       1,
		"newSpread":     0,
		"dueCounts":     true,
		"collapseTime":  1200,
		"timeLim":       0,
		"schedVer":      1,
		"curModel":      strconv.FormatInt(g.modelID, 10),
		"dayLearnFirst": false,
	}
	dconf := map[string]any{
		"1": map[string]any{
			"id":   1,
			"name": "Default",
			"dyn":  0,
			"new": map[string]any{
				"delays":        []int{1, 10},
				"ints":          []int{1, 4, 7},
				"initialFactor": 2500,
				"perDay":        20,
				"order":         1,
				"bury":          true,
				"separate":      true,
			},
			"lapse": map[string]any{
				"delays":      []int{10},
				"mult":        0,
				"minInt":      1,
				"leechFails":  8,
				"leechAction": 0,
			},
			"rev": map[string]any{
				"perDay":   100,
				"ease4":    1.3,
				"fuzz":     0.05,
				"maxIvl":   36500,
				"ivlFct":   1,
				"bury":     true,
				"minSpace": 1,
			},
			"timer":    0,
			"maxTaken": 60,
			"usn":      0,
			"mod":      now,
			"autoplay": true,
			"replayq":  true,
		},
	}

	var encoded [4]string
	for i, v := range []any{conf, models, decks, dconf} {
		data, err := json.Marshal(v)
		if err != nil {
			return err
		}
		encoded[i] = string(data)
	}

	_, err := db.Exec(`INSERT INTO col VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		1, now, now*1000, now*1000, 11, 0, 0, 0,
		encoded[0], encoded[1], encoded[2], encoded[3], "{}")
	return err
}

// noteType describes the five note fields and the two card templates
func (g *APKGGenerator) noteType(now int64) map[string]any {
	fields := make([]map[string]any, len(fieldNames))
	for i, name := range fieldNames {
		fields[i] = map[string]any{
			"name":   name,
			"ord":    i,
			"sticky": false,
			"rtl":    false,
			"font":   "Arial",
			"size":   20,
			"media":  []string{},
		}
	}

	return map[string]any{
		"id":        g.modelID,
		"name":      "kannadacards (Punjabi + Kannada)",
		"type":      0,
		"mod":       now,
		"usn":       -1,
		"sortf":     0,
		"did":       g.deckID,
		"req":       [][]any{{0, "all", []int{0}}, {1, "all", []int{1}}},
		"vers":      []int{},
		"tags":      []string{},
		"latexPre":  "\\documentclass[12pt]{article}\n\\begin{document}",
		"latexPost": "\\end{document}",
		"flds":      fields,
		"tmpls": []map[string]any{
			{"name": "Punjabi to Kannada", "ord": 0, "qfmt": forwardFront, "afmt": forwardBack, "did": nil, "bqfmt": "", "bafmt": ""},
			{"name": "Kannada to Punjabi", "ord": 1, "qfmt": reverseFront, "afmt": reverseBack, "did": nil, "bqfmt": "", "bafmt": ""},
		},
		"css": cardCSS,
	}
}

const forwardFront = `<div class="punjabi">{{Punjabi}}</div>`

const forwardBack = `{{FrontSide}}

<hr id="answer">

<div class="kannada">{{Kannada}}</div>
<div class="gurmukhi">{{Kannada in Gurmukhi}}</div>
<div class="phonetics">{{Phonetics}}</div>
{{#Audio}}<div class="audio">{{Audio}}</div>{{/Audio}}`

const reverseFront = `<div class="kannada">{{Kannada}}</div>
{{#Audio}}<div class="audio">{{Audio}}</div>{{/Audio}}`

const reverseBack = `{{FrontSide}}

<hr id="answer">

<div class="punjabi">{{Punjabi}}</div>
<div class="phonetics">{{Phonetics}}</div>`

const cardCSS = `.card {
  font-family: Arial, sans-serif;
  font-size: 20px;
  text-align: center;
  color: #333;
  background-color: white;
}

.punjabi, .kannada {
  font-size: 32px;
  font-weight: bold;
  margin: 20px 0;
}

.kannada { color: #c0392b; }
.gurmukhi { color: #2c3e50; }

.phonetics {
  font-family: monospace;
  color: #7f8c8d;
}

hr#answer {
  margin: 30px 0;
  border: 0;
  border-top: 1px solid #ecf0f1;
}`

// insertNotesAndCards inserts one note with a forward and a reverse card
// per Card.
func (g *APKGGenerator) insertNotesAndCards(db *sql.DB) error {
	now := time.Now()

	for i, card := range g.cards {
		// leave room for the two cards of each note
		noteID := now.UnixMilli() + int64(i*3)

		audioField := ""
		if _, ok := g.mediaFiles[card.AudioName]; ok {
			audioField = formatAudioField(card.AudioName)
		}

		fields := strings.Join([]string{
			card.Punjabi,
			card.Kannada,
			card.KannadaInGurmukhi,
			card.Phonetics,
			audioField,
		}, "\x1f")
		guid := fmt.Sprintf("kc_%d_%d", now.Unix(), i)

		_, err := db.Exec(`INSERT INTO notes VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			noteID, guid, g.modelID, now.Unix(), -1, "", fields, card.Punjabi, 0, 0, "")
		if err != nil {
			return fmt.Errorf("failed to insert note: %w", err)
		}

		for ord := 0; ord < 2; ord++ {
			cardID := noteID + int64(ord) + 1
			// new cards use due as their queue position
			_, err = db.Exec(`INSERT INTO cards VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
				cardID, noteID, g.deckID, ord, now.Unix(), -1,
				0, 0, noteID+int64(ord),
				0, 0, 0, 0, 0, 0, 0, 0, "")
			if err != nil {
				return fmt.Errorf("failed to insert card %d of note %d: %w", ord, i, err)
			}
		}
	}
	return nil
}

// createZipPackage writes the collection, the numbered media files and the
// media mapping into the .apkg zip file.
func (g *APKGGenerator) createZipPackage(dbPath, outputPath string) error {
	zipFile, err := os.Create(outputPath)
	if err != nil {
		return err
	}
	defer zipFile.Close()

	archive := zip.NewWriter(zipFile)

	if err := addFile(archive, "collection.anki2", dbPath); err != nil {
		return err
	}

	mapping := make(map[string]string, len(g.mediaFiles))
	for name, num := range g.mediaFiles {
		mapping[strconv.Itoa(num)] = name
	}
	data, err := json.Marshal(mapping)
	if err != nil {
		return err
	}
	if err := addBytes(archive, "media", data); err != nil {
		return err
	}

	for num, audio := range g.media {
		if err := addBytes(archive, strconv.Itoa(num), audio); err != nil {
			return err
		}
	}

	return archive.Close()
}

func addBytes(archive *zip.Writer, name string, data []byte) error {
	w, err := archive.Create(name)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

func addFile(archive *zip.Writer, name, path string) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	w, err := archive.Create(name)
	if err != nil {
		return err
	}
	_, err = io.Copy(w, file)
	return err
}
