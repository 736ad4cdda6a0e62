// Package internal holds the process configuration and the read-only
// debug surface shared by the entrypoints.
package internal

import (
	"embed"
	"encoding/json"
	"fmt"
	"html/template"
	"net/http"
	"strconv"
	"strings"

	"github.com/dgraph-io/badger/v4"
)

//go:embed inspect.html
var templatesFS embed.FS

type InspectRow struct {
	Key     string
	Type    string
	Session string
	Round   string
	Seat    string
	Detail  string
}

type RowMapper func(key string, val []byte) InspectRow
type StatsProvider func() map[string]any

type PageData struct {
	Prefix string
	Items  []InspectRow
	Stats  map[string]any
}

// StartDebugServer serves a read-only view of the badger keyspace plus
// live process stats. Facilitators use it to eyeball a running session
// without touching the command surface.
func StartDebugServer(db *badger.DB, port int, endpoint string, mapper RowMapper, statsProvider StatsProvider) {
	mux := http.NewServeMux()
	tmpl := template.Must(template.ParseFS(templatesFS, "inspect.html"))

	if mapper == nil {
		mapper = DefaultMapper
	}

	mux.HandleFunc(endpoint, func(w http.ResponseWriter, r *http.Request) {
		prefix := r.URL.Query().Get("prefix")
		if prefix == "" {
			prefix = "idea:"
		}

		data := PageData{
			Prefix: prefix,
			Stats:  make(map[string]any),
		}
		if statsProvider != nil {
			data.Stats = statsProvider()
		}

		_ = db.View(func(txn *badger.Txn) error {
			it := txn.NewIterator(badger.DefaultIteratorOptions)
			defer it.Close()
			for it.Seek([]byte(prefix)); it.ValidForPrefix([]byte(prefix)); it.Next() {
				item := it.Item()
				_ = item.Value(func(val []byte) error {
					data.Items = append(data.Items, mapper(string(item.Key()), val))
					return nil
				})
			}
			return nil
		})

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_ = tmpl.Execute(w, data)
	})

	go func() {
		_ = http.ListenAndServe(fmt.Sprintf("0.0.0.0:%d", port), mux)
	}()
}

// DefaultMapper understands the two key families of the store:
// "session:{id}" snapshots and "idea:{session}:{round}:{seat}:{uuid}"
// triples.
func DefaultMapper(key string, val []byte) InspectRow {
	row := InspectRow{
		Key:     key,
		Type:    "RAW",
		Session: "--------",
		Round:   "-",
		Seat:    "-",
		Detail:  "Size: " + strconv.Itoa(len(val)) + " bytes",
	}

	parts := strings.Split(key, ":")
	switch parts[0] {
	case "session":
		row.Type = "SESSION"
		if len(parts) >= 2 {
			row.Session = parts[1]
		}
		var snapshot struct {
			State string `json:"State"`
			Round int    `json:"Round"`
		}
		if err := json.Unmarshal(val, &snapshot); err == nil {
			row.Detail = fmt.Sprintf("%s, round %d", snapshot.State, snapshot.Round)
		}
	case "idea":
		row.Type = "IDEA"
		if len(parts) >= 4 {
			row.Session = parts[1]
			row.Round = parts[2]
			row.Seat = parts[3]
		}
		var record struct {
			Ideas     []string `json:"Ideas"`
			Generated bool     `json:"Generated"`
		}
		if err := json.Unmarshal(val, &record); err == nil {
			row.Detail = strings.Join(record.Ideas, " | ")
			if record.Generated {
				row.Type = "IDEA (GEN)"
			}
		}
	}
	return row
}
